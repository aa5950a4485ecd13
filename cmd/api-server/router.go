// Package main 是应用程序入口
package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/otelrez/hotel-reservation-backend/internal/common/config"
	"github.com/otelrez/hotel-reservation-backend/internal/common/jwt"
	"github.com/otelrez/hotel-reservation-backend/internal/common/metrics"
	authHandler "github.com/otelrez/hotel-reservation-backend/internal/handler/auth"
	hotelHandler "github.com/otelrez/hotel-reservation-backend/internal/handler/hotel"
	reviewHandler "github.com/otelrez/hotel-reservation-backend/internal/handler/review"
	userHandler "github.com/otelrez/hotel-reservation-backend/internal/handler/user"
	"github.com/otelrez/hotel-reservation-backend/internal/middleware"
	"github.com/otelrez/hotel-reservation-backend/internal/repository"
	authService "github.com/otelrez/hotel-reservation-backend/internal/service/auth"
	hotelService "github.com/otelrez/hotel-reservation-backend/internal/service/hotel"
	reviewService "github.com/otelrez/hotel-reservation-backend/internal/service/review"
	userService "github.com/otelrez/hotel-reservation-backend/internal/service/user"
)

// setupRouter 设置路由
func setupRouter(
	r *gin.Engine,
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	redisClient *redis.Client,
) {
	// 创建 JWT 管理器
	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:           cfg.JWT.Secret,
		AccessExpireTime: cfg.JWT.AccessTokenDuration(),
		Issuer:           cfg.JWT.Issuer,
	})

	// 初始化仓储
	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// 初始化服务
	authSvc := authService.NewAuthService(db, userRepo, jwtManager, cfg.Crypto.BcryptCost)
	userSvc := userService.NewUserService(db, userRepo)
	hotelSvc := hotelService.NewHotelService(db, hotelRepo, reviewRepo)
	reviewSvc := reviewService.NewReviewService(db, reviewRepo, hotelRepo)

	// 初始化处理器
	authH := authHandler.NewHandler(authSvc)
	userH := userHandler.NewHandler(userSvc)
	hotelH := hotelHandler.NewHandler(hotelSvc)
	reviewH := reviewHandler.NewHandler(reviewSvc)

	// 全局中间件
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RealIP())
	r.Use(middleware.SecureHeaders())
	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	corsConfig.AllowCredentials = cfg.CORS.AllowCredentials
	if cfg.CORS.MaxAge > 0 {
		corsConfig.MaxAge = cfg.CORS.MaxAge
	}
	r.Use(middleware.CORS(corsConfig))
	r.Use(middleware.Logging(middleware.DefaultLoggingConfig(logger)))
	if cfg.Metrics.Enabled {
		r.Use(metrics.GetMetrics().Middleware())
	}

	// 健康检查（不需要认证）
	r.GET("/", bannerHandler(cfg))
	r.GET("/health", healthHandler)
	r.GET("/ping", pingHandler)
	r.GET("/ready", readyHandler(db, redisClient))

	// Prometheus 指标
	if cfg.Metrics.Enabled {
		r.GET(cfg.Metrics.Path, metrics.Handler())
	}

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 认证中间件配置
	authConfig := &middleware.AuthConfig{
		JWTManager: jwtManager,
		Users:      userRepo,
	}

	// 公开接口，登录注册单独限流
	public := r.Group("")
	{
		auth := public.Group("")
		if cfg.RateLimit.Enabled {
			auth.Use(middleware.AuthRateLimit(redisClient, cfg.RateLimit.Limit, cfg.RateLimit.WindowDuration()))
		}
		{
			auth.POST("/register", authH.Register)
			auth.POST("/token", authH.Token)
		}

		public.GET("/hotels", hotelH.List)
		public.GET("/hotels/:id", hotelH.Detail)
		public.GET("/hotels/:id/reviews", reviewH.ListByHotel)
	}

	// 需要登录且账号启用
	authed := r.Group("")
	authed.Use(middleware.Auth(authConfig), middleware.RequireActive())
	{
		authed.GET("/users/me", userH.Me)
		authed.GET("/users/me/reviews", reviewH.ListMine)

		authed.POST("/reviews", reviewH.Create)
		authed.PUT("/reviews/:review_id", reviewH.Update)
		authed.DELETE("/reviews/:review_id", reviewH.Delete)
	}

	// 管理员接口
	admin := r.Group("")
	admin.Use(middleware.Auth(authConfig), middleware.RequireActive(), middleware.RequireAdmin())
	{
		admin.POST("/hotels", hotelH.Create)
		admin.PUT("/hotels/:id", hotelH.Update)
		admin.DELETE("/hotels/:id", hotelH.Delete)

		admin.GET("/users", userH.List)
		admin.PUT("/users/:id/toggle-admin", userH.ToggleAdmin)
		admin.PUT("/users/:id/toggle-active", userH.ToggleActive)
	}

	// 404 处理
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "接口不存在",
		})
	})
}

// bannerHandler 服务信息
func bannerHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": cfg.Server.Name,
			"version": "1.0.0",
			"docs":    "/swagger/index.html",
		})
	}
}
