// Package middleware 提供 HTTP 中间件
package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/otelrez/hotel-reservation-backend/internal/common/jwt"
	"github.com/otelrez/hotel-reservation-backend/internal/common/response"
	"github.com/otelrez/hotel-reservation-backend/internal/models"
)

// UserLoader 根据邮箱加载用户
type UserLoader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthConfig 认证配置
type AuthConfig struct {
	JWTManager *jwt.Manager
	Users      UserLoader
}

// 上下文键
const (
	ContextKeyUser   = "current_user"
	ContextKeyClaims = "claims"
)

// Auth 认证中间件
// 解析 Bearer 令牌并按邮箱加载用户，任何失败都返回 401
func Auth(config *AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}

		claims, err := config.JWTManager.ParseToken(token)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Unauthorized(c, "登录已过期，请重新登录")
			} else {
				response.Unauthorized(c, "无效的令牌")
			}
			c.Abort()
			return
		}

		user, err := config.Users.GetByEmail(c.Request.Context(), claims.Subject)
		if err != nil || user == nil {
			response.Unauthorized(c, "无效的令牌")
			c.Abort()
			return
		}

		// 设置上下文
		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// OptionalAuth 可选认证中间件（不强制要求登录）
func OptionalAuth(config *AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token != "" {
			claims, err := config.JWTManager.ParseToken(token)
			if err == nil {
				if user, err := config.Users.GetByEmail(c.Request.Context(), claims.Subject); err == nil && user != nil {
					c.Set(ContextKeyUser, user)
					c.Set(ContextKeyClaims, claims)
				}
			}
		}
		c.Next()
	}
}

// RequireActive 要求账号处于启用状态
func RequireActive() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}
		if !user.IsActive {
			response.Forbidden(c, "账号已禁用")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin 要求管理员权限
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetCurrentUser(c)
		if user == nil {
			response.Unauthorized(c, "请先登录")
			c.Abort()
			return
		}
		if !user.IsAdmin {
			response.Forbidden(c, "权限不足")
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractToken 从请求中提取令牌
func extractToken(c *gin.Context) string {
	// 优先从 Authorization 头获取
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return parts[1]
		}
	}

	// 其次从查询参数获取
	token := c.Query("token")
	if token != "" {
		return token
	}

	// 最后从 Cookie 获取
	token, _ = c.Cookie("token")
	return token
}

// GetCurrentUser 从上下文获取当前用户
func GetCurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextKeyUser)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetUserID 从上下文获取用户 ID
func GetUserID(c *gin.Context) int64 {
	user := GetCurrentUser(c)
	if user == nil {
		return 0
	}
	return user.ID
}

// GetClaims 从上下文获取完整的 Claims
func GetClaims(c *gin.Context) *jwt.Claims {
	claims, exists := c.Get(ContextKeyClaims)
	if !exists {
		return nil
	}
	return claims.(*jwt.Claims)
}

// IsLoggedIn 判断是否已登录
func IsLoggedIn(c *gin.Context) bool {
	_, exists := c.Get(ContextKeyUser)
	return exists
}
