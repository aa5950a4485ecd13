// Package auth 提供认证服务
package auth

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/otelrez/hotel-reservation-backend/internal/common/crypto"
	"github.com/otelrez/hotel-reservation-backend/internal/common/errors"
	"github.com/otelrez/hotel-reservation-backend/internal/common/jwt"
	"github.com/otelrez/hotel-reservation-backend/internal/common/logger"
	"github.com/otelrez/hotel-reservation-backend/internal/common/metrics"
	"github.com/otelrez/hotel-reservation-backend/internal/common/utils"
	"github.com/otelrez/hotel-reservation-backend/internal/models"
	"github.com/otelrez/hotel-reservation-backend/internal/repository"
)

// AuthService 认证服务
type AuthService struct {
	db         *gorm.DB
	userRepo   *repository.UserRepository
	jwtManager *jwt.Manager
	bcryptCost int
}

// NewAuthService 创建认证服务
func NewAuthService(
	db *gorm.DB,
	userRepo *repository.UserRepository,
	jwtManager *jwt.Manager,
	bcryptCost int,
) *AuthService {
	return &AuthService{
		db:         db,
		userRepo:   userRepo,
		jwtManager: jwtManager,
		bcryptCost: bcryptCost,
	}
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required"`
	FullName string  `json:"full_name" binding:"required"`
	Password string  `json:"password" binding:"required,min=6"`
	Phone    *string `json:"phone,omitempty"`
}

// LoginRequest 登录请求，兼容 OAuth2 密码模式的表单字段
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse 令牌响应
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
	IsActive bool    `json:"is_active"`
	IsAdmin  bool    `json:"is_admin"`
}

// ToUserInfo 转换为用户信息
func ToUserInfo(user *models.User) *UserInfo {
	return &UserInfo{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Phone:    user.Phone,
		IsActive: user.IsActive,
		IsAdmin:  user.IsAdmin,
	}
}

// Register 注册新用户，系统首个用户自动成为管理员
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*UserInfo, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.ValidateEmail(email) {
		return nil, errors.ErrEmailInvalid
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	if exists {
		return nil, errors.ErrEmailExists
	}

	hash, err := crypto.HashPasswordWithCost(req.Password, s.bcryptCost)
	if err != nil {
		return nil, errors.ErrInternalError.WithError(err)
	}

	user := &models.User{
		Email:        email,
		FullName:     req.FullName,
		Phone:        req.Phone,
		PasswordHash: hash,
		IsActive:     true,
	}

	// 注册放在事务内，首个注册用户直接获得管理员身份
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.userRepo.WithTx(tx)

		count, err := repo.Count(ctx)
		if err != nil {
			return errors.ErrDatabaseError.WithError(err)
		}
		user.IsAdmin = count == 0

		if err := repo.Create(ctx, user); err != nil {
			// 并发注册同一邮箱时由唯一索引兜底
			if strings.Contains(strings.ToLower(err.Error()), "unique") ||
				strings.Contains(strings.ToLower(err.Error()), "duplicate") {
				return errors.ErrEmailExists
			}
			return errors.ErrDatabaseError.WithError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordRegistrationGlobal()
	logger.Info("用户注册成功",
		zap.Int64("user_id", user.ID),
		logger.Email(crypto.MaskEmail(user.Email)),
		zap.Bool("is_admin", user.IsAdmin),
	)

	return ToUserInfo(user), nil
}

// Login 校验凭证并签发访问令牌
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			// 未注册邮箱与密码错误返回同一错误，避免探测
			metrics.RecordLoginGlobal("failure")
			return nil, errors.ErrInvalidCredentials
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		metrics.RecordLoginGlobal("failure")
		return nil, errors.ErrInvalidCredentials
	}

	if !user.IsActive {
		metrics.RecordLoginGlobal("failure")
		return nil, errors.ErrAccountDisabled
	}

	token, expiresAt, err := s.jwtManager.GenerateAccessToken(user.Email)
	if err != nil {
		return nil, errors.ErrInternalError.WithError(err)
	}

	metrics.RecordLoginGlobal("success")
	logger.Info("用户登录成功",
		zap.Int64("user_id", user.ID),
		logger.Email(crypto.MaskEmail(user.Email)),
	)

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// GetUserByEmail 根据邮箱获取用户，供认证中间件回查
func (s *AuthService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return user, nil
}
