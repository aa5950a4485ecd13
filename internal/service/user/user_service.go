// Package user 提供用户服务
package user

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/otelrez/hotel-reservation-backend/internal/common/errors"
	"github.com/otelrez/hotel-reservation-backend/internal/common/logger"
	"github.com/otelrez/hotel-reservation-backend/internal/common/utils"
	"github.com/otelrez/hotel-reservation-backend/internal/repository"
	"github.com/otelrez/hotel-reservation-backend/internal/service/auth"
)

// UserService 用户服务
type UserService struct {
	db       *gorm.DB
	userRepo *repository.UserRepository
}

// NewUserService 创建用户服务
func NewUserService(db *gorm.DB, userRepo *repository.UserRepository) *UserService {
	return &UserService{
		db:       db,
		userRepo: userRepo,
	}
}

// UserListRequest 用户列表请求
type UserListRequest struct {
	Page     int    `form:"page" json:"page"`
	PageSize int    `form:"page_size" json:"page_size"`
	Email    string `form:"email" json:"email"`
}

// GetProfile 获取用户资料
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*auth.UserInfo, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	return auth.ToUserInfo(user), nil
}

// List 获取用户列表（管理员）
func (s *UserService) List(ctx context.Context, req *UserListRequest) ([]*auth.UserInfo, int64, error) {
	p := utils.Pagination{Page: req.Page, PageSize: req.PageSize}
	p.Normalize()

	filters := map[string]interface{}{}
	if req.Email != "" {
		filters["email"] = req.Email
	}

	users, total, err := s.userRepo.List(ctx, p.GetOffset(), p.GetLimit(), filters)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}

	infos := make([]*auth.UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, auth.ToUserInfo(u))
	}
	return infos, total, nil
}

// ToggleAdmin 切换目标用户的管理员身份，不允许操作自己
func (s *UserService) ToggleAdmin(ctx context.Context, operatorID, targetID int64) (*auth.UserInfo, error) {
	if operatorID == targetID {
		return nil, errors.ErrToggleSelf
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	target.IsAdmin = !target.IsAdmin
	if err := s.userRepo.UpdateFields(ctx, target.ID, map[string]interface{}{
		"is_admin": target.IsAdmin,
	}); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("切换管理员身份",
		zap.Int64("operator_id", operatorID),
		zap.Int64("target_id", target.ID),
		zap.Bool("is_admin", target.IsAdmin),
	)

	return auth.ToUserInfo(target), nil
}

// ToggleActive 启用或禁用目标用户，不允许操作自己
func (s *UserService) ToggleActive(ctx context.Context, operatorID, targetID int64) (*auth.UserInfo, error) {
	if operatorID == targetID {
		return nil, errors.ErrToggleSelf
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	target.IsActive = !target.IsActive
	if err := s.userRepo.UpdateFields(ctx, target.ID, map[string]interface{}{
		"is_active": target.IsActive,
	}); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	logger.Info("切换用户启用状态",
		zap.Int64("operator_id", operatorID),
		zap.Int64("target_id", target.ID),
		zap.Bool("is_active", target.IsActive),
	)

	return auth.ToUserInfo(target), nil
}
