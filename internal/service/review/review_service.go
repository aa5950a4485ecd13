// Package review 提供评价服务
package review

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/otelrez/hotel-reservation-backend/internal/common/errors"
	"github.com/otelrez/hotel-reservation-backend/internal/common/logger"
	"github.com/otelrez/hotel-reservation-backend/internal/common/metrics"
	"github.com/otelrez/hotel-reservation-backend/internal/common/utils"
	"github.com/otelrez/hotel-reservation-backend/internal/models"
	"github.com/otelrez/hotel-reservation-backend/internal/repository"
)

// ReviewService 评价服务
type ReviewService struct {
	db         *gorm.DB
	reviewRepo *repository.ReviewRepository
	hotelRepo  *repository.HotelRepository
}

// NewReviewService 创建评价服务
func NewReviewService(
	db *gorm.DB,
	reviewRepo *repository.ReviewRepository,
	hotelRepo *repository.HotelRepository,
) *ReviewService {
	return &ReviewService{
		db:         db,
		reviewRepo: reviewRepo,
		hotelRepo:  hotelRepo,
	}
}

// CreateReviewRequest 创建评价请求，评分范围 1-5
type CreateReviewRequest struct {
	HotelID int64   `json:"hotel_id" binding:"required"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

// UpdateReviewRequest 更新评价请求
type UpdateReviewRequest struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

// ReviewInfo 评价信息
type ReviewInfo struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotel_id"`
	UserID    int64     `json:"user_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toReviewInfo(review *models.Review) *ReviewInfo {
	return &ReviewInfo{
		ID:        review.ID,
		HotelID:   review.HotelID,
		UserID:    review.UserID,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}

// Create 为酒店创建评价，作者固定为当前用户
func (s *ReviewService) Create(ctx context.Context, userID int64, req *CreateReviewRequest) (*ReviewInfo, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.ErrRatingOutOfRange
	}

	if _, err := s.hotelRepo.GetByID(ctx, req.HotelID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrHotelNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	review := &models.Review{
		HotelID: req.HotelID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	metrics.RecordReviewGlobal("create")
	logger.Info("创建评价",
		logger.ReviewID(review.ID),
		logger.HotelID(review.HotelID),
		zap.Int64("user_id", userID),
		zap.Int("rating", review.Rating),
	)

	return toReviewInfo(review), nil
}

// Update 更新评价，仅作者本人可操作
func (s *ReviewService) Update(ctx context.Context, userID, reviewID int64, req *UpdateReviewRequest) (*ReviewInfo, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.ErrRatingOutOfRange
	}

	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrReviewNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	if review.UserID != userID {
		return nil, errors.ErrNotReviewOwner
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	metrics.RecordReviewGlobal("update")
	logger.Info("更新评价", logger.ReviewID(review.ID), zap.Int64("user_id", userID))

	return toReviewInfo(review), nil
}

// Delete 删除评价，仅作者本人可操作
func (s *ReviewService) Delete(ctx context.Context, userID, reviewID int64) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrReviewNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}

	if review.UserID != userID {
		return errors.ErrNotReviewOwner
	}

	if err := s.reviewRepo.Delete(ctx, reviewID); err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}

	metrics.RecordReviewGlobal("delete")
	logger.Info("删除评价", logger.ReviewID(reviewID), zap.Int64("user_id", userID))

	return nil
}

// ReviewListRequest 评价列表请求
type ReviewListRequest struct {
	Page     int `form:"page" json:"page"`
	PageSize int `form:"page_size" json:"page_size"`
}

// ListByHotel 获取酒店的评价列表
func (s *ReviewService) ListByHotel(ctx context.Context, hotelID int64, req *ReviewListRequest) ([]*ReviewInfo, int64, error) {
	if _, err := s.hotelRepo.GetByID(ctx, hotelID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, 0, errors.ErrHotelNotFound
		}
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}

	p := utils.Pagination{Page: req.Page, PageSize: req.PageSize}
	p.Normalize()

	reviews, total, err := s.reviewRepo.ListByHotelID(ctx, hotelID, p.GetOffset(), p.GetLimit())
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}

	infos := make([]*ReviewInfo, 0, len(reviews))
	for _, r := range reviews {
		infos = append(infos, toReviewInfo(r))
	}
	return infos, total, nil
}

// ListByUser 获取用户自己的评价列表
func (s *ReviewService) ListByUser(ctx context.Context, userID int64, req *ReviewListRequest) ([]*ReviewInfo, int64, error) {
	p := utils.Pagination{Page: req.Page, PageSize: req.PageSize}
	p.Normalize()

	reviews, total, err := s.reviewRepo.ListByUserID(ctx, userID, p.GetOffset(), p.GetLimit())
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}

	infos := make([]*ReviewInfo, 0, len(reviews))
	for _, r := range reviews {
		infos = append(infos, toReviewInfo(r))
	}
	return infos, total, nil
}
