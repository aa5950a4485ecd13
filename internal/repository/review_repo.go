// Package repository 提供数据访问层
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/otelrez/hotel-reservation-backend/internal/models"
)

// ReviewRepository 评价仓储
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评价仓储
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// WithTx 返回使用指定事务的仓储
func (r *ReviewRepository) WithTx(tx *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: tx}
}

// Create 创建评价
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// GetByID 根据 ID 获取评价
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// GetByIDWithUser 根据 ID 获取评价（包含用户信息）
func (r *ReviewRepository) GetByIDWithUser(ctx context.Context, id int64) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).Preload("User").First(&review, id).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Update 更新评价
func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

// UpdateFields 更新指定字段
func (r *ReviewRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Review{}).Where("id = ?", id).Updates(fields).Error
}

// Delete 删除评价
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Review{}, id).Error
}

// DeleteByHotelID 删除酒店下的全部评价
func (r *ReviewRepository) DeleteByHotelID(ctx context.Context, hotelID int64) error {
	return r.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Delete(&models.Review{}).Error
}

// ReviewListParams 评价列表查询参数
type ReviewListParams struct {
	Offset  int
	Limit   int
	HotelID int64
	UserID  int64
	Rating  *int
}

// List 获取评价列表
func (r *ReviewRepository) List(ctx context.Context, params ReviewListParams) ([]*models.Review, int64, error) {
	var reviews []*models.Review
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Review{})

	// 过滤条件
	if params.HotelID > 0 {
		query = query.Where("hotel_id = ?", params.HotelID)
	}
	if params.UserID > 0 {
		query = query.Where("user_id = ?", params.UserID)
	}
	if params.Rating != nil {
		query = query.Where("rating = ?", *params.Rating)
	}

	// 统计总数
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// 查询列表
	if err := query.Order("created_at DESC").Offset(params.Offset).Limit(params.Limit).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// ListByHotelID 根据酒店ID获取评价列表
func (r *ReviewRepository) ListByHotelID(ctx context.Context, hotelID int64, offset, limit int) ([]*models.Review, int64, error) {
	return r.List(ctx, ReviewListParams{
		Offset:  offset,
		Limit:   limit,
		HotelID: hotelID,
	})
}

// ListByUserID 根据用户ID获取评价列表
func (r *ReviewRepository) ListByUserID(ctx context.Context, userID int64, offset, limit int) ([]*models.Review, int64, error) {
	return r.List(ctx, ReviewListParams{
		Offset: offset,
		Limit:  limit,
		UserID: userID,
	})
}

// CountByHotelID 根据酒店ID统计评价数量
func (r *ReviewRepository) CountByHotelID(ctx context.Context, hotelID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("hotel_id = ?", hotelID).
		Count(&count).Error
	return count, err
}

// GetAverageRatingByHotelID 根据酒店ID获取平均评分，无评价时返回 0
func (r *ReviewRepository) GetAverageRatingByHotelID(ctx context.Context, hotelID int64) (float64, error) {
	var avg float64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("hotel_id = ?", hotelID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}

// GetRatingDistribution 获取评分分布
func (r *ReviewRepository) GetRatingDistribution(ctx context.Context, hotelID int64) (map[int]int64, error) {
	type ratingCount struct {
		Rating int
		Count  int64
	}
	var results []ratingCount

	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("hotel_id = ?", hotelID).
		Select("rating, COUNT(*) as count").
		Group("rating").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	distribution := make(map[int]int64)
	for _, row := range results {
		distribution[row.Rating] = row.Count
	}
	return distribution, nil
}
