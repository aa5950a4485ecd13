// Package repository 提供数据访问层
package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/otelrez/hotel-reservation-backend/internal/models"
)

// HotelFilter 酒店列表过滤条件
type HotelFilter struct {
	City       string
	IsNearSea  *bool
	HasParking *bool
	MaxPrice   *float64
}

// HotelRepository 酒店仓储
type HotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository 创建酒店仓储
func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// WithTx 返回使用指定事务的仓储
func (r *HotelRepository) WithTx(tx *gorm.DB) *HotelRepository {
	return &HotelRepository{db: tx}
}

// Create 创建酒店
func (r *HotelRepository) Create(ctx context.Context, hotel *models.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

// GetByID 根据 ID 获取酒店
func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.db.WithContext(ctx).First(&hotel, id).Error
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

// GetByIDWithReviews 根据 ID 获取酒店（包含评价）
func (r *HotelRepository) GetByIDWithReviews(ctx context.Context, id int64) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.db.WithContext(ctx).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&hotel, id).Error
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

// Update 更新酒店
func (r *HotelRepository) Update(ctx context.Context, hotel *models.Hotel) error {
	return r.db.WithContext(ctx).Save(hotel).Error
}

// UpdateFields 更新指定字段
func (r *HotelRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.Hotel{}).Where("id = ?", id).Updates(fields).Error
}

// List 获取酒店列表，城市为大小写不敏感的子串匹配，价格上限为闭区间
func (r *HotelRepository) List(ctx context.Context, offset, limit int, filter HotelFilter) ([]*models.Hotel, int64, error) {
	var hotels []*models.Hotel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Hotel{})

	if filter.City != "" {
		query = query.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(filter.City)+"%")
	}
	if filter.IsNearSea != nil {
		query = query.Where("is_near_sea = ?", *filter.IsNearSea)
	}
	if filter.HasParking != nil {
		query = query.Where("has_parking = ?", *filter.HasParking)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("id ASC").Offset(offset).Limit(limit).Find(&hotels).Error; err != nil {
		return nil, 0, err
	}

	return hotels, total, nil
}

// GetCities 获取所有城市列表
func (r *HotelRepository) GetCities(ctx context.Context) ([]string, error) {
	var cities []string
	err := r.db.WithContext(ctx).Model(&models.Hotel{}).
		Distinct("city").
		Pluck("city", &cities).Error
	return cities, err
}

// ExistsByName 检查酒店名称是否存在
func (r *HotelRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Hotel{}).
		Where("name = ?", name).
		Count(&count).Error
	return count > 0, err
}

// Delete 删除酒店
func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Hotel{}, id).Error
}

// AverageRatings 批量获取酒店的平均评分，无评价的酒店不出现在结果中
func (r *HotelRepository) AverageRatings(ctx context.Context, hotelIDs []int64) (map[int64]float64, error) {
	if len(hotelIDs) == 0 {
		return map[int64]float64{}, nil
	}

	type hotelAvg struct {
		HotelID int64
		Avg     float64
	}
	var results []hotelAvg

	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("hotel_id IN ?", hotelIDs).
		Select("hotel_id, AVG(rating) as avg").
		Group("hotel_id").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	averages := make(map[int64]float64, len(results))
	for _, row := range results {
		averages[row.HotelID] = row.Avg
	}
	return averages, nil
}

// ReviewCounts 批量获取酒店的评价数量
func (r *HotelRepository) ReviewCounts(ctx context.Context, hotelIDs []int64) (map[int64]int64, error) {
	if len(hotelIDs) == 0 {
		return map[int64]int64{}, nil
	}

	type hotelCount struct {
		HotelID int64
		Count   int64
	}
	var results []hotelCount

	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("hotel_id IN ?", hotelIDs).
		Select("hotel_id, COUNT(*) as count").
		Group("hotel_id").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int64]int64, len(results))
	for _, row := range results {
		counts[row.HotelID] = row.Count
	}
	return counts, nil
}
