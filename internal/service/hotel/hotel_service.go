// Package hotel 提供酒店服务
package hotel

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

// HotelService 酒店服务
type HotelService struct {
	db         *gorm.DB
	hotelRepo  *repository.HotelRepository
	reviewRepo *repository.ReviewRepository
}

// NewHotelService 创建酒店服务
func NewHotelService(
	db *gorm.DB,
	hotelRepo *repository.HotelRepository,
	reviewRepo *repository.ReviewRepository,
) *HotelService {
	return &HotelService{
		db:         db,
		hotelRepo:  hotelRepo,
		reviewRepo: reviewRepo,
	}
}

// HotelListRequest 酒店列表请求，入住/离店日期仅作占位暂不参与过滤
type HotelListRequest struct {
	Page       int      `form:"page" json:"page"`
	PageSize   int      `form:"page_size" json:"page_size"`
	City       string   `form:"city" json:"city"`
	IsNearSea  *bool    `form:"is_near_sea" json:"is_near_sea"`
	HasParking *bool    `form:"has_parking" json:"has_parking"`
	MaxPrice   *float64 `form:"max_price" json:"max_price"`
	CheckIn    string   `form:"check_in" json:"check_in"`
	CheckOut   string   `form:"check_out" json:"check_out"`
}

// CreateHotelRequest 创建酒店请求
type CreateHotelRequest struct {
	Name        string  `json:"name" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price" binding:"gte=0"`
	IsNearSea   bool    `json:"is_near_sea"`
	HasParking  bool    `json:"has_parking"`
}

// UpdateHotelRequest 更新酒店请求，整体替换
type UpdateHotelRequest struct {
	Name        string  `json:"name" binding:"required"`
	City        string  `json:"city" binding:"required"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price" binding:"gte=0"`
	IsNearSea   bool    `json:"is_near_sea"`
	HasParking  bool    `json:"has_parking"`
}

// HotelInfo 酒店信息
type HotelInfo struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	City          string    `json:"city"`
	Description   *string   `json:"description,omitempty"`
	Price         float64   `json:"price"`
	IsNearSea     bool      `json:"is_near_sea"`
	HasParking    bool      `json:"has_parking"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func toHotelInfo(hotel *models.Hotel, avgRating float64, reviewCount int64) *HotelInfo {
	return &HotelInfo{
		ID:            hotel.ID,
		Name:          hotel.Name,
		City:          hotel.City,
		Description:   hotel.Description,
		Price:         hotel.Price,
		IsNearSea:     hotel.IsNearSea,
		HasParking:    hotel.HasParking,
		AverageRating: utils.Round1(avgRating),
		ReviewCount:   reviewCount,
		CreatedAt:     hotel.CreatedAt,
	}
}

// List 获取酒店列表，平均评分保留一位小数
// 未显式传分页参数时返回全部匹配结果
func (s *HotelService) List(ctx context.Context, req *HotelListRequest) ([]*HotelInfo, int64, error) {
	offset, limit := 0, -1
	if req.Page > 0 || req.PageSize > 0 {
		p := utils.Pagination{Page: req.Page, PageSize: req.PageSize}
		p.Normalize()
		offset, limit = p.GetOffset(), p.GetLimit()
	}

	filter := repository.HotelFilter{
		City:       req.City,
		IsNearSea:  req.IsNearSea,
		HasParking: req.HasParking,
		MaxPrice:   req.MaxPrice,
	}

	hotels, total, err := s.hotelRepo.List(ctx, offset, limit, filter)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}

	// 一次分组查询取回当前页所有酒店的平均分
	ids := make([]int64, 0, len(hotels))
	for _, h := range hotels {
		ids = append(ids, h.ID)
	}
	averages, err := s.hotelRepo.AverageRatings(ctx, ids)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}
	counts, err := s.hotelRepo.ReviewCounts(ctx, ids)
	if err != nil {
		return nil, 0, errors.ErrDatabaseError.WithError(err)
	}

	infos := make([]*HotelInfo, 0, len(hotels))
	for _, h := range hotels {
		infos = append(infos, toHotelInfo(h, averages[h.ID], counts[h.ID]))
	}
	return infos, total, nil
}

// GetDetail 获取酒店详情
func (s *HotelService) GetDetail(ctx context.Context, id int64) (*HotelInfo, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrHotelNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	avg, err := s.reviewRepo.GetAverageRatingByHotelID(ctx, id)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	count, err := s.reviewRepo.CountByHotelID(ctx, id)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	return toHotelInfo(hotel, avg, count), nil
}

// Create 创建酒店（管理员）
func (s *HotelService) Create(ctx context.Context, req *CreateHotelRequest) (*HotelInfo, error) {
	hotel := &models.Hotel{
		Name:        req.Name,
		City:        req.City,
		Description: req.Description,
		Price:       req.Price,
		IsNearSea:   req.IsNearSea,
		HasParking:  req.HasParking,
	}

	if err := s.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	metrics.RecordHotelGlobal("create")
	logger.Info("创建酒店", logger.HotelID(hotel.ID), zap.String("name", hotel.Name))

	return toHotelInfo(hotel, 0, 0), nil
}

// Update 更新酒店，请求体整体替换现有字段
func (s *HotelService) Update(ctx context.Context, id int64, req *UpdateHotelRequest) (*HotelInfo, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrHotelNotFound
		}
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	hotel.Name = req.Name
	hotel.City = req.City
	hotel.Description = req.Description
	hotel.Price = req.Price
	hotel.IsNearSea = req.IsNearSea
	hotel.HasParking = req.HasParking

	if err := s.hotelRepo.Update(ctx, hotel); err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	metrics.RecordHotelGlobal("update")
	logger.Info("更新酒店", logger.HotelID(hotel.ID))

	avg, err := s.reviewRepo.GetAverageRatingByHotelID(ctx, id)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}
	count, err := s.reviewRepo.CountByHotelID(ctx, id)
	if err != nil {
		return nil, errors.ErrDatabaseError.WithError(err)
	}

	return toHotelInfo(hotel, avg, count), nil
}

// Delete 删除酒店，酒店下的评价在同一事务内级联删除
func (s *HotelService) Delete(ctx context.Context, id int64) error {
	if _, err := s.hotelRepo.GetByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrHotelNotFound
		}
		return errors.ErrDatabaseError.WithError(err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.reviewRepo.WithTx(tx).DeleteByHotelID(ctx, id); err != nil {
			return err
		}
		return s.hotelRepo.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		return errors.ErrDatabaseError.WithError(err)
	}

	metrics.RecordHotelGlobal("delete")
	logger.Info("删除酒店", logger.HotelID(id))

	return nil
}
