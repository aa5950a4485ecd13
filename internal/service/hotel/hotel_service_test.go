// Package hotel 酒店服务单元测试
package hotel

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/otelrez/hotel-reservation-backend/internal/common/errors"
	"github.com/otelrez/hotel-reservation-backend/internal/common/utils"
	"github.com/otelrez/hotel-reservation-backend/internal/models"
	"github.com/otelrez/hotel-reservation-backend/internal/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Hotel{}, &models.Review{})
	require.NoError(t, err)

	return db
}

func newTestService(t *testing.T) (*HotelService, *gorm.DB) {
	db := setupTestDB(t)
	svc := NewHotelService(db, repository.NewHotelRepository(db), repository.NewReviewRepository(db))
	return svc, db
}

func createReviewer(t *testing.T, db *gorm.DB) *models.User {
	user := &models.User{Email: "guest@example.com", FullName: "Guest", PasswordHash: "h", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	return user
}

// ==================== 列表测试 ====================

func TestHotelService_List(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	db.Create(&models.Hotel{Name: "Sea Breeze", City: "Antalya", Price: 150, IsNearSea: true, HasParking: true})
	db.Create(&models.Hotel{Name: "City Inn", City: "Istanbul", Price: 90})
	db.Create(&models.Hotel{Name: "Harbor View", City: "antalya", Price: 200, IsNearSea: true})

	t.Run("无过滤条件", func(t *testing.T) {
		list, total, err := svc.List(ctx, &HotelListRequest{})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Equal(t, 3, len(list))
	})

	t.Run("城市子串匹配不区分大小写", func(t *testing.T) {
		_, total, err := svc.List(ctx, &HotelListRequest{City: "ANTAL"})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("组合过滤", func(t *testing.T) {
		list, total, err := svc.List(ctx, &HotelListRequest{
			IsNearSea: utils.BoolPtr(true),
			MaxPrice:  utils.Float64Ptr(150),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Sea Breeze", list[0].Name)
	})

	t.Run("入住离店日期不影响结果", func(t *testing.T) {
		_, total, err := svc.List(ctx, &HotelListRequest{
			CheckIn:  "2026-09-01",
			CheckOut: "2026-09-05",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})
}

func TestHotelService_List_NoPaginationReturnsAll(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		db.Create(&models.Hotel{Name: fmt.Sprintf("Hotel %02d", i), City: "Antalya", Price: 100})
	}

	// 未传分页参数时返回全部匹配结果
	list, total, err := svc.List(ctx, &HotelListRequest{City: "antalya"})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Equal(t, 25, len(list))

	// 显式分页仍然生效
	list, total, err = svc.List(ctx, &HotelListRequest{City: "antalya", Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Equal(t, 10, len(list))
	assert.Equal(t, "Hotel 10", list[0].Name)
}

func TestHotelService_List_AverageRating(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	user := createReviewer(t, db)
	hotel := &models.Hotel{Name: "Rated", City: "Bodrum", Price: 100}
	db.Create(hotel)
	noReviews := &models.Hotel{Name: "Fresh", City: "Bodrum", Price: 100}
	db.Create(noReviews)

	// 4, 5, 5 → 4.666... → 4.7
	db.Create(&models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 4})
	db.Create(&models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 5})
	db.Create(&models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 5})

	list, _, err := svc.List(ctx, &HotelListRequest{City: "Bodrum"})
	require.NoError(t, err)
	require.Equal(t, 2, len(list))

	byName := map[string]*HotelInfo{}
	for _, h := range list {
		byName[h.Name] = h
	}

	assert.Equal(t, 4.7, byName["Rated"].AverageRating) // 保留一位小数
	assert.Equal(t, int64(3), byName["Rated"].ReviewCount)
	assert.Equal(t, 0.0, byName["Fresh"].AverageRating) // 无评价时为 0
	assert.Equal(t, int64(0), byName["Fresh"].ReviewCount)
}

// ==================== 详情测试 ====================

func TestHotelService_GetDetail(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	user := createReviewer(t, db)
	hotel := &models.Hotel{Name: "Detail", City: "Izmir", Price: 120}
	db.Create(hotel)
	db.Create(&models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 3})
	db.Create(&models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 4})

	info, err := svc.GetDetail(ctx, hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, "Detail", info.Name)
	assert.Equal(t, 3.5, info.AverageRating)
	assert.Equal(t, int64(2), info.ReviewCount)
}

func TestHotelService_GetDetail_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.GetDetail(ctx, 99999)
	assert.ErrorIs(t, err, errors.ErrHotelNotFound)
}

// ==================== 增删改测试 ====================

func TestHotelService_Create(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	desc := "海边度假酒店"
	info, err := svc.Create(ctx, &CreateHotelRequest{
		Name:        "New Hotel",
		City:        "Antalya",
		Description: &desc,
		Price:       180,
		IsNearSea:   true,
	})
	require.NoError(t, err)
	assert.NotZero(t, info.ID)
	assert.Equal(t, 0.0, info.AverageRating)

	var stored models.Hotel
	db.First(&stored, info.ID)
	assert.Equal(t, "New Hotel", stored.Name)
	assert.True(t, stored.IsNearSea)
}

func TestHotelService_Update(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	desc := "旧描述"
	hotel := &models.Hotel{Name: "Old", City: "Izmir", Description: &desc, Price: 100, HasParking: true}
	db.Create(hotel)

	// 整体替换：未提供的描述字段被清空
	info, err := svc.Update(ctx, hotel.ID, &UpdateHotelRequest{
		Name:  "Renamed",
		City:  "Ankara",
		Price: 130,
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", info.Name)
	assert.Equal(t, "Ankara", info.City)
	assert.False(t, info.HasParking)
	assert.Nil(t, info.Description)

	var stored models.Hotel
	db.First(&stored, hotel.ID)
	assert.Equal(t, "Renamed", stored.Name)
	assert.Nil(t, stored.Description)
}

func TestHotelService_Update_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, 99999, &UpdateHotelRequest{Name: "X", City: "Y", Price: 1})
	assert.ErrorIs(t, err, errors.ErrHotelNotFound)
}

func TestHotelService_Delete_CascadesReviews(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	user := createReviewer(t, db)
	hotel := &models.Hotel{Name: "Doomed", City: "Bodrum", Price: 100}
	db.Create(hotel)
	keep := &models.Hotel{Name: "Keep", City: "Bodrum", Price: 100}
	db.Create(keep)

	db.Create(&models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 4})
	db.Create(&models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 5})
	db.Create(&models.Review{HotelID: keep.ID, UserID: user.ID, Rating: 3})

	err := svc.Delete(ctx, hotel.ID)
	require.NoError(t, err)

	var hotelCount, reviewCount int64
	db.Model(&models.Hotel{}).Count(&hotelCount)
	db.Model(&models.Review{}).Count(&reviewCount)
	assert.Equal(t, int64(1), hotelCount)
	assert.Equal(t, int64(1), reviewCount) // 其他酒店的评价不受影响
}

func TestHotelService_Delete_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	err := svc.Delete(ctx, 99999)
	assert.ErrorIs(t, err, errors.ErrHotelNotFound)
}
