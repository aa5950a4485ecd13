// Package review 评价服务单元测试
package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/otelrez/hotel-reservation-backend/internal/common/errors"
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

func newTestService(t *testing.T) (*ReviewService, *gorm.DB, *models.User, *models.Hotel) {
	db := setupTestDB(t)
	svc := NewReviewService(db, repository.NewReviewRepository(db), repository.NewHotelRepository(db))

	user := &models.User{Email: "guest@example.com", FullName: "Guest", PasswordHash: "h", IsActive: true}
	require.NoError(t, db.Create(user).Error)

	hotel := &models.Hotel{Name: "测试酒店", City: "Antalya", Price: 100}
	require.NoError(t, db.Create(hotel).Error)

	return svc, db, user, hotel
}

// ==================== 创建测试 ====================

func TestReviewService_Create(t *testing.T) {
	svc, _, user, hotel := newTestService(t)
	ctx := context.Background()

	comment := "位置很好"
	info, err := svc.Create(ctx, user.ID, &CreateReviewRequest{
		HotelID: hotel.ID,
		Rating:  5,
		Comment: &comment,
	})
	require.NoError(t, err)
	assert.NotZero(t, info.ID)
	assert.Equal(t, user.ID, info.UserID)
	assert.Equal(t, hotel.ID, info.HotelID)
	assert.Equal(t, 5, info.Rating)
}

func TestReviewService_Create_HotelNotFound(t *testing.T) {
	svc, _, user, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, user.ID, &CreateReviewRequest{HotelID: 99999, Rating: 4})
	assert.ErrorIs(t, err, errors.ErrHotelNotFound)
}

func TestReviewService_Create_RatingOutOfRange(t *testing.T) {
	svc, _, user, hotel := newTestService(t)
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.Create(ctx, user.ID, &CreateReviewRequest{HotelID: hotel.ID, Rating: rating})
		assert.ErrorIs(t, err, errors.ErrRatingOutOfRange, "评分: %d", rating)
	}
}

// ==================== 更新测试 ====================

func TestReviewService_Update(t *testing.T) {
	svc, db, user, hotel := newTestService(t)
	ctx := context.Background()

	review := &models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 2}
	db.Create(review)

	comment := "换了房间后好多了"
	info, err := svc.Update(ctx, user.ID, review.ID, &UpdateReviewRequest{
		Rating:  4,
		Comment: &comment,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, info.Rating)
	require.NotNil(t, info.Comment)
	assert.Equal(t, "换了房间后好多了", *info.Comment)
}

func TestReviewService_Update_NotOwner(t *testing.T) {
	svc, db, user, hotel := newTestService(t)
	ctx := context.Background()

	other := &models.User{Email: "other@example.com", FullName: "Other", PasswordHash: "h", IsActive: true}
	db.Create(other)

	review := &models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 3}
	db.Create(review)

	// 非作者不能修改，管理员也不例外
	_, err := svc.Update(ctx, other.ID, review.ID, &UpdateReviewRequest{Rating: 1})
	assert.ErrorIs(t, err, errors.ErrNotReviewOwner)

	var stored models.Review
	db.First(&stored, review.ID)
	assert.Equal(t, 3, stored.Rating)
}

func TestReviewService_Update_NotFound(t *testing.T) {
	svc, _, user, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, user.ID, 99999, &UpdateReviewRequest{Rating: 3})
	assert.ErrorIs(t, err, errors.ErrReviewNotFound)
}

// ==================== 删除测试 ====================

func TestReviewService_Delete(t *testing.T) {
	svc, db, user, hotel := newTestService(t)
	ctx := context.Background()

	review := &models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 3}
	db.Create(review)

	err := svc.Delete(ctx, user.ID, review.ID)
	require.NoError(t, err)

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestReviewService_Delete_NotOwner(t *testing.T) {
	svc, db, user, hotel := newTestService(t)
	ctx := context.Background()

	other := &models.User{Email: "other@example.com", FullName: "Other", PasswordHash: "h", IsActive: true}
	db.Create(other)

	review := &models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 3}
	db.Create(review)

	err := svc.Delete(ctx, other.ID, review.ID)
	assert.ErrorIs(t, err, errors.ErrNotReviewOwner)
}

func TestReviewService_Delete_NotFound(t *testing.T) {
	svc, _, user, _ := newTestService(t)
	ctx := context.Background()

	err := svc.Delete(ctx, user.ID, 99999)
	assert.ErrorIs(t, err, errors.ErrReviewNotFound)
}

// ==================== 列表测试 ====================

func TestReviewService_ListByHotel(t *testing.T) {
	svc, db, user, hotel := newTestService(t)
	ctx := context.Background()

	other := &models.Hotel{Name: "另一家", City: "Izmir", Price: 90}
	db.Create(other)

	db.Create(&models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 4})
	db.Create(&models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 5})
	db.Create(&models.Review{HotelID: other.ID, UserID: user.ID, Rating: 3})

	list, total, err := svc.ListByHotel(ctx, hotel.ID, &ReviewListRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, 2, len(list))

	_, _, err = svc.ListByHotel(ctx, 99999, &ReviewListRequest{})
	assert.ErrorIs(t, err, errors.ErrHotelNotFound)
}

func TestReviewService_ListByUser(t *testing.T) {
	svc, db, user, hotel := newTestService(t)
	ctx := context.Background()

	other := &models.User{Email: "other@example.com", FullName: "Other", PasswordHash: "h", IsActive: true}
	db.Create(other)

	db.Create(&models.Review{HotelID: hotel.ID, UserID: user.ID, Rating: 4})
	db.Create(&models.Review{HotelID: hotel.ID, UserID: other.ID, Rating: 2})

	list, total, err := svc.ListByUser(ctx, user.ID, &ReviewListRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, user.ID, list[0].UserID)
}
