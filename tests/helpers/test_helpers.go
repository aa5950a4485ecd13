// Package helpers 提供测试辅助工具
package helpers

import (
	"fmt"
	"math/rand"

	"golang.org/x/crypto/bcrypt"

	"github.com/otelrez/hotel-reservation-backend/internal/models"
)

// RandomString 生成随机字符串
func RandomString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// RandomEmail 生成随机邮箱
func RandomEmail() string {
	return fmt.Sprintf("%s@example.com", RandomString(10))
}

// RandomInt 生成随机整数
func RandomInt(min, max int) int {
	return rand.Intn(max-min+1) + min
}

// RandomFloat 生成随机浮点数
func RandomFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

// HashTestPassword 用最低成本哈希测试密码
func HashTestPassword(password string) string {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return string(hash)
}

// NewTestUser 创建测试用户
func NewTestUser() *models.User {
	return &models.User{
		Email:        RandomEmail(),
		FullName:     "测试用户" + RandomString(4),
		PasswordHash: HashTestPassword("secret123"),
		IsActive:     true,
	}
}

// NewTestAdmin 创建测试管理员
func NewTestAdmin() *models.User {
	user := NewTestUser()
	user.IsAdmin = true
	return user
}

// NewTestHotel 创建测试酒店
func NewTestHotel() *models.Hotel {
	return &models.Hotel{
		Name:       "测试酒店" + RandomString(4),
		City:       "Antalya",
		Price:      RandomFloat(50, 300),
		IsNearSea:  RandomInt(0, 1) == 1,
		HasParking: RandomInt(0, 1) == 1,
	}
}

// NewTestReview 创建测试评价
func NewTestReview(hotelID, userID int64) *models.Review {
	comment := "自动生成的测试评价"
	return &models.Review{
		HotelID: hotelID,
		UserID:  userID,
		Rating:  RandomInt(1, 5),
		Comment: &comment,
	}
}
