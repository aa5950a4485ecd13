// Package models 定义数据模型
package models

import (
	"time"
)

// Review 评价模型
type Review struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	HotelID   int64     `gorm:"index;not null" json:"hotel_id"`
	UserID    int64     `gorm:"index;not null" json:"user_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   *string   `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Hotel *Hotel `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	User  *User  `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName 表名
func (Review) TableName() string {
	return "reviews"
}
