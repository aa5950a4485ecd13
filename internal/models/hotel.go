// Package models 定义数据模型
package models

import (
	"time"
)

// Hotel 酒店模型
type Hotel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	City        string    `gorm:"type:varchar(50);not null;index" json:"city"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	Price       float64   `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	IsNearSea   bool      `gorm:"not null;default:false" json:"is_near_sea"`
	HasParking  bool      `gorm:"not null;default:false" json:"has_parking"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Reviews []Review `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// TableName 表名
func (Hotel) TableName() string {
	return "hotels"
}
