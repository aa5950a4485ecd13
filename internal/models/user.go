// Package models 定义数据模型
package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	FullName     string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Phone        *string   `gorm:"type:varchar(20)" json:"phone,omitempty"`
	PasswordHash string    `gorm:"type:varchar(100);not null" json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// 关联
	Reviews []Review `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
}

// TableName 表名
func (User) TableName() string {
	return "users"
}
