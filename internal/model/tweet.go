package model

import (
	"time"

	"gorm.io/datatypes"
)

type Tweet struct {
	ID          uint64                      `gorm:"primaryKey" json:"id"`
	UserID      uint64                      `gorm:"not null;index:idx_user_id" json:"user_id"`
	Content     string                      `gorm:"type:text;not null" json:"content"`
	Attachments datatypes.JSONSlice[uint64] `json:"attachments"` // 媒体 ID，按顺序
	CreatedAt   time.Time                   `json:"created_at"`

	// 关联关系
	User User `gorm:"foreignKey:UserID;references:ID"`
}

func (Tweet) TableName() string {
	return "tweets"
}
