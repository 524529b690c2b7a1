package model

import (
	"time"
)

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(50);not null;uniqueIndex:idx_name"`
	ApiKey    string `gorm:"type:varchar(128);not null;uniqueIndex:idx_api_key"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string {
	return "users"
}
