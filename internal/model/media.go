package model

import (
	"time"
)

type Media struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	UserID    uint64    `gorm:"not null;index:idx_media_user_id" json:"user_id"`
	Path      string    `gorm:"type:varchar(512);not null" json:"path"`
	ObjectKey string    `gorm:"type:varchar(512);not null" json:"object_key"`
	FileType  string    `gorm:"type:varchar(64);not null" json:"file_type"` // e.g., image/jpeg, video/mp4
	Size      int64     `gorm:"not null;default:0" json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func (Media) TableName() string {
	return "medias"
}
