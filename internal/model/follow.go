package model

import "time"

type Follow struct {
	FollowerID uint64    `gorm:"primaryKey" json:"followerId"`
	FollowedID uint64    `gorm:"primaryKey;index:idx_followed_id" json:"followedId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Follow) TableName() string {
	return "followers"
}
