package model

import "time"

// Like 点赞，(tweet_id, user_id) 联合主键，同一用户对同一推文只能点赞一次。
// 补全推文时按 tweet_id 批量查询并按 created_at 排序
type Like struct {
	TweetID   uint64    `gorm:"primaryKey;autoIncrement:false;index:idx_likes_tweet_created,priority:1" json:"tweetId"`
	UserID    uint64    `gorm:"primaryKey;autoIncrement:false;index:idx_likes_user_id" json:"userId"`
	CreatedAt time.Time `gorm:"index:idx_likes_tweet_created,priority:2" json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}
