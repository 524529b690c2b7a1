package dto

// TweetCreateDTO 发布推文
type TweetCreateDTO struct {
	TweetData     string   `json:"tweet_data" validate:"min=1,max=280"`
	TweetMediaIds []uint64 `json:"tweet_media_ids" validate:"max=10"`
}

// TweetDTO 经过补全的推文，attachments 与媒体 ID 按位置一一对应，未找到的媒体为 null
type TweetDTO struct {
	ID          uint64        `json:"id"`
	Content     string        `json:"content"`
	Attachments []*string     `json:"attachments"`
	Author      *UserBriefDTO `json:"author"`
	Likes       []*LikeDTO    `json:"likes"`
}

// LikeDTO 点赞用户
type LikeDTO struct {
	UserID uint64 `json:"user_id"`
	Name   string `json:"name"`
}
