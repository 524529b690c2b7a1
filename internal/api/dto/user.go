package dto

// UserBriefDTO 用户身份，用于作者、粉丝、关注列表
type UserBriefDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// UserProfileDTO 用户主页
type UserProfileDTO struct {
	ID        uint64          `json:"id"`
	Name      string          `json:"name"`
	Followers []*UserBriefDTO `json:"followers"`
	Following []*UserBriefDTO `json:"following"`
}
