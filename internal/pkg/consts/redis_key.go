package consts

// 缓存值写在带版本号的键下，写操作只递增版本号，旧版本的键随 TTL 过期
const (
	FeedKey                = "feed:all:"
	FeedVersionKey         = "feed:ver"
	UserFollowerCountKey   = "user:follower:count:"
	UserFollowerVersionKey = "user:follower:ver:"
)
