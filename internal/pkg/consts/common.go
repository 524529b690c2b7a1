package consts

const (
	MimePrefixImage = "image"
	MimePrefixVideo = "video"
)

const (
	// ApiKeyHeader 鉴权请求头
	ApiKeyHeader = "api-key"
	// CtxUserID 与 CtxUserName 为 gin.Context 中的当前用户
	CtxUserID   = "user_id"
	CtxUserName = "user_name"
)

// canal 消息类型
const (
	INSERT = "INSERT"
	UPDATE = "UPDATE"
	DELETE = "DELETE"
)
