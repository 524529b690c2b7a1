package handler

import (
	"Warbler/internal/pkg/consts"
	"Warbler/internal/pkg/response"
	"Warbler/internal/pkg/util"
	"Warbler/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	profileService service.ProfileService
	graphService   service.GraphService
}

func NewUserHandler(profileService service.ProfileService, graphService service.GraphService) *UserHandler {
	return &UserHandler{
		profileService: profileService,
		graphService:   graphService,
	}
}

// GetMe 当前用户主页，身份来自鉴权中间件
func (s *UserHandler) GetMe(c *gin.Context) {
	profile, err := s.profileService.AssembleProfile(
		c.Request.Context(),
		c.GetUint64(consts.CtxUserID),
		c.GetString(consts.CtxUserName),
	)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"user": profile})
}

func (s *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := util.ParseID(c.Param("user_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	profile, err := s.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"user": profile})
}

// GetFollowerCount 不存在的用户返回 0
func (s *UserHandler) GetFollowerCount(c *gin.Context) {
	userID, ok := util.ParseID(c.Param("user_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	count, err := s.graphService.GetFollowerCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"count": count})
}
