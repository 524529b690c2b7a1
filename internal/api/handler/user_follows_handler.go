package handler

import (
	"Warbler/internal/pkg/consts"
	"Warbler/internal/pkg/response"
	"Warbler/internal/pkg/util"
	"Warbler/internal/service"

	"github.com/gin-gonic/gin"
)

type UserFollowHandler struct {
	followService service.FollowService
}

func NewUserFollowHandler(followService service.FollowService) *UserFollowHandler {
	return &UserFollowHandler{followService: followService}
}

func (s *UserFollowHandler) Follow(c *gin.Context) {
	followedID, ok := util.ParseID(c.Param("user_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.followService.Follow(c.Request.Context(), c.GetUint64(consts.CtxUserID), followedID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserFollowHandler) Unfollow(c *gin.Context) {
	followedID, ok := util.ParseID(c.Param("user_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.followService.Unfollow(c.Request.Context(), c.GetUint64(consts.CtxUserID), followedID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
