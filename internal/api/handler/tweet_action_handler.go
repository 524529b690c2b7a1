package handler

import (
	"Warbler/internal/pkg/consts"
	"Warbler/internal/pkg/response"
	"Warbler/internal/pkg/util"
	"Warbler/internal/service"

	"github.com/gin-gonic/gin"
)

type TweetActionHandler struct {
	tweetActionService service.TweetActionService
}

func NewTweetActionHandler(tweetActionService service.TweetActionService) *TweetActionHandler {
	return &TweetActionHandler{tweetActionService: tweetActionService}
}

func (s *TweetActionHandler) LikeTweet(c *gin.Context) {
	tweetID, ok := util.ParseID(c.Param("tweet_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.tweetActionService.LikeTweet(c.Request.Context(), c.GetUint64(consts.CtxUserID), tweetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TweetActionHandler) UnlikeTweet(c *gin.Context) {
	tweetID, ok := util.ParseID(c.Param("tweet_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	err := s.tweetActionService.UnlikeTweet(c.Request.Context(), c.GetUint64(consts.CtxUserID), tweetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
