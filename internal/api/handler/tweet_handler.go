package handler

import (
	"Warbler/internal/api/dto"
	"Warbler/internal/pkg/consts"
	"Warbler/internal/pkg/response"
	"Warbler/internal/pkg/util"
	"Warbler/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TweetHandler struct {
	feedService   service.FeedService
	enrichService service.TweetEnrichService
	tweetService  service.TweetService
}

func NewTweetHandler(
	feedService service.FeedService,
	enrichService service.TweetEnrichService,
	tweetService service.TweetService,
) *TweetHandler {
	return &TweetHandler{
		feedService:   feedService,
		enrichService: enrichService,
		tweetService:  tweetService,
	}
}

// GetFeed 全站 Feed
func (s *TweetHandler) GetFeed(c *gin.Context) {
	tweets, err := s.feedService.AssembleFeed(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"tweets": tweets})
}

func (s *TweetHandler) GetTweet(c *gin.Context) {
	tweetID, ok := util.ParseID(c.Param("tweet_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	tweet, err := s.enrichService.EnrichOne(c.Request.Context(), tweetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"tweet": tweet})
}

func (s *TweetHandler) CreateTweet(c *gin.Context) {
	var req dto.TweetCreateDTO
	if !response.BindJSON(c, &req) {
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, service.ErrorTypes[service.ErrParamInvalid], err.Error())
		return
	}

	userID := c.GetUint64(consts.CtxUserID)
	tweetID, err := s.tweetService.CreateTweet(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"tweet_id": tweetID})
}

func (s *TweetHandler) DeleteTweet(c *gin.Context) {
	tweetID, ok := util.ParseID(c.Param("tweet_id"))
	if !ok {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	userID := c.GetUint64(consts.CtxUserID)
	if err := s.tweetService.DeleteTweet(c.Request.Context(), userID, tweetID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
