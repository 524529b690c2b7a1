package service

import (
	"Warbler/internal/api/dto"
	"Warbler/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestEnrichTweet_PositionalAttachments(t *testing.T) {
	src := &enrichSource{
		users: map[uint64]*model.User{1: {ID: 1, Name: "alice"}},
		likes: map[uint64][]*model.Like{},
		medias: map[uint64]*model.Media{
			5: {ID: 5, Path: "/img/5.png"},
			7: {ID: 7, Path: "/img/7.png"},
		},
	}
	tw := &model.Tweet{ID: 3, UserID: 1, Content: "pics", Attachments: []uint64{5, 6, 7}}

	out := enrichTweet(context.Background(), tw, src)
	assert.Equal(t, []*string{strPtr("/img/5.png"), nil, strPtr("/img/7.png")}, out.Attachments)
	assert.Equal(t, &dto.UserBriefDTO{ID: 1, Name: "alice"}, out.Author)
	assert.Empty(t, out.Likes)
}

func TestEnrichTweet_SkipsDeletedLikers(t *testing.T) {
	src := &enrichSource{
		users: map[uint64]*model.User{1: {ID: 1, Name: "alice"}, 8: {ID: 8, Name: "eight"}},
		likes: map[uint64][]*model.Like{
			3: {{TweetID: 3, UserID: 7}, {TweetID: 3, UserID: 8}},
		},
		medias: map[uint64]*model.Media{},
	}
	tw := &model.Tweet{ID: 3, UserID: 1, Content: "x"}

	out := enrichTweet(context.Background(), tw, src)
	assert.Equal(t, []*dto.LikeDTO{{UserID: 8, Name: "eight"}}, out.Likes)
	assert.NotNil(t, out.Attachments)
	assert.Empty(t, out.Attachments)
}

func TestEnrichOne_MissingMediaIsNull(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "author")
	m := &model.Media{UserID: author.ID, Path: "/img/5.png", ObjectKey: "5.png", FileType: "image/png"}
	require.NoError(t, e.mediaRepo.CreateMedia(e.ctx, m))

	tw := e.tweet(t, author, "two pics", m.ID, m.ID+1)

	out, err := e.enrich.EnrichOne(e.ctx, tw.ID)
	require.NoError(t, err)
	assert.Equal(t, []*string{strPtr("/img/5.png"), nil}, out.Attachments)
}

func TestEnrichOne_LikesInStoreOrderWithoutDuplicates(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "author")
	seven := e.user(t, "seven")
	eight := e.user(t, "eight")
	tw := e.tweet(t, author, "like me")

	e.like(t, seven, tw)
	e.like(t, eight, tw)
	assert.ErrorIs(t, e.actions.LikeTweet(e.ctx, seven.ID, tw.ID), ErrLikeExist)

	out, err := e.enrich.EnrichOne(e.ctx, tw.ID)
	require.NoError(t, err)
	assert.Equal(t, []*dto.LikeDTO{
		{UserID: seven.ID, Name: "seven"},
		{UserID: eight.ID, Name: "eight"},
	}, out.Likes)
}

func TestEnrichOne_NotFound(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.enrich.EnrichOne(e.ctx, 77)
	assert.ErrorIs(t, err, ErrTweetNotFound)
}

func TestEnrich_Empty(t *testing.T) {
	e := newTestEnv(t)
	out, err := e.enrich.Enrich(e.ctx, nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
