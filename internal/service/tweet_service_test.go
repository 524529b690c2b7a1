package service

import (
	"Warbler/internal/api/dto"
	"Warbler/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTweet_KeepsMediaIdsVerbatim(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "writer")

	id, err := e.tweets.CreateTweet(e.ctx, u.ID, &dto.TweetCreateDTO{
		TweetData:     "hello",
		TweetMediaIds: []uint64{42, 7},
	})
	require.NoError(t, err)

	stored, err := e.tweetRepo.GetTweet(e.ctx, id)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, u.ID, stored.UserID)
	assert.Equal(t, "hello", stored.Content)
	assert.Equal(t, []uint64{42, 7}, []uint64(stored.Attachments))
}

func TestDeleteTweet_OwnOnlyAndCascadesLikes(t *testing.T) {
	e := newTestEnv(t)
	owner := e.user(t, "owner")
	other := e.user(t, "other")
	tw := e.tweet(t, owner, "bye")
	e.like(t, other, tw)

	assert.ErrorIs(t, e.tweets.DeleteTweet(e.ctx, other.ID, tw.ID), ErrTweetNotFound)
	assert.ErrorIs(t, e.tweets.DeleteTweet(e.ctx, owner.ID, tw.ID+100), ErrTweetNotFound)

	require.NoError(t, e.tweets.DeleteTweet(e.ctx, owner.ID, tw.ID))

	stored, err := e.tweetRepo.GetTweet(e.ctx, tw.ID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	var likes int64
	require.NoError(t, e.db.Model(&model.Like{}).Where("tweet_id = ?", tw.ID).Count(&likes).Error)
	assert.Zero(t, likes)
}

func TestLikeTweet_UnknownTweet(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "u")
	assert.ErrorIs(t, e.actions.LikeTweet(e.ctx, u.ID, 999), ErrTweetNotFound)
}

func TestUnlikeTweet_Idempotent(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "u")
	tw := e.tweet(t, u, "x")
	e.like(t, u, tw)

	require.NoError(t, e.actions.UnlikeTweet(e.ctx, u.ID, tw.ID))
	require.NoError(t, e.actions.UnlikeTweet(e.ctx, u.ID, tw.ID))

	out, err := e.enrich.EnrichOne(e.ctx, tw.ID)
	require.NoError(t, err)
	assert.Empty(t, out.Likes)

	// 取消后可以重新点赞
	e.like(t, u, tw)
}

func TestSeedUsers_SkipsExisting(t *testing.T) {
	e := newTestEnv(t)
	users := NewUserService(e.userRepo)

	created, err := users.SeedUsers(e.ctx, DefaultSeedUsers())
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	created, err = users.SeedUsers(e.ctx, DefaultSeedUsers())
	require.NoError(t, err)
	assert.Zero(t, created)

	u, err := users.GetUserByApiKey(e.ctx, "test")
	require.NoError(t, err)
	assert.Equal(t, "test_user", u.Name)

	_, err = users.GetUserByApiKey(e.ctx, "nope")
	assert.ErrorIs(t, err, ErrApiKeyInvalid)
	_, err = users.GetUserByApiKey(e.ctx, "")
	assert.ErrorIs(t, err, ErrApiKeyMissing)
}
