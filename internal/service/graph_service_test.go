package service

import (
	"Warbler/internal/api/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFollowerCount_TracksEdges(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "u")
	v := e.user(t, "v")
	w := e.user(t, "w")

	count, err := e.graph.GetFollowerCount(e.ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	e.follow(t, v, u)
	count, err = e.graph.GetFollowerCount(e.ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	e.follow(t, w, u)
	count, err = e.graph.GetFollowerCount(e.ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestGetFollowerCount_UnknownUser(t *testing.T) {
	e := newTestEnv(t)

	count, err := e.graph.GetFollowerCount(e.ctx, 404)
	require.NoError(t, err)
	assert.Zero(t, count)

	followers, err := e.graph.GetFollowers(e.ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, followers)

	following, err := e.graph.GetFollowing(e.ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, following)
}

func TestFollowThenUnfollow_RestoresProfile(t *testing.T) {
	e := newTestEnv(t)
	u1 := e.user(t, "one")
	u2 := e.user(t, "two")

	before, err := e.graph.GetFollowerCount(e.ctx, u2.ID)
	require.NoError(t, err)

	e.follow(t, u1, u2)
	profile, err := e.profile.AssembleProfile(e.ctx, u2.ID, u2.Name)
	require.NoError(t, err)
	assert.Equal(t, []*dto.UserBriefDTO{{ID: u1.ID, Name: "one"}}, profile.Followers)

	require.NoError(t, e.follows.Unfollow(e.ctx, u1.ID, u2.ID))

	after, err := e.graph.GetFollowerCount(e.ctx, u2.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	profile, err = e.profile.AssembleProfile(e.ctx, u2.ID, u2.Name)
	require.NoError(t, err)
	assert.Empty(t, profile.Followers)
}

func TestGetFollowers_SkipsDanglingEdges(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "u")
	gone := e.user(t, "gone")
	kept := e.user(t, "kept")
	e.follow(t, gone, u)
	e.follow(t, kept, u)

	require.NoError(t, e.db.Delete(gone).Error)

	followers, err := e.graph.GetFollowers(e.ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []*dto.UserBriefDTO{{ID: kept.ID, Name: "kept"}}, followers)
}

func TestAssembleProfile_FollowersAndFollowing(t *testing.T) {
	e := newTestEnv(t)
	me := e.user(t, "me")
	a := e.user(t, "a")
	b := e.user(t, "b")
	e.follow(t, a, me)
	e.follow(t, me, b)
	e.follow(t, me, a)

	profile, err := e.profile.AssembleProfile(e.ctx, me.ID, "me")
	require.NoError(t, err)

	assert.Equal(t, me.ID, profile.ID)
	assert.Equal(t, "me", profile.Name)
	assert.Equal(t, []*dto.UserBriefDTO{{ID: a.ID, Name: "a"}}, profile.Followers)
	assert.Equal(t, []*dto.UserBriefDTO{{ID: b.ID, Name: "b"}, {ID: a.ID, Name: "a"}}, profile.Following)
}

func TestGetProfile_UnknownUser(t *testing.T) {
	e := newTestEnv(t)
	_, err := e.profile.GetProfile(e.ctx, 12345)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFollow_SelfAllowedAndDuplicateRejected(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "narcissus")
	other := e.user(t, "other")

	require.NoError(t, e.follows.Follow(e.ctx, u.ID, u.ID))
	count, err := e.graph.GetFollowerCount(e.ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, e.follows.Follow(e.ctx, other.ID, u.ID))
	assert.ErrorIs(t, e.follows.Follow(e.ctx, other.ID, u.ID), ErrUserFollowExist)
	assert.ErrorIs(t, e.follows.Follow(e.ctx, other.ID, 999), ErrUserNotFound)

	// 重复取消关注不报错
	require.NoError(t, e.follows.Unfollow(e.ctx, other.ID, u.ID))
	require.NoError(t, e.follows.Unfollow(e.ctx, other.ID, u.ID))
}
