package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voxelified/mellow-api/internal/rest/convert"
	"github.com/voxelified/mellow-api/internal/roblox/fetcher"
)

func TestGroups(t *testing.T) {
	t.Parallel()

	groups := []*fetcher.Group{
		{ID: 1, Name: "First", MemberCount: 10},
		{ID: 2, Name: "Second", MemberCount: 20, HasVerifiedBadge: true},
		{ID: 3, Name: "Third"},
	}
	icons := map[uint64]string{
		1: "https://cdn.example.com/icon1.png",
		3: "https://cdn.example.com/icon3.png",
	}

	result := convert.Groups(groups, icons)
	require.Len(t, result, 3)

	require.NotNil(t, result[0].Icon)
	assert.Equal(t, "https://cdn.example.com/icon1.png", *result[0].Icon)
	assert.Equal(t, "First", result[0].Name)
	assert.Equal(t, uint64(10), result[0].MemberCount)

	// Groups without a resolved icon keep a nil icon rather than an empty URL.
	assert.Nil(t, result[1].Icon)
	assert.True(t, result[1].HasVerifiedBadge)

	require.NotNil(t, result[2].Icon)
	assert.Equal(t, "https://cdn.example.com/icon3.png", *result[2].Icon)
}

func TestGroupRoles(t *testing.T) {
	t.Parallel()

	roles := []*fetcher.GroupRole{
		{ID: 100, Name: "Guest", Rank: 0},
		{ID: 101, Name: "Owner", Rank: 255, MemberCount: 1},
	}

	result := convert.GroupRoles(roles)
	require.Len(t, result, 2)
	assert.Equal(t, "Guest", result[0].Name)
	assert.Equal(t, 0, result[0].Rank)
	assert.Equal(t, 255, result[1].Rank)
	assert.Equal(t, uint64(1), result[1].MemberCount)
}
