package convert

import (
	restTypes "github.com/voxelified/mellow-api/internal/rest/types"
	"github.com/voxelified/mellow-api/internal/roblox/fetcher"
)

// Group converts a fetched Roblox group to its REST API representation,
// attaching the group's icon when one was resolved.
func Group(group *fetcher.Group, icons map[uint64]string) *restTypes.Group {
	if group == nil {
		return nil
	}

	result := &restTypes.Group{
		ID:               group.ID,
		Name:             group.Name,
		MemberCount:      group.MemberCount,
		HasVerifiedBadge: group.HasVerifiedBadge,
	}

	if url, ok := icons[group.ID]; ok {
		result.Icon = &url
	}

	return result
}

// Groups converts fetched groups to REST API groups with icons merged in.
func Groups(groups []*fetcher.Group, icons map[uint64]string) []*restTypes.Group {
	result := make([]*restTypes.Group, 0, len(groups))
	for _, group := range groups {
		result = append(result, Group(group, icons))
	}

	return result
}

// GroupRole converts a fetched group role to its REST API representation.
func GroupRole(role *fetcher.GroupRole) *restTypes.GroupRole {
	if role == nil {
		return nil
	}

	return &restTypes.GroupRole{
		ID:          role.ID,
		Name:        role.Name,
		Rank:        role.Rank,
		MemberCount: role.MemberCount,
	}
}

// GroupRoles converts fetched group roles to REST API group roles.
func GroupRoles(roles []*fetcher.GroupRole) []*restTypes.GroupRole {
	result := make([]*restTypes.GroupRole, 0, len(roles))
	for _, role := range roles {
		result = append(result, GroupRole(role))
	}

	return result
}
