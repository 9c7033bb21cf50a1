package fetcher

// Group is one result of a group name lookup.
type Group struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	MemberCount      uint64 `json:"memberCount"`
	HasVerifiedBadge bool   `json:"hasVerifiedBadge"`
}

// GroupRole is one rank of a Roblox group.
type GroupRole struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Rank        int    `json:"rank"`
	MemberCount uint64 `json:"memberCount"`
}

type lookupGroupsResponse struct {
	Data []*Group `json:"data"`
}

type groupRolesResponse struct {
	GroupID uint64       `json:"groupId"`
	Roles   []*GroupRole `json:"roles"`
}

type groupIcon struct {
	TargetID uint64  `json:"targetId"`
	State    string  `json:"state"`
	ImageURL *string `json:"imageUrl"`
}

type groupIconsResponse struct {
	Data []*groupIcon `json:"data"`
}
