package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/jaxron/roapi.go/pkg/api"
	"go.uber.org/zap"
)

const groupsAPIURL = "https://groups.roblox.com/v1"

// GroupFetcher handles read-only group lookups against the public Roblox API.
type GroupFetcher struct {
	roAPI  *api.API
	logger *zap.Logger
}

// NewGroupFetcher creates a GroupFetcher with the provided API client and logger.
func NewGroupFetcher(roAPI *api.API, logger *zap.Logger) *GroupFetcher {
	return &GroupFetcher{
		roAPI:  roAPI,
		logger: logger.Named("group_fetcher"),
	}
}

// LookupGroups searches groups by exact name match.
func (g *GroupFetcher) LookupGroups(ctx context.Context, query string) ([]*Group, error) {
	resp, err := g.roAPI.GetClient().NewRequest().
		Method(http.MethodGet).
		URL(groupsAPIURL + "/groups/search/lookup").
		Query("groupName", query).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up groups: %w", err)
	}
	defer resp.Body.Close()

	var result lookupGroupsResponse
	if err := decodeBody(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode group lookup response: %w", err)
	}

	g.logger.Debug("Looked up groups",
		zap.String("query", query),
		zap.Int("results", len(result.Data)))

	return result.Data, nil
}

// GetGroupRoles retrieves the rank list of a group, lowest rank first.
func (g *GroupFetcher) GetGroupRoles(ctx context.Context, groupID uint64) ([]*GroupRole, error) {
	resp, err := g.roAPI.GetClient().NewRequest().
		Method(http.MethodGet).
		URL(fmt.Sprintf("%s/groups/%s/roles", groupsAPIURL, strconv.FormatUint(groupID, 10))).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get group roles: %w", err)
	}
	defer resp.Body.Close()

	var result groupRolesResponse
	if err := decodeBody(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode group roles response: %w", err)
	}

	g.logger.Debug("Fetched group roles",
		zap.Uint64("groupID", groupID),
		zap.Int("roles", len(result.Roles)))

	return result.Roles, nil
}

// decodeBody reads and unmarshals a response body.
func decodeBody(body io.Reader, v any) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	return sonic.Unmarshal(data, v)
}
