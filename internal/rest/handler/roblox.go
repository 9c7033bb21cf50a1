package handler

import (
	"net/http"
	"strconv"

	"github.com/jaxron/roapi.go/pkg/api"
	"github.com/uptrace/bunrouter"
	"github.com/voxelified/mellow-api/internal/rest/convert"
	restTypes "github.com/voxelified/mellow-api/internal/rest/types"
	"github.com/voxelified/mellow-api/internal/roblox/fetcher"
	"go.uber.org/zap"
)

// RobloxHandler proxies read-only Roblox group endpoints for server members.
type RobloxHandler struct {
	groups     *fetcher.GroupFetcher
	thumbnails *fetcher.ThumbnailFetcher
	guard      MembershipVerifier
	logger     *zap.Logger
}

// NewRobloxHandler creates a new Roblox proxy handler.
func NewRobloxHandler(roAPI *api.API, guard MembershipVerifier, logger *zap.Logger) *RobloxHandler {
	return &RobloxHandler{
		groups:     fetcher.NewGroupFetcher(roAPI, logger),
		thumbnails: fetcher.NewThumbnailFetcher(roAPI, logger),
		guard:      guard,
		logger:     logger.Named("roblox_handler"),
	}
}

// SearchGroups godoc
//
//	@Summary		Search Roblox groups
//	@Description	Looks up Roblox groups by name and merges in their icons
//	@Tags			roblox
//	@Produce		json
//	@Param			serverID	path		string	true	"Discord server ID"
//	@Param			query		query		string	true	"Group name to search for"
//	@Success		200			{object}	types.SearchGroupsResponse
//	@Failure		401			{object}	types.ErrorResponse
//	@Failure		403			{object}	types.ErrorResponse
//	@Failure		500			{object}	types.ErrorResponse
//	@Security		BearerAuth
//	@Router			/servers/{serverID}/roblox/group-lookup [get]
func (h *RobloxHandler) SearchGroups(w http.ResponseWriter, req bunrouter.Request) error {
	_, _, ok := authorizeServer(w, req, h.guard)
	if !ok {
		return nil
	}

	query := req.URL.Query().Get("query")
	if query == "" {
		return restTypes.WriteError(w, http.StatusBadRequest, restTypes.ErrorInvalidBody, nil)
	}

	groups, err := h.groups.LookupGroups(req.Context(), query)
	if err != nil {
		h.logger.Error("Failed to look up groups", zap.String("query", query), zap.Error(err))
		return restTypes.WriteError(w, http.StatusInternalServerError, restTypes.ErrorExternalRequest, nil)
	}

	groupIDs := make([]uint64, 0, len(groups))
	for _, group := range groups {
		groupIDs = append(groupIDs, group.ID)
	}

	icons := h.thumbnails.GetGroupIcons(req.Context(), groupIDs)

	return bunrouter.JSON(w, restTypes.SearchGroupsResponse{Groups: convert.Groups(groups, icons)})
}

// GetGroupRoles godoc
//
//	@Summary		List Roblox group roles
//	@Description	Lists the ranks of a Roblox group
//	@Tags			roblox
//	@Produce		json
//	@Param			serverID	path		string	true	"Discord server ID"
//	@Param			groupID		path		string	true	"Roblox group ID"
//	@Success		200			{object}	types.GetGroupRolesResponse
//	@Failure		401			{object}	types.ErrorResponse
//	@Failure		403			{object}	types.ErrorResponse
//	@Failure		500			{object}	types.ErrorResponse
//	@Security		BearerAuth
//	@Router			/servers/{serverID}/roblox/groups/{groupID}/roles [get]
func (h *RobloxHandler) GetGroupRoles(w http.ResponseWriter, req bunrouter.Request) error {
	_, _, ok := authorizeServer(w, req, h.guard)
	if !ok {
		return nil
	}

	groupID, err := strconv.ParseUint(req.Param("groupID"), 10, 64)
	if err != nil {
		return restTypes.WriteError(w, http.StatusBadRequest, restTypes.ErrorInvalidBody, nil)
	}

	roles, err := h.groups.GetGroupRoles(req.Context(), groupID)
	if err != nil {
		h.logger.Error("Failed to get group roles", zap.Uint64("group_id", groupID), zap.Error(err))
		return restTypes.WriteError(w, http.StatusInternalServerError, restTypes.ErrorExternalRequest, nil)
	}

	return bunrouter.JSON(w, restTypes.GetGroupRolesResponse{Roles: convert.GroupRoles(roles)})
}
