package types

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/voxelified/mellow-api/internal/bind"
	"github.com/voxelified/mellow-api/internal/database/types/enum"
)

// RequestErrorType identifies the failure category returned to API clients.
type RequestErrorType string

const (
	ErrorInvalidBody     RequestErrorType = "invalid_body"
	ErrorUnauthenticated RequestErrorType = "unauthenticated"
	ErrorUnauthorized    RequestErrorType = "unauthorized"
	ErrorDatabaseUpdate  RequestErrorType = "database_update"
	ErrorExternalRequest RequestErrorType = "external_request_error"
	ErrorUnknown         RequestErrorType = "unknown"
)

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Error  RequestErrorType `json:"error"`
	Issues []bind.Issue     `json:"issues,omitempty"`
}

// WriteError writes an ErrorResponse with the given HTTP status.
func WriteError(w http.ResponseWriter, status int, kind RequestErrorType, issues []bind.Issue) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf, err := sonic.Marshal(ErrorResponse{Error: kind, Issues: issues})
	if err != nil {
		return err
	}

	_, err = w.Write(buf)

	return err
}

// BindCreator is the public slice of the user that created a bind.
type BindCreator struct {
	ID       uint64  `json:"id,string"`
	Name     *string `json:"name"`
	Username string  `json:"username"`
}

// BindRequirement is one requirement of a bind.
type BindRequirement struct {
	ID   string                   `json:"id"`
	Type enum.BindRequirementType `json:"type"`
	Data []string                 `json:"data"`
}

// Bind represents one role bind of a server.
type Bind struct {
	ID               string                    `json:"id"`
	Name             string                    `json:"name"`
	Type             enum.BindType             `json:"type"`
	TargetIDs        []string                  `json:"targetIds"`
	RequirementsType enum.BindRequirementsType `json:"requirementsType"`
	Requirements     []BindRequirement         `json:"requirements"`
	Creator          *BindCreator              `json:"creator"`
	CreatedAt        time.Time                 `json:"createdAt"`
}

// Group is one Roblox group from a name lookup, with its icon resolved.
type Group struct {
	ID               uint64  `json:"id"`
	Name             string  `json:"name"`
	MemberCount      uint64  `json:"memberCount"`
	HasVerifiedBadge bool    `json:"hasVerifiedBadge"`
	Icon             *string `json:"icon"`
}

// GroupRole is one rank of a Roblox group.
type GroupRole struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Rank        int    `json:"rank"`
	MemberCount uint64 `json:"memberCount"`
}

// User is the session user's profile.
type User struct {
	ID        uint64    `json:"id,string"`
	Name      *string   `json:"name"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetBindsResponse represents the response for the list binds endpoint.
type GetBindsResponse struct {
	Binds []*Bind `json:"binds"`
}

// SearchGroupsResponse represents the response for the group lookup endpoint.
type SearchGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

// GetGroupRolesResponse represents the response for the group roles endpoint.
type GetGroupRolesResponse struct {
	Roles []*GroupRole `json:"roles"`
}

// DeleteBindResponse represents the response for the delete bind endpoint.
type DeleteBindResponse struct {
	Success bool `json:"success"`
}
