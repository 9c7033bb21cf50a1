package handler

import (
	"net/http"
	"regexp"

	"github.com/uptrace/bunrouter"
	"github.com/voxelified/mellow-api/internal/bind"
	"github.com/voxelified/mellow-api/internal/database"
	"github.com/voxelified/mellow-api/internal/rest/convert"
	"github.com/voxelified/mellow-api/internal/rest/middleware/session"
	restTypes "github.com/voxelified/mellow-api/internal/rest/types"
	"go.uber.org/zap"
)

// Username limits for profile edits.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 20
)

var usernamePattern = regexp.MustCompile(`^[a-z0-9_]+$`)

// UserHandler handles profile endpoints for the session user.
type UserHandler struct {
	db     database.Client
	logger *zap.Logger
}

// NewUserHandler creates a new user handler.
func NewUserHandler(db database.Client, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		db:     db,
		logger: logger.Named("user_handler"),
	}
}

// UpdateMePayload is the request body for profile edits.
type UpdateMePayload struct {
	Username string `json:"username"`
}

// GetMe godoc
//
//	@Summary		Get current user
//	@Description	Returns the session user's profile, provisioning it on first login
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	types.User
//	@Failure		401	{object}	types.ErrorResponse
//	@Failure		500	{object}	types.ErrorResponse
//	@Security		BearerAuth
//	@Router			/users/@me [get]
func (h *UserHandler) GetMe(w http.ResponseWriter, req bunrouter.Request) error {
	sess, ok := session.FromContext(req.Context())
	if !ok {
		return restTypes.WriteError(w, http.StatusUnauthorized, restTypes.ErrorUnauthenticated, nil)
	}

	user, err := h.db.Model().User().GetOrCreateUser(req.Context(), sess.UserID)
	if err != nil {
		h.logger.Error("Failed to load profile", zap.Uint64("user_id", sess.UserID), zap.Error(err))
		return restTypes.WriteError(w, http.StatusInternalServerError, restTypes.ErrorExternalRequest, nil)
	}

	return bunrouter.JSON(w, convert.User(user))
}

// UpdateMe godoc
//
//	@Summary		Update current user
//	@Description	Changes the session user's username
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		UpdateMePayload	true	"Profile update payload"
//	@Success		200		{object}	types.User
//	@Failure		400		{object}	types.ErrorResponse
//	@Failure		401		{object}	types.ErrorResponse
//	@Failure		500		{object}	types.ErrorResponse
//	@Security		BearerAuth
//	@Router			/users/@me [patch]
func (h *UserHandler) UpdateMe(w http.ResponseWriter, req bunrouter.Request) error {
	sess, ok := session.FromContext(req.Context())
	if !ok {
		return restTypes.WriteError(w, http.StatusUnauthorized, restTypes.ErrorUnauthenticated, nil)
	}

	var payload UpdateMePayload
	if !decodeBody(w, req.Body, &payload) {
		return nil
	}

	if issues := validateUsername(payload.Username); len(issues) > 0 {
		return restTypes.WriteError(w, http.StatusBadRequest, restTypes.ErrorInvalidBody, issues)
	}

	if err := h.db.Model().User().UpdateUsername(req.Context(), sess.UserID, payload.Username); err != nil {
		h.logger.Error("Failed to update username", zap.Uint64("user_id", sess.UserID), zap.Error(err))
		return restTypes.WriteError(w, http.StatusInternalServerError, restTypes.ErrorDatabaseUpdate, nil)
	}

	user, err := h.db.Model().User().GetUserByID(req.Context(), sess.UserID)
	if err != nil {
		h.logger.Error("Failed to reload profile", zap.Uint64("user_id", sess.UserID), zap.Error(err))
		return restTypes.WriteError(w, http.StatusInternalServerError, restTypes.ErrorExternalRequest, nil)
	}

	return bunrouter.JSON(w, convert.User(user))
}

// validateUsername enforces the profile username rules: lowercase letters,
// digits and underscores, between 3 and 20 characters.
func validateUsername(username string) []bind.Issue {
	var issues []bind.Issue

	if len(username) < MinUsernameLength {
		issues = append(issues, bind.Issue{
			Code:    bind.IssueCodeTooSmall,
			Path:    []any{"username"},
			Message: "username must be at least 3 characters",
		})
	}

	if len(username) > MaxUsernameLength {
		issues = append(issues, bind.Issue{
			Code:    bind.IssueCodeTooBig,
			Path:    []any{"username"},
			Message: "username must be at most 20 characters",
		})
	}

	if username != "" && !usernamePattern.MatchString(username) {
		issues = append(issues, bind.Issue{
			Code:    bind.IssueCodeCustom,
			Path:    []any{"username"},
			Message: "username may only contain lowercase letters, numbers and underscores",
		})
	}

	return issues
}
