package handler

import (
	"errors"
	"net/http"

	"github.com/uptrace/bunrouter"
	"github.com/voxelified/mellow-api/internal/bind"
	"github.com/voxelified/mellow-api/internal/database"
	"github.com/voxelified/mellow-api/internal/database/types"
	"github.com/voxelified/mellow-api/internal/database/types/enum"
	"github.com/voxelified/mellow-api/internal/rest/convert"
	restTypes "github.com/voxelified/mellow-api/internal/rest/types"
	"go.uber.org/zap"
)

// BindHandler handles bind CRUD endpoints.
type BindHandler struct {
	db     database.Client
	guard  MembershipVerifier
	logger *zap.Logger
}

// NewBindHandler creates a new bind handler.
func NewBindHandler(db database.Client, guard MembershipVerifier, logger *zap.Logger) *BindHandler {
	return &BindHandler{
		db:     db,
		guard:  guard,
		logger: logger.Named("bind_handler"),
	}
}

// GetBinds godoc
//
//	@Summary		List server binds
//	@Description	Lists all binds of a server with their requirements and creators
//	@Tags			binds
//	@Produce		json
//	@Param			serverID	path		string	true	"Discord server ID"
//	@Success		200			{object}	types.GetBindsResponse
//	@Failure		401			{object}	types.ErrorResponse
//	@Failure		403			{object}	types.ErrorResponse
//	@Failure		500			{object}	types.ErrorResponse
//	@Security		BearerAuth
//	@Router			/servers/{serverID}/binds [get]
func (h *BindHandler) GetBinds(w http.ResponseWriter, req bunrouter.Request) error {
	serverID, _, ok := authorizeServer(w, req, h.guard)
	if !ok {
		return nil
	}

	binds, err := h.db.Model().Bind().GetBindsByServer(req.Context(), serverID)
	if err != nil {
		h.logger.Error("Failed to list binds", zap.Uint64("server_id", serverID), zap.Error(err))
		return restTypes.WriteError(w, http.StatusInternalServerError, restTypes.ErrorExternalRequest, nil)
	}

	return bunrouter.JSON(w, restTypes.GetBindsResponse{Binds: convert.Binds(binds)})
}

// CreateBind godoc
//
//	@Summary		Create a bind
//	@Description	Validates a bind payload and persists the bind with its requirements, recording the change in the server audit log
//	@Tags			binds
//	@Accept			json
//	@Produce		json
//	@Param			serverID	path		string				true	"Discord server ID"
//	@Param			payload		body		bind.Payload		true	"Bind payload"
//	@Success		200			{object}	types.Bind
//	@Failure		400			{object}	types.ErrorResponse
//	@Failure		401			{object}	types.ErrorResponse
//	@Failure		403			{object}	types.ErrorResponse
//	@Failure		500			{object}	types.ErrorResponse
//	@Security		BearerAuth
//	@Router			/servers/{serverID}/binds [post]
func (h *BindHandler) CreateBind(w http.ResponseWriter, req bunrouter.Request) error {
	serverID, sess, ok := authorizeServer(w, req, h.guard)
	if !ok {
		return nil
	}

	var payload bind.Payload
	if !decodeBody(w, req.Body, &payload) {
		return nil
	}

	if issues := bind.ValidateCreate(&payload); len(issues) > 0 {
		return restTypes.WriteError(w, http.StatusBadRequest, restTypes.ErrorInvalidBody, issues)
	}

	record := bindFromPayload(&payload, serverID, sess.UserID)

	if err := h.db.Model().Bind().CreateBind(req.Context(), record); err != nil {
		h.logger.Error("Failed to create bind", zap.Uint64("server_id", serverID), zap.Error(err))
		return restTypes.WriteError(w, http.StatusInternalServerError, restTypes.ErrorDatabaseUpdate, nil)
	}

	h.db.Model().Audit().Log(req.Context(), &types.ServerAuditLog{
		Type:     enum.AuditLogTypeCreateRobloxLink,
		ActorID:  sess.UserID,
		ServerID: serverID,
		Metadata: bindAuditMetadata(record),
	})

	h.attachCreator(req, record)

	return bunrouter.JSON(w, convert.Bind(record))
}

// UpdateBind godoc
//
//	@Summary		Update a bind
//	@Description	Validates an update payload and replaces the target bind's fields and requirements
//	@Tags			binds
//	@Accept			json
//	@Produce		json
//	@Param			serverID	path		string				true	"Discord server ID"
//	@Param			payload		body		bind.UpdatePayload	true	"Bind update payload"
//	@Success		200			{object}	types.Bind
//	@Failure		400			{object}	types.ErrorResponse
//	@Failure		401			{object}	types.ErrorResponse
//	@Failure		403			{object}	types.ErrorResponse
//	@Failure		404			{object}	types.ErrorResponse
//	@Failure		500			{object}	types.ErrorResponse
//	@Security		BearerAuth
//	@Router			/servers/{serverID}/binds [patch]
func (h *BindHandler) UpdateBind(w http.ResponseWriter, req bunrouter.Request) error {
	serverID, sess, ok := authorizeServer(w, req, h.guard)
	if !ok {
		return nil
	}

	var payload bind.UpdatePayload
	if !decodeBody(w, req.Body, &payload) {
		return nil
	}

	if issues := bind.ValidateUpdate(&payload); len(issues) > 0 {
		return restTypes.WriteError(w, http.StatusBadRequest, restTypes.ErrorInvalidBody, issues)
	}

	record := bindFromPayload(&payload.Payload, serverID, sess.UserID)
	record.ID = payload.Target

	if err := h.db.Model().Bind().UpdateBind(req.Context(), record); err != nil {
		if errors.Is(err, types.ErrBindNotFound) {
			return restTypes.WriteError(w, http.StatusNotFound, restTypes.ErrorDatabaseUpdate, nil)
		}

		h.logger.Error("Failed to update bind",
			zap.Uint64("server_id", serverID),
			zap.String("bind_id", payload.Target),
			zap.Error(err))

		return restTypes.WriteError(w, http.StatusInternalServerError, restTypes.ErrorDatabaseUpdate, nil)
	}

	h.db.Model().Audit().Log(req.Context(), &types.ServerAuditLog{
		Type:     enum.AuditLogTypeUpdateRobloxLink,
		ActorID:  sess.UserID,
		ServerID: serverID,
		Metadata: map[string]any{"name": record.Name},
	})

	h.attachCreator(req, record)

	return bunrouter.JSON(w, convert.Bind(record))
}

// DeleteBind godoc
//
//	@Summary		Delete a bind
//	@Description	Removes a bind and its requirements, recording the change in the server audit log
//	@Tags			binds
//	@Produce		json
//	@Param			serverID	path		string	true	"Discord server ID"
//	@Param			bindID		path		string	true	"Bind ID"
//	@Success		200			{object}	types.DeleteBindResponse
//	@Failure		401			{object}	types.ErrorResponse
//	@Failure		403			{object}	types.ErrorResponse
//	@Failure		404			{object}	types.ErrorResponse
//	@Failure		500			{object}	types.ErrorResponse
//	@Security		BearerAuth
//	@Router			/servers/{serverID}/binds/{bindID} [delete]
func (h *BindHandler) DeleteBind(w http.ResponseWriter, req bunrouter.Request) error {
	serverID, sess, ok := authorizeServer(w, req, h.guard)
	if !ok {
		return nil
	}

	bindID := req.Param("bindID")

	name, err := h.db.Model().Bind().DeleteBind(req.Context(), serverID, bindID)
	if err != nil {
		if errors.Is(err, types.ErrBindNotFound) {
			return restTypes.WriteError(w, http.StatusNotFound, restTypes.ErrorDatabaseUpdate, nil)
		}

		h.logger.Error("Failed to delete bind",
			zap.Uint64("server_id", serverID),
			zap.String("bind_id", bindID),
			zap.Error(err))

		return restTypes.WriteError(w, http.StatusInternalServerError, restTypes.ErrorDatabaseUpdate, nil)
	}

	h.db.Model().Audit().Log(req.Context(), &types.ServerAuditLog{
		Type:     enum.AuditLogTypeDeleteRobloxLink,
		ActorID:  sess.UserID,
		ServerID: serverID,
		Metadata: map[string]any{"name": name},
	})

	return bunrouter.JSON(w, restTypes.DeleteBindResponse{Success: true})
}

// attachCreator loads the creator profile so mutation responses carry the
// same shape as list responses. Failures only cost the embedded creator.
func (h *BindHandler) attachCreator(req bunrouter.Request, record *types.Bind) {
	creator, err := h.db.Model().User().GetUserByID(req.Context(), record.CreatorID)
	if err != nil {
		if !errors.Is(err, types.ErrUserNotFound) {
			h.logger.Warn("Failed to load bind creator", zap.Error(err))
		}

		return
	}

	record.Creator = creator
}

// bindAuditMetadata captures the created bind's shape for the audit trail:
// its name, kind, combination mode, and the target/requirement counts.
func bindAuditMetadata(record *types.Bind) map[string]any {
	return map[string]any{
		"name":              record.Name,
		"type":              record.Type.String(),
		"targets":           len(record.TargetIDs),
		"requirements":      len(record.Requirements),
		"requirements_type": record.RequirementsType.String(),
	}
}

// bindFromPayload maps a validated payload onto a database bind.
func bindFromPayload(payload *bind.Payload, serverID, creatorID uint64) *types.Bind {
	requirements := make([]*types.BindRequirement, 0, len(payload.Requirements))
	for _, req := range payload.Requirements {
		requirements = append(requirements, &types.BindRequirement{
			Type: req.Type,
			Data: req.Data,
		})
	}

	return &types.Bind{
		ServerID:         serverID,
		Name:             payload.Name,
		Type:             payload.Type,
		CreatorID:        creatorID,
		TargetIDs:        payload.Data,
		RequirementsType: payload.RequirementsType,
		Requirements:     requirements,
	}
}
