package models

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/voxelified/mellow-api/internal/database/types"
	"github.com/voxelified/mellow-api/internal/database/types/enum"
	"go.uber.org/zap"
)

// AuditModel handles database operations for server audit logs.
type AuditModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewAudit creates a repository with database access for
// storing and retrieving server audit logs.
func NewAudit(db *bun.DB, logger *zap.Logger) *AuditModel {
	return &AuditModel{
		db:     db,
		logger: logger.Named("db_audit"),
	}
}

// Log stores a server configuration change in the database.
// Failures are logged and swallowed; audit logging must never fail the
// mutation whose result has already been decided.
func (r *AuditModel) Log(ctx context.Context, log *types.ServerAuditLog) {
	_, err := r.db.NewInsert().Model(log).Exec(ctx)
	if err != nil {
		r.logger.Error("Failed to log audit event",
			zap.Error(err),
			zap.Uint64("serverID", log.ServerID),
			zap.Uint64("actorID", log.ActorID),
			zap.String("auditType", log.Type.String()))

		return
	}

	r.logger.Debug("Logged audit event",
		zap.Uint64("serverID", log.ServerID),
		zap.Uint64("actorID", log.ActorID),
		zap.String("auditType", log.Type.String()))
}

// GetLogs retrieves audit logs based on filter criteria, newest first.
func (r *AuditModel) GetLogs(ctx context.Context, filter types.AuditLogFilter, limit int) ([]*types.ServerAuditLog, error) {
	var logs []*types.ServerAuditLog

	query := r.db.NewSelect().Model(&logs)

	if filter.ServerID != 0 {
		query = query.Where("server_id = ?", filter.ServerID)
	}

	if filter.ActorID != 0 {
		query = query.Where("actor_id = ?", filter.ActorID)
	}

	if filter.Type != enum.AuditLogTypeAll {
		query = query.Where("type = ?", filter.Type)
	}

	err := query.Order("sequence DESC").Limit(limit).Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}

	return logs, nil
}
