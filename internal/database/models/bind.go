package models

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/voxelified/mellow-api/internal/database/types"
	"go.uber.org/zap"
)

// BindModel handles database operations for role binds and their requirements.
type BindModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewBind creates a repository with database access for bind records.
func NewBind(db *bun.DB, logger *zap.Logger) *BindModel {
	return &BindModel{
		db:     db,
		logger: logger.Named("db_bind"),
	}
}

// GetBindsByServer retrieves all binds for a server with their requirements and creator profile.
func (r *BindModel) GetBindsByServer(ctx context.Context, serverID uint64) ([]*types.Bind, error) {
	var binds []*types.Bind

	err := r.db.NewSelect().
		Model(&binds).
		Relation("Creator").
		Relation("Requirements").
		Where("server_id = ?", serverID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get binds for server: %w", err)
	}

	return binds, nil
}

// CreateBind inserts a bind and its requirements in a single transaction.
// IDs are assigned here; the bind is returned fully materialized through the
// same pointer, with each requirement's BindID set to the new bind's ID.
func (r *BindModel) CreateBind(ctx context.Context, bind *types.Bind) error {
	bind.ID = uuid.NewString()

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(bind).Returning("created_at").Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert bind: %w", err)
		}

		if len(bind.Requirements) > 0 {
			for _, requirement := range bind.Requirements {
				requirement.ID = uuid.NewString()
				requirement.BindID = bind.ID
			}

			if _, err := tx.NewInsert().Model(&bind.Requirements).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert bind requirements: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Debug("Created bind",
		zap.String("bindID", bind.ID),
		zap.Uint64("serverID", bind.ServerID),
		zap.Int("requirements", len(bind.Requirements)))

	return nil
}

// UpdateBind updates a bind's scalar fields and replaces its requirement rows
// wholesale, all in a single transaction. The bind is matched by ID and server
// ID together; a bind belonging to a different server is treated as not found.
// Requirements are never patched individually.
func (r *BindModel) UpdateBind(ctx context.Context, bind *types.Bind) error {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		result, err := tx.NewUpdate().
			Model(bind).
			Column("name", "type", "target_ids", "requirements_type").
			Where("id = ?", bind.ID).
			Where("server_id = ?", bind.ServerID).
			Returning("creator, created_at").
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update bind: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if affected == 0 {
			return types.ErrBindNotFound
		}

		_, err = tx.NewDelete().
			Model((*types.BindRequirement)(nil)).
			Where("bind_id = ?", bind.ID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to delete old bind requirements: %w", err)
		}

		if len(bind.Requirements) > 0 {
			for _, requirement := range bind.Requirements {
				requirement.ID = uuid.NewString()
				requirement.BindID = bind.ID
			}

			if _, err := tx.NewInsert().Model(&bind.Requirements).Exec(ctx); err != nil {
				return fmt.Errorf("failed to insert bind requirements: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Debug("Updated bind",
		zap.String("bindID", bind.ID),
		zap.Uint64("serverID", bind.ServerID),
		zap.Int("requirements", len(bind.Requirements)))

	return nil
}

// DeleteBind removes a bind matched by ID and server ID and returns its name.
// Requirement rows cascade at the store level.
func (r *BindModel) DeleteBind(ctx context.Context, serverID uint64, bindID string) (string, error) {
	var deleted types.Bind

	result, err := r.db.NewDelete().
		Model(&deleted).
		Where("id = ?", bindID).
		Where("server_id = ?", serverID).
		Returning("name").
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to delete bind: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		return "", types.ErrBindNotFound
	}

	r.logger.Debug("Deleted bind",
		zap.String("bindID", bindID),
		zap.Uint64("serverID", serverID))

	return deleted.Name, nil
}
