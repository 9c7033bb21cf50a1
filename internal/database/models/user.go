package models

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/voxelified/mellow-api/internal/database/types"
	"go.uber.org/zap"
)

// UserModel handles database operations for user profiles.
type UserModel struct {
	db     *bun.DB
	logger *zap.Logger
}

// NewUser creates a repository with database access for user profiles.
func NewUser(db *bun.DB, logger *zap.Logger) *UserModel {
	return &UserModel{
		db:     db,
		logger: logger.Named("db_user"),
	}
}

// GetUserByID retrieves a user profile by Discord user ID.
func (r *UserModel) GetUserByID(ctx context.Context, userID uint64) (*types.User, error) {
	var user types.User

	err := r.db.NewSelect().
		Model(&user).
		Where("id = ?", userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrUserNotFound
		}

		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetOrCreateUser retrieves a user profile, provisioning a default one on
// first login. The default username is derived from the Discord user ID so
// the unique constraint cannot collide.
func (r *UserModel) GetOrCreateUser(ctx context.Context, userID uint64) (*types.User, error) {
	user, err := r.GetUserByID(ctx, userID)
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, types.ErrUserNotFound) {
		return nil, err
	}

	created := &types.User{
		ID:       userID,
		Username: fmt.Sprintf("user%d", userID),
	}

	_, err = r.db.NewInsert().
		Model(created).
		On("CONFLICT (id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Debug("Provisioned user profile", zap.Uint64("user_id", userID))

	// Re-read to pick up defaults and concurrent first logins.
	return r.GetUserByID(ctx, userID)
}

// UpdateUsername changes a user's username.
func (r *UserModel) UpdateUsername(ctx context.Context, userID uint64, username string) error {
	result, err := r.db.NewUpdate().
		Model((*types.User)(nil)).
		Set("username = ?", username).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update username: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if affected == 0 {
		return types.ErrUserNotFound
	}

	return nil
}
