package database

import (
	"github.com/uptrace/bun"
	"github.com/voxelified/mellow-api/internal/database/models"
	"go.uber.org/zap"
)

// Repository provides access to all database models.
type Repository struct {
	bind  *models.BindModel
	user  *models.UserModel
	audit *models.AuditModel
}

// NewRepository creates a new repository instance with all models.
func NewRepository(db *bun.DB, logger *zap.Logger) *Repository {
	return &Repository{
		bind:  models.NewBind(db, logger),
		user:  models.NewUser(db, logger),
		audit: models.NewAudit(db, logger),
	}
}

// Bind returns the bind model repository.
func (r *Repository) Bind() *models.BindModel {
	return r.bind
}

// User returns the user model repository.
func (r *Repository) User() *models.UserModel {
	return r.user
}

// Audit returns the audit log model repository.
func (r *Repository) Audit() *models.AuditModel {
	return r.audit
}
