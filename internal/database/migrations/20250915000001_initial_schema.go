package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/voxelified/mellow-api/internal/database/types"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		// Create tables
		models := []any{
			(*types.User)(nil),
			(*types.Bind)(nil),
			(*types.BindRequirement)(nil),
			(*types.ServerAuditLog)(nil),
		}

		for _, model := range models {
			_, err := db.NewCreateTable().
				Model(model).
				IfNotExists().
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to create table for %T: %w", model, err)
			}
		}

		// Requirement rows are owned by their bind and must never outlive it
		_, err := db.NewRaw(`
			ALTER TABLE bind_requirements
			ADD CONSTRAINT fk_bind_requirements_bind
			FOREIGN KEY (bind_id) REFERENCES binds (id)
			ON DELETE CASCADE
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to add bind requirement constraint: %w", err)
		}

		_, err = db.NewRaw(`
			CREATE INDEX IF NOT EXISTS idx_binds_server ON binds (server_id);
			CREATE INDEX IF NOT EXISTS idx_bind_requirements_bind ON bind_requirements (bind_id);
			CREATE INDEX IF NOT EXISTS idx_server_audit_logs_server ON server_audit_logs (server_id, sequence DESC);
		`).Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}

		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		tables := []string{"server_audit_logs", "bind_requirements", "binds", "users"}
		for _, table := range tables {
			_, err := db.NewRaw(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)).Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to drop table %s: %w", table, err)
			}
		}

		return nil
	})
}
