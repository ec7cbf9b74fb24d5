package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates PostgreSQL GIN indexes that the schema tooling
// cannot express. Full-text search over workspace file content backs the
// content mode of workspace search.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_workspace_files_content_gin
		ON workspace_files USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create workspace file content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_audit_events_payload_gin
		ON audit_events USING gin(payload)`)
	if err != nil {
		return fmt.Errorf("failed to create audit payload GIN index: %w", err)
	}

	return nil
}
