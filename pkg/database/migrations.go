package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes back the `search` query parameter on task listings, matching
// against the research query and the synthesized report.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for research_query full-text search
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_research_tasks_research_query_gin
		ON research_tasks USING gin(to_tsvector('english', research_query))`)
	if err != nil {
		return fmt.Errorf("failed to create research_query GIN index: %w", err)
	}

	// GIN index for report_markdown full-text search
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_research_tasks_report_markdown_gin
		ON research_tasks USING gin(to_tsvector('english', COALESCE(report_markdown, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create report_markdown GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent cannot express. These must match the constraints in
// migrations/000001_init.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Entity identifier uniqueness within (scope, entity_type). Rows without
	// a domain key are excluded so they never collide on the empty string.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS aggregatedentity_scope_id_entity_type_unique_identifier
		ON aggregated_entities (scope_id, entity_type, unique_identifier)
		WHERE unique_identifier <> ''`)
	if err != nil {
		return fmt.Errorf("failed to create entity identifier index: %w", err)
	}

	return nil
}
