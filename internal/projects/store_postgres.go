// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package projects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/doodledog/doodledog/internal/platform/apperr"
	"github.com/doodledog/doodledog/internal/platform/dberr"
)

// # Project Store

// PostgresProjectStore implements the ProjectStore interface using pgx.
type PostgresProjectStore struct {
	pool *pgxpool.Pool
}

// NewProjectStore creates a new PostgreSQL implementation of the ProjectStore.
func NewProjectStore(pool *pgxpool.Pool) *PostgresProjectStore {
	return &PostgresProjectStore{pool: pool}
}

/*
Create persists a new project record.

Description: Slug collisions are settled by the table's unique index. The
service derives slugs from user-supplied names, so a collision is a client
mistake, not corruption.

Parameters:
  - context: context.Context
  - project: *Project (Entity to persist)

Returns:
  - error: apperr.Conflict on a duplicate slug, or connectivity errors
*/
func (store *PostgresProjectStore) Create(context context.Context, project *Project) error {
	const query = `
		INSERT INTO projects (id, name, slug, kind, owner_id, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	now := time.Now()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	if project.ModifiedAt.IsZero() {
		project.ModifiedAt = now
	}

	_, err := store.pool.Exec(context, query,
		project.ID,
		project.Name,
		project.Slug,
		project.Kind,
		project.OwnerID,
		project.CreatedAt,
		project.ModifiedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err, ConstraintSlug) {
			return apperr.Conflict("A project with this name already exists")
		}
		return fmt.Errorf("postgres_project_store_create_failed: %w", err)
	}

	return nil
}

/*
ListByOwner retrieves a user's projects, most recently modified first.

Parameters:
  - context: context.Context
  - ownerID: string

Returns:
  - []Project: The user's projects, empty when none exist
  - error: Database errors
*/
func (store *PostgresProjectStore) ListByOwner(context context.Context, ownerID string) ([]Project, error) {
	const query = `
		SELECT id, name, slug, kind, owner_id, created_at, modified_at
		FROM projects
		WHERE owner_id = $1
		ORDER BY modified_at DESC`

	rows, err := store.pool.Query(context, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("postgres_project_store_list_failed: %w", err)
	}

	return store.collect(rows)
}

/*
ListSamples retrieves the built-in sample projects in their seeded order.

Parameters:
  - context: context.Context

Returns:
  - []Project: The sample projects
  - error: Database errors
*/
func (store *PostgresProjectStore) ListSamples(context context.Context) ([]Project, error) {
	const query = `
		SELECT id, name, slug, kind, owner_id, created_at, modified_at
		FROM projects
		WHERE owner_id IS NULL
		ORDER BY created_at ASC`

	rows, err := store.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_project_store_list_samples_failed: %w", err)
	}

	return store.collect(rows)
}

/*
FindBySlug retrieves a single project by its URL slug.

Parameters:
  - context: context.Context
  - slug: string

Returns:
  - *Project: Hydrated project entity
  - error: apperr.NotFound or database errors
*/
func (store *PostgresProjectStore) FindBySlug(context context.Context, slug string) (*Project, error) {
	const query = `
		SELECT id, name, slug, kind, owner_id, created_at, modified_at
		FROM projects
		WHERE slug = $1`

	project := &Project{}
	err := store.pool.QueryRow(context, query, slug).Scan(
		&project.ID,
		&project.Name,
		&project.Slug,
		&project.Kind,
		&project.OwnerID,
		&project.CreatedAt,
		&project.ModifiedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Project")
		}
		return nil, fmt.Errorf("postgres_project_store_find_failed: %w", err)
	}

	return project, nil
}

/*
Delete removes a project owned by the given user.

Description: Ownership is enforced in the WHERE clause so the check and
the delete are a single atomic statement. Samples have a NULL owner and
can never match.

Parameters:
  - context: context.Context
  - projectID: string
  - ownerID: string

Returns:
  - error: apperr.NotFound when nothing matched, or execution errors
*/
func (store *PostgresProjectStore) Delete(context context.Context, projectID, ownerID string) error {
	const query = `DELETE FROM projects WHERE id = $1 AND owner_id = $2`

	tag, err := store.pool.Exec(context, query, projectID, ownerID)
	if err != nil {
		return fmt.Errorf("postgres_project_store_delete_failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Project")
	}

	return nil
}

// collect drains a project result set into a slice.
func (store *PostgresProjectStore) collect(rows pgx.Rows) ([]Project, error) {
	defer rows.Close()

	result := []Project{}
	for rows.Next() {
		var project Project
		err := rows.Scan(
			&project.ID,
			&project.Name,
			&project.Slug,
			&project.Kind,
			&project.OwnerID,
			&project.CreatedAt,
			&project.ModifiedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("postgres_project_store_scan_failed: %w", err)
		}
		result = append(result, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_project_store_rows_failed: %w", err)
	}

	return result, nil
}
