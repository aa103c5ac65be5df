// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package projects

import "context"

// # Store Contract

/*
ProjectStore defines the persistence contract for design projects.

Implementations must scope mutations to the owning user: a delete issued
by one user must never remove another user's project, nor a sample.
*/
type ProjectStore interface {
	/*
		Create persists a new project.

		Parameters:
		  - ctx: The context for the database operation.
		  - project: The project to persist. All fields must be populated.

		Returns:
		  - error: An error if the insert fails.
	*/
	Create(ctx context.Context, project *Project) error

	/*
		ListByOwner retrieves all projects owned by a user, most recently
		modified first.

		Parameters:
		  - ctx: The context for the database operation.
		  - ownerID: The owning user's identifier.

		Returns:
		  - []Project: The user's projects. Empty, never nil, when none exist.
		  - error: An error if the query fails.
	*/
	ListByOwner(ctx context.Context, ownerID string) ([]Project, error)

	/*
		ListSamples retrieves the built-in sample projects in their seeded
		order.

		Parameters:
		  - ctx: The context for the database operation.

		Returns:
		  - []Project: The sample projects.
		  - error: An error if the query fails.
	*/
	ListSamples(ctx context.Context) ([]Project, error)

	/*
		FindBySlug retrieves a single project by its URL slug.

		Parameters:
		  - ctx: The context for the database operation.
		  - slug: The project's URL-safe identifier.

		Returns:
		  - *Project: The matching project.
		  - error: [apperr.NotFound] if no project has this slug.
	*/
	FindBySlug(ctx context.Context, slug string) (*Project, error)

	/*
		Delete removes a project owned by the given user.

		Parameters:
		  - ctx: The context for the database operation.
		  - projectID: The project to remove.
		  - ownerID: The user issuing the delete. Projects owned by anyone
		    else, including samples, are left untouched.

		Returns:
		  - error: [apperr.NotFound] if the project does not exist or is not
		    owned by this user.
	*/
	Delete(ctx context.Context, projectID, ownerID string) error
}
