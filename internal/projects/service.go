// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package projects

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/doodledog/doodledog/pkg/slug"
)

// # Service

// Service implements the business logic for design projects.
type Service struct {
	projectStore ProjectStore
}

// NewService constructs a new project [Service].
func NewService(store ProjectStore) *Service {
	return &Service{projectStore: store}
}

// CreateInput carries the fields needed to create a project.
type CreateInput struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	OwnerID string `json:"-"`
}

// Workspace is a user's dashboard listing. Sample reports that the
// projects shown are the built-in samples rather than the user's own.
type Workspace struct {
	Projects []Project
	Sample   bool
}

/*
Create persists a new project for a user.

Description: The URL slug is derived from the name here so every project
created through any surface gets one. Inputs are validated by the
delivery layer before they reach the service.

Parameters:
  - context: context.Context
  - input: CreateInput (Validated project fields)

Returns:
  - *Project: The persisted project
  - error: apperr.Conflict on a duplicate name, or persistence errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Project, error) {
	now := time.Now()
	project := &Project{
		ID:         newID(),
		Name:       input.Name,
		Slug:       slug.From(input.Name),
		Kind:       input.Kind,
		OwnerID:    &input.OwnerID,
		CreatedAt:  now,
		ModifiedAt: now,
	}

	if err := service.projectStore.Create(context, project); err != nil {
		return nil, err
	}

	return project, nil
}

/*
WorkspaceFor assembles a user's dashboard listing.

Description: A user with no projects of their own sees the built-in
samples instead of an empty page, flagged so the page can say so.

Parameters:
  - context: context.Context
  - ownerID: string

Returns:
  - *Workspace: The listing plus the sample flag
  - error: Persistence errors
*/
func (service *Service) WorkspaceFor(context context.Context, ownerID string) (*Workspace, error) {
	owned, err := service.projectStore.ListByOwner(context, ownerID)
	if err != nil {
		return nil, fmt.Errorf("project_service_workspace_failed: %w", err)
	}

	if len(owned) > 0 {
		return &Workspace{Projects: owned}, nil
	}

	samples, err := service.projectStore.ListSamples(context)
	if err != nil {
		return nil, fmt.Errorf("project_service_samples_failed: %w", err)
	}

	return &Workspace{Projects: samples, Sample: true}, nil
}

/*
Samples returns the built-in sample projects shown to anonymous visitors.

Parameters:
  - context: context.Context

Returns:
  - []Project: The sample projects
  - error: Persistence errors
*/
func (service *Service) Samples(context context.Context) ([]Project, error) {
	return service.projectStore.ListSamples(context)
}

/*
GetBySlug retrieves a single project by its URL slug.

Parameters:
  - context: context.Context
  - projectSlug: string

Returns:
  - *Project: The matching project
  - error: apperr.NotFound or persistence errors
*/
func (service *Service) GetBySlug(context context.Context, projectSlug string) (*Project, error) {
	return service.projectStore.FindBySlug(context, projectSlug)
}

/*
Delete removes one of the user's own projects.

Parameters:
  - context: context.Context
  - projectID: string
  - ownerID: string

Returns:
  - error: apperr.NotFound when the project is absent or not theirs
*/
func (service *Service) Delete(context context.Context, projectID, ownerID string) error {
	return service.projectStore.Delete(context, projectID, ownerID)
}

// newID generates a time-ordered identifier, falling back to a random one
// if the monotonic source fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
