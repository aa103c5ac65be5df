// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

/*
Package projects contains the design-project domain: the documents users
create and manage from their dashboard.

A project is a named design document of a particular kind (flowchart,
vector illustration, page layout). Sample projects ship with the product
and have no owner; they are shown to visitors and to users whose own
workspace is still empty.
*/
package projects

import "time"

// # Definitions

// Project represents a single design document.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// Slug is the URL-safe identifier derived from Name at creation time.
	Slug string `json:"slug"`

	// Kind names the design discipline, e.g. "Flowchart" or "Vector".
	Kind string `json:"kind"`

	// OwnerID is nil for the built-in sample projects.
	OwnerID *string `json:"owner_id,omitempty"`

	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Sample reports whether the project is one of the built-in samples.
func (project *Project) Sample() bool {
	return project.OwnerID == nil
}

// # Field Names

const (
	FieldName = "name"
	FieldKind = "kind"
)

// # Constraints

const (
	NameMaxLength = 120

	// ConstraintSlug is the unique-index name the database reports on a
	// duplicate slug.
	ConstraintSlug = "projects_slug_key"
)

// Kinds lists the supported design disciplines.
var Kinds = []string{"Flowchart", "Vector", "Page Layout"}
