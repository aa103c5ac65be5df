// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

/*
The HTTP delivery layer for design projects.

It serves two surfaces: the HTML pages (landing page and dashboard) and a
small JSON API for managing projects programmatically.
*/
package projects

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/doodledog/doodledog/internal/platform/apperr"
	"github.com/doodledog/doodledog/internal/platform/ctxutil"
	"github.com/doodledog/doodledog/internal/platform/render"
	requestutil "github.com/doodledog/doodledog/internal/platform/request"
	"github.com/doodledog/doodledog/internal/platform/respond"
	"github.com/doodledog/doodledog/internal/platform/validate"
)

// # Definitions & Constructors

// Handler implements the project HTML pages and JSON endpoints.
type Handler struct {
	projectService *Service
	pages          *render.Renderer
}

// NewHandler constructs a new [Handler] with its dependencies.
func NewHandler(service *Service, pages *render.Renderer) *Handler {
	return &Handler{projectService: service, pages: pages}
}

// Routes returns the JSON API routes for projects. Authentication is
// applied by the caller when mounting.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Delete("/{projectID}", handler.Delete)

	return router
}

// # Page Data

type homePageData struct {
	Username string
	Projects []Project
}

type dashboardPageData struct {
	Username string
	Sample   bool
	Projects []Project
}

// # HTML Pages

/*
Home renders the public landing page.

GET /

Description: Shows the built-in sample projects to everyone. A signed-in
visitor additionally gets the navigation links for their account.
*/
func (handler *Handler) Home(writer http.ResponseWriter, request *http.Request) {
	samples, err := handler.projectService.Samples(request.Context())
	if err != nil {
		handler.internalError(writer, request, err)
		return
	}

	data := homePageData{Projects: samples}
	if claims := requestutil.Claims(request); claims != nil {
		data.Username = claims.Username
	}

	handler.pages.Page(writer, http.StatusOK, "home.html", data)
}

/*
Dashboard renders the signed-in user's workspace.

GET /dashboard

Description: Lists the user's own projects, or the samples when they have
none yet. The router guards this page with RequireUser, so a missing
identity here is a programming error.
*/
func (handler *Handler) Dashboard(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		handler.internalError(writer, request, err)
		return
	}

	workspace, err := handler.projectService.WorkspaceFor(request.Context(), claims.UserID)
	if err != nil {
		handler.internalError(writer, request, err)
		return
	}

	handler.pages.Page(writer, http.StatusOK, "dashboard.html", dashboardPageData{
		Username: claims.Username,
		Sample:   workspace.Sample,
		Projects: workspace.Projects,
	})
}

// # JSON API

/*
List returns the authenticated user's dashboard listing.

GET /api/v1/projects

Response:
  - 200: The user's projects, or the samples when they have none
*/
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	workspace, err := handler.projectService.WorkspaceFor(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]interface{}{
		"projects": workspace.Projects,
		"sample":   workspace.Sample,
	})
}

/*
Create adds a new project to the authenticated user's workspace.

POST /api/v1/projects

Request:
  - Body: {"name": "...", "kind": "Flowchart|Vector|Page Layout"}

Response:
  - 201: The created project, slug included
  - 400: Validation failure
  - 409: A project with the same name already exists
*/
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.OwnerID = userID

	validator := &validate.Validator{}
	err = validator.Required(FieldName, input.Name).
		MaxLen(FieldName, input.Name, NameMaxLength).
		Required(FieldKind, input.Kind).
		OneOf(FieldKind, input.Kind, Kinds...).
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	project, err := handler.projectService.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, project)
}

/*
Delete removes one of the authenticated user's projects.

DELETE /api/v1/projects/{projectID}

Response:
  - 204: The project was removed
  - 404: No such project in this user's workspace
*/
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	projectID := requestutil.Param(request, "projectID")
	if projectID == "" {
		respond.Error(writer, request, apperr.ValidationError("projectID is required"))
		return
	}

	if err := handler.projectService.Delete(request.Context(), projectID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// internalError logs the cause and renders the generic error page.
func (handler *Handler) internalError(writer http.ResponseWriter, request *http.Request, err error) {
	ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(),
		"project_handler_error", slog.Any("error", err))
	handler.pages.Error(writer, http.StatusInternalServerError, "An unexpected error occurred")
}
