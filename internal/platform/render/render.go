// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

/*
Package render turns page data into HTML responses.

Templates are embedded into the binary and parsed once at startup, so a
template defect is a startup failure rather than a runtime 500. Pages are
rendered into a buffer first; nothing is written to the client until the
template has executed completely.

The application's HTML surface is deliberately small (home, login, register,
dashboard, error). Handlers own the per-page data structs; this package only
executes templates by name.
*/
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer executes embedded HTML templates.
type Renderer struct {
	templates *template.Template
}

// New parses every embedded template and returns a ready [Renderer].
func New() (*Renderer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("render: failed to parse templates: %w", err)
	}
	return &Renderer{templates: templates}, nil
}

// Page executes the named template with data and writes it with statusCode.
//
// Template execution happens against a buffer; if it fails mid-way the
// client receives a clean 500 instead of a truncated page.
func (renderer *Renderer) Page(writer http.ResponseWriter, statusCode int, name string, data any) {
	var buffer bytes.Buffer
	if err := renderer.templates.ExecuteTemplate(&buffer, name, data); err != nil {
		slog.Default().Error("template_execution_failed",
			slog.String("template", name),
			slog.Any("error", err),
		)
		http.Error(writer, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	writer.Header().Set("Content-Type", "text/html; charset=utf-8")
	writer.WriteHeader(statusCode)
	_, _ = buffer.WriteTo(writer)
}

// ErrorPage is the data for the generic error template.
type ErrorPage struct {
	Status  int
	Message string
}

// Error renders the generic error page. Used for hard failures that are not
// re-rendered into a form (CSRF mismatch, rate limiting).
func (renderer *Renderer) Error(writer http.ResponseWriter, statusCode int, message string) {
	renderer.Page(writer, statusCode, "error.html", ErrorPage{
		Status:  statusCode,
		Message: message,
	})
}
