// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package render

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Static returns a handler serving the embedded static assets (stylesheet).
// Mount it under /static/.
func Static() http.Handler {
	assets, _ := fs.Sub(staticFS, "static")
	return http.StripPrefix("/static/", http.FileServer(http.FS(assets)))
}
