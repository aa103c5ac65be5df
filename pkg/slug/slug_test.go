// Copyright (c) 2026 DoodleDog. All rights reserved.
// Author: team@doodledog.app

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/doodledog/doodledog/pkg/slug"
)

/*
TestFrom covers the slug transformation pipeline.
*/
func TestFrom(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "Marketing Brochure", "marketing-brochure"},
		{"sample_name", "Sample Workflow Process", "sample-workflow-process"},
		{"accents", "Café Menu Déçu", "cafe-menu-decu"},
		{"punctuation", "Q3 Report: Final (v2)!", "q3-report-final-v2"},
		{"hyphen_runs", "a -- b ---- c", "a-b-c"},
		{"leading_trailing", "  padded  ", "padded"},
		{"numbers", "2026 Roadmap", "2026-roadmap"},
		{"already_slug", "already-a-slug", "already-a-slug"},
		{"empty", "", ""},
		{"only_symbols", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.From(tt.input))
		})
	}
}
