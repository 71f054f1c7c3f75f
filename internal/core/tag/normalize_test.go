// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira-press/internal/core/tag"
	"github.com/taibuivan/yomira-press/internal/platform/validate"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Python", "python"},
		{"trims", "  go  ", "go"},
		{"inner_spaces_to_hyphens", "Machine Learning", "machine-learning"},
		{"keeps_existing_hyphens", "-flask-", "-flask-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tag.Canonical(tt.input))
		})
	}
}

func TestParseNames(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"mixed_case_duplicates", "Python, python , -flask-, ai ", []string{"python", "-flask-", "ai"}},
		{"empty_input", "", []string{}},
		{"only_separators", " , ,, ", []string{}},
		{"first_occurrence_wins", "Go, Rust, GO", []string{"go", "rust"}},
		{"spaces_become_hyphens", "web dev, Web Dev", []string{"web-dev"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tag.ParseNames(tt.input)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateNames(t *testing.T) {
	t.Run("in_range", func(t *testing.T) {
		v := tag.ValidateNames(&validate.Validator{}, []string{"go", "python"})
		assert.False(t, v.HasErrors())
	})

	t.Run("too_short", func(t *testing.T) {
		v := tag.ValidateNames(&validate.Validator{}, []string{"a"})
		assert.True(t, v.HasErrors())
	})

	t.Run("too_long", func(t *testing.T) {
		v := tag.ValidateNames(&validate.Validator{}, []string{strings.Repeat("x", tag.MaxNameLength+1)})
		assert.True(t, v.HasErrors())
	})
}

func TestParse(t *testing.T) {
	t.Run("collects_length_errors", func(t *testing.T) {
		v := &validate.Validator{}
		names := tag.Parse(v, "Go, x, Rust")

		assert.Equal(t, []string{"go", "x", "rust"}, names)
		assert.True(t, v.HasErrors())
	})

	t.Run("clean_input", func(t *testing.T) {
		v := &validate.Validator{}
		names := tag.Parse(v, "Machine Learning, ai")

		assert.Equal(t, []string{"machine-learning", "ai"}, names)
		assert.False(t, v.HasErrors())
	})
}
