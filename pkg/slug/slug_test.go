// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Getting Started", "getting-started"},
		{"Héllo, Wörld!", "hello-world"},
		{"  --Intro to Go--  ", "intro-to-go"},
		{"Part 2: The  Return", "part-2-the-return"},
		{"日本語", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, From(tt.input), tt.input)
	}
}
