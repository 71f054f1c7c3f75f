// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-press/internal/core/section"
	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/validate"
)

func threeSections() []*section.Section {
	return []*section.Section{
		{ID: "s1", Number: 1, Title: "Alpha section"},
		{ID: "s2", Number: 2, Title: "Bravo section"},
		{ID: "s3", Number: 3, Title: "Charlie section"},
	}
}

// fieldsOf returns the field name of every collected failure.
func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)

	fields := make([]string, 0, len(appErr.Details))
	for _, detail := range appErr.Details {
		fields = append(fields, detail.Field)
	}
	return fields
}

func TestValidateCandidate_Create(t *testing.T) {
	siblings := func() section.Siblings { return section.NewSiblings(threeSections()) }

	t.Run("free_number_and_title", func(t *testing.T) {
		err := section.ValidateCandidate(&validate.Validator{}, section.Candidate{Title: "Delta section", Number: 4}, siblings()).Err()
		assert.NoError(t, err)
	})

	t.Run("duplicate_number", func(t *testing.T) {
		err := section.ValidateCandidate(&validate.Validator{}, section.Candidate{Title: "Delta section", Number: 2}, siblings()).Err()
		assert.Equal(t, []string{section.FieldNumber}, fieldsOf(t, err))
	})

	t.Run("duplicate_title", func(t *testing.T) {
		err := section.ValidateCandidate(&validate.Validator{}, section.Candidate{Title: "Bravo section", Number: 4}, siblings()).Err()
		assert.Equal(t, []string{section.FieldTitle}, fieldsOf(t, err))
	})

	t.Run("both_duplicates_reported", func(t *testing.T) {
		err := section.ValidateCandidate(&validate.Validator{}, section.Candidate{Title: "Bravo section", Number: 2}, siblings()).Err()
		assert.ElementsMatch(t, []string{section.FieldNumber, section.FieldTitle}, fieldsOf(t, err))
	})

	t.Run("field_checks_collected_with_ordering_checks", func(t *testing.T) {
		err := section.ValidateCandidate(&validate.Validator{}, section.Candidate{Title: "Tiny", Number: 0}, siblings()).Err()
		assert.ElementsMatch(t, []string{section.FieldTitle, section.FieldNumber}, fieldsOf(t, err))
	})

	t.Run("number_above_smallint", func(t *testing.T) {
		err := section.ValidateCandidate(&validate.Validator{}, section.Candidate{Title: "Delta section", Number: section.MaxNumber + 1}, siblings()).Err()
		assert.Equal(t, []string{section.FieldNumber}, fieldsOf(t, err))
	})

	t.Run("title_too_long", func(t *testing.T) {
		err := section.ValidateCandidate(&validate.Validator{}, section.Candidate{Title: strings.Repeat("x", 256), Number: 4}, siblings()).Err()
		assert.Equal(t, []string{section.FieldTitle}, fieldsOf(t, err))
	})
}

func TestValidateCandidate_Edit(t *testing.T) {
	t.Run("own_values_are_excluded", func(t *testing.T) {
		siblings := section.NewSiblings(threeSections()).Without(2, "Bravo section")
		err := section.ValidateCandidate(&validate.Validator{}, section.Candidate{Title: "Bravo section", Number: 2}, siblings).Err()
		assert.NoError(t, err)
	})

	t.Run("taking_a_siblings_number", func(t *testing.T) {
		siblings := section.NewSiblings(threeSections()).Without(2, "Bravo section")
		err := section.ValidateCandidate(&validate.Validator{}, section.Candidate{Title: "Bravo section", Number: 3}, siblings).Err()
		assert.Equal(t, []string{section.FieldNumber}, fieldsOf(t, err))
	})

	t.Run("removing_absent_values_is_a_no_op", func(t *testing.T) {
		siblings := section.NewSiblings(threeSections())
		assert.NotPanics(t, func() { siblings = siblings.Without(9, "Never existed") })
		assert.True(t, siblings.HasNumber(1))
		assert.True(t, siblings.HasTitle("Charlie section"))
	})
}
