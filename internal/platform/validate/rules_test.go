// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
)

type signup struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s signup) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required, validation.Length(3, 10)),
		validation.Field(&s.Email, validation.Required),
	)
}

func TestRules_MergesFieldErrorsSorted(t *testing.T) {
	validator := &Validator{}

	require.NoError(t, validator.Rules(signup{Name: "ab"}.Validate()))
	validator.Custom("name", true, "Name is taken")

	appErr := apperr.As(validator.Err())
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	require.Len(t, appErr.Details, 3)
	assert.Equal(t, "email", appErr.Details[0].Field)
	assert.Equal(t, "name", appErr.Details[1].Field)
	assert.Equal(t, "Name is taken", appErr.Details[2].Message)
}

func TestRules_ValidInput(t *testing.T) {
	validator := &Validator{}

	require.NoError(t, validator.Rules(signup{Name: "alice", Email: "a@b.io"}.Validate()))
	assert.False(t, validator.HasErrors())
	assert.NoError(t, validator.Err())
}

func TestRules_PassesThroughOtherErrors(t *testing.T) {
	validator := &Validator{}
	broken := errors.New("rule misconfigured")

	assert.Equal(t, broken, validator.Rules(broken))
	assert.False(t, validator.HasErrors())
}
