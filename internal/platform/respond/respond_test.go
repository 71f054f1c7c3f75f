// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/respond"
)

/*
TestError_AppError verifies the error envelope for a validation failure.
*/
func TestError_AppError(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/", nil)

	respond.Error(recorder, request, apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: "number", Message: "Section with this number already exists"},
		apperr.FieldError{Field: "title", Message: "Section with this title already exists"},
	))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Len(t, body.Details, 2)
}

/*
TestError_Notice verifies informational refusals keep their own status and code.
*/
func TestError_Notice(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/", nil)

	respond.Error(recorder, request, apperr.Notice("NO_SECTIONS", "create at least one section", http.StatusUnprocessableEntity))

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	var body respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "NO_SECTIONS", body.Code)
	assert.Equal(t, "create at least one section", body.Error)
}

/*
TestError_Unknown verifies that plain errors are hidden behind a 500.
*/
func TestError_Unknown(t *testing.T) {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/", nil)

	respond.Error(recorder, request, errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "relation")
}

/*
TestRedirect verifies the Location header and body field.
*/
func TestRedirect(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Redirect(recorder, map[string]string{"id": "a1"}, "/api/v1/articles/a1")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "/api/v1/articles/a1", recorder.Header().Get("Location"))

	var body respond.RedirectEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "/api/v1/articles/a1", body.Redirect)
}
