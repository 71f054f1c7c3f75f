// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-press/internal/platform/constants"
)

func newAuthRouter(service *Service) http.Handler {
	router := chi.NewRouter()
	router.Mount("/api/v1/auth", NewHandler(service).Routes())
	return router
}

func TestHandler_RegisterAndLogin(t *testing.T) {
	service, _, _ := newTestService()
	router := newAuthRouter(service)

	body := `{"username":"alice","email":"alice@example.com","password":"s3cret-pass","password_confirmation":"s3cret-pass"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotContains(t, recorder.Body.String(), "s3cret-pass")
	assert.NotContains(t, recorder.Body.String(), "password")

	recorder = httptest.NewRecorder()
	login := `{"login":"alice@example.com","password":"s3cret-pass"}`
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(login)))
	require.Equal(t, http.StatusOK, recorder.Code)

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope.Data[FieldAccessToken])

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, constants.RefreshTokenCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestHandler_RegisterRejectsInvalidInput(t *testing.T) {
	service, _, _ := newTestService()

	recorder := httptest.NewRecorder()
	body := `{"username":"al","email":"alice@example.com","password":"s3cret-pass","password_confirmation":"nope-nope"}`
	newAuthRouter(service).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), FieldUsername)
	assert.Contains(t, recorder.Body.String(), FieldPasswordConfirmation)
}

func TestHandler_RefreshWithoutCookie(t *testing.T) {
	service, _, _ := newTestService()

	recorder := httptest.NewRecorder()
	newAuthRouter(service).ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
