// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/yomira-press/internal/platform/ctxutil"
	"github.com/taibuivan/yomira-press/internal/platform/middleware"
	"github.com/taibuivan/yomira-press/internal/platform/sec"
)

// stubVerifier accepts exactly one token value.
type stubVerifier struct {
	token  string
	claims *sec.AuthClaims
}

func (verifier stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token != verifier.token {
		return nil, errors.New("bad token")
	}
	return verifier.claims, nil
}

// stubConfig satisfies middleware.AppConfig.
type stubConfig struct {
	development bool
}

func (config stubConfig) IsDevelopment() bool  { return config.development }
func (config stubConfig) OriginSuffix() string { return "yomira.app" }

func okHandler(writer http.ResponseWriter, request *http.Request) {
	writer.WriteHeader(http.StatusOK)
}

/*
TestAuthenticate covers anonymous, valid, malformed and invalid credentials.
*/
func TestAuthenticate(t *testing.T) {
	verifier := stubVerifier{token: "good", claims: &sec.AuthClaims{UserID: "u-1", Role: "author"}}

	var seen *sec.AuthClaims
	handler := middleware.Authenticate(verifier)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name     string
		header   string
		status   int
		expectID string
	}{
		{"anonymous", "", http.StatusOK, ""},
		{"valid", "Bearer good", http.StatusOK, "u-1"},
		{"malformed", "Token good", http.StatusUnauthorized, ""},
		{"invalid", "Bearer bad", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.status, recorder.Code)
			if tt.expectID != "" {
				if assert.NotNil(t, seen) {
					assert.Equal(t, tt.expectID, seen.UserID)
				}
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

/*
TestRequireRole verifies 401 for anonymous and 403 for insufficient roles.
*/
func TestRequireRole(t *testing.T) {
	handler := middleware.RequireRole(sec.RoleAdmin)(http.HandlerFunc(okHandler))

	tests := []struct {
		name   string
		claims *sec.AuthClaims
		status int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"author", &sec.AuthClaims{UserID: "u-1", Role: "author"}, http.StatusForbidden},
		{"admin", &sec.AuthClaims{UserID: "u-2", Role: "admin"}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/", nil)
			if tt.claims != nil {
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), tt.claims))
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

/*
TestRequireAuth verifies anonymous requests are blocked.
*/
func TestRequireAuth(t *testing.T) {
	handler := middleware.RequireAuth(http.HandlerFunc(okHandler))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

/*
TestRequestID verifies that an ID is generated or propagated.
*/
func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "client-supplied")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "client-supplied", seen)
}

/*
TestCORS verifies origin filtering outside development.
*/
func TestCORS(t *testing.T) {
	handler := middleware.CORS(stubConfig{development: false})(http.HandlerFunc(okHandler))

	allowed := httptest.NewRequest(http.MethodGet, "/", nil)
	allowed.Header.Set("Origin", "https://press.yomira.app")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, allowed)
	assert.Equal(t, "https://press.yomira.app", recorder.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/", nil)
	denied.Header.Set("Origin", "https://evil.example")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, denied)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/", nil)
	preflight.Header.Set("Origin", "https://press.yomira.app")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, preflight)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
