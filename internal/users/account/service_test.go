// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/ctxutil"
	"github.com/taibuivan/yomira-press/internal/platform/sec"
	"github.com/taibuivan/yomira-press/internal/users/auth"
	"github.com/taibuivan/yomira-press/pkg/pointer"
)

// # Fakes

type memoryProfiles struct {
	users map[string]*auth.User
}

func (repo *memoryProfiles) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := repo.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (repo *memoryProfiles) UpdateProfile(_ context.Context, user *auth.User) error {
	if _, ok := repo.users[user.ID]; !ok {
		return apperr.NotFound("User")
	}
	user.UpdatedAt = time.Now()
	copied := *user
	repo.users[user.ID] = &copied
	return nil
}

func (repo *memoryProfiles) SoftDelete(_ context.Context, id string) error {
	if _, ok := repo.users[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(repo.users, id)
	return nil
}

type memorySessions struct {
	sessions []*auth.Session
}

func (repo *memorySessions) Create(_ context.Context, session *auth.Session) error {
	repo.sessions = append(repo.sessions, session)
	return nil
}

func (repo *memorySessions) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	for _, session := range repo.sessions {
		if session.TokenHash == tokenHash {
			return session, nil
		}
	}
	return nil, apperr.NotFound("Session")
}

func (repo *memorySessions) ListByUser(_ context.Context, userID string) ([]*auth.Session, error) {
	owned := make([]*auth.Session, 0)
	for _, session := range repo.sessions {
		if session.UserID == userID {
			owned = append(owned, session)
		}
	}
	return owned, nil
}

func (repo *memorySessions) Revoke(_ context.Context, userID, tokenHash string) error {
	return repo.keep(func(session *auth.Session) bool {
		return session.UserID != userID || session.TokenHash != tokenHash
	})
}

func (repo *memorySessions) RevokeAll(_ context.Context, userID string) error {
	return repo.keep(func(session *auth.Session) bool { return session.UserID != userID })
}

func (repo *memorySessions) RevokeOthers(_ context.Context, userID, keepTokenHash string) error {
	return repo.keep(func(session *auth.Session) bool {
		return session.UserID != userID || session.TokenHash == keepTokenHash
	})
}

func (repo *memorySessions) keep(predicate func(*auth.Session) bool) error {
	kept := repo.sessions[:0]
	for _, session := range repo.sessions {
		if predicate(session) {
			kept = append(kept, session)
		}
	}
	repo.sessions = kept
	return nil
}

func newFixture() (*Service, *memoryProfiles, *memorySessions) {
	profiles := &memoryProfiles{users: map[string]*auth.User{
		"u1": {ID: "u1", Username: "alice", Email: "alice@example.com", PasswordHash: "hash", FirstName: "Alice", Role: sec.RoleAuthor},
	}}
	sessions := &memorySessions{sessions: []*auth.Session{
		{ID: "s1", UserID: "u1", TokenHash: "h1"},
		{ID: "s2", UserID: "u1", TokenHash: "h2"},
		{ID: "s3", UserID: "u2", TokenHash: "h3"},
	}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(profiles, sessions, logger), profiles, sessions
}

// # Service Tests

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("applies_only_provided_fields", func(t *testing.T) {
		service, profiles, _ := newFixture()

		user, err := service.UpdateProfile(ctx, "u1", ProfileInput{Position: pointer.To("  Staff Writer ")})
		require.NoError(t, err)

		assert.Equal(t, "Staff Writer", user.Position)
		assert.Equal(t, "Alice", user.FirstName)
		assert.Equal(t, "Staff Writer", profiles.users["u1"].Position)
	})

	t.Run("empty_string_clears", func(t *testing.T) {
		service, _, _ := newFixture()

		user, err := service.UpdateProfile(ctx, "u1", ProfileInput{FirstName: pointer.To("")})
		require.NoError(t, err)
		assert.Empty(t, user.FirstName)
	})

	t.Run("rejects_short_values", func(t *testing.T) {
		service, profiles, _ := newFixture()

		_, err := service.UpdateProfile(ctx, "u1", ProfileInput{LastName: pointer.To("Li"), Position: pointer.To("CTO")})

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		require.Len(t, appErr.Details, 2)
		assert.Equal(t, "last_name", appErr.Details[0].Field)
		assert.Equal(t, "position", appErr.Details[1].Field)
		assert.Empty(t, profiles.users["u1"].LastName)
	})
}

func TestPublicProfile_HidesPrivateFields(t *testing.T) {
	service, _, _ := newFixture()

	profile, err := service.GetPublicProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, &PublicProfile{ID: "u1", Username: "alice", FirstName: "Alice"}, profile)
}

func TestSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("list_is_scoped_to_owner", func(t *testing.T) {
		service, _, _ := newFixture()

		infos, err := service.ListSessions(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, infos, 2)
	})

	t.Run("revoke_own_session", func(t *testing.T) {
		service, _, sessions := newFixture()

		require.NoError(t, service.RevokeSession(ctx, "u1", "s2"))
		assert.Len(t, sessions.sessions, 2)
	})

	t.Run("cannot_revoke_foreign_session", func(t *testing.T) {
		service, _, sessions := newFixture()

		err := service.RevokeSession(ctx, "u1", "s3")
		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "NOT_FOUND", appErr.Code)
		assert.Len(t, sessions.sessions, 3)
	})

	t.Run("delete_account_signs_out_everywhere", func(t *testing.T) {
		service, profiles, sessions := newFixture()

		require.NoError(t, service.DeleteAccount(ctx, "u1"))
		assert.Empty(t, profiles.users)
		require.Len(t, sessions.sessions, 1)
		assert.Equal(t, "u2", sessions.sessions[0].UserID)
	})
}

// # Handler Tests

func newAccountRouter(service *Service, userID string) http.Handler {
	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if userID != "" {
				claims := &sec.AuthClaims{UserID: userID, Role: string(sec.RoleAuthor)}
				request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
			}
			next.ServeHTTP(writer, request)
		})
	})
	router.Route("/api/v1", NewHandler(service).RegisterRoutes)
	return router
}

func TestHandler_Me(t *testing.T) {
	service, _, _ := newFixture()

	recorder := httptest.NewRecorder()
	newAccountRouter(service, "").ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder = httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPatch, "/api/v1/me", strings.NewReader(`{"last_name":"Liddell"}`))
	newAccountRouter(service, "u1").ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"last_name":"Liddell"`)
	assert.NotContains(t, recorder.Body.String(), "hash")
}
