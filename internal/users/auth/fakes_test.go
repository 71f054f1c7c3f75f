// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
)

// # In-Memory Fakes

type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*User
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: make(map[string]*User)}
}

func (repo *memoryUsers) FindByID(_ context.Context, id string) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if user, ok := repo.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (repo *memoryUsers) FindByLogin(_ context.Context, login string) (*User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, user := range repo.users {
		if user.Username == login || user.Email == login {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *memoryUsers) UsernameTaken(_ context.Context, username string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, user := range repo.users {
		if user.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (repo *memoryUsers) EmailTaken(_ context.Context, email string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, user := range repo.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (repo *memoryUsers) Create(_ context.Context, user *User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	repo.users[user.ID] = &copied
	return nil
}

func (repo *memoryUsers) UpdatePassword(_ context.Context, userID, newHash string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.users[userID]
	if !ok {
		return apperr.NotFound("User")
	}
	stored.PasswordHash = newHash
	return nil
}

type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[string]*Session)}
}

func (repo *memorySessions) Create(_ context.Context, session *Session) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	copied := *session
	repo.sessions[session.TokenHash] = &copied
	return nil
}

func (repo *memorySessions) FindByTokenHash(_ context.Context, tokenHash string) (*Session, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if session, ok := repo.sessions[tokenHash]; ok {
		copied := *session
		return &copied, nil
	}
	return nil, apperr.NotFound("Session")
}

func (repo *memorySessions) ListByUser(_ context.Context, userID string) ([]*Session, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	sessions := make([]*Session, 0)
	for _, session := range repo.sessions {
		if session.UserID == userID {
			copied := *session
			sessions = append(sessions, &copied)
		}
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].CreatedAt.After(sessions[j].CreatedAt) })
	return sessions, nil
}

func (repo *memorySessions) Revoke(_ context.Context, _ string, tokenHash string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.sessions, tokenHash)
	return nil
}

func (repo *memorySessions) RevokeAll(_ context.Context, userID string) error {
	return repo.RevokeOthers(context.Background(), userID, "")
}

func (repo *memorySessions) RevokeOthers(_ context.Context, userID, keepTokenHash string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for hash, session := range repo.sessions {
		if session.UserID == userID && hash != keepTokenHash {
			delete(repo.sessions, hash)
		}
	}
	return nil
}

func (repo *memorySessions) count(userID string) int {
	sessions, _ := repo.ListByUser(context.Background(), userID)
	return len(sessions)
}

type stubTokens struct{}

func (stubTokens) GenerateAccessToken(userID, _, role string, _ time.Duration) (string, error) {
	return "access:" + userID + ":" + role, nil
}

func newTestService() (*Service, *memoryUsers, *memorySessions) {
	users := newMemoryUsers()
	sessions := newMemorySessions()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(users, sessions, stubTokens{}, logger), users, sessions
}

func validRegistration() RegisterInput {
	return RegisterInput{
		Username:             "alice",
		Email:                "Alice@Example.com ",
		FirstName:            "Alice",
		Position:             "Editor",
		Password:             "s3cret-pass",
		PasswordConfirmation: "s3cret-pass",
	}
}
