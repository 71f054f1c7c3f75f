// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles profile management and session visibility for the
authenticated user.

# Architecture

  - Entities: PublicProfile, SessionInfo (DTO), ProfileInput.
  - Domain: This package depends on the auth package for the User entity
    and the session store.
*/
package account

import (
	"context"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/taibuivan/yomira-press/internal/users/auth"
	"github.com/taibuivan/yomira-press/pkg/pointer"
)

// # Domain Entities

// PublicProfile is the subset of an account visible to everyone, e.g. next
// to an article's byline.
type PublicProfile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Position  string `json:"position,omitempty"`
}

// newPublicProfile strips the private fields of a user.
func newPublicProfile(user *auth.User) *PublicProfile {
	return &PublicProfile{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Position:  user.Position,
	}
}

// SessionInfo provides a safety-mapped view of an active user session.
// It omits sensitive token hashes for transport.
type SessionInfo struct {
	ID        string    `json:"id"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// # Profile Input

// ProfileInput is a partial profile update. Nil fields are left untouched;
// an empty string clears the field.
type ProfileInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Position  *string `json:"position"`
}

// normalized trims every provided field.
func (input ProfileInput) normalized() ProfileInput {
	for _, field := range []**string{&input.FirstName, &input.LastName, &input.Position} {
		if *field != nil {
			trimmed := strings.TrimSpace(**field)
			*field = &trimmed
		}
	}
	return input
}

// Validate applies the same length rules as registration.
func (input ProfileInput) Validate() error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.FirstName, validation.Length(auth.MinNameLength, auth.MaxNameLength)),
		validation.Field(&input.LastName, validation.Length(auth.MinNameLength, auth.MaxNameLength)),
		validation.Field(&input.Position, validation.Length(auth.MinPositionLength, auth.MaxPositionLength)),
	)
}

// apply copies the provided fields onto user.
func (input ProfileInput) apply(user *auth.User) {
	user.FirstName = pointer.Fallback(input.FirstName, user.FirstName)
	user.LastName = pointer.Fallback(input.LastName, user.LastName)
	user.Position = pointer.Fallback(input.Position, user.Position)
}

// # Repository Contracts

// ProfileRepository defines the persistence contract for profile data.
type ProfileRepository interface {
	/*
		FindByID retrieves a live user record by its unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		UpdateProfile writes the names and position of a live account.

		Parameters:
		  - context: context.Context
		  - user: *auth.User (UpdatedAt is refreshed in place)

		Returns:
		  - error: apperr.NotFound or storage failures
	*/
	UpdateProfile(context context.Context, user *auth.User) error

	/*
		SoftDelete flags an account as logically deleted.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: apperr.NotFound if already deleted
	*/
	SoftDelete(context context.Context, id string) error
}
