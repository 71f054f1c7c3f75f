// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the live (not soft-deleted) account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByLogin returns the account whose username or email equals login.

		Parameters:
		  - context: context.Context
		  - login: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound if missing
	*/
	FindByLogin(context context.Context, login string) (*User, error)

	// UsernameTaken reports whether any account (deleted ones included) owns the username.
	UsernameTaken(context context.Context, username string) (bool, error)

	// EmailTaken reports whether any account (deleted ones included) owns the email.
	EmailTaken(context context.Context, email string) (bool, error)

	/*
		Create persists a brand-new user account.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict on a unique violation, or storage failures
	*/
	Create(context context.Context, user *User) error

	/*
		UpdatePassword replaces only the user's password hash.

		Parameters:
		  - context: context.Context
		  - userID: string
		  - newHash: string

		Returns:
		  - error: Persistence failures
	*/
	UpdatePassword(context context.Context, userID, newHash string) error
}

// # Session Data Access

// SessionRepository defines the data access contract for refresh-token sessions.
type SessionRepository interface {

	/*
		Create stores a new session until its ExpiresAt.

		Parameters:
		  - context: context.Context
		  - session: *Session

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, session *Session) error

	/*
		FindByTokenHash returns the live session matching the given token hash.

		Parameters:
		  - context: context.Context
		  - tokenHash: string

		Returns:
		  - *Session: Hydrated entity
		  - error: apperr.NotFound when expired or revoked
	*/
	FindByTokenHash(context context.Context, tokenHash string) (*Session, error)

	// ListByUser returns the live sessions of a user, newest first.
	ListByUser(context context.Context, userID string) ([]*Session, error)

	// Revoke deletes one session. Revoking an unknown session is not an error.
	Revoke(context context.Context, userID, tokenHash string) error

	// RevokeAll deletes every session of a user.
	RevokeAll(context context.Context, userID string) error

	// RevokeOthers deletes every session of a user except the one identified by keepTokenHash.
	RevokeOthers(context context.Context, userID, keepTokenHash string) error
}
