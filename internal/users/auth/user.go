// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the user identity and session management layer.

It defines the core domain entities (User, Session) and logic for registration,
login and refresh-token rotation.

# Architecture

Accounts live in PostgreSQL; sessions live in Redis keyed by the SHA-256 of
their refresh token, so a leaked Redis snapshot reveals no usable token.
*/
package auth

import (
	"time"

	"github.com/taibuivan/yomira-press/internal/platform/sec"
)

// # Domain Entities

// User represents a registered account of the publishing platform.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	FirstName    string       `json:"first_name,omitempty"`
	LastName     string       `json:"last_name,omitempty"`
	Position     string       `json:"position,omitempty"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Session represents an active refresh-token session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"token_hash"` // Stored server-side only; never rendered.
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername             = "username"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "password_confirmation"
	FieldFirstName            = "first_name"
	FieldLastName             = "last_name"
	FieldPosition             = "position"
	FieldLogin                = "login"
	FieldCurrentPassword      = "current_password"
	FieldNewPassword          = "new_password"
	FieldAccessToken          = "access_token"
	FieldTokenType            = "token_type"
	FieldExpiresIn            = "expires_in"
	FieldUser                 = "user"
	FieldMessage              = "message"
)
