// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the duration a JWT access token remains valid.
	AccessTokenTTL = 15 * time.Minute

	// RefreshTokenTTL is the duration a session/refresh token remains valid.
	RefreshTokenTTL = 30 * 24 * time.Hour

	// RefreshTokenLength is the byte length of the random secure token.
	RefreshTokenLength = 32
)

// # Registration Rules

const (
	MinUsernameLength = 5
	MaxUsernameLength = 255
	MinNameLength     = 3
	MaxNameLength     = 255
	MinPositionLength = 5
	MaxPositionLength = 255
	MinPasswordLength = 8
	MaxPasswordLength = 128
)
