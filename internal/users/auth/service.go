// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/sec"
	"github.com/taibuivan/yomira-press/internal/platform/validate"
	"github.com/taibuivan/yomira-press/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - username: The username of the account.
	//   - role: The role of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// errInvalidCredentials is returned for unknown logins and wrong passwords alike.
var errInvalidCredentials = apperr.Unauthorized("Invalid login credentials")

// Service implements user authentication use cases.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	logger            *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	tokenProv TokenProvider,
	logger *slog.Logger,
) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
		logger:            logger,
	}
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Every rule is evaluated before anything is written, so the
caller sees all problems at once. A taken username and a taken email are
reported on their own fields and may both fire. New accounts are authors.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: VALIDATION_ERROR, CONFLICT on a lost race, or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	input = input.normalized()

	validator := &validate.Validator{}
	if err := validator.Rules(input.Validate()); err != nil {
		return nil, apperr.Internal(err)
	}

	if input.Username != "" {
		taken, err := service.userRepository.UsernameTaken(context, input.Username)
		if err != nil {
			return nil, err
		}
		validator.Custom(FieldUsername, taken, "A user with that username already exists.")
	}

	if input.Email != "" {
		taken, err := service.userRepository.EmailTaken(context, input.Email)
		if err != nil {
			return nil, err
		}
		validator.Custom(FieldEmail, taken, "A user with that email already exists.")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Position:     input.Position,
		Role:         sec.RoleAuthor,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login     string // Can be Username or Email
	Password  string
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

/*
Login validates user credentials and issues security tokens.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session identifiers
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	user, err := service.userRepository.FindByLogin(context, input.Login)
	if err != nil {
		if appErr := apperr.As(err); appErr != nil && appErr.Code == "NOT_FOUND" {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		service.logger.Info("login_rejected", slog.String("user_id", user.ID))
		return nil, errInvalidCredentials
	}

	session, err := service.openSession(context, user, input.UserAgent, input.IPAddress)
	if err != nil {
		return nil, err
	}

	service.logger.Info("user_logged_in", slog.String("user_id", user.ID))

	return session, nil
}

/*
Logout revokes the session behind a refresh token.

Description: Idempotent. An unknown, expired or already revoked token is
treated as a successful logout.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - err: Revocation failures
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	tokenHash := sec.HashToken(refreshToken)

	session, err := service.sessionRepository.FindByTokenHash(context, tokenHash)
	if err != nil {
		return nil
	}

	if err := service.sessionRepository.Revoke(context, session.UserID, tokenHash); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	return nil
}

// # Session Management

/*
RefreshSession implements refresh token rotation.

Description: The presented token is revoked before a new pair is issued, so
each refresh token works exactly once.

Parameters:
  - context: context.Context
  - refreshToken: string
  - userAgent: string
  - ipAddress: string

Returns:
  - *LoginSession: New session credentials
  - err: Unauthorized or storage failures
*/
func (service *Service) RefreshSession(context context.Context, refreshToken, userAgent, ipAddress string) (*LoginSession, error) {
	tokenHash := sec.HashToken(refreshToken)

	session, err := service.sessionRepository.FindByTokenHash(context, tokenHash)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid or expired refresh token")
	}

	if err := service.sessionRepository.Revoke(context, session.UserID, tokenHash); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_revoke_failed: %w", err)
	}

	user, err := service.userRepository.FindByID(context, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("User not found or deleted")
	}

	return service.openSession(context, user, userAgent, ipAddress)
}

// openSession mints an access token and a fresh refresh-token session.
func (service *Service) openSession(context context.Context, user *User, userAgent, ipAddress string) (*LoginSession, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, string(user.Role), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	now := time.Now()
	session := &Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: userAgent,
		IPAddress: ipAddress,
		ExpiresAt: now.Add(RefreshTokenTTL),
		CreatedAt: now,
	}

	if err := service.sessionRepository.Create(context, session); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: session.ExpiresAt,
		User:                  user,
	}, nil
}

/*
ChangePassword lets an authenticated user rotate their password.

Description: Every other session is revoked afterwards; the session behind
currentRefreshToken (if any) survives.

Parameters:
  - context: context.Context
  - userID: string
  - input: ChangePasswordInput
  - currentRefreshToken: string (may be empty)

Returns:
  - err: VALIDATION_ERROR, Unauthorized or storage failures
*/
func (service *Service) ChangePassword(context context.Context, userID string, input ChangePasswordInput, currentRefreshToken string) error {
	validator := &validate.Validator{}
	if err := validator.Rules(input.Validate()); err != nil {
		return apperr.Internal(err)
	}
	if err := validator.Err(); err != nil {
		return err
	}

	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		return err
	}

	if !sec.CheckPasswordHash(input.CurrentPassword, user.PasswordHash) {
		return apperr.Unauthorized("Current password is incorrect")
	}

	hashedPassword, err := sec.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("auth_service_change_password_hash_failed: %w", err)
	}

	if err := service.userRepository.UpdatePassword(context, userID, hashedPassword); err != nil {
		return err
	}

	keep := ""
	if currentRefreshToken != "" {
		keep = sec.HashToken(currentRefreshToken)
	}
	if err := service.sessionRepository.RevokeOthers(context, userID, keep); err != nil {
		service.logger.Warn("revoke_other_sessions_failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	service.logger.Info("user_password_changed", slog.String("user_id", userID))

	return nil
}
