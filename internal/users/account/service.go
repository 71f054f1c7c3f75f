// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/validate"
	"github.com/taibuivan/yomira-press/internal/users/auth"
	"github.com/taibuivan/yomira-press/pkg/slice"
)

// # Service Layer

// Service orchestrates business logic for user profiles and sessions.
type Service struct {
	profileRepository ProfileRepository
	sessionRepository auth.SessionRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependencies.
func NewService(
	profileRepo ProfileRepository,
	sessionRepo auth.SessionRepository,
	logger *slog.Logger,
) *Service {
	return &Service{
		profileRepository: profileRepo,
		sessionRepository: sessionRepo,
		logger:            logger,
	}
}

// # Profile Management

// GetProfile retrieves the full private profile of a user.
func (service *Service) GetProfile(context context.Context, userID string) (*auth.User, error) {
	return service.profileRepository.FindByID(context, userID)
}

// GetPublicProfile retrieves the public view of any live account.
func (service *Service) GetPublicProfile(context context.Context, userID string) (*PublicProfile, error) {
	user, err := service.profileRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return newPublicProfile(user), nil
}

/*
UpdateProfile applies a partial set of changes to a user's profile.

Parameters:
  - context: context.Context
  - userID: string
  - input: ProfileInput

Returns:
  - *auth.User: The updated user profile
  - error: VALIDATION_ERROR, NotFound or storage failures
*/
func (service *Service) UpdateProfile(context context.Context, userID string, input ProfileInput) (*auth.User, error) {
	input = input.normalized()

	validator := &validate.Validator{}
	if err := validator.Rules(input.Validate()); err != nil {
		return nil, apperr.Internal(err)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.profileRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	input.apply(user)

	if err := service.profileRepository.UpdateProfile(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_profile_updated", slog.String("user_id", userID))

	return user, nil
}

/*
DeleteAccount soft-deletes a user account.

Description: Flags the account as deleted and terminates all of its sessions
to force a global sign-out.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - error: Execution failures
*/
func (service *Service) DeleteAccount(context context.Context, userID string) error {
	if err := service.profileRepository.SoftDelete(context, userID); err != nil {
		return err
	}

	if err := service.sessionRepository.RevokeAll(context, userID); err != nil {
		service.logger.Warn("revoke_sessions_failed",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)
	}

	service.logger.Warn("user_account_deleted", slog.String("user_id", userID))

	return nil
}

// # Session Security

// ListSessions returns the user's active sessions, newest first.
func (service *Service) ListSessions(context context.Context, userID string) ([]SessionInfo, error) {
	sessions, err := service.sessionRepository.ListByUser(context, userID)
	if err != nil {
		return nil, err
	}

	return slice.Map(sessions, func(session *auth.Session) SessionInfo {
		return SessionInfo{
			ID:        session.ID,
			UserAgent: session.UserAgent,
			IPAddress: session.IPAddress,
			CreatedAt: session.CreatedAt,
			ExpiresAt: session.ExpiresAt,
		}
	}), nil
}

/*
RevokeSession terminates one of the user's sessions by its public ID.

Parameters:
  - context: context.Context
  - userID: string
  - sessionID: string

Returns:
  - error: NotFound when the user owns no such session
*/
func (service *Service) RevokeSession(context context.Context, userID, sessionID string) error {
	sessions, err := service.sessionRepository.ListByUser(context, userID)
	if err != nil {
		return err
	}

	for _, session := range sessions {
		if session.ID != sessionID {
			continue
		}

		if err := service.sessionRepository.Revoke(context, userID, session.TokenHash); err != nil {
			return err
		}

		service.logger.Info("user_session_revoked",
			slog.String("user_id", userID),
			slog.String("session_id", sessionID),
		)
		return nil
	}

	return apperr.NotFound("Session")
}
