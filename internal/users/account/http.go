// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomira-press/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomira-press/internal/platform/request"
	"github.com/taibuivan/yomira-press/internal/platform/respond"
	"github.com/taibuivan/yomira-press/internal/platform/validate"
)

// Handler implements the HTTP layer for user account management.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// RegisterRoutes attaches the account endpoints to the API router.
//
// Everything under /me requires an authenticated caller; public profiles
// under /users do not.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Get("/users/{userID}", handler.getUserProfile)

	api.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/me", handler.getMe)
		r.Patch("/me", handler.updateMe)
		r.Delete("/me", handler.deleteMe)

		r.Get("/me/sessions", handler.listSessions)
		r.Delete("/me/sessions/{sessionID}", handler.revokeSession)
	})
}

// # User Profile Endpoints

/*
GET /api/v1/me.

Response:
  - 200: User: Fully hydrated user profile
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
PATCH /api/v1/me.

Request:
  - body: ProfileInput (Partial JSON)

Response:
  - 200: User: The updated profile
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) updateMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ProfileInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
DELETE /api/v1/me.

Response:
  - 204: No Content: Account deleted, every session revoked
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) deleteMe(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.DeleteAccount(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
GET /api/v1/users/{userID}.

Response:
  - 200: PublicProfile
  - 404: ErrNotFound
*/
func (handler *Handler) getUserProfile(writer http.ResponseWriter, request *http.Request) {
	profile, err := handler.accountService.GetPublicProfile(request.Context(), requestutil.ID(request, "userID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profile)
}

// # Session Endpoints

/*
GET /api/v1/me/sessions.

Response:
  - 200: []SessionInfo: Active device sessions, newest first
*/
func (handler *Handler) listSessions(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	sessions, err := handler.accountService.ListSessions(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, sessions)
}

/*
DELETE /api/v1/me/sessions/{sessionID}.

Response:
  - 204: No Content: Session terminated
  - 404: ErrNotFound: No such session for this user
*/
func (handler *Handler) revokeSession(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.RevokeSession(request.Context(), userID, requestutil.ID(request, "sessionID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
