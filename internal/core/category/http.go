// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomira-press/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomira-press/internal/platform/request"
	"github.com/taibuivan/yomira-press/internal/platform/respond"
	"github.com/taibuivan/yomira-press/internal/platform/sec"
)

// Handler implements the HTTP layer for categories.
type Handler struct {
	service *Service
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches category endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Get("/categories", handler.ListCategories)
	api.Get("/categories/{categoryID}", handler.GetCategory)

	// Admin protected endpoints
	api.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireRole(sec.RoleAdmin))
		admin.Post("/categories", handler.CreateCategory)
		admin.Delete("/categories/{categoryID}", handler.DeleteCategory)
	})
}

// GET /api/v1/categories.
func (handler *Handler) ListCategories(writer http.ResponseWriter, request *http.Request) {
	categories, err := handler.service.ListCategories(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, categories)
}

// GET /api/v1/categories/{categoryID}.
func (handler *Handler) GetCategory(writer http.ResponseWriter, request *http.Request) {
	category, err := handler.service.GetCategory(request.Context(), requestutil.ID(request, "categoryID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, category)
}

type createCategoryRequest struct {
	Title string `json:"title"`
}

/*
POST /api/v1/categories.

Response:
  - 201: Category
  - 400: VALIDATION_ERROR
  - 403: ErrForbidden
  - 409: CONFLICT (title taken)
*/
func (handler *Handler) CreateCategory(writer http.ResponseWriter, request *http.Request) {
	var input createCategoryRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	category, err := handler.service.CreateCategory(request.Context(), input.Title)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, category)
}

/*
DELETE /api/v1/categories/{categoryID}.

Response:
  - 204: No Content
  - 404: ErrNotFound
  - 409: CONFLICT (still used by articles)
*/
func (handler *Handler) DeleteCategory(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteCategory(request.Context(), requestutil.ID(request, "categoryID")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
