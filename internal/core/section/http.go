// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomira-press/internal/core/article"
	"github.com/taibuivan/yomira-press/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomira-press/internal/platform/request"
	"github.com/taibuivan/yomira-press/internal/platform/respond"
	"github.com/taibuivan/yomira-press/internal/platform/sec"
	"github.com/taibuivan/yomira-press/internal/platform/validate"
)

// # Handler Implementation

// Handler implements the HTTP layer for sections.
type Handler struct {
	service  *Service
	articles ArticleGate
}

// NewHandler constructs a new section [Handler].
func NewHandler(service *Service, articles ArticleGate) *Handler {
	return &Handler{service: service, articles: articles}
}

// RegisterRoutes attaches section endpoints to the root API router.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	// Reading endpoints (draft articles are visible to their author only)
	api.Get("/articles/{articleID}/sections", handler.ListSections)
	api.Get("/articles/{articleID}/sections/by-slug/{slug}", handler.GetSectionBySlug)
	api.Get("/articles/{articleID}/sections/{sectionID}", handler.GetSection)

	// Authoring endpoints
	api.Group(func(author chi.Router) {
		author.Use(middleware.RequireRole(sec.RoleAuthor))
		author.Post("/articles/{articleID}/sections", handler.CreateSection)
		author.Post("/articles/{articleID}/sections/validate", handler.ValidateSection)
		author.Patch("/articles/{articleID}/sections/{sectionID}", handler.UpdateSection)
		author.Delete("/articles/{articleID}/sections/{sectionID}", handler.DeleteSection)
	})
}

// viewerID returns the authenticated user's id, or "" for anonymous readers.
func viewerID(request *http.Request) string {
	if claims := requestutil.Claims(request); claims != nil {
		return claims.UserID
	}
	return ""
}

// # Reading

/*
GET /api/v1/articles/{articleID}/sections.

Response:
  - 200: []Section: Ordered by number, with content_html
  - 404: ErrNotFound
*/
func (handler *Handler) ListSections(writer http.ResponseWriter, request *http.Request) {
	sections, err := handler.service.ListSections(request.Context(), viewerID(request), requestutil.ID(request, "articleID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sections)
}

// GET /api/v1/articles/{articleID}/sections/{sectionID}.
func (handler *Handler) GetSection(writer http.ResponseWriter, request *http.Request) {
	section, err := handler.service.GetSection(request.Context(), viewerID(request),
		requestutil.ID(request, "articleID"), requestutil.ID(request, "sectionID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, section)
}

// GET /api/v1/articles/{articleID}/sections/by-slug/{slug}.
func (handler *Handler) GetSectionBySlug(writer http.ResponseWriter, request *http.Request) {
	section, err := handler.service.GetSectionBySlug(request.Context(), viewerID(request),
		requestutil.ID(request, "articleID"), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, section)
}

// # Authoring

// sectionRequest is the inbound JSON for creating a section.
type sectionRequest struct {
	Title   string `json:"title"`
	Number  int    `json:"number"`
	Content string `json:"content"`
}

/*
POST /api/v1/articles/{articleID}/sections.

Response:
  - 201: Section
  - 400: VALIDATION_ERROR (all field and ordering failures together)
  - 403: ErrForbidden
  - 404: ErrNotFound
  - 409: ARTICLE_READY or CONFLICT
*/
func (handler *Handler) CreateSection(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input sectionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	section, err := handler.service.CreateSection(request.Context(), userID, requestutil.ID(request, "articleID"), Input{
		Title:   input.Title,
		Number:  input.Number,
		Content: input.Content,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, section)
}

// validateRequest is a dry-run candidate. SectionID selects edit semantics.
type validateRequest struct {
	SectionID string `json:"section_id"`
	Title     string `json:"title"`
	Number    int    `json:"number"`
}

/*
POST /api/v1/articles/{articleID}/sections/validate.

Description: Runs the checks of a create (or of an edit when section_id is
set) without writing anything.

Response:
  - 200: {"valid": true}
  - 400: VALIDATION_ERROR
  - 409: ARTICLE_READY
*/
func (handler *Handler) ValidateSection(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input validateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	articleID := requestutil.ID(request, "articleID")
	if _, err := handler.articles.Authorize(request.Context(), articleID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	candidate := Candidate{Title: input.Title, Number: input.Number}
	if input.SectionID == "" {
		err = handler.service.ValidateNewSection(request.Context(), articleID, candidate)
	} else {
		err = handler.service.ValidateEditedSection(request.Context(), articleID, input.SectionID, candidate)
	}
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{FieldValid: true})
}

// updateSectionRequest is the inbound JSON for a partial update.
type updateSectionRequest struct {
	Title     *string                `json:"title"`
	Number    *int                   `json:"number"`
	Content   *string                `json:"content"`
	OnSuccess article.RedirectTarget `json:"on_success"`
}

/*
PATCH /api/v1/articles/{articleID}/sections/{sectionID}.

Description: "on_success" (article, sections, dashboard) picks the next
location, returned as a Location header and a "redirect" field. It defaults
to the article's section list.

Response:
  - 200: Section with redirect
  - 400: VALIDATION_ERROR
  - 409: ARTICLE_READY or CONFLICT
*/
func (handler *Handler) UpdateSection(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateSectionRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	target := input.OnSuccess
	if target == "" {
		target = article.RedirectSections
	}
	if err := target.Validate(&validate.Validator{}).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	articleID := requestutil.ID(request, "articleID")
	section, err := handler.service.UpdateSection(request.Context(), userID, articleID, requestutil.ID(request, "sectionID"), Patch{
		Title:   input.Title,
		Number:  input.Number,
		Content: input.Content,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, section, target.Location(articleID))
}

// DELETE /api/v1/articles/{articleID}/sections/{sectionID}.
func (handler *Handler) DeleteSection(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.DeleteSection(request.Context(), userID,
		requestutil.ID(request, "articleID"), requestutil.ID(request, "sectionID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
