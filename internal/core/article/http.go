// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/yomira-press/internal/platform/middleware"
	requestutil "github.com/taibuivan/yomira-press/internal/platform/request"
	"github.com/taibuivan/yomira-press/internal/platform/respond"
	"github.com/taibuivan/yomira-press/internal/platform/sec"
	"github.com/taibuivan/yomira-press/internal/platform/validate"
	"github.com/taibuivan/yomira-press/pkg/pagination"
)

const (
	FieldIsReady   = "is_ready"
	FieldIsMutable = "is_mutable"
)

// # Handler Implementation

// Handler implements the HTTP layer for articles and their readiness.
type Handler struct {
	service *Service
}

// NewHandler constructs a new article [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches article endpoints to the root API router.
// Browsing routes live under /categories, /tags and /me as well.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	// Discovery endpoints (ready articles only)
	api.Get("/articles", handler.SearchArticles)
	api.Get("/articles/{articleID}", handler.GetArticle)
	api.Get("/categories/{categoryID}/articles", handler.ListByCategory)
	api.Get("/tags/{name}/articles", handler.ListByTag)

	// Authoring endpoints (author role, ownership checked in the service)
	api.With(middleware.RequireAuth).Get("/me/articles", handler.ListMine)
	api.Group(func(author chi.Router) {
		author.Use(middleware.RequireRole(sec.RoleAuthor))
		author.Post("/articles", handler.CreateArticle)
		author.Patch("/articles/{articleID}", handler.UpdateArticle)
		author.Delete("/articles/{articleID}", handler.DeleteArticle)
		author.Post("/articles/{articleID}/ready", handler.RequestReady)
		author.Post("/articles/{articleID}/draft", handler.RequestDraft)
		author.Get("/articles/{articleID}/mutable", handler.CheckMutable)
	})
}

// # Discovery

/*
GET /api/v1/articles.

Request:
  - q: string (Case-insensitive title substring)
  - page, limit: int

Response:
  - 200: []Article: Paginated ready articles
*/
func (handler *Handler) SearchArticles(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	articles, total, err := handler.service.Search(request.Context(), request.URL.Query().Get("q"), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, articles, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/articles/{articleID}.

Description: Drafts are only returned to their author.

Response:
  - 200: Article
  - 404: ErrNotFound
*/
func (handler *Handler) GetArticle(writer http.ResponseWriter, request *http.Request) {
	viewerID := ""
	if claims := requestutil.Claims(request); claims != nil {
		viewerID = claims.UserID
	}

	article, err := handler.service.GetArticle(request.Context(), viewerID, requestutil.ID(request, "articleID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, article)
}

// GET /api/v1/categories/{categoryID}/articles.
func (handler *Handler) ListByCategory(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	articles, total, err := handler.service.ListByCategory(request.Context(), requestutil.ID(request, "categoryID"), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, articles, pagination.NewMeta(params.Page, params.Limit, total))
}

// GET /api/v1/tags/{name}/articles.
func (handler *Handler) ListByTag(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	articles, total, err := handler.service.ListByTag(request.Context(), requestutil.Param(request, "name"), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, articles, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/me/articles.

Description: The author's private dashboard, drafts included.

Response:
  - 200: []Article
  - 401: ErrUnauthorized
*/
func (handler *Handler) ListMine(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)

	articles, total, err := handler.service.ListMine(request.Context(), userID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, articles, pagination.NewMeta(params.Page, params.Limit, total))
}

// # Authoring

// createArticleRequest is the inbound JSON for a new article.
type createArticleRequest struct {
	Title      string `json:"title"`
	CategoryID string `json:"category_id"`
	Tags       string `json:"tags"`
}

/*
POST /api/v1/articles.

Description: WRITES TAGS. Creates a Draft article; unknown tags in the
comma-separated "tags" field are created.

Response:
  - 201: Article
  - 400: VALIDATION_ERROR
  - 401: ErrUnauthorized
*/
func (handler *Handler) CreateArticle(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createArticleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.CreateArticle(request.Context(), userID, Draft{
		Title:      input.Title,
		CategoryID: input.CategoryID,
		Tags:       input.Tags,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, article)
}

// updateArticleRequest is the inbound JSON for a partial update.
type updateArticleRequest struct {
	Title      *string        `json:"title"`
	CategoryID *string        `json:"category_id"`
	Tags       *string        `json:"tags"`
	OnSuccess  RedirectTarget `json:"on_success"`
}

/*
PATCH /api/v1/articles/{articleID}.

Description: WRITES TAGS when "tags" is present. The "on_success" field picks
where the client goes next (article, sections, dashboard) and is returned as a
Location header and a "redirect" field.

Response:
  - 200: Article with redirect
  - 400: VALIDATION_ERROR
  - 403: ErrForbidden
  - 404: ErrNotFound
  - 409: ARTICLE_READY
*/
func (handler *Handler) UpdateArticle(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateArticleRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := input.OnSuccess.Validate(&validate.Validator{}).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	article, err := handler.service.UpdateArticle(request.Context(), userID, requestutil.ID(request, "articleID"), Patch{
		Title:      input.Title,
		CategoryID: input.CategoryID,
		Tags:       input.Tags,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Redirect(writer, article, input.OnSuccess.Location(article.ID))
}

/*
DELETE /api/v1/articles/{articleID}.

Response:
  - 204: No Content
  - 403: ErrForbidden
  - 404: ErrNotFound
*/
func (handler *Handler) DeleteArticle(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteArticle(request.Context(), userID, requestutil.ID(request, "articleID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// # Readiness

/*
POST /api/v1/articles/{articleID}/ready.

Response:
  - 200: {"is_ready": true}
  - 403: ErrForbidden
  - 404: ErrNotFound
  - 422: NO_SECTIONS, MISSING_SECTION_ONE, NON_CONSECUTIVE_NUMBERS
*/
func (handler *Handler) RequestReady(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RequestReady(request.Context(), requestutil.ID(request, "articleID"), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{FieldIsReady: true})
}

/*
POST /api/v1/articles/{articleID}/draft.

Response:
  - 200: {"is_ready": false}
  - 403: ErrForbidden
  - 404: ErrNotFound
*/
func (handler *Handler) RequestDraft(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.RequestDraft(request.Context(), requestutil.ID(request, "articleID"), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{FieldIsReady: false})
}

/*
GET /api/v1/articles/{articleID}/mutable.

Response:
  - 200: {"is_mutable": bool}
  - 403: ErrForbidden
  - 404: ErrNotFound
*/
func (handler *Handler) CheckMutable(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	articleID := requestutil.ID(request, "articleID")
	if _, err := handler.service.Authorize(request.Context(), articleID, userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	mutable, err := handler.service.CheckMutable(request.Context(), articleID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]bool{FieldIsMutable: mutable})
}
