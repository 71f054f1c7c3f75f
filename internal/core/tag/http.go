// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/yomira-press/internal/platform/request"
	"github.com/taibuivan/yomira-press/internal/platform/respond"
)

// Handler exposes the read-only tag vocabulary.
type Handler struct {
	service *Service
}

// NewHandler constructs a tag [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the public tag endpoints to the API router.
// Tags are only ever created as a side effect of article writes.
func (handler *Handler) RegisterRoutes(api chi.Router) {
	api.Get("/tags", handler.listTags)
	api.Get("/tags/{name}", handler.getTag)
}

/*
GET /api/v1/tags.

Response:
  - 200: []Tag: Every tag with its ready-article count
*/
func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	tags, err := handler.service.ListTags(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tags)
}

/*
GET /api/v1/tags/{name}.

Response:
  - 200: Tag
  - 404: ErrNotFound
*/
func (handler *Handler) getTag(writer http.ResponseWriter, request *http.Request) {
	tag, err := handler.service.GetTag(request.Context(), requestutil.Param(request, "name"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, tag)
}
