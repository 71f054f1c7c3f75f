// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/yomira-press/internal/platform/validate"
	"github.com/taibuivan/yomira-press/pkg/uuid"
)

// Service orchestrates the category catalogue.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListCategories returns every category ordered by title.
func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.List(context)
}

// GetCategory returns a single category.
func (service *Service) GetCategory(context context.Context, id string) (*Category, error) {
	return service.repo.FindByID(context, id)
}

// Exists reports whether a category exists.
func (service *Service) Exists(context context.Context, id string) (bool, error) {
	return service.repo.Exists(context, id)
}

/*
CreateCategory adds a category.

Parameters:
  - context: context.Context
  - title: string

Returns:
  - *Category: The persisted category
  - error: VALIDATION_ERROR, CONFLICT on a duplicate title
*/
func (service *Service) CreateCategory(context context.Context, title string) (*Category, error) {
	title = strings.TrimSpace(title)

	validator := &validate.Validator{}
	validator.MinLen(FieldTitle, title, MinTitleLength).
		MaxLen(FieldTitle, title, MaxTitleLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	category := &Category{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: time.Now().UTC(),
	}

	if err := service.repo.Create(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_created",
		slog.String("category_id", category.ID),
		slog.String("title", category.Title),
	)

	return category, nil
}

// DeleteCategory removes a category that no article uses.
func (service *Service) DeleteCategory(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("category_deleted", slog.String("category_id", id))

	return nil
}
