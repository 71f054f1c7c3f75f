// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"log/slog"

	"github.com/taibuivan/yomira-press/internal/platform/validate"
)

// # Service Layer

// Service exposes tag parsing backed by the tag store.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

/*
Normalize parses a raw comma-separated string and returns the matching tags.

Description: WRITES. Every canonical name that has no row yet is inserted.
An empty or blank input returns an empty slice without touching the store.
Calling it twice with the same input yields the same tags and creates nothing
the second time. Article writes run the same [Parse] then [Service.Resolve]
steps with their own validator, so tag errors are reported alongside the
article's field errors.

Parameters:
  - context: context.Context
  - raw: string

Returns:
  - []*Tag: One tag per distinct canonical name
  - error: VALIDATION_ERROR for out-of-range names, or storage failures
*/
func (service *Service) Normalize(context context.Context, raw string) ([]*Tag, error) {
	validator := &validate.Validator{}
	names := Parse(validator, raw)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return service.Resolve(context, names)
}

/*
Resolve maps already canonical, de-duplicated names to tags.

Description: WRITES. Missing tags are created through the store's upsert.

Parameters:
  - context: context.Context
  - names: []string (output of [ParseNames])

Returns:
  - []*Tag: Tags in the order of names
  - error: Storage failures
*/
func (service *Service) Resolve(context context.Context, names []string) ([]*Tag, error) {
	tags := make([]*Tag, 0, len(names))

	for _, name := range names {
		tag, err := service.repo.FindOrCreate(context, name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}

	if len(tags) > 0 {
		service.logger.Debug("tags_resolved", slog.Int("count", len(tags)))
	}

	return tags, nil
}

// ListTags returns every tag with its ready-article count.
func (service *Service) ListTags(context context.Context) ([]*Tag, error) {
	return service.repo.List(context)
}

// GetTag returns a tag by name. The name is canonicalized first, so
// "Machine Learning" finds "machine-learning".
func (service *Service) GetTag(context context.Context, name string) (*Tag, error) {
	return service.repo.FindByName(context, Canonical(name))
}
