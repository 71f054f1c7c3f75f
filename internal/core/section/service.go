// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/yomira-press/internal/core/article"
	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/validate"
	"github.com/taibuivan/yomira-press/pkg/slug"
	"github.com/taibuivan/yomira-press/pkg/uuid"
)

// # Collaborators

// ArticleGate exposes the parts of the article service sections depend on.
type ArticleGate interface {
	Authorize(context context.Context, articleID, actorID string) (*article.Article, error)
	GetArticle(context context.Context, viewerID, articleID string) (*article.Article, error)
	CheckMutable(context context.Context, articleID string) (bool, error)
}

// # Service Layer

// Service orchestrates section authoring and reading.
type Service struct {
	repo     Repository
	articles ArticleGate
	renderer *Renderer
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a new [Service] with its collaborators.
func NewService(repo Repository, articles ArticleGate, renderer *Renderer, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		articles: articles,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// # Ordering Checks

/*
ValidateNewSection checks a candidate for a new section of an article.

Description: A Ready article refuses with ARTICLE_READY whatever the
candidate holds. Otherwise the field and ordering checks are collected and
returned together as a single VALIDATION_ERROR.

Parameters:
  - context: context.Context
  - articleID: string
  - candidate: Candidate

Returns:
  - error: ErrNotFound, ErrArticleReady, VALIDATION_ERROR or nil
*/
func (service *Service) ValidateNewSection(context context.Context, articleID string, candidate Candidate) error {
	if err := service.ensureMutable(context, articleID); err != nil {
		return err
	}

	sections, err := service.repo.ListByArticle(context, articleID)
	if err != nil {
		return err
	}

	return ValidateCandidate(&validate.Validator{}, candidate, NewSiblings(sections)).Err()
}

/*
ValidateEditedSection checks the new values of an existing section.

Description: Same as [Service.ValidateNewSection], except the section's own
current number and title are not counted as taken. A sectionID that is not
one of the article's sections is NOT_FOUND.

Parameters:
  - context: context.Context
  - articleID: string
  - sectionID: string
  - candidate: Candidate

Returns:
  - error: ErrNotFound, ErrArticleReady, VALIDATION_ERROR or nil
*/
func (service *Service) ValidateEditedSection(context context.Context, articleID, sectionID string, candidate Candidate) error {
	if err := service.ensureMutable(context, articleID); err != nil {
		return err
	}

	sections, err := service.repo.ListByArticle(context, articleID)
	if err != nil {
		return err
	}

	for _, current := range sections {
		if current.ID == sectionID {
			siblings := NewSiblings(sections).Without(current.Number, current.Title)
			return ValidateCandidate(&validate.Validator{}, candidate, siblings).Err()
		}
	}

	return apperr.NotFound("Section")
}

// # Authoring

/*
CreateSection adds a section to a Draft article.

Parameters:
  - context: context.Context
  - actorID: string
  - articleID: string
  - input: Input

Returns:
  - *Section: The persisted section with rendered content
  - error: ErrNotFound, ErrNotAuthor, ErrArticleReady, VALIDATION_ERROR, CONFLICT
*/
func (service *Service) CreateSection(context context.Context, actorID, articleID string, input Input) (*Section, error) {
	if _, err := service.articles.Authorize(context, articleID, actorID); err != nil {
		return nil, err
	}

	candidate := Candidate{Title: strings.TrimSpace(input.Title), Number: input.Number}
	if err := service.ValidateNewSection(context, articleID, candidate); err != nil {
		return nil, err
	}

	now := service.now().UTC()
	section := &Section{
		ID:          uuid.New(),
		ArticleID:   articleID,
		Title:       candidate.Title,
		Number:      candidate.Number,
		Content:     input.Content,
		Slug:        slugFor(candidate),
		PublishedAt: now,
		UpdatedAt:   now,
	}

	if err := service.repo.Create(context, section); err != nil {
		return nil, err
	}

	service.logger.Info("section_created",
		slog.String("section_id", section.ID),
		slog.String("article_id", articleID),
		slog.Int("number", section.Number),
	)

	return section, service.renderer.hydrate(section)
}

/*
UpdateSection applies a partial update to a section of a Draft article.

Parameters:
  - context: context.Context
  - actorID: string
  - articleID: string
  - sectionID: string
  - patch: Patch

Returns:
  - *Section: The updated section with rendered content
  - error: ErrNotFound, ErrNotAuthor, ErrArticleReady, VALIDATION_ERROR, CONFLICT
*/
func (service *Service) UpdateSection(context context.Context, actorID, articleID, sectionID string, patch Patch) (*Section, error) {
	if _, err := service.articles.Authorize(context, articleID, actorID); err != nil {
		return nil, err
	}

	section, err := service.repo.FindByID(context, articleID, sectionID)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		section.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Number != nil {
		section.Number = *patch.Number
	}
	if patch.Content != nil {
		section.Content = *patch.Content
	}

	candidate := Candidate{Title: section.Title, Number: section.Number}
	if err := service.ValidateEditedSection(context, articleID, sectionID, candidate); err != nil {
		return nil, err
	}

	section.Slug = slugFor(candidate)

	if err := service.repo.Update(context, section); err != nil {
		return nil, err
	}

	service.logger.Info("section_updated",
		slog.String("section_id", section.ID),
		slog.String("article_id", articleID),
		slog.Int("number", section.Number),
	)

	return section, service.renderer.hydrate(section)
}

// DeleteSection removes a section of a Draft article.
func (service *Service) DeleteSection(context context.Context, actorID, articleID, sectionID string) error {
	if _, err := service.articles.Authorize(context, articleID, actorID); err != nil {
		return err
	}

	if err := service.ensureMutable(context, articleID); err != nil {
		return err
	}

	if err := service.repo.Delete(context, articleID, sectionID); err != nil {
		return err
	}

	service.logger.Info("section_deleted",
		slog.String("section_id", sectionID),
		slog.String("article_id", articleID),
	)

	return nil
}

// # Reading

// ListSections returns the sections of an article the viewer may read,
// ordered by number.
func (service *Service) ListSections(context context.Context, viewerID, articleID string) ([]*Section, error) {
	if _, err := service.articles.GetArticle(context, viewerID, articleID); err != nil {
		return nil, err
	}

	sections, err := service.repo.ListByArticle(context, articleID)
	if err != nil {
		return nil, err
	}

	for _, section := range sections {
		if err := service.renderer.hydrate(section); err != nil {
			return nil, err
		}
	}

	return sections, nil
}

// GetSection returns one section of an article the viewer may read.
func (service *Service) GetSection(context context.Context, viewerID, articleID, sectionID string) (*Section, error) {
	if _, err := service.articles.GetArticle(context, viewerID, articleID); err != nil {
		return nil, err
	}

	section, err := service.repo.FindByID(context, articleID, sectionID)
	if err != nil {
		return nil, err
	}

	return section, service.renderer.hydrate(section)
}

// GetSectionBySlug returns a section by its slug within an article.
func (service *Service) GetSectionBySlug(context context.Context, viewerID, articleID, sectionSlug string) (*Section, error) {
	if _, err := service.articles.GetArticle(context, viewerID, articleID); err != nil {
		return nil, err
	}

	section, err := service.repo.FindBySlug(context, articleID, sectionSlug)
	if err != nil {
		return nil, err
	}

	return section, service.renderer.hydrate(section)
}

// # Internal Helpers

func (service *Service) ensureMutable(context context.Context, articleID string) error {
	mutable, err := service.articles.CheckMutable(context, articleID)
	if err != nil {
		return err
	}
	if !mutable {
		return article.ErrArticleReady
	}
	return nil
}

// slugFor derives the slug from the title. Titles without any ASCII letter
// or digit fall back to "section-<number>".
func slugFor(candidate Candidate) string {
	if value := slug.From(candidate.Title); value != "" {
		return value
	}
	return "section-" + strconv.Itoa(candidate.Number)
}
