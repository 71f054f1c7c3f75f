// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/yomira-press/internal/core/tag"
	"github.com/taibuivan/yomira-press/internal/platform/apperr"
	"github.com/taibuivan/yomira-press/internal/platform/validate"
	"github.com/taibuivan/yomira-press/pkg/slice"
	"github.com/taibuivan/yomira-press/pkg/uuid"
)

// # Collaborators

// TagResolver turns canonical tag names into stored tags, creating missing ones.
type TagResolver interface {
	Resolve(context context.Context, names []string) ([]*tag.Tag, error)
}

// CategoryChecker reports whether a category exists.
type CategoryChecker interface {
	Exists(context context.Context, id string) (bool, error)
}

// # Service Layer

// Service orchestrates article authoring and the readiness state machine.
type Service struct {
	repo       Repository
	tags       TagResolver
	categories CategoryChecker
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new [Service] with its collaborators.
func NewService(repo Repository, tags TagResolver, categories CategoryChecker, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		tags:       tags,
		categories: categories,
		logger:     logger,
		now:        time.Now,
	}
}

// # Lookups

/*
Authorize loads an article and checks that actorID is its author.

Description: Unknown articles yield NOT_FOUND before the authorship check, so
a stranger learns nothing beyond what a 404 already tells.

Parameters:
  - context: context.Context
  - articleID: string
  - actorID: string

Returns:
  - *Article: The loaded article
  - error: ErrNotFound or ErrNotAuthor
*/
func (service *Service) Authorize(context context.Context, articleID, actorID string) (*Article, error) {
	article, err := service.repo.FindByID(context, articleID)
	if err != nil {
		return nil, err
	}

	if err := EnsureAuthor(article, actorID); err != nil {
		return nil, err
	}

	return article, nil
}

/*
GetArticle returns an article the viewer is allowed to read.

Description: Drafts are hidden from everybody but their author and reported
as NOT_FOUND.

Parameters:
  - context: context.Context
  - viewerID: string (empty for anonymous readers)
  - articleID: string

Returns:
  - *Article: The article
  - error: ErrNotFound
*/
func (service *Service) GetArticle(context context.Context, viewerID, articleID string) (*Article, error) {
	article, err := service.repo.FindByID(context, articleID)
	if err != nil {
		return nil, err
	}

	if !article.VisibleTo(viewerID) {
		return nil, apperr.NotFound("Article")
	}

	return article, nil
}

// ListMine returns the actor's own articles, drafts included.
func (service *Service) ListMine(context context.Context, actorID string, limit, offset int) ([]*Article, int, error) {
	return service.repo.List(context, Filter{AuthorID: actorID, IncludeDrafts: true}, limit, offset)
}

// ListByCategory returns the ready articles of a category.
func (service *Service) ListByCategory(context context.Context, categoryID string, limit, offset int) ([]*Article, int, error) {
	return service.repo.List(context, Filter{CategoryID: categoryID}, limit, offset)
}

// ListByTag returns the ready articles carrying a tag. The name is
// canonicalized the same way tags are stored.
func (service *Service) ListByTag(context context.Context, name string, limit, offset int) ([]*Article, int, error) {
	return service.repo.List(context, Filter{TagName: tag.Canonical(name)}, limit, offset)
}

// Search returns ready articles whose title contains query, ignoring case.
func (service *Service) Search(context context.Context, query string, limit, offset int) ([]*Article, int, error) {
	return service.repo.List(context, Filter{Query: strings.TrimSpace(query)}, limit, offset)
}

// # Authoring

/*
CreateArticle starts a new Draft article owned by actorID.

Description: WRITES TAGS. Title, category and tags are validated together.
Tags are resolved only when everything else is valid; missing tags are
created even if the article insert later fails.

Parameters:
  - context: context.Context
  - actorID: string (becomes the immutable author)
  - draft: Draft

Returns:
  - *Article: The persisted article
  - error: VALIDATION_ERROR or storage failures
*/
func (service *Service) CreateArticle(context context.Context, actorID string, draft Draft) (*Article, error) {
	validator := &validate.Validator{}
	validateTitle(validator, draft.Title)
	if err := service.validateCategory(context, validator, draft.CategoryID); err != nil {
		return nil, err
	}
	tagNames := tag.Parse(validator, draft.Tags)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	tags, err := service.tags.Resolve(context, tagNames)
	if err != nil {
		return nil, err
	}

	now := service.now().UTC()
	article := &Article{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(draft.Title),
		AuthorID:    actorID,
		CategoryID:  draft.CategoryID,
		IsReady:     false,
		Tags:        tags,
		PublishedAt: now,
		UpdatedAt:   now,
	}

	if err := service.repo.Create(context, article, tagIDs(tags)); err != nil {
		return nil, err
	}

	service.logger.Info("article_created",
		slog.String("article_id", article.ID),
		slog.String("author_id", actorID),
		slog.Int("tags", len(tags)),
	)

	return article, nil
}

/*
UpdateArticle applies a partial update to a Draft article.

Description: WRITES TAGS when patch.Tags is set. Gated: a Ready article is
refused with ARTICLE_READY before any validation runs.

Parameters:
  - context: context.Context
  - actorID: string
  - articleID: string
  - patch: Patch

Returns:
  - *Article: The updated article
  - error: ErrNotFound, ErrNotAuthor, ErrArticleReady, VALIDATION_ERROR
*/
func (service *Service) UpdateArticle(context context.Context, actorID, articleID string, patch Patch) (*Article, error) {
	article, err := service.Authorize(context, articleID, actorID)
	if err != nil {
		return nil, err
	}

	if err := EnsureMutable(article); err != nil {
		return nil, err
	}

	validator := &validate.Validator{}

	if patch.Title != nil {
		validateTitle(validator, *patch.Title)
		article.Title = strings.TrimSpace(*patch.Title)
	}

	if patch.CategoryID != nil && *patch.CategoryID != article.CategoryID {
		if err := service.validateCategory(context, validator, *patch.CategoryID); err != nil {
			return nil, err
		}
		article.CategoryID = *patch.CategoryID
	}

	var tagNames []string
	if patch.Tags != nil {
		tagNames = tag.Parse(validator, *patch.Tags)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	var linkIDs []int
	if patch.Tags != nil {
		tags, err := service.tags.Resolve(context, tagNames)
		if err != nil {
			return nil, err
		}
		article.Tags = tags
		linkIDs = tagIDs(tags)
	}

	if err := service.repo.Update(context, article, linkIDs); err != nil {
		return nil, err
	}

	service.logger.Info("article_updated",
		slog.String("article_id", article.ID),
		slog.String("author_id", actorID),
	)

	return article, nil
}

// DeleteArticle removes an article and its sections. It is not gated by readiness.
func (service *Service) DeleteArticle(context context.Context, actorID, articleID string) error {
	if _, err := service.Authorize(context, articleID, actorID); err != nil {
		return err
	}

	if err := service.repo.Delete(context, articleID); err != nil {
		return err
	}

	service.logger.Info("article_deleted",
		slog.String("article_id", articleID),
		slog.String("author_id", actorID),
	)

	return nil
}

// # Readiness

/*
RequestReady moves an article from Draft to Ready.

Description: The preconditions of [CheckReadiness] are evaluated against the
sections read under the article's row lock. Only the first unmet condition
is reported and nothing changes on rejection. Calling it on a Ready article
re-validates and leaves it Ready.

Parameters:
  - context: context.Context
  - articleID: string
  - actorID: string

Returns:
  - error: ErrNotFound, ErrNotAuthor or a readiness notice
*/
func (service *Service) RequestReady(context context.Context, articleID, actorID string) error {
	if _, err := service.Authorize(context, articleID, actorID); err != nil {
		return err
	}

	if err := service.repo.SetReady(context, articleID, true, CheckReadiness); err != nil {
		if apperr.IsNotice(err) {
			service.logger.Info("article_ready_rejected",
				slog.String("article_id", articleID),
				slog.String("reason", apperr.As(err).Code),
			)
		}
		return err
	}

	service.logger.Info("article_ready",
		slog.String("article_id", articleID),
		slog.String("author_id", actorID),
	)

	return nil
}

/*
RequestDraft moves an article back to Draft. It has no preconditions.

Parameters:
  - context: context.Context
  - articleID: string
  - actorID: string

Returns:
  - error: ErrNotFound or ErrNotAuthor
*/
func (service *Service) RequestDraft(context context.Context, articleID, actorID string) error {
	if _, err := service.Authorize(context, articleID, actorID); err != nil {
		return err
	}

	if err := service.repo.SetReady(context, articleID, false, nil); err != nil {
		return err
	}

	service.logger.Info("article_draft",
		slog.String("article_id", articleID),
		slog.String("author_id", actorID),
	)

	return nil
}

// CheckMutable reports whether the article's content may currently be edited,
// that is whether it is a Draft.
func (service *Service) CheckMutable(context context.Context, articleID string) (bool, error) {
	article, err := service.repo.FindByID(context, articleID)
	if err != nil {
		return false, err
	}
	return !article.IsReady, nil
}

// # Internal Helpers

func validateTitle(validator *validate.Validator, title string) {
	trimmed := strings.TrimSpace(title)
	validator.MinLen(FieldTitle, trimmed, MinTitleLength).
		MaxLen(FieldTitle, trimmed, MaxTitleLength)
}

// validateCategory records a field error for an unknown category. Only
// storage failures are returned.
func (service *Service) validateCategory(context context.Context, validator *validate.Validator, categoryID string) error {
	if strings.TrimSpace(categoryID) == "" {
		validator.Required(FieldCategoryID, categoryID)
		return nil
	}

	exists, err := service.categories.Exists(context, categoryID)
	if err != nil {
		return err
	}
	validator.Custom(FieldCategoryID, !exists, "Category does not exist")

	return nil
}

// tagIDs is never nil, so an empty tag list clears the article's links.
func tagIDs(tags []*tag.Tag) []int {
	if len(tags) == 0 {
		return []int{}
	}
	return slice.Map(tags, func(t *tag.Tag) int { return t.ID })
}
