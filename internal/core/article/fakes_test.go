// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article_test

import (
	"context"
	"io"
	"log/slog"
	"sort"

	"github.com/taibuivan/yomira-press/internal/core/article"
	"github.com/taibuivan/yomira-press/internal/core/tag"
	"github.com/taibuivan/yomira-press/internal/platform/apperr"
)

// memoryRepository is an in-memory [article.Repository].
type memoryRepository struct {
	articles map[string]*article.Article
	links    map[string][]int
	sections map[string][]int
	writes   int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		articles: make(map[string]*article.Article),
		links:    make(map[string][]int),
		sections: make(map[string][]int),
	}
}

func (repo *memoryRepository) Create(_ context.Context, a *article.Article, tagIDs []int) error {
	stored := *a
	repo.articles[a.ID] = &stored
	repo.links[a.ID] = tagIDs
	repo.writes++
	return nil
}

func (repo *memoryRepository) Update(_ context.Context, a *article.Article, tagIDs []int) error {
	current, ok := repo.articles[a.ID]
	if !ok {
		return apperr.NotFound("Article")
	}
	if current.IsReady {
		return article.ErrArticleReady
	}
	stored := *a
	repo.articles[a.ID] = &stored
	if tagIDs != nil {
		repo.links[a.ID] = tagIDs
	}
	repo.writes++
	return nil
}

func (repo *memoryRepository) Delete(_ context.Context, id string) error {
	if _, ok := repo.articles[id]; !ok {
		return apperr.NotFound("Article")
	}
	delete(repo.articles, id)
	delete(repo.sections, id)
	repo.writes++
	return nil
}

func (repo *memoryRepository) FindByID(_ context.Context, id string) (*article.Article, error) {
	stored, ok := repo.articles[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	copied := *stored
	return &copied, nil
}

func (repo *memoryRepository) List(_ context.Context, filter article.Filter, limit, offset int) ([]*article.Article, int, error) {
	matched := make([]*article.Article, 0)
	for _, a := range repo.articles {
		if !filter.IncludeDrafts && !a.IsReady {
			continue
		}
		if filter.AuthorID != "" && a.AuthorID != filter.AuthorID {
			continue
		}
		if filter.CategoryID != "" && a.CategoryID != filter.CategoryID {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, len(matched), nil
}

func (repo *memoryRepository) SectionNumbers(_ context.Context, id string) ([]int, error) {
	return repo.sections[id], nil
}

func (repo *memoryRepository) SetReady(_ context.Context, id string, ready bool, check article.ReadinessCheck) error {
	stored, ok := repo.articles[id]
	if !ok {
		return apperr.NotFound("Article")
	}
	if ready && check != nil {
		if err := check(repo.sections[id]); err != nil {
			return err
		}
	}
	stored.IsReady = ready
	repo.writes++
	return nil
}

// seed stores an article with the given section numbers.
func (repo *memoryRepository) seed(id, authorID string, ready bool, numbers ...int) {
	repo.articles[id] = &article.Article{ID: id, Title: "Seeded article", AuthorID: authorID, CategoryID: "cat-1", IsReady: ready}
	repo.sections[id] = numbers
}

// fakeTags resolves names to sequential ids.
type fakeTags struct {
	byName map[string]*tag.Tag
	calls  int
}

func (tags *fakeTags) Resolve(_ context.Context, names []string) ([]*tag.Tag, error) {
	if tags.byName == nil {
		tags.byName = make(map[string]*tag.Tag)
	}
	out := make([]*tag.Tag, 0, len(names))
	for _, name := range names {
		tags.calls++
		existing, ok := tags.byName[name]
		if !ok {
			existing = &tag.Tag{ID: len(tags.byName) + 1, Name: name}
			tags.byName[name] = existing
		}
		out = append(out, existing)
	}
	return out, nil
}

// fakeCategories knows a fixed set of category ids.
type fakeCategories map[string]bool

func (categories fakeCategories) Exists(_ context.Context, id string) (bool, error) {
	return categories[id], nil
}

func newTestService() (*article.Service, *memoryRepository, *fakeTags) {
	repo := newMemoryRepository()
	tags := &fakeTags{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return article.NewService(repo, tags, fakeCategories{"cat-1": true, "cat-2": true}, logger), repo, tags
}
