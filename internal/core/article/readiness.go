// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package article

import (
	"net/http"
	"sort"

	"github.com/taibuivan/yomira-press/internal/platform/apperr"
)

// # Notice Codes

const (
	CodeNoSections            = "NO_SECTIONS"
	CodeMissingSectionOne     = "MISSING_SECTION_ONE"
	CodeNonConsecutiveNumbers = "NON_CONSECUTIVE_NUMBERS"
	CodeArticleReady          = "ARTICLE_READY"
)

// # Notices

var (
	// ErrNoSections rejects Draft → Ready for an article without sections.
	ErrNoSections = apperr.Notice(CodeNoSections, "create at least one section", http.StatusUnprocessableEntity)

	// ErrMissingSectionOne rejects Draft → Ready when no section is numbered 1.
	ErrMissingSectionOne = apperr.Notice(CodeMissingSectionOne, "need a section numbered 1", http.StatusUnprocessableEntity)

	// ErrNonConsecutiveNumbers rejects Draft → Ready when numbers have gaps or repeats.
	ErrNonConsecutiveNumbers = apperr.Notice(CodeNonConsecutiveNumbers, "numbers must be consecutive", http.StatusUnprocessableEntity)

	// ErrArticleReady refuses any content mutation while the article is Ready.
	ErrArticleReady = apperr.Notice(CodeArticleReady, "switch the article back to draft before editing it", http.StatusConflict)

	// ErrNotAuthor denies readiness toggles and gated mutations to non-authors.
	ErrNotAuthor = apperr.Forbidden("Only the author may change this article")
)

/*
CheckReadiness evaluates the Draft → Ready preconditions over the numbers of
an article's sections.

Description: The checks run in order and stop at the first failure:
  1. at least one section
  2. a section numbered exactly 1
  3. the sorted numbers form a run without gaps or repeats

Parameters:
  - numbers: []int (Section numbers in any order; not modified)

Returns:
  - error: One of the readiness notices, or nil
*/
func CheckReadiness(numbers []int) error {
	if len(numbers) == 0 {
		return ErrNoSections
	}

	hasOne := false
	for _, number := range numbers {
		if number == 1 {
			hasOne = true
			break
		}
	}
	if !hasOne {
		return ErrMissingSectionOne
	}

	sorted := make([]int, len(numbers))
	copy(sorted, numbers)
	sort.Ints(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] != 1 {
			return ErrNonConsecutiveNumbers
		}
	}

	return nil
}

// EnsureMutable returns [ErrArticleReady] when the article is Ready.
func EnsureMutable(article *Article) error {
	if article.IsReady {
		return ErrArticleReady
	}
	return nil
}

// EnsureAuthor returns [ErrNotAuthor] unless actorID wrote the article.
func EnsureAuthor(article *Article, actorID string) error {
	if !article.IsAuthoredBy(actorID) {
		return ErrNotAuthor
	}
	return nil
}
