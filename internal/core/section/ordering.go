// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package section

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/yomira-press/internal/platform/validate"
)

// # Sibling Sets

// Siblings holds the numbers and titles already taken within one article.
type Siblings struct {
	numbers map[int]struct{}
	titles  map[string]struct{}
}

// NewSiblings indexes the numbers and titles of the given sections.
func NewSiblings(sections []*Section) Siblings {
	siblings := Siblings{
		numbers: make(map[int]struct{}, len(sections)),
		titles:  make(map[string]struct{}, len(sections)),
	}

	for _, section := range sections {
		siblings.numbers[section.Number] = struct{}{}
		siblings.titles[section.Title] = struct{}{}
	}

	return siblings
}

// Without removes one section's number and title from the set. Removing a
// value that is not present does nothing.
func (siblings Siblings) Without(number int, title string) Siblings {
	delete(siblings.numbers, number)
	delete(siblings.titles, title)
	return siblings
}

// HasNumber reports whether number is taken.
func (siblings Siblings) HasNumber(number int) bool {
	_, taken := siblings.numbers[number]
	return taken
}

// HasTitle reports whether title is taken.
func (siblings Siblings) HasTitle(title string) bool {
	_, taken := siblings.titles[title]
	return taken
}

// # Validation

/*
ValidateCandidate records every field and ordering failure of a candidate.

Description: All checks run; nothing short-circuits. The field checks cover
the title length and the number range. The ordering checks report a number or
a title already taken by a sibling. For an edit, the caller removes the
section's own values from siblings first (see [Siblings.Without]).

Parameters:
  - validator: *validate.Validator (collects the failures)
  - candidate: Candidate
  - siblings: Siblings

Returns:
  - *validate.Validator: The same validator, for chaining
*/
func ValidateCandidate(validator *validate.Validator, candidate Candidate, siblings Siblings) *validate.Validator {
	title := strings.TrimSpace(candidate.Title)
	length := utf8.RuneCountInString(title)

	validator.Custom(FieldTitle, length < MinTitleLength,
		fmt.Sprintf("Minimum %d characters", MinTitleLength))
	validator.Custom(FieldTitle, length > MaxTitleLength,
		fmt.Sprintf("Maximum %d characters", MaxTitleLength))
	validator.Range(FieldNumber, candidate.Number, MinNumber, MaxNumber)

	validator.Custom(FieldNumber, siblings.HasNumber(candidate.Number),
		fmt.Sprintf("Section number %d already exists in this article", candidate.Number))
	validator.Custom(FieldTitle, siblings.HasTitle(title),
		"A section with this title already exists in this article")

	return validator
}
