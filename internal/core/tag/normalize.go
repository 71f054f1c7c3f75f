// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/yomira-press/internal/platform/validate"
)

// # Parsing

// Canonical converts a single token into its canonical tag name.
//
// Surrounding whitespace is trimmed, inner spaces become hyphens and the
// result is lower-cased. Existing hyphens are kept as they are.
func Canonical(token string) string {
	trimmed := strings.TrimSpace(token)
	return strings.ToLower(strings.ReplaceAll(trimmed, " ", "-"))
}

/*
ParseNames splits a comma-separated tag string into canonical names.

Description: Blank tokens are dropped. Duplicates (after canonicalization)
are collapsed in a single pass; the first occurrence decides the order.
The function is pure and never touches storage.

Example:

	ParseNames("Python, python , -flask-, ai ") // ["python", "-flask-", "ai"]

Parameters:
  - raw: string

Returns:
  - []string: Canonical names, possibly empty (never nil)
*/
func ParseNames(raw string) []string {
	names := make([]string, 0)
	seen := make(map[string]struct{})

	for _, token := range strings.Split(raw, ",") {
		if strings.TrimSpace(token) == "" {
			continue
		}

		name := Canonical(token)
		if _, duplicate := seen[name]; duplicate {
			continue
		}

		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}

// ValidateNames records a field error on [FieldTags] for every name outside
// the allowed length range.
func ValidateNames(validator *validate.Validator, names []string) *validate.Validator {
	for _, name := range names {
		length := utf8.RuneCountInString(name)
		validator.Custom(FieldTags, length < MinNameLength,
			fmt.Sprintf("Tag %q must be at least %d characters", name, MinNameLength))
		validator.Custom(FieldTags, length > MaxNameLength,
			fmt.Sprintf("Tag %q must be at most %d characters", name, MaxNameLength))
	}
	return validator
}

// Parse runs [ParseNames] and records length errors for the result on
// validator. Callers resolve the names once validator is clean.
func Parse(validator *validate.Validator, raw string) []string {
	names := ParseNames(raw)
	ValidateNames(validator, names)
	return names
}
