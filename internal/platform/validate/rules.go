// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// # Rule Sets

/*
Rules merges the result of an ozzo-validation rule set into the validator.

Description: Each failing field becomes one [apperr.FieldError] keyed by the
field's json tag, in alphabetical order so responses are stable. Anything
that is not a field error (e.g. validation.InternalError from a broken rule)
is returned unchanged and nothing is merged.

Example:

	if err := validator.Rules(input.Validate()); err != nil {
		return nil, err
	}

Parameters:
  - err: error (output of validation.ValidateStruct)

Returns:
  - error: Non-field rule failures, nil otherwise
*/
func (v *Validator) Rules(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrors validation.Errors
	if !errors.As(err, &fieldErrors) {
		return err
	}

	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	for _, field := range fields {
		if fieldErrors[field] != nil {
			v.add(field, fieldErrors[field].Error())
		}
	}

	return nil
}
