// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// # Registration Flow

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	Position             string `json:"position"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// normalized trims the free-text fields and lower-cases the email.
// Passwords are never touched.
func (input RegisterInput) normalized() RegisterInput {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Position = strings.TrimSpace(input.Position)
	return input
}

/*
Validate checks the registration rules field by field.

Description: Names and position are optional; when present they must meet
their minimum length. The confirmation must equal the password exactly.
Uniqueness is not checked here (see [Service.Register]).

Returns:
  - error: validation.Errors keyed by json field name, or nil
*/
func (input RegisterInput) Validate() error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.Username, validation.Required, validation.Length(MinUsernameLength, MaxUsernameLength)),
		validation.Field(&input.Email, validation.Required, is.EmailFormat, validation.Length(5, 255)),
		validation.Field(&input.FirstName, validation.Length(MinNameLength, MaxNameLength)),
		validation.Field(&input.LastName, validation.Length(MinNameLength, MaxNameLength)),
		validation.Field(&input.Position, validation.Length(MinPositionLength, MaxPositionLength)),
		validation.Field(&input.Password, validation.Required, validation.Length(MinPasswordLength, MaxPasswordLength)),
		validation.Field(&input.PasswordConfirmation,
			validation.Required,
			validation.In(input.Password).Error("Passwords do not match"),
		),
	)
}

// ChangePasswordInput holds the credentials for a password rotation.
type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// Validate checks the password change rules.
func (input ChangePasswordInput) Validate() error {
	return validation.ValidateStruct(&input,
		validation.Field(&input.CurrentPassword, validation.Required),
		validation.Field(&input.NewPassword, validation.Required, validation.Length(MinPasswordLength, MaxPasswordLength)),
	)
}
