// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access, manages the category catalogue
	RoleAdmin UserRole = "admin"

	// Can write and publish their own articles (granted on registration)
	RoleAuthor UserRole = "author"

	// Read-only account
	RoleMember UserRole = "member"
)

// IsValid reports whether r is a recognised role.
func (r UserRole) IsValid() bool {
	return r.level() > 0
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	switch r {
	case RoleAdmin:
		return 40
	case RoleAuthor:
		return 20
	case RoleMember:
		return 10
	default:
		return 0
	}
}
