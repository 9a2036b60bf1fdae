package user

import "time"

type Role string

const (
	RoleOwner Role = "owner" // Account owner - full access to their books
)

type User struct {
	ID              string
	Email           string
	PasswordHash    *string
	FullName        string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
