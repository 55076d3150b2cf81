package session

import "strings"

// Role is a user's access level. The API is case-insensitive about role
// strings, so always go through ParseRole before comparing.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole normalizes a role string from the API. ok is false for anything
// outside the known set.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleUser:
		return RoleUser, true
	case RoleAdmin:
		return RoleAdmin, true
	default:
		return "", false
	}
}

// User is the account record returned by the auth endpoints and persisted
// alongside the bearer token.
type User struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Role            string `json:"role"`
	IsEmailVerified bool   `json:"isEmailVerified"`
}

// Session is the client's view of "who is logged in". A session is
// authenticated only when both the user record and the bearer token are
// present; there is no such thing as a partial session.
type Session struct {
	User  *User
	Token string
}

// Authenticated reports whether both halves of the session are present.
func (s Session) Authenticated() bool {
	return s.User != nil && s.Token != ""
}
