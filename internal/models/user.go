package models

// Roles is the accepted set of user roles.
var Roles = []string{"manager", "dispatcher", "safety_officer", "analyst"}

// ValidRole reports whether s is a known role.
func ValidRole(s string) bool {
	for _, r := range Roles {
		if r == s {
			return true
		}
	}
	return false
}

// User represents a back-office account. The password hash never leaves the
// server.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"` // unique, stored lowercase
	PasswordHash string `json:"-" db:"password_hash"`
	Name         string `json:"name" db:"name"`
	Role         string `json:"role" db:"role"`
	CreatedAt    string `json:"created_at" db:"created_at"`
}

// UserSummary is the user shape returned by the auth endpoints.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginInput is the request body for POST /auth/login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterInput is the request body for POST /auth/register.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
