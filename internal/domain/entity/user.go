package entity

import "time"

// User mirrors the backend user payload. The password never appears on the
// client side; login only forwards credentials.
type User struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"` // admin, manager, cashier
	Active    bool       `json:"active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the user may see admin-only menu entries.
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// UserInput is the payload for creating or updating a user.
type UserInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin manager cashier"`
	Active   *bool  `json:"active"`
}
