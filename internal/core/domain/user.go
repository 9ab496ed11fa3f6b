package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin        = "admin"
	RoleReceptionist = "receptionist"
	RoleStaff        = "staff"
	RoleVisitor      = "visitor"
)

// DefaultRoles is the role set used when none is configured.
var DefaultRoles = []string{RoleAdmin, RoleReceptionist, RoleStaff, RoleVisitor}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// MsgUsernameTaken is the username field error for a duplicate account.
const MsgUsernameTaken = "a user with that username already exists"

// User models an account holder. PasswordHash never leaves the service.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Clone returns a shallow copy that can be mutated independently.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
