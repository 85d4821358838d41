package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Role is the closed set of user roles. Authorization only ever checks for
// RoleAdmin, but every persisted value must come from this set.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleAttendee Role = "attendee"
	RoleSpeaker  Role = "speaker"
	RolePublic   Role = "public"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAttendee, RoleSpeaker, RolePublic:
		return true
	}
	return false
}

type User struct {
	bun.BaseModel `bun:"table:users"`

	ID             string    `bun:"id,pk" json:"id"`
	Email          string    `bun:"email,unique,notnull" json:"email"`
	FullName       string    `bun:"full_name,notnull" json:"full_name"`
	Role           Role      `bun:"role,notnull" json:"role"`
	Organization   string    `bun:"organization,nullzero" json:"organization,omitempty"`
	Phone          string    `bun:"phone,nullzero" json:"phone,omitempty"`
	Bio            string    `bun:"bio,nullzero" json:"bio,omitempty"`
	HashedPassword string    `bun:"hashed_password,notnull" json:"-"`
	CreatedAt      time.Time `bun:"created_at,notnull" json:"created_at"`
}

type RegisterRequest struct {
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6"`
	FullName     string `json:"full_name" validate:"required"`
	Organization string `json:"organization"`
	Phone        string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is the wire shape returned by register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        *User  `json:"user"`
}
