package models

import "time"

// Profile is a dashboard identity. Role is RoleNone when no role is assigned.
type Profile struct {
	ID           string    `json:"id" validate:"required,uuid"`
	Name         string    `json:"name" validate:"required"`
	Email        string    `json:"email,omitempty" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasRole reports whether the profile carries one of the three dashboard roles.
func (p *Profile) HasRole() bool {
	return p != nil && p.Role.Valid()
}
