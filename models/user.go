package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the two-tier access level assigned to a user at registration.
type Role string

const (
	RoleUser  Role = "USER"  // Access limited to owned tasks
	RoleAdmin Role = "ADMIN" // Unrestricted access to all tasks
)

// RoleFromString converts a string to a Role
func RoleFromString(roleStr string) (Role, error) {
	switch roleStr {
	case "USER":
		return RoleUser, nil
	case "ADMIN":
		return RoleAdmin, nil
	default:
		return "", errors.New("invalid role")
	}
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"unique;not null" json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `gorm:"type:varchar(16);not null;default:'USER'" json:"role"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate is a GORM hook that assigns an id when none is set
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user carries the ADMIN role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// OwnerSummary is the minimal view of a task owner exposed to
// administrators alongside other users' tasks.
type OwnerSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

// Summary returns the owner summary view of the user.
func (u *User) Summary() *OwnerSummary {
	return &OwnerSummary{ID: u.ID, Email: u.Email, Role: u.Role}
}
