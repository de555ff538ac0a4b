// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role enumerates the access roles a user can hold.
type Role string

// RoleUser is the only role assigned today; the column stays a string so
// further roles can be added without a migration.
const RoleUser Role = "USER"

// User represents a registered account in the system.
// It owns zero or more contacts and is immutable after registration.
type User struct {
	// ID is the store-assigned identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Login is the name the user authenticates with.
	// It must be unique across all users.
	Login string `gorm:"uniqueIndex;size:24;not null"`

	// Password is the bcrypt hash of the user's password.
	// Plaintext passwords are never stored.
	Password string `gorm:"size:255;not null"`

	// Role is the user's access role.
	Role Role `gorm:"size:16;not null;default:USER"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
