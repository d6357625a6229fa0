// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Default status assigned to newly created users.
const StatusActive = "active"

// User represents a registered user in the system.
// It contains authentication credentials and the metadata shown on the
// management page.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Nome is the login name. It must be unique across all users.
	Nome string `gorm:"uniqueIndex;size:20;not null"`

	// Email is the user's contact address.
	Email string `gorm:"size:80;not null"`

	// Senha is the bcrypt hash of the user's password.
	// This must never store plaintext passwords.
	Senha string `gorm:"size:80;not null"`

	// Status is a free-text account state, "active" on creation.
	Status string `gorm:"size:80;not null"`

	// Area is the department or role label supplied at creation.
	Area string `gorm:"size:80;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
