// Package entity defines the domain entities for the users feature.
package entity

import (
	domain "scene_backend/internal/domain/entity"
)

// User represents a registered user in the system.
type User struct {
	domain.Base `bson:",inline"`

	// Username is the display name chosen by the user (3-50 characters).
	Username string `bson:"username" json:"username"`

	// Email is the user's email address.
	Email string `bson:"email" json:"email"`

	// Password is the bcrypt hash of the user's password.
	// This must never store plaintext and must never appear in a response.
	Password string `bson:"password" json:"-"`

	// Phone is an optional phone number in international format.
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`

	// IsActive reports whether the account is active. Defaults to true.
	IsActive bool `bson:"is_active" json:"is_active"`
}
