// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when an id does not resolve to a live
	// (non-soft-deleted) user. A missing user and a soft-deleted user are
	// deliberately indistinguishable to callers.
	ErrUserNotFound = errors.New("user not found")
)
