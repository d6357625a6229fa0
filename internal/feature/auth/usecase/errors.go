// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by nome.
	ErrUserNotFound = errors.New("user not found")

	// ErrNomeAlreadyExists is returned when attempting to create a user with a nome that is already taken.
	ErrNomeAlreadyExists = errors.New("nome already exists")

	// ErrInvalidCredentials is returned when login fails for any reason the caller may not distinguish.
	ErrInvalidCredentials = errors.New("invalid nome or senha")

	// ErrSessionNotFound is returned when a session cannot be found by ID or has expired.
	ErrSessionNotFound = errors.New("session not found")
)
