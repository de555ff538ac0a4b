package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrUserNotFound is returned when a user cannot be found by login.
	ErrUserNotFound = errors.New("user not found")

	// ErrLoginAlreadyExists is returned when attempting to create a user
	// with a login that already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrInvalidCredentials is returned when login or password is wrong.
	// The message is deliberately generic to prevent user enumeration.
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// DuplicateLoginError reports a registration attempt with a taken login.
// It carries the rejected login so the transport layer can surface it.
type DuplicateLoginError struct {
	Login string
}

func (e *DuplicateLoginError) Error() string {
	return fmt.Sprintf("the user already exists: %s", e.Login)
}

// Unwrap lets callers match the error with errors.Is(err, ErrLoginAlreadyExists).
func (e *DuplicateLoginError) Unwrap() error { return ErrLoginAlreadyExists }
