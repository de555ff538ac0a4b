package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrContactNotFound is returned when no contact matches the requested
	// name for the acting owner.
	ErrContactNotFound = errors.New("contact not found")

	// ErrDuplicateAttribute is returned when an email or phone is already
	// present in another contact of the same owner. Adapters return it for
	// store-level unique violations as well, so race losers surface the
	// same way as the application-level check.
	ErrDuplicateAttribute = errors.New("duplicate contact attribute")

	// ErrAccessDenied is returned when the requesting principal tries to
	// read another user's contacts.
	ErrAccessDenied = errors.New("access denied")

	// ErrOwnerNotFound is returned when the listed login does not exist.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrPrincipalNotFound is returned when an authenticated principal has
	// no user record. The principal was verified moments earlier, so this
	// indicates an inconsistency between the token layer and the user
	// store, not a client mistake.
	ErrPrincipalNotFound = errors.New("no user record for authenticated principal")
)

// ContactNotFoundError carries the name that failed to resolve.
type ContactNotFoundError struct {
	Name string
}

func (e *ContactNotFoundError) Error() string {
	return fmt.Sprintf("there is no contact present by such name: %s", e.Name)
}

func (e *ContactNotFoundError) Unwrap() error { return ErrContactNotFound }

// DuplicateAttributeError carries the colliding email or phone value.
type DuplicateAttributeError struct {
	Value string
}

func (e *DuplicateAttributeError) Error() string {
	return fmt.Sprintf("such phone/email is already present in your contacts: %s", e.Value)
}

func (e *DuplicateAttributeError) Unwrap() error { return ErrDuplicateAttribute }

// DuplicateContactNameError carries a contact name already used by the owner.
// Names address contacts for mutation, so two contacts of one owner may not
// share a name.
type DuplicateContactNameError struct {
	Name string
}

func (e *DuplicateContactNameError) Error() string {
	return fmt.Sprintf("a contact with this name already exists: %s", e.Name)
}

func (e *DuplicateContactNameError) Unwrap() error { return ErrDuplicateAttribute }

// OwnerNotFoundError carries the login that failed to resolve.
type OwnerNotFoundError struct {
	Login string
}

func (e *OwnerNotFoundError) Error() string {
	return fmt.Sprintf("no user found by login: %s", e.Login)
}

func (e *OwnerNotFoundError) Unwrap() error { return ErrOwnerNotFound }

// AccessDeniedError carries the login whose contacts were requested.
type AccessDeniedError struct {
	Login string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("not allowed to view contacts of user: %s", e.Login)
}

func (e *AccessDeniedError) Unwrap() error { return ErrAccessDenied }
