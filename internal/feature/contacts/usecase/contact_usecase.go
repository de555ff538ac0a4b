// Package usecase implements the business logic for the contacts feature:
// resolving the acting owner and enforcing the per-user ownership and
// uniqueness rules around contact create/edit/delete/list.
package usecase

import (
	"context"
	"errors"
	"fmt"

	authentity "phonebook_backend/internal/feature/auth/domain/entity"
	authusecase "phonebook_backend/internal/feature/auth/usecase"
	"phonebook_backend/internal/feature/contacts/domain/entity"
)

const (
	// DefaultPageSize is used when the list request does not name a size.
	DefaultPageSize = 10

	// MaxPageSize caps the requested page size so a single list request
	// cannot pull the whole table with preloads.
	MaxPageSize = 100
)

// ContactRepository abstracts the persistence layer for contacts.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type ContactRepository interface {
	// Create persists a new contact with its email and phone rows in one
	// transaction. It returns ErrDuplicateAttribute when a store-level
	// uniqueness constraint rejects the insert.
	Create(ctx context.Context, contact *entity.Contact) error

	// Update replaces the contact row and its email and phone rows in one
	// transaction, keyed by the contact's id.
	Update(ctx context.Context, contact *entity.Contact) error

	// DeleteByID removes the contact and its email and phone rows.
	// It returns ErrContactNotFound when no row matches the id.
	DeleteByID(ctx context.Context, id uint) error

	// FindByNameAndOwner retrieves the owner's contact with the given
	// name, including its email and phone rows.
	// It returns ErrContactNotFound if no such contact exists.
	FindByNameAndOwner(ctx context.Context, name string, ownerID uint) (*entity.Contact, error)

	// ExistsByNameAndOwner reports whether the owner already has a
	// contact with the given name.
	ExistsByNameAndOwner(ctx context.Context, name string, ownerID uint) (bool, error)

	// ExistsEmailForOwner reports whether any contact of the owner
	// already holds the given email.
	ExistsEmailForOwner(ctx context.Context, ownerID uint, email string) (bool, error)

	// ExistsPhoneForOwner reports whether any contact of the owner
	// already holds the given phone.
	ExistsPhoneForOwner(ctx context.Context, ownerID uint, phone string) (bool, error)

	// ListByOwner returns one page of the owner's contacts in insertion
	// order together with the total number of the owner's contacts.
	ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Contact, int64, error)
}

// UserFinder resolves the acting principal to its user record.
type UserFinder interface {
	// FindByLogin retrieves a user matching the given login.
	FindByLogin(ctx context.Context, login string) (*authentity.User, error)
}

// ContactInput carries the client-supplied fields of a contact. Emails and
// phones have set semantics; duplicates within one input collapse.
type ContactInput struct {
	Name   string
	Emails []string
	Phones []string
}

// ContactPage is one page of an owner's contacts.
type ContactPage struct {
	Contacts      []entity.Contact
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// contactUsecase implements the ownership and uniqueness rules.
type contactUsecase struct {
	contacts ContactRepository
	users    UserFinder
}

// NewContactUsecase creates a new instance of contactUsecase.
func NewContactUsecase(contacts ContactRepository, users UserFinder) *contactUsecase {
	return &contactUsecase{contacts: contacts, users: users}
}

// resolveOwner maps the authenticated principal's login to its user record.
// A confirmed miss is ErrPrincipalNotFound: the login was just authenticated,
// so the record must exist unless the stores disagree. Store failures stay
// store failures.
func (u *contactUsecase) resolveOwner(ctx context.Context, login string) (*authentity.User, error) {
	owner, err := u.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPrincipalNotFound, login)
		}
		return nil, fmt.Errorf("failed to resolve owner: %w", err)
	}
	return owner, nil
}

// Create persists a new contact for the owner after checking that none of
// its emails or phones, and not its name, are already taken within the
// owner's contact set. The store's per-owner unique indexes back these
// checks up, so two concurrent creates with the same value cannot both
// commit; the loser surfaces ErrDuplicateAttribute from the repository.
func (u *contactUsecase) Create(ctx context.Context, ownerLogin string, in ContactInput) (*entity.Contact, error) {
	owner, err := u.resolveOwner(ctx, ownerLogin)
	if err != nil {
		return nil, err
	}

	emails := dedupe(in.Emails)
	phones := dedupe(in.Phones)

	for _, email := range emails {
		taken, err := u.contacts.ExistsEmailForOwner(ctx, owner.ID, email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			return nil, &DuplicateAttributeError{Value: email}
		}
	}
	for _, phone := range phones {
		taken, err := u.contacts.ExistsPhoneForOwner(ctx, owner.ID, phone)
		if err != nil {
			return nil, fmt.Errorf("failed to check phone: %w", err)
		}
		if taken {
			return nil, &DuplicateAttributeError{Value: phone}
		}
	}
	nameTaken, err := u.contacts.ExistsByNameAndOwner(ctx, in.Name, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check name: %w", err)
	}
	if nameTaken {
		return nil, &DuplicateContactNameError{Name: in.Name}
	}

	contact := buildContact(0, owner.ID, in.Name, emails, phones)
	if err := u.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Delete resolves the owner's contact by name and removes it by the
// resolved id. Deleting an already deleted name reports ContactNotFoundError
// rather than succeeding silently.
func (u *contactUsecase) Delete(ctx context.Context, ownerLogin, contactName string) error {
	owner, err := u.resolveOwner(ctx, ownerLogin)
	if err != nil {
		return err
	}
	contact, err := u.findContact(ctx, contactName, owner.ID)
	if err != nil {
		return err
	}
	return u.contacts.DeleteByID(ctx, contact.ID)
}

// Edit resolves the owner's contact by its old name and replaces name,
// emails and phones while keeping the identifier and the owner. Unlike
// Create, no duplicate probes run on the replacement values; collisions are
// left to the store constraints.
func (u *contactUsecase) Edit(ctx context.Context, ownerLogin, oldContactName string, in ContactInput) (*entity.Contact, error) {
	owner, err := u.resolveOwner(ctx, ownerLogin)
	if err != nil {
		return nil, err
	}
	old, err := u.findContact(ctx, oldContactName, owner.ID)
	if err != nil {
		return nil, err
	}

	updated := buildContact(old.ID, owner.ID, in.Name, dedupe(in.Emails), dedupe(in.Phones))
	if err := u.contacts.Update(ctx, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// ListForOwner returns one page of the login's contacts. The requesting
// principal must be the login itself; the check runs before any lookup, so
// denial does not reveal whether the login exists.
func (u *contactUsecase) ListForOwner(ctx context.Context, login string, page, size int, principal string) (*ContactPage, error) {
	if principal != login {
		return nil, &AccessDeniedError{Login: login}
	}

	owner, err := u.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, authusecase.ErrUserNotFound) {
			return nil, &OwnerNotFoundError{Login: login}
		}
		return nil, fmt.Errorf("failed to resolve owner: %w", err)
	}

	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	contacts, total, err := u.contacts.ListByOwner(ctx, owner.ID, page*size, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	return &ContactPage{
		Contacts:      contacts,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

func (u *contactUsecase) findContact(ctx context.Context, name string, ownerID uint) (*entity.Contact, error) {
	contact, err := u.contacts.FindByNameAndOwner(ctx, name, ownerID)
	if err != nil {
		if errors.Is(err, ErrContactNotFound) {
			return nil, &ContactNotFoundError{Name: name}
		}
		return nil, err
	}
	return contact, nil
}

// buildContact assembles a contact aggregate with the owner id denormalized
// into every email and phone row.
func buildContact(id, ownerID uint, name string, emails, phones []string) *entity.Contact {
	contact := &entity.Contact{ID: id, Name: name, UserID: ownerID}
	for _, email := range emails {
		contact.Emails = append(contact.Emails, entity.ContactEmail{ContactID: id, UserID: ownerID, Email: email})
	}
	for _, phone := range phones {
		contact.Phones = append(contact.Phones, entity.ContactPhone{ContactID: id, UserID: ownerID, Phone: phone})
	}
	return contact
}

// dedupe collapses repeated values while keeping first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
