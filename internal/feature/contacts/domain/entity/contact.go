// Package entity defines the domain entities for the contacts feature.
package entity

import (
	"time"

	authentity "phonebook_backend/internal/feature/auth/domain/entity"
)

// Contact is a phone-book entry owned by exactly one user.
// The owner is fixed at creation; edits replace name, emails and phones but
// never the owner or the identifier.
type Contact struct {
	// ID is the store-assigned identifier for the contact.
	ID uint `gorm:"primaryKey"`

	// Name addresses the contact for mutation. Two contacts of the same
	// owner may not share a name, enforced by the composite index below.
	Name string `gorm:"size:24;not null;uniqueIndex:idx_contacts_owner_name"`

	// UserID is the owning user. Immutable after creation.
	UserID uint `gorm:"not null;uniqueIndex:idx_contacts_owner_name"`

	// User is the owning user record. Loaded on demand; queries key on
	// UserID directly.
	User *authentity.User `gorm:"foreignKey:UserID"`

	// Emails are the contact's email addresses, one row per address.
	Emails []ContactEmail `gorm:"constraint:OnDelete:CASCADE"`

	// Phones are the contact's phone numbers, one row per number.
	Phones []ContactPhone `gorm:"constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactEmail is a single email address of a contact. UserID is denormalized
// from the parent contact so the store can hold the per-owner uniqueness
// constraint that backstops concurrent creates.
type ContactEmail struct {
	ID        uint   `gorm:"primaryKey"`
	ContactID uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_contact_emails_owner_email"`
	Email     string `gorm:"size:255;not null;uniqueIndex:idx_contact_emails_owner_email"`
}

// ContactPhone is a single phone number of a contact, constrained the same
// way as ContactEmail.
type ContactPhone struct {
	ID        uint   `gorm:"primaryKey"`
	ContactID uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_contact_phones_owner_phone"`
	Phone     string `gorm:"size:32;not null;uniqueIndex:idx_contact_phones_owner_phone"`
}

// SameAs reports whether two contacts denote the same persisted record.
// Identity is keyed solely on the store-assigned id; records that have not
// been persisted yet have no identity and are never equal.
func (c *Contact) SameAs(other *Contact) bool {
	return c != nil && other != nil && c.ID != 0 && c.ID == other.ID
}

// EmailValues returns the plain email strings in row order.
func (c *Contact) EmailValues() []string {
	out := make([]string, 0, len(c.Emails))
	for _, e := range c.Emails {
		out = append(out, e.Email)
	}
	return out
}

// PhoneValues returns the plain phone strings in row order.
func (c *Contact) PhoneValues() []string {
	out := make([]string, 0, len(c.Phones))
	for _, p := range c.Phones {
		out = append(out, p.Phone)
	}
	return out
}
