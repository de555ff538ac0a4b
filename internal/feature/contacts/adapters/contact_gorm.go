// Package adapters provides the repository implementations for the contacts feature.
package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"phonebook_backend/internal/feature/contacts/domain/entity"
	"phonebook_backend/internal/feature/contacts/usecase"
)

// contactGorm is the GORM implementation of the ContactRepository interface.
type contactGorm struct {
	db *gorm.DB
}

// Compile-time check that contactGorm implements usecase.ContactRepository.
var _ usecase.ContactRepository = (*contactGorm)(nil)

// NewContactGorm creates a new contactGorm instance with the given gorm.DB
// connection. Constructor for dependency injection.
func NewContactGorm(db *gorm.DB) *contactGorm {
	return &contactGorm{db: db}
}

// Create inserts the contact with its email and phone rows in one
// transaction. A unique-index violation (the backstop for concurrent creates
// with overlapping values) maps to usecase.ErrDuplicateAttribute.
func (r *contactGorm) Create(ctx context.Context, contact *entity.Contact) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(contact).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrDuplicateAttribute
		}
		return err
	}
	return nil
}

// Update rewrites the contact row and replaces its email and phone rows,
// keyed by the contact's id, in one transaction.
func (r *contactGorm) Update(ctx context.Context, contact *entity.Contact) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", contact.ID).Delete(&entity.ContactEmail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contact_id = ?", contact.ID).Delete(&entity.ContactPhone{}).Error; err != nil {
			return err
		}
		res := tx.Model(&entity.Contact{}).
			Where("id = ?", contact.ID).
			Update("name", contact.Name)
		if res.Error != nil {
			return res.Error
		}
		// A concurrent delete may have removed the contact; inserting the
		// child rows anyway would occupy the per-owner unique slots for good.
		if res.RowsAffected == 0 {
			return usecase.ErrContactNotFound
		}
		for i := range contact.Emails {
			contact.Emails[i].ContactID = contact.ID
		}
		for i := range contact.Phones {
			contact.Phones[i].ContactID = contact.ID
		}
		if len(contact.Emails) > 0 {
			if err := tx.Create(&contact.Emails).Error; err != nil {
				return err
			}
		}
		if len(contact.Phones) > 0 {
			if err := tx.Create(&contact.Phones).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return usecase.ErrDuplicateAttribute
		}
		return err
	}
	return nil
}

// DeleteByID removes the contact and its email and phone rows.
// It returns usecase.ErrContactNotFound when no contact row matches.
func (r *contactGorm) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contact_id = ?", id).Delete(&entity.ContactEmail{}).Error; err != nil {
			return err
		}
		if err := tx.Where("contact_id = ?", id).Delete(&entity.ContactPhone{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Contact{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrContactNotFound
		}
		return nil
	})
}

// FindByNameAndOwner retrieves the owner's contact by name with its email
// and phone rows preloaded.
func (r *contactGorm) FindByNameAndOwner(ctx context.Context, name string, ownerID uint) (*entity.Contact, error) {
	var contact entity.Contact
	if err := r.db.WithContext(ctx).
		Preload("Emails").
		Preload("Phones").
		Where("name = ? AND user_id = ?", name, ownerID).
		First(&contact).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrContactNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// ExistsByNameAndOwner reports whether the owner already has a contact with
// the given name.
func (r *contactGorm) ExistsByNameAndOwner(ctx context.Context, name string, ownerID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Contact{}).
		Where("name = ? AND user_id = ?", name, ownerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsEmailForOwner reports whether any contact of the owner already holds
// the given email.
func (r *contactGorm) ExistsEmailForOwner(ctx context.Context, ownerID uint, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.ContactEmail{}).
		Where("user_id = ? AND email = ?", ownerID, email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsPhoneForOwner reports whether any contact of the owner already holds
// the given phone.
func (r *contactGorm) ExistsPhoneForOwner(ctx context.Context, ownerID uint, phone string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entity.ContactPhone{}).
		Where("user_id = ? AND phone = ?", ownerID, phone).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByOwner returns one id-ascending page of the owner's contacts and the
// owner's total contact count.
func (r *contactGorm) ListByOwner(ctx context.Context, ownerID uint, offset, limit int) ([]entity.Contact, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entity.Contact{}).
		Where("user_id = ?", ownerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []entity.Contact
	if err := r.db.WithContext(ctx).
		Preload("Emails").
		Preload("Phones").
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&contacts).Error; err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

// isUniqueViolation reports whether err is a unique-constraint violation.
// Postgres reports SQLSTATE 23505; gorm.ErrDuplicatedKey covers drivers with
// error translation enabled (the test SQLite database among them).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
