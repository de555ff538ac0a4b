package dto

import "phonebook_backend/internal/feature/contacts/domain/entity"

// ContactResponse is the canonical representation of a contact. The
// store-assigned id and the owner are internal and never serialized.
type ContactResponse struct {
	Name   string   `json:"name"`
	Emails []string `json:"emails"`
	Phones []string `json:"phones"`
}

// FromEntity converts a contact aggregate to its response shape.
func FromEntity(c *entity.Contact) ContactResponse {
	return ContactResponse{
		Name:   c.Name,
		Emails: c.EmailValues(),
		Phones: c.PhoneValues(),
	}
}

// PageResponse is one page of contacts with paging metadata.
type PageResponse struct {
	Content       []ContactResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
}
