// Package handler provides the HTTP handlers for the contacts feature.
package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"phonebook_backend/internal/feature/contacts/domain/entity"
	"phonebook_backend/internal/feature/contacts/transport/http/dto"
	"phonebook_backend/internal/feature/contacts/usecase"
	jwtmw "phonebook_backend/internal/platform/jwt"
	"phonebook_backend/internal/platform/problem"
)

// ContactUsecase defines the usecase for contact operations.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type ContactUsecase interface {
	Create(ctx context.Context, ownerLogin string, in usecase.ContactInput) (*entity.Contact, error)
	Delete(ctx context.Context, ownerLogin, contactName string) error
	Edit(ctx context.Context, ownerLogin, oldContactName string, in usecase.ContactInput) (*entity.Contact, error)
	ListForOwner(ctx context.Context, login string, page, size int, principal string) (*usecase.ContactPage, error)
}

// ContactHandler handles HTTP requests for contact CRUD.
type ContactHandler struct {
	contacts ContactUsecase
}

// NewContactHandler creates a new instance of ContactHandler.
func NewContactHandler(contacts ContactUsecase) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// principal returns the authenticated login placed in the context by the
// bearer middleware.
func principal(c *gin.Context) string {
	return c.GetString(jwtmw.ContextLogin)
}

// Create handles POST /api/v1/contacts/create.
// Echoes the created contact with 201; duplicates within the owner's
// contact set are rejected with 409.
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create contact validation failed", "error", err, "remote_addr", c.ClientIP())
		problem.RespondBindingError(c, err)
		return
	}

	contact, err := h.contacts.Create(c.Request.Context(), principal(c), usecase.ContactInput{
		Name:   req.Name,
		Emails: req.Emails,
		Phones: req.Phones,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	slog.Info("contact created", "login", principal(c), "contact", contact.Name)
	c.JSON(http.StatusCreated, dto.FromEntity(contact))
}

// Delete handles DELETE /api/v1/contacts/delete?contact=NAME.
// Deleting an unknown name is 404, also on repeat deletes.
func (h *ContactHandler) Delete(c *gin.Context) {
	name := c.Query("contact")
	if name == "" {
		problem.Respond(c, http.StatusBadRequest, "Failed validation",
			problem.Detail{Message: "contact must not be empty", Field: "contact"})
		return
	}

	if err := h.contacts.Delete(c.Request.Context(), principal(c), name); err != nil {
		h.respondError(c, err)
		return
	}

	slog.Info("contact deleted", "login", principal(c), "contact", name)
	c.Status(http.StatusOK)
}

// Edit handles PUT /api/v1/contacts/:contact/edit.
// Replaces name, emails and phones of the contact addressed by its old name.
func (h *ContactHandler) Edit(c *gin.Context) {
	oldName := c.Param("contact")
	if len(oldName) < 3 || len(oldName) > 24 {
		problem.Respond(c, http.StatusBadRequest, "Constraint violation",
			problem.Detail{
				Message:    "Contact name mustn't be bigger then 24 letters and less then 3 letters",
				Field:      "contact",
				WrongValue: oldName,
			})
		return
	}

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("edit contact validation failed", "error", err, "remote_addr", c.ClientIP())
		problem.RespondBindingError(c, err)
		return
	}

	contact, err := h.contacts.Edit(c.Request.Context(), principal(c), oldName, usecase.ContactInput{
		Name:   req.Name,
		Emails: req.Emails,
		Phones: req.Phones,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	slog.Info("contact edited", "login", principal(c), "old_name", oldName, "new_name", contact.Name)
	c.JSON(http.StatusOK, dto.FromEntity(contact))
}

// List handles GET /api/v1/users/:login/contacts?page&size.
// Only the owner may list their contacts; everyone else gets 403.
func (h *ContactHandler) List(c *gin.Context) {
	login := c.Param("login")

	page, ok := queryInt(c, "page", 0)
	if !ok {
		return
	}
	size, ok := queryInt(c, "size", usecase.DefaultPageSize)
	if !ok {
		return
	}

	result, err := h.contacts.ListForOwner(c.Request.Context(), login, page, size, principal(c))
	if err != nil {
		h.respondError(c, err)
		return
	}

	content := make([]dto.ContactResponse, 0, len(result.Contacts))
	for i := range result.Contacts {
		content = append(content, dto.FromEntity(&result.Contacts[i]))
	}
	c.JSON(http.StatusOK, dto.PageResponse{
		Content:       content,
		Page:          result.Page,
		Size:          result.Size,
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
	})
}

// queryInt parses an integer query parameter, writing a 400 problem and
// returning ok=false when the raw value is not a number.
func queryInt(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		problem.Respond(c, http.StatusBadRequest, "Wrong input parameter",
			problem.Detail{
				Message:    fmt.Sprintf("The field '%s' must have a valid type of 'int'", name),
				Field:      name,
				WrongValue: raw,
			})
		return 0, false
	}
	return n, true
}

// respondError is the explicit mapping from core failure types to HTTP
// statuses and problem details.
func (h *ContactHandler) respondError(c *gin.Context, err error) {
	var (
		dupAttr  *usecase.DuplicateAttributeError
		dupName  *usecase.DuplicateContactNameError
		notFound *usecase.ContactNotFoundError
		ownerNF  *usecase.OwnerNotFoundError
		denied   *usecase.AccessDeniedError
	)
	switch {
	case errors.As(err, &dupAttr):
		problem.Respond(c, http.StatusConflict, "Duplicate contact attribute",
			problem.Detail{Message: "Such phone/email is already present in your contacts", WrongValue: dupAttr.Value})
	case errors.As(err, &dupName):
		problem.Respond(c, http.StatusConflict, "Duplicate contact attribute",
			problem.Detail{Message: "A contact with this name already exists", WrongValue: dupName.Name})
	case errors.Is(err, usecase.ErrDuplicateAttribute):
		// Store-level constraint violation: a race loser, no single value
		// to report.
		problem.Respond(c, http.StatusConflict, "Duplicate contact attribute",
			problem.Detail{Message: "Such phone/email is already present in your contacts"})
	case errors.As(err, &notFound):
		problem.Respond(c, http.StatusNotFound, "Data is not found",
			problem.Detail{Message: "There is no contact present by such name", WrongValue: notFound.Name})
	case errors.As(err, &ownerNF):
		problem.Respond(c, http.StatusNotFound, "Data is not found",
			problem.Detail{Message: "No user found", WrongValue: ownerNF.Login})
	case errors.As(err, &denied):
		problem.Respond(c, http.StatusForbidden, "Access denied",
			problem.Detail{Message: "Not allowed to view contacts of another user"})
	case errors.Is(err, usecase.ErrPrincipalNotFound):
		// The token was just verified, so a missing user record means the
		// stores disagree. Logged loudly, reported blandly.
		slog.Error("authenticated principal has no user record", "error", err, "path", c.Request.URL.Path)
		problem.Respond(c, http.StatusInternalServerError, "Internal error",
			problem.Detail{Message: "unexpected error"})
	default:
		slog.Error("contact operation failed", "error", err, "path", c.Request.URL.Path)
		problem.Respond(c, http.StatusInternalServerError, "Internal error",
			problem.Detail{Message: "unexpected error"})
	}
}
