// Package problem renders error responses in the problem-detail shape:
// a status envelope with a problemDetails list so clients can surface
// field-specific messages. Handlers build these from explicit error-type
// tables; nothing here inspects feature errors.
package problem

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// defaultType marks a problem without a dedicated type URI.
const defaultType = "about:blank"

// Detail is a single entry of the problemDetails list.
type Detail struct {
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	WrongValue string `json:"wrongValue,omitempty"`
}

// Problem is the error-response envelope.
type Problem struct {
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Status         int      `json:"status"`
	Detail         string   `json:"detail"`
	Instance       string   `json:"instance"`
	ProblemDetails []Detail `json:"problemDetails"`
}

// New builds a problem for the current request. Title is the status reason
// phrase; instance is the request path.
func New(c *gin.Context, status int, detail string, details ...Detail) Problem {
	return Problem{
		Type:           defaultType,
		Title:          http.StatusText(status),
		Status:         status,
		Detail:         detail,
		Instance:       c.Request.URL.Path,
		ProblemDetails: details,
	}
}

// Respond writes the problem as the JSON response body.
func Respond(c *gin.Context, status int, detail string, details ...Detail) {
	c.JSON(status, New(c, status, detail, details...))
}

// Abort writes the problem and stops the handler chain. For middleware.
func Abort(c *gin.Context, status int, detail string, details ...Detail) {
	c.AbortWithStatusJSON(status, New(c, status, detail, details...))
}

// RespondBindingError translates a gin binding failure into a 400 problem.
// Validator errors become one entry per field with the rejected value;
// anything else (malformed JSON and the like) becomes a single generic entry.
func RespondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		Respond(c, http.StatusBadRequest, "Values can not be read",
			Detail{Message: err.Error()})
		return
	}

	details := make([]Detail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, Detail{
			Message:    messageFor(fe),
			Field:      fe.Field(),
			WrongValue: wrongValue(fe),
		})
	}
	Respond(c, http.StatusBadRequest, "Failed validation", details...)
}

// messageFor maps a failed validation rule to a client-facing message.
func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " must not be empty"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "email":
		return "Email is written in a wrong format"
	case "phone":
		return "Invalid phone number. Valid format is +380 93 123 4567 or without spaces +380931234567"
	default:
		return fe.Error()
	}
}

func wrongValue(fe validator.FieldError) string {
	if s, ok := fe.Value().(string); ok {
		return s
	}
	return ""
}
