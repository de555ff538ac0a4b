// Package dto defines the request and response bodies for the contacts feature.
package dto

// ContactRequest is the body of the create and edit endpoints. Emails and
// phones are validated element-wise; the phone rule is registered in
// RegisterPhoneRule.
type ContactRequest struct {
	Name   string   `json:"name" binding:"required,min=3,max=24"`
	Emails []string `json:"emails" binding:"dive,required,email"`
	Phones []string `json:"phones" binding:"dive,required,phone"`
}
