// Package dto defines the request and response bodies for the auth feature.
package dto

// AuthRequest is the body of both the register and the login endpoint.
type AuthRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=24"`
	Password string `json:"password" binding:"required,min=5,max=64"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
