package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"phonebook_backend/internal/platform/problem"
)

// Context keys under which the middleware stores the authenticated principal.
const (
	ContextUserID = "userID"
	ContextLogin  = "login"
)

// AuthRequired returns a Gin middleware that validates bearer tokens and
// restricts access to authenticated users. On success the principal's login
// and user id are stored in the request context; handlers pass the login
// explicitly into every core call.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			problem.Abort(c, http.StatusUnauthorized, "Authentication required",
				problem.Detail{Message: "missing bearer token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		if secret == "" {
			// Server misconfiguration (JWT secret not set)
			problem.Abort(c, http.StatusInternalServerError, "Internal error",
				problem.Detail{Message: "server misconfigured"})
			return
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Only HMAC is accepted
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			problem.Abort(c, http.StatusUnauthorized, "Authentication required",
				problem.Detail{Message: "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			problem.Abort(c, http.StatusUnauthorized, "Authentication required",
				problem.Detail{Message: "invalid token claims"})
			return
		}
		login, ok := claims["login"].(string)
		if !ok || login == "" {
			problem.Abort(c, http.StatusUnauthorized, "Authentication required",
				problem.Detail{Message: "invalid token claims"})
			return
		}
		c.Set(ContextLogin, login)
		if sub, ok := claims["sub"].(float64); ok { // JWT numbers decode as float64
			c.Set(ContextUserID, uint(sub))
		}

		c.Next()
	}
}
