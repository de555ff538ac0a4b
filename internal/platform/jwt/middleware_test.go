package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// setupProtected builds a router with AuthRequired in front of a probe
// handler that echoes the principal it finds in the context.
func setupProtected(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"login":  c.GetString(ContextLogin),
			"userID": c.GetUint(ContextUserID),
		})
	})
	return r
}

func requestWithAuth(r *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	t.Run("valid token exposes login and user id to the handler", func(t *testing.T) {
		gen := NewGenerator(testSecret, time.Hour)
		tokenStr, err := gen.GenerateToken(7, "Oleksii")
		require.NoError(t, err)

		w := requestWithAuth(setupProtected(testSecret), "Bearer "+tokenStr)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"login":"Oleksii","userID":7}`, w.Body.String())
	})

	t.Run("missing header is rejected with 401", func(t *testing.T) {
		w := requestWithAuth(setupProtected(testSecret), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("non-bearer header is rejected with 401", func(t *testing.T) {
		w := requestWithAuth(setupProtected(testSecret), "Basic abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with a different secret is rejected", func(t *testing.T) {
		gen := NewGenerator("other-secret", time.Hour)
		tokenStr, err := gen.GenerateToken(7, "Oleksii")
		require.NoError(t, err)

		w := requestWithAuth(setupProtected(testSecret), "Bearer "+tokenStr)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		gen := NewGenerator(testSecret, -time.Minute)
		tokenStr, err := gen.GenerateToken(7, "Oleksii")
		require.NoError(t, err)

		w := requestWithAuth(setupProtected(testSecret), "Bearer "+tokenStr)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token without a login claim is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": 7,
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		tokenStr, err := token.SignedString([]byte(testSecret))
		require.NoError(t, err)

		w := requestWithAuth(setupProtected(testSecret), "Bearer "+tokenStr)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unsigned token is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
			"sub":   7,
			"login": "Oleksii",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		tokenStr, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		w := requestWithAuth(setupProtected(testSecret), "Bearer "+tokenStr)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty secret is a server error, not an auth failure", func(t *testing.T) {
		gen := NewGenerator(testSecret, time.Hour)
		tokenStr, err := gen.GenerateToken(7, "Oleksii")
		require.NoError(t, err)

		w := requestWithAuth(setupProtected(""), "Bearer "+tokenStr)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
