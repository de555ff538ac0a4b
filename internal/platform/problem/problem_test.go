package problem

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Login string   `validate:"required,min=3,max=24"`
	Email []string `validate:"dive,email"`
}

func runHandler(t *testing.T, path string, h gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET(path, h)
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRespond(t *testing.T) {
	w := runHandler(t, "/things", func(c *gin.Context) {
		Respond(c, http.StatusNotFound, "Data is not found",
			Detail{Message: "no such thing", WrongValue: "ghost"})
	})

	assert.Equal(t, http.StatusNotFound, w.Code)

	var p Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "about:blank", p.Type)
	assert.Equal(t, "Not Found", p.Title)
	assert.Equal(t, http.StatusNotFound, p.Status)
	assert.Equal(t, "Data is not found", p.Detail)
	assert.Equal(t, "/things", p.Instance)
	require.Len(t, p.ProblemDetails, 1)
	assert.Equal(t, "ghost", p.ProblemDetails[0].WrongValue)
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	reached := false
	r.GET("/guarded",
		func(c *gin.Context) {
			Abort(c, http.StatusUnauthorized, "Authentication required",
				Detail{Message: "missing bearer token"})
		},
		func(c *gin.Context) { reached = true },
	)

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, reached, "abort must stop the chain")
}

func TestRespondBindingError(t *testing.T) {
	t.Run("validator errors become per-field details", func(t *testing.T) {
		v := validator.New()
		err := v.Struct(sampleRequest{Login: "ab", Email: []string{"not-an-email"}})
		require.Error(t, err)

		w := runHandler(t, "/register", func(c *gin.Context) {
			RespondBindingError(c, err)
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var p Problem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, "Failed validation", p.Detail)
		require.Len(t, p.ProblemDetails, 2)
		assert.Equal(t, "Login must be at least 3 characters", p.ProblemDetails[0].Message)
		assert.Equal(t, "ab", p.ProblemDetails[0].WrongValue)
		assert.Equal(t, "Email is written in a wrong format", p.ProblemDetails[1].Message)
		assert.Equal(t, "not-an-email", p.ProblemDetails[1].WrongValue)
	})

	t.Run("a non-validator error stays a single generic entry", func(t *testing.T) {
		w := runHandler(t, "/register", func(c *gin.Context) {
			RespondBindingError(c, assert.AnError)
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var p Problem
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, "Values can not be read", p.Detail)
		require.Len(t, p.ProblemDetails, 1)
	})
}
