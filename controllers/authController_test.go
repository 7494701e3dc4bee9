package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civic-reporter-be/store"
)

func authRouter(s store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ac := NewAuthController(s, testLogger())
	r := gin.New()
	r.POST("/api/auth/register", ac.Register)
	r.POST("/api/auth/login", ac.Login)
	return r
}

func TestLoginDemoCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authRouter(store.NewMemory())

	tests := []struct {
		username string
		password string
		role     string
	}{
		{"admin", "admin123", "admin"},
		{"citizen1", "pass123", "citizen"},
	}

	for _, tc := range tests {
		t.Run(tc.username, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
				"username": tc.username,
				"password": tc.password,
			})
			require.Equal(t, http.StatusOK, w.Code, w.Body.String())

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["access_token"])
			assert.Equal(t, "bearer", resp["token_type"])
			assert.Equal(t, tc.role, resp["role"])
		})
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authRouter(store.NewMemory())

	t.Run("wrong demo password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
			"username": "admin",
			"password": "wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
			"username": "nobody",
			"password": "whatever",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRegister(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authRouter(store.NewMemory())

	body := gin.H{
		"username":  "asha",
		"email":     "asha@example.com",
		"password":  "secret123",
		"full_name": "Asha Rao",
	}

	w := doJSON(r, http.MethodPost, "/api/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "asha", resp["username"])
	assert.Equal(t, "citizen", resp["role"], "role defaults to citizen")
	assert.NotContains(t, resp, "password")

	t.Run("duplicate username", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth/register", body)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("registered user can log in", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
			"username": "asha",
			"password": "secret123",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var login map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
		assert.Equal(t, "citizen", login["role"])
	})
}

func TestRegisterValidation(t *testing.T) {
	r := authRouter(store.NewMemory())

	t.Run("short password", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
			"username":  "bob",
			"email":     "bob@example.com",
			"password":  "123",
			"full_name": "Bob",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad email", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/auth/register", gin.H{
			"username":  "bob",
			"email":     "not-an-email",
			"password":  "secret123",
			"full_name": "Bob",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
