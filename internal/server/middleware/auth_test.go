package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/thalassemiacare/internal/server/handlers"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	cfg := testJWTConfig()
	token, err := handlers.GenerateSessionToken(cfg, "user-1")
	require.NoError(t, err)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = handlers.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	mw := AuthMiddleware(testLogger(), cfg)

	r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	mw(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", gotUserID)
}

func TestAuthMiddleware_Unauthorized(t *testing.T) {
	cfg := testJWTConfig()

	expiredCfg := handlers.JWTConfig{Secret: cfg.Secret, TokenTTL: -time.Hour}
	expiredToken, err := handlers.GenerateSessionToken(expiredCfg, "user-1")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"bearer without token", "Bearer"},
		{"garbage token", "Bearer not.a.token"},
		{"expired token", "Bearer " + expiredToken},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler should not be called")
	})

	mw := AuthMiddleware(testLogger(), cfg)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			w := httptest.NewRecorder()
			mw(next).ServeHTTP(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}
