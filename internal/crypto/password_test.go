package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"), "expected bcrypt hash format")
}

func TestHashPassword_Empty(t *testing.T) {
	hash, err := HashPassword("")
	assert.Error(t, err)
	assert.Empty(t, hash)
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	// Одинаковый пароль должен давать разные хеши (случайная соль)
	hash1, err := HashPassword("secret123")
	require.NoError(t, err)

	hash2, err := HashPassword("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  bool
	}{
		{"correct password", "secret123", hash, false},
		{"wrong password", "wrong-password", hash, true},
		{"empty password", "", hash, true},
		{"empty hash", "secret123", "", true},
		{"garbage hash", "secret123", "not-a-bcrypt-hash", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.password, tt.hash)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
