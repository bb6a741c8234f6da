package storage

import (
	"context"
	"time"
)

// Credentials хранит сессию пользователя на устройстве
type Credentials struct {
	Token    string    `json:"token"`
	UserID   string    `json:"user_id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	SavedAt  time.Time `json:"saved_at"`
}

// CredentialStorage defines the interface for persisting the session
// on the client device. A single slot is stored: saving overwrites the
// previous session, deleting a missing session is not an error.
type CredentialStorage interface {
	SaveCredentials(ctx context.Context, creds *Credentials) error
	GetCredentials(ctx context.Context) (*Credentials, error)
	DeleteCredentials(ctx context.Context) error
	HasCredentials(ctx context.Context) (bool, error)
	Close() error
}
