package storage

import (
	"context"
	"time"

	"github.com/iudanet/thalassemiacare/internal/models"
)

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage.
	// User.Email must already be normalized (lowercase).
	// Returns ErrEmailTaken if the email is already registered;
	// under concurrent signups with the same email the UNIQUE index
	// guarantees exactly one create succeeds.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by normalized email
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateUser updates user information.
	// PasswordHash is written back as-is: a save that didn't go through
	// models.User.SetPassword must not change the stored hash.
	// Returns ErrUserNotFound if user doesn't exist
	UpdateUser(ctx context.Context, user *models.User) error

	// DeleteUser deletes user by ID
	// Returns ErrUserNotFound if user doesn't exist
	DeleteUser(ctx context.Context, userID string) error

	// UpdateLastLogin updates the last login timestamp
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}
