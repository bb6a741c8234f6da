package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/thalassemiacare/internal/models"
	"github.com/iudanet/thalassemiacare/internal/server/storage"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	// Используем in-memory database для тестов
	s, err := New(ctx, ":memory:")
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
	}

	return s, cleanup
}

func newTestUser(t *testing.T, email string) *models.User {
	now := time.Now()
	user := &models.User{
		ID:        uuid.New().String(),
		FullName:  "Test User",
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, user.SetPassword("secret123"))
	return user
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser(t, "a@x.com")

	err := s.CreateUser(ctx, user)
	require.NoError(t, err)

	// Verify user was created
	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)
	assert.Equal(t, user.FullName, retrieved.FullName)
	assert.Equal(t, user.Email, retrieved.Email)
	assert.Equal(t, user.PasswordHash, retrieved.PasswordHash)
	assert.Nil(t, retrieved.LastLogin)
}

func TestUserStorage_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	// Create first user
	user1 := newTestUser(t, "duplicate@x.com")
	err := s.CreateUser(ctx, user1)
	require.NoError(t, err)

	// Try to create second user with same email
	user2 := newTestUser(t, "duplicate@x.com")
	err = s.CreateUser(ctx, user2)
	assert.ErrorIs(t, err, storage.ErrEmailTaken)

	// Ровно один пользователь в хранилище
	retrieved, err := s.GetUserByEmail(ctx, "duplicate@x.com")
	require.NoError(t, err)
	assert.Equal(t, user1.ID, retrieved.ID)
}

func TestUserStorage_GetUserByEmail(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser(t, "a@x.com")
	require.NoError(t, s.CreateUser(ctx, user))

	retrieved, err := s.GetUserByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, retrieved.ID)

	_, err = s.GetUserByEmail(ctx, "unknown@x.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_GetUserByID_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	_, err := s.GetUserByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateUser_KeepsPasswordHash(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser(t, "a@x.com")
	require.NoError(t, s.CreateUser(ctx, user))

	originalHash := user.PasswordHash

	// Сохраняем пользователя без изменения пароля
	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)

	retrieved.FullName = "Renamed User"
	retrieved.UpdatedAt = time.Now()
	require.NoError(t, s.UpdateUser(ctx, retrieved))

	// Хеш пароля не должен измениться
	after, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, originalHash, after.PasswordHash)
	assert.Equal(t, "Renamed User", after.FullName)
	assert.NoError(t, after.CheckPassword("secret123"))
}

func TestUserStorage_UpdateUser_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser(t, "ghost@x.com")
	err := s.UpdateUser(ctx, user)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_DeleteUser(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser(t, "a@x.com")
	require.NoError(t, s.CreateUser(ctx, user))

	err := s.DeleteUser(ctx, user.ID)
	require.NoError(t, err)

	_, err = s.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	// Повторное удаление
	err = s.DeleteUser(ctx, user.ID)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	user := newTestUser(t, "a@x.com")
	require.NoError(t, s.CreateUser(ctx, user))

	originalHash := user.PasswordHash
	loginTime := time.Now()

	err := s.UpdateLastLogin(ctx, user.ID, loginTime)
	require.NoError(t, err)

	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved.LastLogin)
	assert.WithinDuration(t, loginTime, *retrieved.LastLogin, time.Second)

	// Обновление last_login не трогает хеш пароля
	assert.Equal(t, originalHash, retrieved.PasswordHash)
}

func TestUserStorage_UpdateLastLogin_NotFound(t *testing.T) {
	ctx := context.Background()
	s, cleanup := setupTestStorage(t)
	defer cleanup()

	err := s.UpdateLastLogin(ctx, uuid.New().String(), time.Now())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
