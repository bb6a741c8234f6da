package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/thalassemiacare/internal/models"
	"github.com/iudanet/thalassemiacare/internal/server/storage"
)

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, full_name, email, password_hash, created_at, updated_at, last_login)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
		user.LastLogin,
	)

	if err != nil {
		// Проверяем на duplicate email: email нормализуется до lowercase,
		// поэтому UNIQUE индекс обеспечивает case-insensitive уникальность
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return storage.ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves user by normalized email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, full_name, email, password_hash, created_at, updated_at, last_login
		FROM users
		WHERE email = ?
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, full_name, email, password_hash, created_at, updated_at, last_login
		FROM users
		WHERE id = ?
	`

	return s.scanUser(s.db.QueryRowContext(ctx, query, userID))
}

// scanUser читает одну строку users в модель
func (s *Storage) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var lastLogin sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.FullName,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
		&lastLogin,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if lastLogin.Valid {
		user.LastLogin = &lastLogin.Time
	}

	return user, nil
}

// UpdateUser updates user information
// PasswordHash записывается как есть: повторное сохранение без
// SetPassword не перехеширует пароль
func (s *Storage) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET full_name = ?, email = ?, password_hash = ?, updated_at = ?, last_login = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.UpdatedAt,
		user.LastLogin,
		user.ID,
	)

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return storage.ErrEmailTaken
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// DeleteUser deletes user by ID
func (s *Storage) DeleteUser(ctx context.Context, userID string) error {
	query := `DELETE FROM users WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// UpdateLastLogin updates the last login timestamp
func (s *Storage) UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error {
	query := `UPDATE users SET last_login = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, lastLogin, userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}
