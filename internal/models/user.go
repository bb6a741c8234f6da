package models

import (
	"time"

	"github.com/iudanet/thalassemiacare/internal/crypto"
	"github.com/iudanet/thalassemiacare/pkg/api"
)

// User представляет пользователя в системе
type User struct {
	ID           string     `json:"id"`         // UUID пользователя
	FullName     string     `json:"full_name"`  // полное имя
	Email        string     `json:"email"`      // уникальный email (хранится lowercase)
	PasswordHash string     `json:"-"`          // bcrypt хеш пароля, не сериализуется
	CreatedAt    time.Time  `json:"created_at"` // время создания
	UpdatedAt    time.Time  `json:"updated_at"` // время последнего обновления
	LastLogin    *time.Time `json:"last_login,omitempty"`
}

// SetPassword хеширует пароль и записывает хеш в PasswordHash.
// Это единственный путь записи PasswordHash: повторное сохранение
// пользователя без вызова SetPassword не меняет сохраненный хеш.
func (u *User) SetPassword(password string) error {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword проверяет пароль против сохраненного хеша
func (u *User) CheckPassword(password string) error {
	return crypto.VerifyPassword(password, u.PasswordHash)
}

// Public возвращает представление пользователя для API ответов.
// Хеш пароля сюда не попадает.
func (u *User) Public() api.User {
	return api.User{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
	}
}
