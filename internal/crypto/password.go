package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost задает cost-фактор bcrypt.
// Соль генерируется bcrypt автоматически и уникальна для каждого хеша.
const PasswordHashCost = 10

// HashPassword хеширует пароль с использованием bcrypt
// Используется на сервере при создании пользователя
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword проверяет, соответствует ли пароль сохраненному хешу.
// Сравнение делегируется bcrypt (устойчиво к timing-атакам),
// прямое сравнение строк здесь недопустимо.
func VerifyPassword(password, hashedPassword string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if hashedPassword == "" {
		return fmt.Errorf("hashed password cannot be empty")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)); err != nil {
		return fmt.Errorf("invalid password")
	}

	return nil
}
