package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern определяет допустимый формат email.
// Упрощенная проверка: local-part@domain с хотя бы одной точкой в домене.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
	// MaxFullNameLen максимальная длина полного имени
	MaxFullNameLen = 128
)

// NormalizeEmail приводит email к каноническому виду (lowercase, без пробелов).
// Уникальность email в хранилище — case-insensitive, поэтому нормализация
// обязана выполняться до любого сохранения или поиска.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateEmail проверяет, что email соответствует допустимому формату
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email format is invalid")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateFullName проверяет, что полное имя задано и не слишком длинное
func ValidateFullName(fullName string) error {
	if strings.TrimSpace(fullName) == "" {
		return fmt.Errorf("full name cannot be empty")
	}

	if len(fullName) > MaxFullNameLen {
		return fmt.Errorf("full name must not exceed %d characters", MaxFullNameLen)
	}

	return nil
}
