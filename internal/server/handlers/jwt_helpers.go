package handlers

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims представляет JWT claims для нашего приложения
type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// JWTConfig содержит конфигурацию для JWT
type JWTConfig struct {
	Secret   []byte
	TokenTTL time.Duration
}

// GenerateSessionToken создает новый подписанный session token.
// Токен привязан к идентификатору пользователя и действует TokenTTL (30 дней).
func GenerateSessionToken(cfg JWTConfig, userID string) (string, error) {
	now := time.Now()
	expiresAt := now.Add(cfg.TokenTTL)

	claims := CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "thalassemiacare",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(cfg.Secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateSessionToken валидирует и парсит session token
func ValidateSessionToken(cfg JWTConfig, tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return cfg.Secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
