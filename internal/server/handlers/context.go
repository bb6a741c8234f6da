package handlers

import "context"

// contextKey тип для ключей контекста
type contextKey string

const (
	// UserIDKey ключ для хранения user_id в контексте
	UserIDKey contextKey = "user_id"
)

// UserIDFromContext извлекает user_id, положенный auth middleware
func UserIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}
