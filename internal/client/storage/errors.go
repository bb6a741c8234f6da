package storage

import "errors"

var (
	// ErrCredentialsNotFound возвращается когда сохраненных учетных данных нет
	ErrCredentialsNotFound = errors.New("credentials not found")
)
