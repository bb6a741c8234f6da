package api

// SignupRequest представляет запрос на регистрацию нового пользователя
type SignupRequest struct {
	FullName string `json:"fullName"` // полное имя пользователя
	Email    string `json:"email"`    // email (уникальный, case-insensitive)
	Password string `json:"password"` // пароль в открытом виде (только в запросе)
}

// SigninRequest представляет запрос на аутентификацию
type SigninRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль в открытом виде
}

// User представляет публичное представление пользователя в ответах API.
// Хеш пароля сюда не попадает никогда.
type User struct {
	ID        string `json:"id"`        // UUID пользователя
	FullName  string `json:"fullName"`  // полное имя
	Email     string `json:"email"`     // email (нормализованный, lowercase)
	CreatedAt string `json:"createdAt"` // время создания (RFC3339)
}

// UserData оборачивает пользователя в поле data ответа
type UserData struct {
	User User `json:"user"`
}

// AuthResponse представляет успешный ответ signup/signin
type AuthResponse struct {
	Status string   `json:"status"`          // всегда "success"
	Token  string   `json:"token,omitempty"` // подписанный session token
	Data   UserData `json:"data"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Message string `json:"message"` // человекочитаемое описание ошибки
}
