package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/thalassemiacare/internal/models"
	"github.com/iudanet/thalassemiacare/internal/server/storage"
	"github.com/iudanet/thalassemiacare/internal/validation"
	"github.com/iudanet/thalassemiacare/pkg/api"
)

// Сообщения об ошибках авторизации.
// Для signin одно и то же сообщение для "нет такого пользователя"
// и "неверный пароль" — чтобы не раскрывать, что именно не совпало.
const (
	msgUserExists         = "User already exists."
	msgMissingCredentials = "Please provide email and password."
	msgInvalidCredentials = "Incorrect email or password."
	msgServerError        = "Server error"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger      *slog.Logger
	userStorage storage.UserStorage
	jwtConfig   JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, userStorage storage.UserStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		userStorage: userStorage,
		jwtConfig:   jwtConfig,
	}
}

// Signup обрабатывает POST /api/auth/signup
// Регистрация нового пользователя
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode signup request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация входных данных
	if err := validation.ValidateFullName(req.FullName); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	email := validation.NormalizeEmail(req.Email)
	if err := validation.ValidateEmail(email); err != nil {
		h.logger.WarnContext(ctx, "invalid email", slog.Any("error", err))
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := validation.ValidatePassword(req.Password); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Создаем пользователя
	now := time.Now()
	user := &models.User{
		ID:        uuid.New().String(),
		FullName:  req.FullName,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Хешируем пароль (bcrypt, случайная соль на каждый хеш)
	if err := user.SetPassword(req.Password); err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		h.sendError(w, msgServerError, http.StatusInternalServerError)
		return
	}

	// Сохраняем в БД. Дубликат email отлавливается UNIQUE индексом:
	// при двух одновременных signup с одним email ровно один успешен
	if err := h.userStorage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrEmailTaken) {
			h.logger.WarnContext(ctx, "email already registered", slog.String("email", email))
			h.sendError(w, msgUserExists, http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		h.sendError(w, msgServerError, http.StatusInternalServerError)
		return
	}

	// Выпускаем session token для нового пользователя
	token, err := GenerateSessionToken(h.jwtConfig, user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate session token", slog.Any("error", err))
		h.sendError(w, msgServerError, http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("email", email),
		slog.String("user_id", user.ID))

	resp := api.AuthResponse{
		Status: "success",
		Token:  token,
		Data:   api.UserData{User: user.Public()},
	}

	h.sendJSON(w, resp, http.StatusCreated)
}

// Signin обрабатывает POST /api/auth/signin
// Аутентификация пользователя
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.SigninRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode signin request", slog.Any("error", err))
		h.sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Проверка обязательных полей
	if req.Email == "" || req.Password == "" {
		h.sendError(w, msgMissingCredentials, http.StatusBadRequest)
		return
	}

	email := validation.NormalizeEmail(req.Email)

	// Получаем пользователя из БД
	user, err := h.userStorage.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "signin failed: user not found", slog.String("email", email))
			h.sendError(w, msgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, msgServerError, http.StatusInternalServerError)
		return
	}

	// Проверяем пароль (bcrypt, сравнение внутри примитива)
	if err := user.CheckPassword(req.Password); err != nil {
		h.logger.WarnContext(ctx, "signin failed: invalid password", slog.String("email", email))
		h.sendError(w, msgInvalidCredentials, http.StatusUnauthorized)
		return
	}

	// Выпускаем session token
	token, err := GenerateSessionToken(h.jwtConfig, user.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate session token", slog.Any("error", err))
		h.sendError(w, msgServerError, http.StatusInternalServerError)
		return
	}

	// Обновляем last_login
	if err := h.userStorage.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		// Не критичная ошибка, логируем но не прерываем
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user signed in successfully",
		slog.String("email", email),
		slog.String("user_id", user.ID))

	resp := api.AuthResponse{
		Status: "success",
		Token:  token,
		Data:   api.UserData{User: user.Public()},
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Me обрабатывает GET /api/auth/me
// Возвращает текущего пользователя по session token (за auth middleware)
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		h.sendError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.userStorage.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Токен валиден, но пользователя уже нет
			h.sendError(w, msgInvalidCredentials, http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		h.sendError(w, msgServerError, http.StatusInternalServerError)
		return
	}

	resp := api.AuthResponse{
		Status: "success",
		Data:   api.UserData{User: user.Public()},
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// sendJSON отправляет JSON ответ
func (h *AuthHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ответ с ошибкой
func (h *AuthHandler) sendError(w http.ResponseWriter, message string, statusCode int) {
	resp := api.ErrorResponse{
		Message: message,
	}
	h.sendJSON(w, resp, statusCode)
}
