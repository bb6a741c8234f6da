package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/iudanet/thalassemiacare/internal/client/api"
	"github.com/iudanet/thalassemiacare/internal/client/storage"
	pkgapi "github.com/iudanet/thalassemiacare/pkg/api"
)

// State описывает состояние сессии на клиенте
type State int

const (
	// StateHydrating — начальное состояние до восстановления сессии с диска
	StateHydrating State = iota
	StateUnauthenticated
	StateAuthenticated
)

// String returns a human readable state name
func (s State) String() string {
	switch s {
	case StateHydrating:
		return "hydrating"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// ErrSubmitting возвращается при попытке выполнить операцию,
// пока предыдущая еще не завершилась
var ErrSubmitting = fmt.Errorf("another request is already in progress")

// APIClient defines the server operations the session service needs
type APIClient interface {
	Signup(ctx context.Context, req pkgapi.SignupRequest) (*pkgapi.AuthResponse, error)
	Signin(ctx context.Context, req pkgapi.SigninRequest) (*pkgapi.AuthResponse, error)
	Me(ctx context.Context, token string) (*pkgapi.AuthResponse, error)
}

var _ APIClient = (*api.Client)(nil)

// Service управляет жизненным циклом сессии: восстановление при запуске,
// вход, регистрация и выход. Неудачная попытка входа не сбрасывает
// текущее состояние, а только записывает сообщение об ошибке.
type Service struct {
	apiClient APIClient
	credStore storage.CredentialStorage

	mu         sync.Mutex
	state      State
	user       *pkgapi.User
	token      string
	submitting bool
	lastErr    string
}

// NewService создает новый сервис сессии.
// Состояние до вызова Hydrate — StateHydrating.
func NewService(apiClient APIClient, credStore storage.CredentialStorage) *Service {
	return &Service{
		apiClient: apiClient,
		credStore: credStore,
		state:     StateHydrating,
	}
}

// Hydrate восстанавливает сессию с диска. Наличие сохраненного токена
// считается действующей сессией, сетевой проверки нет. Ошибка чтения
// хранилища трактуется как отсутствие сессии.
func (s *Service) Hydrate(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.credStore.GetCredentials(ctx)
	if err != nil {
		// Ошибка чтения хранилища не фатальна, но сообщение сохраняем
		if !errors.Is(err, storage.ErrCredentialsNotFound) {
			s.lastErr = err.Error()
		}
		s.state = StateUnauthenticated
		return s.state
	}

	s.token = creds.Token
	s.user = &pkgapi.User{
		ID:       creds.UserID,
		FullName: creds.FullName,
		Email:    creds.Email,
	}
	s.state = StateAuthenticated
	return s.state
}

// SignUp регистрирует нового пользователя и сохраняет сессию
func (s *Service) SignUp(ctx context.Context, fullName, email, password string) error {
	return s.submit(ctx, func(ctx context.Context) (*pkgapi.AuthResponse, error) {
		return s.apiClient.Signup(ctx, pkgapi.SignupRequest{
			FullName: fullName,
			Email:    email,
			Password: password,
		})
	})
}

// SignIn выполняет вход и сохраняет сессию
func (s *Service) SignIn(ctx context.Context, email, password string) error {
	return s.submit(ctx, func(ctx context.Context) (*pkgapi.AuthResponse, error) {
		return s.apiClient.Signin(ctx, pkgapi.SigninRequest{
			Email:    email,
			Password: password,
		})
	})
}

// submit выполняет запрос аутентификации с защитой от повторной отправки
func (s *Service) submit(ctx context.Context, call func(ctx context.Context) (*pkgapi.AuthResponse, error)) error {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return ErrSubmitting
	}
	s.submitting = true
	s.lastErr = ""
	s.mu.Unlock()

	resp, err := call(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false

	if err != nil {
		// Состояние не меняем: неудачная попытка входа не должна
		// сбрасывать уже действующую сессию
		s.lastErr = err.Error()
		return err
	}

	creds := &storage.Credentials{
		Token:    resp.Token,
		UserID:   resp.Data.User.ID,
		FullName: resp.Data.User.FullName,
		Email:    resp.Data.User.Email,
		SavedAt:  time.Now().UTC(),
	}
	if err := s.credStore.SaveCredentials(ctx, creds); err != nil {
		s.lastErr = err.Error()
		return fmt.Errorf("failed to save credentials: %w", err)
	}

	s.token = resp.Token
	s.user = &resp.Data.User
	s.state = StateAuthenticated
	return nil
}

// SignOut удаляет сессию с устройства. Операция локальная, на сервер
// ничего не отправляется. Отсутствие сохраненной сессии не ошибка.
func (s *Service) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.credStore.DeleteCredentials(ctx); err != nil {
		s.lastErr = err.Error()
		return fmt.Errorf("failed to delete credentials: %w", err)
	}

	s.token = ""
	s.user = nil
	s.lastErr = ""
	s.state = StateUnauthenticated
	return nil
}

// Refresh запрашивает профиль с сервера по сохраненному токену
// и обновляет данные пользователя в сессии
func (s *Service) Refresh(ctx context.Context) (*pkgapi.User, error) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return nil, fmt.Errorf("not authenticated")
	}

	resp, err := s.apiClient.Me(ctx, token)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &resp.Data.User
	return s.user, nil
}

// State возвращает текущее состояние сессии
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// User возвращает пользователя текущей сессии или nil
func (s *Service) User() *pkgapi.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// Token возвращает токен текущей сессии
func (s *Service) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Submitting reports whether an auth request is in flight
func (s *Service) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// Err возвращает сообщение последней неудачной операции
func (s *Service) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}
