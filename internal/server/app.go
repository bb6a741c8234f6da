// Package server собирает HTTP сервер аутентификации: хранилище,
// handlers, middleware цепочку и graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/thalassemiacare/internal/server/config"
	"github.com/iudanet/thalassemiacare/internal/server/handlers"
	"github.com/iudanet/thalassemiacare/internal/server/middleware"
	"github.com/iudanet/thalassemiacare/internal/server/storage/sqlite"
)

// Лимиты для auth endpoints: защита от перебора паролей
const (
	authRateLimit  = 10
	authRateWindow = 1 * time.Minute

	shutdownTimeout = 10 * time.Second
)

// App представляет собранное серверное приложение
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	storage *sqlite.Storage
	limiter *middleware.RateLimiter
	server  *http.Server
	version string
}

// NewApp создает приложение: открывает хранилище и собирает роутер.
// Конфигурация уже провалидирована в config.Load (секрет и путь к базе
// обязательны до старта).
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger, version string) (*App, error) {
	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	app := &App{
		cfg:     cfg,
		logger:  logger,
		storage: store,
		limiter: middleware.NewRateLimiter(authRateLimit, authRateWindow, logger),
		version: version,
	}

	app.server = &http.Server{
		Addr:              cfg.Address,
		Handler:           app.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	return app, nil
}

// routes собирает роутер и middleware цепочку
func (a *App) routes() http.Handler {
	jwtConfig := handlers.JWTConfig{
		Secret:   []byte(a.cfg.JWTSecret),
		TokenTTL: a.cfg.TokenTTL,
	}

	authHandler := handlers.NewAuthHandler(a.logger, a.storage, jwtConfig)
	healthHandler := handlers.NewHealthHandler(a.logger, a.version)

	rateLimit := middleware.RateLimitMiddleware(a.limiter, a.logger)
	requireAuth := middleware.AuthMiddleware(a.logger, jwtConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", healthHandler.Root)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	// Auth endpoints за rate limiter
	mux.Handle("POST /api/auth/signup", rateLimit(http.HandlerFunc(authHandler.Signup)))
	mux.Handle("POST /api/auth/signin", rateLimit(http.HandlerFunc(authHandler.Signin)))

	// Защищенные endpoints за auth middleware
	mux.Handle("GET /api/auth/me", requireAuth(http.HandlerFunc(authHandler.Me)))

	// Общая цепочка: recovery снаружи, логирование внутри
	// (health не логируем, чтобы не засорять логи проб)
	logging := middleware.LoggingWithSkip(a.logger, []string{"/api/v1/health"})
	recovery := middleware.RecoveryMiddleware(a.logger)

	return recovery(logging(mux))
}

// Run запускает HTTP сервер и блокируется до отмены контекста,
// после чего выполняет graceful shutdown
func (a *App) Run(ctx context.Context) error {
	errC := make(chan error, 1)

	go func() {
		a.logger.Info("server listening", slog.String("address", a.cfg.Address))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

// Close освобождает ресурсы приложения
func (a *App) Close() error {
	a.limiter.Stop()
	return a.storage.Close()
}
