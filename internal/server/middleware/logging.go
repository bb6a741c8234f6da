package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

// WriteHeader captures the status code
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Write captures the number of bytes written
func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// LoggingMiddleware создает middleware для логирования HTTP запросов
// Логирует метод, путь, статус, время выполнения, размер ответа
// НЕ логирует sensitive данные (токены, пароли)
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer для захвата статуса и размера
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK, // default status
				written:        0,
			}

			// Обрабатываем запрос
			next.ServeHTTP(wrapped, r)

			// Вычисляем длительность
			duration := time.Since(start)

			// Определяем уровень логирования на основе статуса
			logLevel := slog.LevelInfo
			if wrapped.statusCode >= 500 {
				logLevel = slog.LevelError
			} else if wrapped.statusCode >= 400 {
				logLevel = slog.LevelWarn
			}

			// Логируем запрос (без sensitive данных)
			logger.Log(r.Context(), logLevel, "HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"status", wrapped.statusCode,
				"duration_ms", duration.Milliseconds(),
				"bytes_written", wrapped.written,
			)
		})
	}
}

// LoggingWithSkip создает middleware с возможностью пропуска определенных путей
// Полезно для health checks и других эндпоинтов с высокой частотой запросов
func LoggingWithSkip(logger *slog.Logger, skipPaths []string) func(http.Handler) http.Handler {
	skipMap := make(map[string]bool)
	for _, path := range skipPaths {
		skipMap[path] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Проверяем, нужно ли пропустить логирование
			if skipMap[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			// Используем обычный логгер
			LoggingMiddleware(logger)(next).ServeHTTP(w, r)
		})
	}
}
