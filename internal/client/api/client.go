package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/thalassemiacare/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Signup регистрирует нового пользователя
func (c *Client) Signup(ctx context.Context, req api.SignupRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/signup", "", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signin выполняет аутентификацию пользователя
func (c *Client) Signin(ctx context.Context, req api.SigninRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(ctx, http.MethodPost, "/api/auth/signin", "", req, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me возвращает текущего пользователя по session token
func (c *Client) Me(ctx context.Context, token string) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(ctx, http.MethodGet, "/api/auth/me", token, nil, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код. Сервер отвечает {"message": "..."} на ошибки,
	// это сообщение показывается пользователю как есть
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("%s", errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
