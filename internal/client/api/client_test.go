package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/thalassemiacare/pkg/api"
)

func TestClient_Signup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/signup", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "anna@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.AuthResponse{
			Status: "success",
			Token:  "test-token",
			Data: api.UserData{
				User: api.User{
					ID:       "user-1",
					FullName: req.FullName,
					Email:    req.Email,
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Signup(context.Background(), api.SignupRequest{
		FullName: "Anna Petrova",
		Email:    "anna@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "test-token", resp.Token)
	assert.Equal(t, "anna@example.com", resp.Data.User.Email)
}

func TestClient_Signin_InvalidCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: "Incorrect email or password."})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Signin(context.Background(), api.SigninRequest{
		Email:    "anna@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, resp)
	// Сообщение сервера отдается пользователю без изменений
	assert.Equal(t, "Incorrect email or password.", err.Error())
}

func TestClient_Me(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.AuthResponse{
			Status: "success",
			Data: api.UserData{
				User: api.User{ID: "user-1", Email: "anna@example.com"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Me(context.Background(), "session-token")
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.Data.User.ID)
	assert.Empty(t, resp.Token)
}

func TestClient_Me_BadBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Me(context.Background(), "token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
