package api

import (
	"context"
	"net/http"

	"github.com/iudanet/marketsync/pkg/api"
)

// SignUp регистрирует нового пользователя
func (c *Client) SignUp(ctx context.Context, req api.SignUpRequest) (*api.SignUpResponse, error) {
	var resp api.SignUpResponse
	err := c.do(ctx, call{op: "sign up", method: http.MethodPost, path: "/auth/signup", body: req, result: &resp, anon: true})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.do(ctx, call{op: "login", method: http.MethodPost, path: "/auth/login", body: req, result: &resp, anon: true})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Refresh обменивает refresh token на новую пару токенов
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*api.TokenResponse, error) {
	var resp api.TokenResponse
	err := c.do(ctx, call{
		op: "refresh", method: http.MethodPost, path: "/auth/refresh",
		body: api.RefreshRequest{RefreshToken: refreshToken}, result: &resp, anon: true,
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Ping проверяет доступность gateway
func (c *Client) Ping(ctx context.Context) (*api.HealthResponse, error) {
	var resp api.HealthResponse
	if err := c.do(ctx, call{op: "ping", method: http.MethodGet, path: "/health", result: &resp, anon: true}); err != nil {
		return nil, err
	}
	return &resp, nil
}
