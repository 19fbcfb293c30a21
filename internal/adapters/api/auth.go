package api

import (
	"context"
	"net/http"

	"github.com/bnema/agent-dash-cli/internal/domain"
	"github.com/bnema/agent-dash-cli/internal/ports"
)

var _ ports.Authenticator = (*Client)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.Session, *domain.ErrorDescriptor) {
	res := Request[loginResponse](ctx, c, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password})
	if !res.OK {
		return domain.Session{}, res.Err
	}
	return domain.Session{Token: res.Data.Token, User: res.Data.User}, nil
}

func (c *Client) Profile(ctx context.Context) (domain.User, *domain.ErrorDescriptor) {
	res := Request[domain.User](ctx, c, http.MethodGet, "/auth/me", nil)
	if !res.OK {
		return domain.User{}, res.Err
	}
	return res.Data, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) *domain.ErrorDescriptor {
	res := Request[struct{}](ctx, c, http.MethodPost, "/auth/forgot-password", map[string]string{"email": email})
	return res.Err
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) *domain.ErrorDescriptor {
	res := Request[struct{}](ctx, c, http.MethodPost, "/auth/reset-password", map[string]string{
		"token":    token,
		"password": password,
	})
	return res.Err
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) *domain.ErrorDescriptor {
	res := Request[struct{}](ctx, c, http.MethodPost, "/auth/change-password", map[string]string{
		"currentPassword": current,
		"newPassword":     next,
	})
	return res.Err
}

type regenKeyResponse struct {
	APIKey string `json:"apiKey"`
}

func (c *Client) RegenerateAPIKey(ctx context.Context) (string, *domain.ErrorDescriptor) {
	res := Request[regenKeyResponse](ctx, c, http.MethodPost, "/auth/regen-key", nil)
	if !res.OK {
		return "", res.Err
	}
	return res.Data.APIKey, nil
}
