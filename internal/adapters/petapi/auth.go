package petapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/auth"
)

// Client implementa auth.Authenticator contra /api/auth y /api/users.
var _ auth.Authenticator = (*Client)(nil)

// Login usa form data (el backend no acepta JSON en este endpoint).
// La cookie de sesión queda en el jar; el usuario se pide aparte con
// CurrentUser, igual que hace el front original.
func (c *Client) Login(ctx context.Context, creds auth.Credentials) error {
	form := url.Values{}
	form.Set("username", creds.Username)
	form.Set("password", creds.Password)

	var out struct {
		Message  string   `json:"message"`
		Username string   `json:"username"`
		Roles    []string `json:"roles"`
	}
	if err := c.http.DoForm(ctx, http.MethodPost, "/auth/login", c.headers(), form, &out); err != nil {
		return asAuthError(err)
	}

	c.log.Debug("login accepted", map[string]any{"username": out.Username})
	return nil
}

func (c *Client) Register(ctx context.Context, reg auth.Registration) (auth.User, error) {
	var u auth.User
	if err := c.http.DoJSON(ctx, http.MethodPost, "/auth/register", c.headers(), reg, &u); err != nil {
		return auth.User{}, asAuthError(err)
	}
	return u, nil
}

func (c *Client) Logout(ctx context.Context) error {
	err := c.http.DoJSON(ctx, http.MethodPost, "/auth/logout", c.headers(), nil, nil)

	// La cookie local se descarta siempre, falle o no el upstream.
	c.http.ClearCookies()

	if err != nil {
		return asAuthError(err)
	}
	return nil
}

func (c *Client) CurrentUser(ctx context.Context) (auth.User, error) {
	var u auth.User
	if err := c.getJSON(ctx, "/users/my-info", &u); err != nil {
		return auth.User{}, err
	}
	return u, nil
}

// extractMessage intenta sacar message/error de un body JSON de error.
func extractMessage(body string) string {
	body = strings.TrimSpace(body)
	if body == "" || !strings.HasPrefix(body, "{") {
		return body
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return body
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
