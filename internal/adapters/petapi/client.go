package petapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ducnguyenbiarea/PetClinicSystem/internal/platform/httpclient"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/platform/logger"
	"github.com/ducnguyenbiarea/PetClinicSystem/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("petapi client not configured")
)

// Config del cliente contra el backend de la clínica.
// BaseURL normalmente viene de env en quien lo instancia (main).
type Config struct {
	BaseURL string

	// Timeout HTTP por request (default httpclient.DefaultTimeout).
	Timeout time.Duration
}

// Client habla con el backend REST de la clínica. La sesión es por cookie
// (JSESSIONID) y queda en el jar del httpclient: un Client = una sesión.
type Client struct {
	http *httpclient.Client
	log  logger.Logger
}

func NewClient(cfg Config, log logger.Logger) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, ErrNotConfigured
	}
	hc, err := httpclient.NewWithBaseURL(base, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("petapi: %w", err)
	}
	return &Client{
		http: hc,
		log:  log.With(map[string]any{"component": "petapi"}),
	}, nil
}

// NewClientWithTransport permite inyectar un RoundTripper (tests).
func NewClientWithTransport(cfg Config, log logger.Logger, tr http.RoundTripper) (*Client, error) {
	c, err := NewClient(cfg, log)
	if err != nil {
		return nil, err
	}
	if tr != nil {
		c.http.HTTP.Transport = tr
	}
	return c, nil
}

// headers comunes de cada request saliente. El request id permite correlar
// contra los logs del upstream.
func (c *Client) headers() map[string]string {
	return map[string]string{
		"X-Request-ID": uuid.NewString(),
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	if err := c.http.DoJSON(ctx, http.MethodGet, path, c.headers(), nil, out); err != nil {
		return asAuthError(err)
	}
	return nil
}

// asAuthError traduce errores del httpclient al error de colaborador que
// el core entiende (mensaje + status). No inventa semántica: si el body
// trae {"message": ...} se usa eso, si no el texto crudo.
func asAuthError(err error) error {
	var httpErr *httpclient.HTTPError
	if !errors.As(err, &httpErr) {
		return &auth.Error{Message: err.Error()}
	}

	msg := extractMessage(httpErr.Body)
	if msg == "" {
		msg = fmt.Sprintf("upstream error (status %d)", httpErr.StatusCode)
	}
	return &auth.Error{Message: msg, Status: httpErr.StatusCode}
}
