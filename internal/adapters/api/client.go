// Package api is the HTTP gateway to the dashboard backend. Every call is
// normalized into a Result envelope: expected failures (network, server,
// auth, validation) come back as classified descriptors, never as panics,
// and the gateway itself performs no retries.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bnema/agent-dash-cli/internal/domain"
	"github.com/bnema/agent-dash-cli/internal/observability"
)

const (
	maxResponseBytes      = 1 << 20
	DefaultMaxUploadBytes = 10 << 20
)

type Config struct {
	BaseURL    string
	HTTPClient *http.Client

	// Token supplies the current bearer credential; an empty string omits
	// the Authorization header entirely.
	Token func() string

	// OnUnauthorized fires once per unauthorized response, before the
	// AuthError result is returned to the caller.
	OnUnauthorized func()

	MaxUploadBytes int64
	Logger         *slog.Logger
}

type Client struct {
	baseURL        string
	http           *http.Client
	token          func() string
	onUnauthorized func()
	maxUploadBytes int64
	now            func() time.Time
	log            *slog.Logger
}

func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		http:           cfg.HTTPClient,
		token:          cfg.Token,
		onUnauthorized: cfg.OnUnauthorized,
		maxUploadBytes: cfg.MaxUploadBytes,
		now:            time.Now,
		log:            cfg.Logger,
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	if c.token == nil {
		c.token = func() string { return "" }
	}
	if c.maxUploadBytes <= 0 {
		c.maxUploadBytes = DefaultMaxUploadBytes
	}
	if c.log == nil {
		c.log = observability.Discard()
	}
	return c
}

// Result is the uniform envelope produced at the gateway boundary.
type Result[T any] struct {
	OK   bool
	Data T
	Err  *domain.ErrorDescriptor
}

func succeed[T any](data T) Result[T] {
	return Result[T]{OK: true, Data: data}
}

func failure[T any](err *domain.ErrorDescriptor) Result[T] {
	return Result[T]{Err: err}
}

// Request performs a JSON round trip. A nil body sends no payload.
func Request[T any](ctx context.Context, c *Client, method, path string, body any) Result[T] {
	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return failure[T](domain.ValidationError(fmt.Sprintf("encode request body: %v", err)))
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return failure[T](domain.ValidationError(fmt.Sprintf("build request: %v", err)))
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return do[T](c, req)
}

func do[T any](c *Client, req *http.Request) Result[T] {
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("transport failure", "method", req.Method, "path", req.URL.Path, "err", err)
		return failure[T](domain.NetworkError("could not reach the server"))
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return failure[T](domain.NetworkError("read response body"))
	}

	c.log.Debug("response", "method", req.Method, "path", req.URL.Path, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return failure[T](domain.AuthError())
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return failure[T](domain.ServerError(serverMessage(body)))
	}

	var out T
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &out); err != nil {
			return failure[T](domain.ServerError("malformed response body"))
		}
	}
	return succeed(out)
}

func (c *Client) authorize(req *http.Request) {
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func serverMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	return eb.Error
}
