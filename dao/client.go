// dao/client.go
package dao

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pcbinspect/client/db"
	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
)

const RequestIDHeader = "X-Request-ID"

// Client talks JSON to the inspection backend. Authentication rides on the
// session cookie kept in its jar.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	jar        *PersistentJar
}

func NewClient(ctx context.Context, baseURL string, timeout time.Duration, store db.Store) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q", baseURL)
	}

	jar, err := NewPersistentJar(ctx, u, store)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		jar: jar,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

func (c *Client) Jar() *PersistentJar {
	return c.jar
}

// URL joins path (with its leading and trailing slashes) and query onto the base URL.
func (c *Client) URL(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.URL(path, query), body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())
	return req, nil
}

// send executes req and returns the response for any HTTP status. Transport
// failures are reported as ErrNetwork, cancellation as the context error.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("requestID", req.Header.Get(RequestIDHeader)),
		zap.Duration("duration", time.Since(start)),
	}

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Debug("Request abandoned", append(fields, zap.Error(ctxErr))...)
			return nil, ctxErr
		}
		logger.Warn("Request failed", append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("%w: %v", pcb_errors.ErrNetwork, err)
	}

	logger.Debug("Request completed", append(fields, zap.Int("status", resp.StatusCode))...)
	if err := c.jar.Persist(ctx); err != nil {
		logger.Warn("Failed to persist session cookies", zap.Error(err))
	}
	return resp, nil
}

// do sends a request and returns the body of a 2xx response. Other statuses
// become *errors.APIError carrying the server's message.
func (c *Client) do(ctx context.Context, req *http.Request) ([]byte, error) {
	resp, err := c.send(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: reading response: %v", pcb_errors.ErrNetwork, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, pcb_errors.NewAPIError(resp.StatusCode, errorMessage(raw))
	}
	return raw, nil
}

// doJSON marshals body (when non-nil) and returns the raw 2xx response body.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	var reader io.Reader
	contentType := ""
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
		contentType = "application/json"
	}

	req, err := c.newRequest(ctx, method, path, query, reader, contentType)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, req)
}

// envelope decodes a success envelope. A 2xx carrying status "error" or "fail" is still a failure.
func envelope(raw []byte) (*model.Envelope, error) {
	var env model.Envelope
	if len(bytes.TrimSpace(raw)) == 0 {
		return &env, nil
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", pcb_errors.ErrServer, err)
	}
	if env.Status == model.EnvelopeError || env.Status == model.EnvelopeFail {
		return nil, &pcb_errors.APIError{StatusCode: http.StatusOK, Message: env.Text(), Err: pcb_errors.ErrServer}
	}
	return &env, nil
}

// decodeList accepts either a bare JSON array or an envelope whose data is one.
func decodeList(raw []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, out); err != nil {
			return fmt.Errorf("%w: malformed list: %v", pcb_errors.ErrServer, err)
		}
		return nil
	}

	env, err := envelope(raw)
	if err != nil {
		return err
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: malformed list: %v", pcb_errors.ErrServer, err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var env model.Envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Text() != "" {
		return env.Text()
	}
	text := strings.TrimSpace(string(raw))
	// HTML error pages are not worth showing
	if len(text) > 200 || strings.HasPrefix(text, "<") {
		return ""
	}
	return text
}

// IsStatus reports whether err is an API error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *pcb_errors.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}
