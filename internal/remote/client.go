package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/five82/focushub/internal/resource"
)

// Getter fetches and decodes JSON documents. It is implemented by *Client
// and can be faked in tests.
type Getter interface {
	GetJSON(ctx context.Context, req Request, dest any) error
}

// Ensure Client implements Getter at compile time.
var _ Getter = (*Client)(nil)

// Request describes one GET against a remote JSON API.
type Request struct {
	URL     *url.URL
	Query   url.Values
	Headers map[string]string
}

// Client talks to the public JSON APIs FocusHub reads from.
type Client struct {
	http      *http.Client
	userAgent string
}

const (
	DefaultUserAgent = "focushub/0.1"
	requestTimeout   = 10 * time.Second
	maxErrorBody     = 64 * 1024
)

// NewClient builds a Client. An empty userAgent uses DefaultUserAgent; a
// non-positive timeout uses the package default.
func NewClient(userAgent string, timeout time.Duration) *Client {
	if strings.TrimSpace(userAgent) == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// GetJSON performs req and decodes the body into dest. Failures are
// classified for the resource stores: transport problems wrap
// resource.ErrTransport, non-2xx statuses are *StatusError and undecodable
// bodies wrap resource.ErrBadResponse.
func (c *Client) GetJSON(ctx context.Context, req Request, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if req.URL == nil {
		return fmt.Errorf("request url is nil")
	}

	target := *req.URL
	if len(req.Query) > 0 {
		merged := target.Query()
		for key, values := range req.Query {
			merged[key] = values
		}
		target.RawQuery = merged.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("execute request: %w", ctxErr)
		}
		return resource.Transport(fmt.Sprintf("execute request: %v", err), err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{URL: target.Redacted(), StatusCode: resp.StatusCode, Body: body}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &resource.Error{
			Kind:   resource.ErrBadResponse,
			Detail: fmt.Sprintf("decode response: %v", err),
			Err:    err,
		}
	}
	return nil
}

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.URL, e.StatusCode)
}

// Is classifies status errors as bad responses.
func (e *StatusError) Is(target error) bool {
	return target == resource.ErrBadResponse
}

// Reason extracts a top-level "reason" string from a JSON error body, if
// present.
func (e *StatusError) Reason() string {
	var payload struct {
		Reason string `json:"reason"`
	}
	if err := json.Unmarshal(e.Body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Reason)
}

// ParseEndpoint normalises a configured endpoint URL, falling back to
// fallback when raw is blank. Bare hosts get an https scheme.
func ParseEndpoint(raw, fallback string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = fallback
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
