// Package bland provides a typed API client for the Bland voice-call API.
package bland

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/schema"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.bland.ai"
	// APIVersion is the version segment prefixed to every endpoint path.
	APIVersion = "v1"

	// StatusSuccess and StatusError are the provider's response statuses.
	// Transport-level failures are folded into StatusError by the client.
	StatusSuccess = "success"
	StatusError   = "error"
)

// Defaults holds implicit parameter values applied when a call-send
// parameter is left unset.
type Defaults struct {
	Model                 string
	Voice                 string
	Language              string
	MaxDuration           int
	Temperature           float64
	InterruptionThreshold int
	Limit                 int
}

// DefaultDefaults returns the provider-documented default parameters.
func DefaultDefaults() Defaults {
	return Defaults{
		Model:                 "enhanced",
		Voice:                 "mason",
		Language:              "en-US",
		MaxDuration:           30,
		Temperature:           0.7,
		InterruptionThreshold: 100,
		Limit:                 1000,
	}
}

// Client is an HTTP client for the Bland API. It is safe for concurrent
// use; every call builds a fresh request and sends it exactly once.
type Client struct {
	baseURL    string
	token      string
	orgID      string
	defaults   Defaults
	httpClient *http.Client
	logger     *zap.Logger
	encoder    *schema.Encoder
}

// Option configures the client.
type Option func(*Client)

// New creates a new API client.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	enc := schema.NewEncoder()
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		defaults: DefaultDefaults(),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:  zap.NewNop(),
		encoder: enc,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken sets the API authentication token.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// WithOrgID sets the organization ID attached to requests for
// enterprise accounts.
func WithOrgID(orgID string) Option {
	return func(c *Client) {
		c.orgID = orgID
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets a logger for request diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDefaults overrides the implicit call parameter defaults.
func WithDefaults(d Defaults) Option {
	return func(c *Client) {
		c.defaults = d
	}
}

// APIResponse is the portion of every provider response the client
// interprets. Transport failures, non-2xx statuses, and undecodable
// bodies set Status to "error" with a descriptive Message instead of
// surfacing as Go errors; local validation failures are returned as
// errors before any request is sent. The two classes never overlap.
// Fields are filled by the response normalizer, not by JSON tags, so
// embedding APIResponse never shadows a response's own status field.
type APIResponse struct {
	Status  string          `json:"-"`
	Message string          `json:"-"`
	Raw     json.RawMessage `json:"-"`
}

// IsError reports whether the response carries a transport or provider
// failure.
func (r *APIResponse) IsError() bool { return r.Status == StatusError }

func (r *APIResponse) fail(msg string) {
	if msg == "" {
		msg = "request failed"
	}
	r.Status = StatusError
	r.Message = msg
	r.Raw = nil
}

// absorb captures the envelope fields and raw body of a successful
// response.
func (r *APIResponse) absorb(data []byte) {
	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		r.Status = envelope.Status
		r.Message = envelope.Message
	}
	r.Raw = json.RawMessage(data)
}

type result interface {
	fail(msg string)
	absorb(data []byte)
}

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// vars maps path placeholder names to their values.
type vars map[string]string

// expandPath substitutes every {placeholder} in a path template. A
// placeholder with no non-empty value fails with MissingFieldError.
func expandPath(tmpl string, v vars) (string, error) {
	var missing error
	expanded := placeholderPattern.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := m[1 : len(m)-1]
		val := v[name]
		if val == "" && missing == nil {
			missing = &MissingFieldError{Field: name}
		}
		return url.PathEscape(val)
	})
	if missing != nil {
		return "", missing
	}
	return expanded, nil
}

// newRequest validates and assembles one operation request. It performs
// no I/O; any error it returns is a local validation failure.
func (c *Client) newRequest(ctx context.Context, op Operation, v vars, body any, query url.Values) (*http.Request, error) {
	if c.token == "" {
		return nil, ErrMissingAuth
	}
	path, err := expandPath(op.Path, v)
	if err != nil {
		return nil, err
	}
	u := c.baseURL + "/" + APIVersion + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("authorization", c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.orgID != "" && op.OrgHeader != "" {
		req.Header.Set(op.OrgHeader, c.orgID)
	}
	return req, nil
}

// encodeQuery turns a typed parameter struct into url.Values. Fields
// tagged omitempty are skipped when unset, matching the provider's
// "send only supplied parameters" convention.
func (c *Client) encodeQuery(params any) (url.Values, error) {
	q := url.Values{}
	if params == nil {
		return q, nil
	}
	if err := c.encoder.Encode(params, q); err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	return q, nil
}

// do sends exactly one request for an operation and normalizes the
// outcome into out. A non-nil error is always a validation failure
// raised before any network I/O; everything past that point is folded
// into out's status and message.
func (c *Client) do(ctx context.Context, op Operation, v vars, body any, query url.Values, out result) error {
	req, err := c.newRequest(ctx, op, v, body, query)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request error",
			zap.String("request_id", requestID),
			zap.String("operation", op.Name),
			zap.Error(err))
		out.fail(err.Error())
		return nil
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		out.fail(fmt.Sprintf("read response: %v", err))
		return nil
	}

	c.logger.Debug("request complete",
		zap.String("request_id", requestID),
		zap.String("operation", op.Name),
		zap.String("method", op.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(data))
		if msg == "" {
			msg = resp.Status
		}
		out.fail(fmt.Sprintf("request failed with status %d: %s", resp.StatusCode, msg))
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		out.fail(fmt.Sprintf("decode response: %v", err))
		return nil
	}
	out.absorb(data)
	return nil
}
