// Package upstream implements the HTTP clients for the remote catalog API
// and the file-upload host. All business logic lives upstream; these clients
// are thin request builders and response decoders.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shopzone/storefront-gateway/internal/api/metrics"
)

const defaultTimeout = 10 * time.Second

// Error is the decoded upstream error envelope. Client methods translate it
// into domain errors; it never crosses the service boundary directly.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream: %d %s", e.StatusCode, e.Message)
}

// Client is the shared HTTP plumbing for the catalog API. A fixed base URL,
// JSON in, JSON out.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// NewClient creates a Client for the given API root.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// doJSON issues a request and decodes a 2xx JSON response into out (which
// may be nil). Non-2xx responses come back as *Error. The endpoint label
// feeds the upstream request metrics.
func (c *Client) doJSON(ctx context.Context, endpoint, method, path string, query url.Values, token string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", endpoint, err)
		}
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return decodeError(resp)
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "ok").Inc()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s: decode response: %w", endpoint, err)
		}
	}
	return nil
}

// decodeError extracts the upstream message. The API reports either a plain
// string or an array of per-field messages.
func decodeError(resp *http.Response) error {
	var envelope struct {
		Message json.RawMessage `json:"message"`
	}

	msg := ""
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && len(envelope.Message) > 0 {
		var single string
		var many []string
		if json.Unmarshal(envelope.Message, &single) == nil {
			msg = single
		} else if json.Unmarshal(envelope.Message, &many) == nil {
			msg = strings.Join(many, "; ")
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	return &Error{StatusCode: resp.StatusCode, Message: msg}
}
