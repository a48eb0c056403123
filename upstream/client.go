// Package upstream provides the HTTP client for the dating-app API
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/amourdesk/amourdesk-go/internal/observability/logging"
	"github.com/oklog/ulid/v2"
)

// Client is the shared HTTP client for the upstream dating API. The base URL
// comes from deployment configuration; no timeout is set unless configured,
// matching the upstream contract (failures surface only on transport error or
// non-2xx status).
type Client struct {
	baseURL string
	http    *http.Client
	logger  *logging.ChanneledLogger
}

// NewClient creates a client for the given base URL. A zero timeout means
// none.
func NewClient(baseURL string, timeout time.Duration, logger *logging.ChanneledLogger) *Client {
	if logger == nil {
		logger = logging.NewChanneledLogger(nil)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// BaseURL returns the configured upstream base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// doJSON issues a request with an optional JSON body and decodes the response
// into out. Every failure settles as a *RequestError; nothing panics past
// this boundary.
func (c *Client) doJSON(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	contentType := ""
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return NewValidationError(fmt.Sprintf("cannot encode request body: %v", err))
		}
		body = strings.NewReader(string(encoded))
		contentType = "application/json"
	}
	return c.do(ctx, method, path, contentType, body, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	requestID := ulid.Make().String()
	url := c.baseURL + "/" + strings.TrimLeft(path, "/")

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		c.logger.Upstream().Error("Request build failed", "method", method, "url", url, "error", err.Error())
		return newUnknownError()
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Upstream().Error("Request failed", "method", method, "url", url, "requestId", requestID, "error", err.Error())
		return newUnknownError()
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Upstream().Error("Response read failed", "method", method, "url", url, "requestId", requestID, "error", err.Error())
		return newUnknownError()
	}

	c.logger.Upstream().Debug("Request completed",
		"method", method, "url", url, "requestId", requestID,
		"status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp.StatusCode, raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Upstream().Error("Malformed response body", "method", method, "url", url, "requestId", requestID, "error", err.Error())
		return newUnknownError()
	}
	return nil
}
