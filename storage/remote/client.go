// Package remote is the client side data access layer: it talks to the admin REST API.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kat-co/vala"
	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/masomo-admin/core"
)

const requestIDHeader = "X-Request-Id"

// StatusError is returned for any response with a status >= 400.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.URL, e.StatusCode, strings.TrimSpace(e.Body))
}

// IsNotFound reports whether err was caused by a 404 response.
func IsNotFound(err error) bool {
	var sErr *StatusError
	return errors.As(err, &sErr) && sErr.StatusCode == http.StatusNotFound
}

// Client sends JSON requests to the admin API.
type Client struct {
	baseURL string
	rest    *rest.Client
	logger  core.Logger
}

// NewClient returns a Client for the API at `baseURL` (eg. http://localhost:8080).
// A timeout <= 0 means no timeout.
func NewClient(baseURL string, timeout time.Duration, logger core.Logger) (*Client, error) {
	err := vala.BeginValidation().Validate(
		vala.StringNotEmpty(baseURL, "baseURL"),
		core.NotNil(logger, "logger"),
	).Check()
	if err != nil {
		return nil, errors.Wrap(err, "remote.NewClient")
	}

	httpClient := &http.Client{}
	if timeout > 0 {
		httpClient.Timeout = timeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		rest:    &rest.Client{HTTPClient: httpClient},
		logger:  logger,
	}, nil
}

func (c *Client) BaseURL() string { return c.baseURL }

// do sends a request to `path`; `in` is JSON encoded as the body when not nil
// and the response body is decoded into `out` when not nil.
func (c *Client) do(ctx context.Context, method rest.Method, path string, query map[string]string, in, out interface{}) error {
	reqID := uuid.NewString()
	req := rest.Request{
		Method:      method,
		BaseURL:     c.baseURL + path,
		QueryParams: query,
		Headers: map[string]string{
			"Accept":        "application/json",
			requestIDHeader: reqID,
		},
	}
	if in != nil {
		body, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "encoding %s %s body", method, path)
		}
		req.Body = body
		req.Headers["Content-Type"] = "application/json"
	}

	start := time.Now()
	res, err := c.rest.SendWithContext(ctx, req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	c.logger.Debug(fmt.Sprintf("%s %s -> %d (%s)", method, path, res.StatusCode, time.Since(start)),
		map[string]interface{}{"request_id": reqID, "query": query})

	if res.StatusCode >= http.StatusBadRequest {
		url := req.BaseURL
		if len(query) > 0 {
			url = rest.AddQueryParameters(url, query)
		}
		return &StatusError{
			Method:     string(method),
			URL:        url,
			StatusCode: res.StatusCode,
			Body:       res.Body,
		}
	}
	if out != nil && strings.TrimSpace(res.Body) != "" {
		if err := json.Unmarshal([]byte(res.Body), out); err != nil {
			return errors.Wrapf(err, "decoding %s %s response", method, path)
		}
	}
	return nil
}
