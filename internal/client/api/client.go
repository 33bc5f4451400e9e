// Package api wraps the posting backend's REST surface. The low-level
// request helper never treats a non-2xx status as an error; typed operations
// branch on the status code and the "detail" string the backend returns.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amumal/amumal-cli/internal/logging"
)

// newRequestID is a test seam for request-id generation.
var newRequestID = uuid.NewString

// Client talks to the backend. The cookie jar carries the server-set session
// credential on every request; the client itself never inspects it.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

func New(baseURL string, timeout time.Duration, log logging.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("init cookie jar: %w", err)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
		log:     log,
	}, nil
}

// Query holds query parameters. Entries with a nil value are skipped.
type Query map[string]any

// Response is the parsed backend reply. Data is nil when the body had none;
// a body that fails to parse yields an empty Response, not an error.
type Response struct {
	Status int
	Detail string
	Data   json.RawMessage
}

// OK reports whether the response carries the expected status and detail.
func (r *Response) OK(status int, detail string) bool {
	return r.Status == status && r.Detail == detail
}

// DecodeData unmarshals the data payload into v. An absent payload is an
// error; callers that can proceed without data should not call this.
func (r *Response) DecodeData(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("response has no data payload")
	}
	return json.Unmarshal(r.Data, v)
}

// do builds and executes one request. Transport-level failures map to
// ErrUnavailable; there is no automatic retry.
func (c *Client) do(ctx context.Context, method, path string, body any, query Query) (*Response, error) {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			if v == nil {
				continue
			}
			q.Set(k, fmt.Sprint(v))
		}
		u.RawQuery = q.Encode()
	}

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", newRequestID())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	out := &Response{Status: resp.StatusCode}

	// Some endpoints answer with an empty body; that is not an error.
	raw, err := io.ReadAll(resp.Body)
	if err == nil && len(raw) > 0 {
		var env struct {
			Detail string          `json:"detail"`
			Data   json.RawMessage `json:"data"`
		}
		if err := json.Unmarshal(raw, &env); err == nil {
			out.Detail = env.Detail
			out.Data = env.Data
		}
	}

	return out, nil
}
