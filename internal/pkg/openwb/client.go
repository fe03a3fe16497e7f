package openwb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/anicoll/openwb-integration/internal/pkg/model"
)

var (
	// ErrUnreachable covers connection failures and timeouts alike; callers
	// cannot distinguish a slow controller from a down one.
	ErrUnreachable = errors.New("openwb: controller unreachable")
	// ErrMalformedResponse means the body was not valid JSON or not a flat object.
	ErrMalformedResponse = errors.New("openwb: malformed response")
)

const (
	statusPath     = "/openWB/web/api.php?get=all"
	requestTimeout = 10 * time.Second
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(host string, opts ...func(*Client)) *Client {
	c := &Client{
		baseURL:    BaseURL(host),
		httpClient: &http.Client{Timeout: requestTimeout},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// WithHTTPClient overrides the default client, primarily to shorten the
// request timeout in tests.
func WithHTTPClient(hc *http.Client) func(*Client) {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// BaseURL normalizes the configured host value: a host that already carries a
// scheme is used verbatim minus trailing slashes, otherwise http is assumed.
func BaseURL(host string) string {
	host = strings.TrimSpace(host)
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return strings.TrimRight(host, "/")
	}
	return "http://" + strings.TrimRight(host, "/")
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) StatusURL() string {
	return c.baseURL + statusPath
}

// Fetch performs one GET against the status API and returns the parsed
// snapshot. Failures are classified as ErrUnreachable or ErrMalformedResponse.
func (c *Client) Fetch(ctx context.Context) (model.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.StatusURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrUnreachable, res.StatusCode)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	// The controller serves the payload as text/html; the body is decoded
	// regardless of Content-Type.
	payload := map[string]any{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return model.Snapshot(payload), nil
}
