package status

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/visastat/pkg/domain/interfaces"
	"github.com/secmon-lab/visastat/pkg/domain/model"
	"github.com/secmon-lab/visastat/pkg/domain/types"
	"github.com/tidwall/gjson"
)

// Error tags for categorization
var (
	ErrTagTransport   = goerr.NewTag("transport")
	ErrTagInvalidJSON = goerr.NewTag("invalid_json")
)

// maxResponseSize bounds the body read from the status endpoint
const maxResponseSize = 1 << 20

// Client calls the external status-check endpoint
type Client struct {
	endpoint   *url.URL
	httpClient *http.Client
}

var _ interfaces.StatusClient = (*Client)(nil)

// Option configures Client
type Option func(*Client)

// WithHTTPClient sets the HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// New creates a status client for the endpoint base URL
func New(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, goerr.New("status endpoint is empty")
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid status endpoint", goerr.V("endpoint", endpoint))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.New("status endpoint must be an http(s) URL", goerr.V("endpoint", endpoint))
	}

	c := &Client{
		endpoint:   u,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// requestURL returns the endpoint with application_id set, keeping other query parameters
func (c *Client) requestURL(id types.ApplicationID) string {
	u := *c.endpoint
	q := u.Query()
	q.Set("application_id", id.String())
	u.RawQuery = q.Encode()
	return u.String()
}

// CheckStatus looks up one application. A logical answer of any shape is
// returned as a StatusResult; only transport and parse failures are errors.
func (c *Client) CheckStatus(ctx context.Context, id types.ApplicationID) (*model.StatusResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(id), nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create status request", goerr.T(ErrTagTransport))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call status endpoint",
			goerr.T(ErrTagTransport),
			goerr.V("application_id", id))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read status response", goerr.T(ErrTagTransport))
	}

	ctxlog.From(ctx).Debug("Status endpoint responded",
		"application_id", id,
		"http_status", resp.StatusCode,
		"bytes", len(body),
	)

	return ParseResponse(id, body)
}

// ParseResponse maps a status endpoint response body to a StatusResult
func ParseResponse(id types.ApplicationID, body []byte) (*model.StatusResult, error) {
	if !gjson.ValidBytes(body) {
		return nil, goerr.New("status response is not valid JSON",
			goerr.T(ErrTagInvalidJSON),
			goerr.V("body_size", len(body)))
	}

	doc := gjson.ParseBytes(body)
	result := &model.StatusResult{
		ApplicationID: id,
	}

	switch types.StatusTag(doc.Get("status").String()) {
	case types.StatusTagSuccess:
		result.Tag = types.StatusTagSuccess
		result.Decision = types.Decision(doc.Get("data.decision").String())
		result.ExtractionDate = doc.Get("data.extraction_date").String()

	case types.StatusTagNotFound:
		result.Tag = types.StatusTagNotFound
		result.Message = doc.Get("message").String()

	default:
		result.Tag = types.StatusTagError
		if msg := doc.Get("error"); msg.Exists() && msg.String() != "" {
			result.Message = msg.String()
		} else {
			result.Message = model.StatusFailureMessage
		}
	}

	return result, nil
}
