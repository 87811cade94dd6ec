// Package http is the transport layer: an HTTP client bound to a base URL and
// a precomputed Basic-Authentication header.
package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/rancher-client/internal/constants"
	"github.com/fivetwenty-io/rancher-client/pkg/rancher"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request is a single call against a path relative to the base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	// Body is serialized as JSON when non-nil.
	Body interface{}
}

// Response is a received response. StatusCode is not interpreted here.
type Response struct {
	// URL is the resolved request URL.
	URL        string
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client issues authenticated requests. It is safe for concurrent use and is
// never mutated after NewClient returns.
type Client struct {
	baseURL     *url.URL
	authHeader  string
	userAgent   string
	retryClient *retryablehttp.Client
}

type options struct {
	logger     Logger
	debug      bool
	userAgent  string
	timeout    time.Duration
	httpClient *nethttp.Client
}

// Option configures a Client.
type Option func(*options)

// WithLogger sets the logger used for debug output.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDebug logs every request and response through the logger.
func WithDebug(debug bool) Option {
	return func(o *options) {
		o.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithTimeout bounds each call.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

// WithHTTPClient uses a copy of httpClient as the underlying client.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(o *options) {
		o.httpClient = httpClient
	}
}

// BasicAuth returns the Authorization header value for a key pair.
func BasicAuth(accessKey, secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(accessKey+":"+secretKey))
}

// NewClient validates the base URL and key pair and builds the client.
// It performs no network I/O.
func NewClient(baseURL, accessKey, secretKey string, opts ...Option) (*Client, error) {
	config := &rancher.Config{URL: baseURL, AccessKey: accessKey, SecretKey: secretKey}

	err := config.Validate()
	if err != nil {
		return nil, err
	}

	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, &rancher.ConfigurationError{Fields: []string{"url"}, Reason: err.Error()}
	}

	o := &options{userAgent: constants.DefaultUserAgent}
	for _, opt := range opts {
		opt(o)
	}

	return &Client{
		baseURL:     base,
		authHeader:  BasicAuth(accessKey, secretKey),
		userAgent:   o.userAgent,
		retryClient: newRetryClient(o),
	}, nil
}

// newRetryClient builds a single-attempt retryablehttp client. Redirects are
// not followed so that 3xx reaches the caller as a status code.
func newRetryClient(o *options) *retryablehttp.Client {
	httpClient := &nethttp.Client{}
	if o.httpClient != nil {
		clientCopy := *o.httpClient
		httpClient = &clientCopy
	}

	if o.timeout > 0 {
		httpClient.Timeout = o.timeout
	}

	httpClient.CheckRedirect = func(*nethttp.Request, []*nethttp.Request) error {
		return nethttp.ErrUseLastResponse
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = httpClient
	rc.Logger = nil
	rc.RetryMax = 0
	rc.CheckRetry = func(context.Context, *nethttp.Response, error) (bool, error) {
		return false, nil
	}
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if o.debug && o.logger != nil {
		logger := o.logger
		rc.RequestLogHook = func(_ retryablehttp.Logger, req *nethttp.Request, _ int) {
			logger.Debug("HTTP Request", map[string]interface{}{
				"method": req.Method,
				"url":    req.URL.String(),
			})
		}
		rc.ResponseLogHook = func(_ retryablehttp.Logger, resp *nethttp.Response) {
			fields := map[string]interface{}{"status_code": resp.StatusCode}
			if resp.Request != nil {
				fields["method"] = resp.Request.Method
				fields["url"] = resp.Request.URL.String()
			}

			logger.Debug("HTTP Response", fields)
		}
	}

	return rc
}

// Do issues req. A non-nil error is a *rancher.TransportError unless the
// request itself could not be built; any received status code is returned
// in the Response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	target, err := c.resolve(req.Path, req.Query)
	if err != nil {
		return nil, err
	}

	var rawBody interface{}

	if req.Body != nil {
		data, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		rawBody = data
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, target, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Authorization", c.authHeader)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if rawBody != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := c.retryClient.Do(httpReq)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}

		return nil, &rancher.TransportError{Method: req.Method, URL: target, Cause: err}
	}

	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &rancher.TransportError{
			Method: req.Method,
			URL:    target,
			Cause:  fmt.Errorf("reading response body: %w", err),
		}
	}

	return &Response{
		URL:        target,
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}, nil
}

// resolve appends path to the base URL path, keeping the path's query string
// and trailing slash. Absolute URLs are used as given.
func (c *Client) resolve(path string, query url.Values) (string, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("parsing path %q: %w", path, err)
	}

	var target url.URL
	if ref.IsAbs() {
		target = *ref
	} else {
		target = *c.baseURL
		target.Path = strings.TrimSuffix(c.baseURL.Path, "/") + "/" + strings.TrimPrefix(ref.Path, "/")
		target.RawPath = strings.TrimSuffix(c.baseURL.EscapedPath(), "/") + "/" + strings.TrimPrefix(ref.EscapedPath(), "/")
		target.RawQuery = ref.RawQuery
		target.Fragment = ""
	}

	if len(query) > 0 {
		values := target.Query()
		for key, vals := range query {
			for _, v := range vals {
				values.Add(key, v)
			}
		}

		target.RawQuery = values.Encode()
	}

	return target.String(), nil
}
