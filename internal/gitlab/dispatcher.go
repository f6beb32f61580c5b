package gitlab

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	appErrors "github.com/mrz1836/go-gitlab-repo/internal/errors"
	"github.com/mrz1836/go-gitlab-repo/internal/logging"
)

// apiPrefix is prepended to every resource path
const apiPrefix = "api/v3"

// errorBodySnippet caps how much of an error response body is kept for
// the returned error message
const errorBodySnippet = 512

// Response is the raw result of a dispatched request. The body is
// consumed exactly once: the decode helpers drain and close it, and
// callers that take the stream directly own its lifecycle.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       io.ReadCloser
}

// Dispatcher issues HTTP requests against the API. Implementations
// verify the response status against expectStatus and surface transport
// and status failures as errors; they never retry. Path segments are
// percent-encoded by the dispatcher, so callers pass raw identifiers.
type Dispatcher interface {
	Get(ctx context.Context, expectStatus int, form *Form, segments ...string) (*Response, error)
	Post(ctx context.Context, expectStatus int, form *Form, segments ...string) (*Response, error)
	Put(ctx context.Context, expectStatus int, form *Form, segments ...string) (*Response, error)
	Delete(ctx context.Context, expectStatus int, form *Form, segments ...string) (*Response, error)
}

// HTTPDispatcher is the production Dispatcher over net/http.
//
// Authentication is a private-token header attached to every request.
// Form parameters travel as the query string on GET and DELETE and as an
// urlencoded body on POST and PUT. Timeout and cancellation belong to the
// caller's context and the injected http.Client.
type HTTPDispatcher struct {
	baseURL   *url.URL
	token     string
	client    *http.Client
	logger    *logrus.Logger
	logConfig *logging.LogConfig
}

// DispatcherOptions configures an HTTPDispatcher
type DispatcherOptions struct {
	// BaseURL is the root of the GitLab instance, e.g. https://gitlab.example.com
	BaseURL string

	// Token is the private token attached to each request
	Token string

	// Timeout bounds each request when no custom client is supplied
	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification
	InsecureSkipVerify bool

	// Client overrides the constructed http.Client when non-nil
	Client *http.Client
}

// NewHTTPDispatcher creates a dispatcher for the given GitLab instance
func NewHTTPDispatcher(opts DispatcherOptions, logger *logrus.Logger, logConfig *logging.LogConfig) (*HTTPDispatcher, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/") + "/")
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "parse base URL")
	}

	client := opts.Client
	if client == nil {
		transport := http.DefaultTransport
		if opts.InsecureSkipVerify {
			transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // explicit opt-in for self-hosted instances
			}
		}
		client = &http.Client{
			Transport: transport,
			Timeout:   opts.Timeout,
		}
	}

	return &HTTPDispatcher{
		baseURL:   base,
		token:     opts.Token,
		client:    client,
		logger:    logger,
		logConfig: logConfig,
	}, nil
}

// Get issues a GET request
func (d *HTTPDispatcher) Get(ctx context.Context, expectStatus int, form *Form, segments ...string) (*Response, error) {
	return d.do(ctx, http.MethodGet, expectStatus, form, segments)
}

// Post issues a POST request
func (d *HTTPDispatcher) Post(ctx context.Context, expectStatus int, form *Form, segments ...string) (*Response, error) {
	return d.do(ctx, http.MethodPost, expectStatus, form, segments)
}

// Put issues a PUT request
func (d *HTTPDispatcher) Put(ctx context.Context, expectStatus int, form *Form, segments ...string) (*Response, error) {
	return d.do(ctx, http.MethodPut, expectStatus, form, segments)
}

// Delete issues a DELETE request
func (d *HTTPDispatcher) Delete(ctx context.Context, expectStatus int, form *Form, segments ...string) (*Response, error) {
	return d.do(ctx, http.MethodDelete, expectStatus, form, segments)
}

func (d *HTTPDispatcher) do(ctx context.Context, method string, expectStatus int, form *Form, segments []string) (*Response, error) {
	target := d.resourceURL(segments)

	var body io.Reader
	if method == http.MethodGet || method == http.MethodDelete {
		if !form.Empty() {
			target.RawQuery = form.Encode()
		}
	} else if !form.Empty() {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if d.token != "" {
		req.Header.Set("PRIVATE-TOKEN", d.token)
	}

	start := time.Now()
	resp, err := d.client.Do(req)
	d.logRequest(method, target.Path, time.Since(start), resp, err)
	if err != nil {
		return nil, appErrors.WrapWithContext(err, "execute request")
	}

	if resp.StatusCode != expectStatus {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodySnippet))
		_ = resp.Body.Close()
		return nil, appErrors.APIResponseError(resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       resp.Body,
	}, nil
}

// resourceURL joins the API prefix and percent-encoded path segments
// under the base URL. Segments arrive raw; branch and tag names may
// contain slashes and other reserved characters, so both the decoded
// Path and the encoded RawPath are set for net/url to render correctly.
func (d *HTTPDispatcher) resourceURL(segments []string) *url.URL {
	raw := make([]string, 0, len(segments)+1)
	escaped := make([]string, 0, len(segments)+1)
	raw = append(raw, apiPrefix)
	escaped = append(escaped, apiPrefix)
	for _, s := range segments {
		raw = append(raw, s)
		escaped = append(escaped, url.PathEscape(s))
	}

	target := *d.baseURL
	basePath := strings.TrimRight(d.baseURL.Path, "/") + "/"
	target.Path = basePath + strings.Join(raw, "/")
	target.RawPath = basePath + strings.Join(escaped, "/")
	return &target
}

// logRequest emits request timing at debug level when API debugging is on
func (d *HTTPDispatcher) logRequest(method, path string, elapsed time.Duration, resp *http.Response, err error) {
	if d.logger == nil || d.logConfig == nil || !d.logConfig.Debug.API {
		return
	}

	fields := logrus.Fields{
		logging.StandardFields.Component:  "dispatcher",
		logging.StandardFields.Operation:  method,
		logging.StandardFields.FilePath:   path,
		logging.StandardFields.DurationMs: elapsed.Milliseconds(),
	}
	if resp != nil {
		fields[logging.StandardFields.Status] = resp.StatusCode
	}
	if err != nil {
		fields[logging.StandardFields.Error] = err.Error()
	}

	d.logger.WithFields(fields).Debug("API request completed")
}
