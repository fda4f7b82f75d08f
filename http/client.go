package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Config is the fixed configuration of a Client.
type Config struct {
	BaseURL string
	Token   string
}

// Client shapes requests against a base URL and hands them to a
// Transport. Its configuration does not change after NewClient, so a
// Client is safe for concurrent use when its Transport is.
type Client struct {
	config    Config
	transport Transport
	redirect  RedirectPolicy
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a client for baseURL.
//
// Example:
//
//	client, err := http.NewClient("https://api.example.com/users",
//	    http.WithToken("secret"),
//	)
//	resp, err := client.Post(ctx, http.ContentJSON, map[string]any{"name": "John"})
func NewClient(baseURL string, options ...ClientOption) (*Client, error) {
	if _, err := parseBaseURL(baseURL); err != nil {
		return nil, err
	}

	client := &Client{
		config:   Config{BaseURL: baseURL},
		redirect: RedirectFollow,
	}
	for _, option := range options {
		option(client)
	}
	if client.transport == nil {
		client.transport = NewNetTransport(nil)
	}

	return client, nil
}

// WithToken sets the default bearer token.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.config.Token = token
	}
}

// WithTransport replaces the default net/http transport.
func WithTransport(transport Transport) ClientOption {
	return func(c *Client) {
		c.transport = transport
	}
}

// WithHTTPClient sends requests through httpClient.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.transport = NewNetTransport(httpClient)
	}
}

// WithRedirectPolicy overrides RedirectFollow for every request.
func WithRedirectPolicy(policy RedirectPolicy) ClientOption {
	return func(c *Client) {
		c.redirect = policy
	}
}

// Config returns a copy of the client's configuration.
func (c *Client) Config() Config {
	return c.config
}

type callOptions struct {
	token       string
	path        string
	files       []File
	empty       bool
	contentType ContentType
}

// CallOption adjusts a single request.
type CallOption func(*callOptions)

// WithRequestToken overrides the client's default token for one call.
func WithRequestToken(token string) CallOption {
	return func(o *callOptions) {
		o.token = token
	}
}

// WithPath appends a path segment to the base URL.
func WithPath(path string) CallOption {
	return func(o *callOptions) {
		o.path = path
	}
}

// WithFiles supplies the file list whose first entry sets the
// Content-Type of a ContentFile request.
func WithFiles(files ...File) CallOption {
	return func(o *callOptions) {
		o.files = files
	}
}

// WithEmptyBody sends the request without a body.
func WithEmptyBody() CallOption {
	return func(o *callOptions) {
		o.empty = true
	}
}

// WithContentType sets the content type of a read request. Reads
// default to ContentJSON.
func WithContentType(ct ContentType) CallOption {
	return func(o *callOptions) {
		o.contentType = ct
	}
}

// MergeToken returns the first non-empty token.
func MergeToken(override, fallback string) string {
	if override != "" {
		return override
	}
	return fallback
}

// GetAll fetches the base URL.
func (c *Client) GetAll(ctx context.Context, options ...CallOption) (*Response, error) {
	return c.read(ctx, "", options)
}

// Get fetches the resource at id, relative to the base URL.
func (c *Client) Get(ctx context.Context, id string, options ...CallOption) (*Response, error) {
	return c.read(ctx, id, options)
}

// Post creates a resource from data encoded as ct.
func (c *Client) Post(ctx context.Context, ct ContentType, data any, options ...CallOption) (*Response, error) {
	return c.write(ctx, http.MethodPost, ct, data, options)
}

// Put replaces a resource with data encoded as ct.
func (c *Client) Put(ctx context.Context, ct ContentType, data any, options ...CallOption) (*Response, error) {
	return c.write(ctx, http.MethodPut, ct, data, options)
}

// Delete removes a resource. data may be omitted with WithEmptyBody.
func (c *Client) Delete(ctx context.Context, ct ContentType, data any, options ...CallOption) (*Response, error) {
	return c.write(ctx, http.MethodDelete, ct, data, options)
}

func (c *Client) read(ctx context.Context, id string, options []CallOption) (*Response, error) {
	opts := make([]CallOption, 0, len(options)+1)
	opts = append(opts, options...)
	req, err := c.Prepare(http.MethodGet, ContentNone, nil, append(opts, withID(id))...)
	if err != nil {
		return nil, err
	}
	return c.Send(ctx, req)
}

func (c *Client) write(ctx context.Context, method string, ct ContentType, data any, options []CallOption) (*Response, error) {
	req, err := c.Prepare(method, ct, data, options...)
	if err != nil {
		return nil, err
	}
	return c.Send(ctx, req)
}

func withID(id string) CallOption {
	return func(o *callOptions) {
		if id != "" {
			o.path = joinPath(o.path, id)
		}
	}
}

// Prepare builds the request a dispatch operation would send without
// sending it. GET requests carry no body and ignore data. Their content
// type is ct when it is not ContentNone, else the one set with
// WithContentType, else ContentJSON. For other methods ct is used and
// data is shaped with BuildBody.
func (c *Client) Prepare(method string, ct ContentType, data any, options ...CallOption) (*Request, error) {
	var opts callOptions
	for _, option := range options {
		option(&opts)
	}

	read := method == http.MethodGet
	if read && ct == ContentNone {
		ct = ContentJSON
		if opts.contentType != ContentNone {
			ct = opts.contentType
		}
	}

	headers, err := BuildHeaders(ct, MergeToken(opts.token, c.config.Token), opts.files...)
	if err != nil {
		return nil, err
	}

	body := NoBody
	if !read {
		body, err = BuildBody(ct, data, opts.empty)
		if err != nil {
			return nil, err
		}
	}

	target, err := c.resolve(opts.path)
	if err != nil {
		return nil, err
	}

	return &Request{
		Method:   method,
		URL:      target,
		Headers:  headers,
		Body:     body,
		Redirect: c.redirect,
	}, nil
}

// Send hands req to the transport once.
func (c *Client) Send(ctx context.Context, req *Request) (*Response, error) {
	return c.transport.Send(ctx, req)
}

func (c *Client) resolve(path string) (string, error) {
	u, err := parseBaseURL(c.config.BaseURL)
	if err != nil {
		return "", err
	}
	if path != "" {
		u.Path = joinPath(u.Path, path)
	}
	return u.String(), nil
}

func joinPath(base, path string) string {
	if base == "" {
		return "/" + strings.TrimLeft(path, "/")
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingBaseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingBaseURL, baseURL)
	}
	return u, nil
}
