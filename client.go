package mailchimp

import (
	"fmt"
	"strings"
	"time"
)

const (
	endpointTemplate = "https://%s.api.mailchimp.com/3.0"
	datacenterSep    = "-"

	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "mailchimp-go/" + Version
	defaultMediaType = "application/vnd.api+json"
)

// Client is the MailChimp Marketing API client.
//
// A Client is constructed once per API key and reused across calls. Its
// configuration fields (credential, headers, TLS flag) are not synchronized;
// mutating them while requests are in flight must be serialized by the
// caller.
type Client struct {
	apiKey    string
	endpoint  string
	headers   map[string]string
	verifyTLS bool
	timeout   time.Duration
	transport Transport
}

// NewClient creates a client for the given API key.
//
// The key must carry a datacenter suffix ("<key>-<dc>"); otherwise an
// *Error with CodeInvalidCredential is returned.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	c := &Client{
		headers: map[string]string{
			"Accept":       defaultMediaType,
			"Content-Type": defaultMediaType,
			"User-Agent":   defaultUserAgent,
		},
		verifyTLS: true,
		timeout:   defaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		c.transport = NewHTTPTransport()
	}

	if err := c.SetAPIKey(apiKey); err != nil {
		return nil, err
	}

	return c, nil
}

// SetAPIKey replaces the credential and invalidates the cached endpoint.
//
// Returns an *Error with CodeInvalidCredential if the key contains no
// datacenter separator.
func (c *Client) SetAPIKey(apiKey string) error {
	if !strings.Contains(apiKey, datacenterSep) {
		return newError(CodeInvalidCredential,
			`API key must be of the form "<key>-<datacenter>"`, nil)
	}
	c.apiKey = apiKey
	c.endpoint = ""
	return nil
}

// Endpoint returns the account-specific base URL, computing and caching it
// on first use.
//
// The datacenter is the second dash-separated token of the API key: for
// "abc123-us5" it is "us5". Tokens after a second dash are ignored, so
// "abc123-us5-extra" also resolves to "us5".
func (c *Client) Endpoint() string {
	if c.endpoint == "" {
		datacenter := strings.Split(c.apiKey, datacenterSep)[1]
		c.endpoint = fmt.Sprintf(endpointTemplate, datacenter)
	}
	return c.endpoint
}

// SetHeader upserts a default header sent on every request.
//
// Setting an existing key overwrites its value. An empty key returns an
// *Error with CodeInvalidArgument.
func (c *Client) SetHeader(key, value string) error {
	if key == "" {
		return newError(CodeInvalidArgument, "header key must not be empty", nil)
	}
	c.headers[key] = value
	return nil
}

// SetHeaders upserts every entry of the given map into the default header
// set.
func (c *Client) SetHeaders(headers map[string]string) error {
	for key, value := range headers {
		if err := c.SetHeader(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Headers returns a copy of the default header set.
func (c *Client) Headers() map[string]string {
	headers := make(map[string]string, len(c.headers))
	for key, value := range c.headers {
		headers[key] = value
	}
	return headers
}

// Header returns the default value for key, or the empty string if the
// header is not set.
func (c *Client) Header(key string) string {
	return c.headers[key]
}

// SetVerifyTLS controls whether the transport validates the remote
// certificate. Verification is on by default.
func (c *Client) SetVerifyTLS(verify bool) {
	c.verifyTLS = verify
}

// VerifyTLS reports whether the transport validates the remote certificate.
func (c *Client) VerifyTLS() bool {
	return c.verifyTLS
}
