package mailchimp

import "time"

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the Transport used to perform HTTP exchanges.
//
// The default is an HTTPTransport built on net/http. Supplying a substitute
// transport is the intended seam for testing the dispatch path.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithTimeout sets the default per-request timeout. The default is 10
// seconds; individual calls may override it via RequestArgs.Timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithVerifyTLS sets the TLS peer-verification policy. Verification is on
// by default.
func WithVerifyTLS(verify bool) Option {
	return func(c *Client) {
		c.verifyTLS = verify
	}
}

// WithUserAgent replaces the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.headers["User-Agent"] = ua
	}
}

// WithHeader seeds an additional default header.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers[key] = value
	}
}
