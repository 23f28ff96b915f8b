package mailchimp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// recognizedMethods is the set of HTTP methods the client accepts.
var recognizedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// bodyMethods are the recognized methods whose requests carry a JSON
// payload.
var bodyMethods = map[string]bool{
	http.MethodPost:  true,
	http.MethodPut:   true,
	http.MethodPatch: true,
}

// RequestArgs is the optional per-call configuration. Caller values win over
// the client defaults at every level; defaults the caller does not name are
// preserved.
type RequestArgs struct {
	// Body is JSON-encoded into the request for body-carrying methods
	// (POST/PUT/PATCH) and ignored otherwise. Nil encodes as an empty
	// object.
	Body any

	// Headers override the client's default headers key by key. The
	// Authorization header cannot be overridden.
	Headers map[string]string

	// Timeout overrides the client's default timeout when positive.
	Timeout time.Duration

	// VerifyTLS overrides the client's TLS-verification policy when set.
	VerifyTLS *bool

	// Extra carries transport-specific passthrough options. Nested maps
	// are merged, not replaced.
	Extra map[string]any
}

// Get issues a GET request against path.
func (c *Client) Get(ctx context.Context, path string, args *RequestArgs) (*Response, error) {
	return c.Request(ctx, http.MethodGet, path, args)
}

// Post issues a POST request against path.
func (c *Client) Post(ctx context.Context, path string, args *RequestArgs) (*Response, error) {
	return c.Request(ctx, http.MethodPost, path, args)
}

// Put issues a PUT request against path.
func (c *Client) Put(ctx context.Context, path string, args *RequestArgs) (*Response, error) {
	return c.Request(ctx, http.MethodPut, path, args)
}

// Patch issues a PATCH request against path.
func (c *Client) Patch(ctx context.Context, path string, args *RequestArgs) (*Response, error) {
	return c.Request(ctx, http.MethodPatch, path, args)
}

// Delete issues a DELETE request against path.
func (c *Client) Delete(ctx context.Context, path string, args *RequestArgs) (*Response, error) {
	return c.Request(ctx, http.MethodDelete, path, args)
}

// Ping checks API reachability via the ping endpoint.
func (c *Client) Ping(ctx context.Context) (*Response, error) {
	return c.Get(ctx, "ping", nil)
}

// Request dispatches a single API call and validates the result.
//
// path is appended to the endpoint as endpoint + "/" + path with no slash
// normalization, so it must not carry a leading slash. args may be nil.
//
// A validated Response is returned on success; otherwise an *Error with one
// of CodeUnsupportedMethod, CodeInvalidArgument, CodeTransport or
// CodeResponse.
func (c *Client) Request(ctx context.Context, method, path string, args *RequestArgs) (*Response, error) {
	if !isRecognized(method) {
		return nil, newError(CodeUnsupportedMethod,
			fmt.Sprintf("unsupported method %q, valid methods are %s",
				method, strings.Join(recognizedMethods, ", ")), nil)
	}

	c.headers["Authorization"] = "apikey " + c.apiKey
	url := c.Endpoint() + "/" + path

	opts, err := c.buildOptions(method, args)
	if err != nil {
		return nil, err
	}

	raw, err := c.transport.Send(ctx, method, url, opts)
	if err != nil && raw == nil {
		return nil, newError(CodeTransport,
			fmt.Sprintf("%s %s failed", method, url), err)
	}
	// A transport may report an HTTP error status as a failure while still
	// handing back the raw exchange; proceed with the raw response so the
	// validation layer can classify it.

	resp := newResponse(raw)
	if err := resp.validate(); err != nil {
		return nil, err
	}
	return resp, nil
}

// buildOptions merges the client defaults (headers, timeout, TLS policy)
// with the caller's arguments, caller winning at every level, and encodes
// the body for body-carrying methods. The encoded payload travels as
// RequestOptions.JSONBody; no literal body key reaches the transport.
func (c *Client) buildOptions(method string, args *RequestArgs) (*RequestOptions, error) {
	opts := &RequestOptions{
		Headers:   c.Headers(),
		Timeout:   c.timeout,
		VerifyTLS: c.verifyTLS,
	}

	if args != nil {
		for key, value := range args.Headers {
			opts.Headers[key] = value
		}
		if args.Timeout > 0 {
			opts.Timeout = args.Timeout
		}
		if args.VerifyTLS != nil {
			opts.VerifyTLS = *args.VerifyTLS
		}
		if len(args.Extra) > 0 {
			opts.Extra = deepMerge(nil, args.Extra)
		}
	}

	// Authentication cannot be suppressed or overridden per call.
	opts.Headers["Authorization"] = "apikey " + c.apiKey

	if bodyMethods[method] {
		var body any = map[string]any{}
		if args != nil && args.Body != nil {
			body = args.Body
		}
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, newError(CodeInvalidArgument,
				"request body is not JSON-encodable", err)
		}
		opts.JSONBody = encoded
	}

	return opts, nil
}

func isRecognized(method string) bool {
	for _, m := range recognizedMethods {
		if m == method {
			return true
		}
	}
	return false
}

// deepMerge copies src over dst key by key, descending into nested
// map[string]any values so sibling keys absent from src survive.
func deepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, value := range src {
		if nested, ok := value.(map[string]any); ok {
			existing, _ := dst[key].(map[string]any)
			dst[key] = deepMerge(existing, nested)
			continue
		}
		dst[key] = value
	}
	return dst
}
