package mailchimp

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// RawResponse is the transport-level result of a completed HTTP exchange.
type RawResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// RequestOptions is the fully merged per-call configuration handed to the
// Transport.
type RequestOptions struct {
	// Headers to send verbatim, defaults already merged with per-call
	// overrides and Authorization injected.
	Headers map[string]string

	// Timeout bounds the whole exchange. Always positive.
	Timeout time.Duration

	// VerifyTLS controls remote-certificate validation.
	VerifyTLS bool

	// JSONBody is the encoded request payload for body-carrying methods,
	// nil for methods that carry none.
	JSONBody []byte

	// Extra carries transport-specific passthrough options the client does
	// not interpret.
	Extra map[string]any
}

// Transport performs a single HTTP exchange.
//
// A completed exchange must be returned as a RawResponse with a nil error
// even when the status is non-2xx, so the validation layer can inspect it.
// A non-nil error means the exchange could not be completed (connection,
// DNS, timeout). A transport that surfaces HTTP error statuses as errors
// may return both the error and the recovered RawResponse; the client then
// proceeds with the raw response.
type Transport interface {
	Send(ctx context.Context, method, url string, opts *RequestOptions) (*RawResponse, error)
}

// HTTPTransport is the default Transport, built on net/http.
//
// It holds two underlying clients, one verifying TLS peers and one not, and
// picks per call based on RequestOptions.VerifyTLS.
type HTTPTransport struct {
	verified   *http.Client
	unverified *http.Client
}

// NewHTTPTransport creates the default transport.
func NewHTTPTransport() *HTTPTransport {
	insecure := http.DefaultTransport.(*http.Transport).Clone()
	insecure.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}

	return &HTTPTransport{
		verified:   &http.Client{},
		unverified: &http.Client{Transport: insecure},
	}
}

// Send performs the exchange and reads the full response body.
//
// The timeout is enforced through the request context, so a caller-supplied
// deadline shorter than opts.Timeout still wins.
func (t *HTTPTransport) Send(ctx context.Context, method, url string, opts *RequestOptions) (*RawResponse, error) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var body io.Reader = http.NoBody
	if opts.JSONBody != nil {
		body = bytes.NewReader(opts.JSONBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	injectTraceparent(ctx, req)

	client := t.verified
	if !opts.VerifyTLS {
		client = t.unverified
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       data,
	}, nil
}

// injectTraceparent propagates the active span, if any, as a W3C
// traceparent header.
func injectTraceparent(ctx context.Context, req *http.Request) {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return
	}
	traceparent := fmt.Sprintf("00-%s-%s-01", sc.TraceID().String(), sc.SpanID().String())
	req.Header.Set("Traceparent", traceparent)
}
