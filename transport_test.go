package mailchimp_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mailchimp "github.com/rvanlaak/mailchimp-go"
)

func TestHTTPTransport_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/3.0/lists", r.URL.Path)
		assert.Equal(t, "apikey secret-us5", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		payload, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"name":"Newsletter"}`, string(payload))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id": "abc"}`))
	}))
	defer server.Close()

	transport := mailchimp.NewHTTPTransport()
	raw, err := transport.Send(context.Background(), http.MethodPost, server.URL+"/3.0/lists",
		&mailchimp.RequestOptions{
			Headers: map[string]string{
				"Authorization": "apikey secret-us5",
				"Content-Type":  "application/vnd.api+json",
			},
			Timeout:   5 * time.Second,
			VerifyTLS: true,
			JSONBody:  []byte(`{"name":"Newsletter"}`),
		})

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, raw.StatusCode)
	assert.Equal(t, "application/json", raw.Headers.Get("Content-Type"))
	assert.Equal(t, `{"id": "abc"}`, string(raw.Body))
}

// Non-2xx statuses are ordinary raw responses, not transport failures.
func TestHTTPTransport_HTTPErrorIsNotTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"title": "boom"}`))
	}))
	defer server.Close()

	transport := mailchimp.NewHTTPTransport()
	raw, err := transport.Send(context.Background(), http.MethodGet, server.URL,
		&mailchimp.RequestOptions{VerifyTLS: true})

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, raw.StatusCode)
	assert.Equal(t, `{"title": "boom"}`, string(raw.Body))
}

func TestHTTPTransport_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	transport := mailchimp.NewHTTPTransport()
	raw, err := transport.Send(context.Background(), http.MethodGet, server.URL,
		&mailchimp.RequestOptions{Timeout: 50 * time.Millisecond, VerifyTLS: true})

	require.Error(t, err)
	assert.Nil(t, raw)
}

func TestHTTPTransport_ConnectionRefused(t *testing.T) {
	transport := mailchimp.NewHTTPTransport()
	raw, err := transport.Send(context.Background(), http.MethodGet,
		"http://127.0.0.1:1", &mailchimp.RequestOptions{VerifyTLS: true})

	require.Error(t, err)
	assert.Nil(t, raw)
}

// A TLS server with a self-signed certificate is rejected when verification
// is on and accepted when it is off.
func TestHTTPTransport_VerifyTLSToggle(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	transport := mailchimp.NewHTTPTransport()

	_, err := transport.Send(context.Background(), http.MethodGet, server.URL,
		&mailchimp.RequestOptions{VerifyTLS: true})
	require.Error(t, err)

	raw, err := transport.Send(context.Background(), http.MethodGet, server.URL,
		&mailchimp.RequestOptions{VerifyTLS: false})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, raw.StatusCode)
}

func TestHTTPTransport_NoBodyWhenJSONBodyNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Empty(t, payload)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	transport := mailchimp.NewHTTPTransport()
	_, err := transport.Send(context.Background(), http.MethodGet, server.URL,
		&mailchimp.RequestOptions{VerifyTLS: true})
	require.NoError(t, err)
}
