// Package mailchimp provides a Go client for the MailChimp Marketing API.
//
// The client is method/URI agnostic: it resolves the account-specific
// endpoint from the API key, merges headers and per-call options, dispatches
// the request, and normalizes the answer into a [Response]. Resource
// semantics (lists, campaigns, members) are left to the caller.
//
// # Quick Start
//
// Create a client from an API key and issue a request:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    mailchimp "github.com/rvanlaak/mailchimp-go"
//	)
//
//	func main() {
//	    client, err := mailchimp.NewClient("c40xxxxxxxxxxxxxxxxxxxxxxxxxxxxx-us5")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    resp, err := client.Get(context.Background(), "lists", nil)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(resp.StatusCode, resp.Body)
//	}
//
// The API key carries the datacenter the account lives in ("<key>-<dc>");
// the client derives https://<dc>.api.mailchimp.com/3.0 from it. Request
// paths are appended verbatim after a single slash, so pass them without a
// leading slash ("lists", not "/lists").
//
// # Client Configuration
//
// The client is configured with functional options:
//
//	client, err := mailchimp.NewClient(apiKey,
//	    mailchimp.WithTimeout(30*time.Second),
//	    mailchimp.WithUserAgent("my-app/1.2"),
//	)
//
// Body-carrying requests (POST/PUT/PATCH) take their payload and per-call
// overrides from [RequestArgs]:
//
//	resp, err := client.Post(ctx, "lists", &mailchimp.RequestArgs{
//	    Body: map[string]any{"name": "Newsletter"},
//	})
//
// # Error Handling
//
// Every failure is an [*Error] carrying a stable code:
//
//	resp, err := client.Get(ctx, "lists", nil)
//	if err != nil {
//	    var apiErr *mailchimp.Error
//	    if errors.As(err, &apiErr) {
//	        switch apiErr.Code {
//	        case mailchimp.CodeResponse:
//	            // apiErr.Response holds the full remote payload.
//	        case mailchimp.CodeTransport:
//	            // Network-level failure; apiErr.Unwrap() has the cause.
//	        }
//	    }
//	}
//
// Validation is strict: only an exact HTTP 200 counts as success, and a 200
// whose JSON payload embeds an integer "status" other than 200 is an error
// too. Both cases surface as CodeResponse with the normalized response
// attached.
//
// # Transport
//
// All I/O goes through the [Transport] interface. The default is an
// [HTTPTransport] on net/http; substitute your own with [WithTransport] to
// test dispatch without a network or to add transport-level behavior.
//
// # Thread Safety
//
// The [Client] is not synchronized. Each request reads the credential,
// header and TLS fields and refreshes the Authorization default, so
// concurrent calls or configuration changes while a request is in flight
// must be serialized by the caller. The usual pattern is one client per
// goroutine or an external mutex.
package mailchimp
