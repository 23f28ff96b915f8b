package mailchimp

import "fmt"

// Error codes identifying the failure kind. Match with errors.As plus a
// switch on Code.
const (
	// CodeInvalidArgument means the caller misused the API surface itself,
	// for example an empty header key or a request body that cannot be
	// JSON-encoded. Raised before any I/O.
	CodeInvalidArgument = "INVALID_ARGUMENT"

	// CodeInvalidCredential means the API key lacks the "<key>-<dc>"
	// datacenter suffix. Raised at assignment time, before any request can
	// be built.
	CodeInvalidCredential = "INVALID_CREDENTIAL"

	// CodeUnsupportedMethod means the requested HTTP method is outside the
	// recognized set. The message lists the valid methods.
	CodeUnsupportedMethod = "UNSUPPORTED_METHOD"

	// CodeTransport means the exchange could not be completed at all
	// (connection refused, DNS failure, timeout). The underlying cause is
	// available via Unwrap. No retry is attempted.
	CodeTransport = "TRANSPORT_ERROR"

	// CodeResponse means the exchange completed but failed validation:
	// either the HTTP status was not 200, or the payload embedded a
	// non-200 semantic status. The full normalized response is attached.
	CodeResponse = "RESPONSE_ERROR"
)

// Error represents a MailChimp client error.
type Error struct {
	Code    string
	Message string

	// Response holds the normalized response for CodeResponse errors so
	// callers can inspect the remote error payload. Nil for all other
	// codes.
	Response *Response

	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("mailchimp: %s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("mailchimp: %s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func newResponseError(message string, resp *Response) *Error {
	return &Error{Code: CodeResponse, Message: message, Response: resp}
}
