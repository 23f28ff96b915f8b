package mailchimp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is the normalized result of a completed HTTP exchange,
// independent of the underlying transport's response type.
//
// A Response is a read-only value; it is created fresh per call and never
// mutated afterwards.
type Response struct {
	StatusCode int
	Headers    http.Header

	// Body is the JSON-decoded payload when the body parses as JSON, the
	// raw text otherwise. Numbers inside decoded objects are json.Number.
	Body any
}

// newResponse normalizes a raw transport result. The body is decoded with
// json.Decoder.UseNumber so embedded integer statuses survive intact; a body
// that is not entirely valid JSON is kept as raw text.
func newResponse(raw *RawResponse) *Response {
	resp := &Response{
		StatusCode: raw.StatusCode,
		Headers:    raw.Headers,
	}

	dec := json.NewDecoder(bytes.NewReader(raw.Body))
	dec.UseNumber()

	var body any
	if err := dec.Decode(&body); err != nil || dec.More() {
		resp.Body = string(raw.Body)
		return resp
	}
	resp.Body = body
	return resp
}

// validate classifies the exchange as API-level success or failure.
//
// Only an exact HTTP 200 passes; other 2xx codes (201, 202, 204) are
// classified as errors. A 200 whose payload is an object with an integer
// "status" field other than 200 fails as well, covering APIs that answer
// HTTP 200 but embed a semantic error status.
func (r *Response) validate() error {
	if r.StatusCode != http.StatusOK {
		return newResponseError(
			fmt.Sprintf("request failed with status %d", r.StatusCode), r)
	}

	if body, ok := r.Body.(map[string]any); ok {
		if num, ok := body["status"].(json.Number); ok {
			if status, err := num.Int64(); err == nil && status != http.StatusOK {
				return newResponseError(
					fmt.Sprintf("API reported status %d", status), r)
			}
		}
	}

	return nil
}
