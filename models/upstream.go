package models

// UpstreamResponse is the decoded result of a successful call to the
// upstream microservice.
type UpstreamResponse struct {
	// StatusCode is the HTTP status returned by the upstream. Non-2xx values
	// are passed through; interpreting them is up to the caller.
	StatusCode int

	// Payload is the decoded JSON value: map[string]any, []any, string,
	// json.Number, bool or nil.
	Payload any

	// Attempts is the number of requests issued to obtain the response.
	Attempts int
}
