package models

// DataResponse is the envelope used for every successful user registry
// response: {"data": ...}.
type DataResponse struct {
	Data any `json:"data"`
}

// ErrorResponse is the body returned by the external proxy endpoint when the
// upstream call fails.
type ErrorResponse struct {
	// Error is the fixed category label of the failure.
	Error string `json:"error"`

	// Message is the detailed, human-readable failure description.
	Message string `json:"message"`
}

// ValidationErrorResponse is the body returned with 422 Unprocessable Entity
// when a user payload fails validation.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}
