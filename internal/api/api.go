// Package api defines response envelopes shared across HTTP handlers.
package api

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body returned for operations that only need to
// confirm success, such as a delete.
type MessageResponse struct {
	Message string `json:"message"`
}
