package dto

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by the watchlist endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}
