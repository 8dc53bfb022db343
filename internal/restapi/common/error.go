package common

// APIError is the generic return type for any failure during endpoint
// operations.
type APIError struct {
	Error string `json:"error"`
}

// NewAPIError creates a new instance of the `APIError` which will be
// returned to the client if an operation fails.
func NewAPIError(message string) *APIError {
	return &APIError{
		Error: message,
	}
}
