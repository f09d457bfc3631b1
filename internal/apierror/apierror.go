// Package apierror provides the JSON error envelope used by every 4xx/5xx
// response of the API.
package apierror

// APIError is the canonical error envelope. Error carries the underlying
// cause on 5xx responses and is omitted otherwise.
type APIError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Message: msg}
}

// WithCause attaches err's text to the envelope.
func WithCause(msg string, err error) *APIError {
	e := &APIError{Message: msg}
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// ValidationError reports the failing fields of a request body.
type ValidationError struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields"`
}

func NewValidation(msg string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: msg, Fields: fields}
}
