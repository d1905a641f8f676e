package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string           `json:"code"`              // Business error code, e.g., "SOCIO_NOT_FOUND"
	Details string           `json:"details,omitempty"` // Detailed error information (optional)
	Fields  []FieldViolation `json:"fields,omitempty"`  // Per-field violations for validation errors
}

// Response defines the unified envelope the error middleware renders.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
