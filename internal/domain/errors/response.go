package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g., "USER_NOT_FOUND"
	Details string `json:"details,omitempty"` // Detailed error information (optional)
}

// Response is the envelope the error middleware renders for faults. Business
// outcomes never reach it; they render as flat message bodies in the handlers.
type Response struct {
	Message string     `json:"message"`
	Error   *ErrorInfo `json:"error,omitempty"`
}
