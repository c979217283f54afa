package constants

// Context keys
const (
	ContextKeyRequestID = "request_id"
)

// HTTP headers
const (
	HeaderRequestID = "X-Request-ID"
)
