package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamQuery = "q"
)

const (
	DateTimeFormat  = "2006-01-02 15:04:05"
	DateTimeLocal   = "2006-01-02T15:04"
	UTCOffsetFormat = "-0700"
	DefaultTimezone = "UTC"
)

const (
	OtelServiceScopeName    = "service"
	OtelHandlerScopeName    = "handler"
	OtelMiddlewareScopeName = "middleware"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html; charset=utf-8"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorUnexpected           = "An unexpected error occurred"
	ResponseErrorNoData               = "No data provided"
	ResponseErrorNotFound             = "Not found"
)

const (
	ServerEnvDevelopment = "development"
)

const (
	Empty = ""
)
