package constant

import (
	"time"
)

const (
	RequestParamDate = "date"
	DateParamToday   = "today"
)

const (
	PqErrorCodeUniqueViolation = "23505"
	PqErrorCodeFkViolation     = "23503"
)

const (
	DateFormat      = "2006-01-02"
	TimestampFormat = time.RFC3339
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)
