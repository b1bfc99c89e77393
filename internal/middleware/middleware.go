// Package middleware holds the echo middleware chain and the global error
// handler: request ids, request-scoped logging, CORS, rate limiting, panic
// recovery, tracing and metrics.
package middleware
