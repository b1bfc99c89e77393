// Package errs defines the error types surfaced to API clients.
//
// Every failure a handler can return is one *HTTPError tagged with a Kind
// (validation, duplicate key, not found, internal). The global error handler
// reads the tag, status and message directly instead of probing ad hoc error
// shapes, and turns them into a plain-text response.
package errs
