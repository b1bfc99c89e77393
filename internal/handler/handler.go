// Package handler is the HTTP layer. Handlers bind requests, validate what
// can be checked without the store, call the services and shape responses.
package handler
