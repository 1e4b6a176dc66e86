// Package api implements the HTTP boundary: request decoding and
// validation, authentication middleware hand-off, and the mapping of
// service errors to HTTP status codes and the standard error envelope.
// Handlers stay thin; business rules live in internal/service.
package api
