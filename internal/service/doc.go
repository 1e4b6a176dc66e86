// Package service contains the application-specific use cases and
// business logic. It orchestrates interactions between domain objects
// and the persistence layer (internal/store) to fulfill task management
// features, and emits status-change events for asynchronous
// notification delivery.
//
// Service methods return sentinel errors for expected conditions and
// wrap unexpected failures in service-specific error types; the API
// layer maps both to HTTP status codes with errors.Is/errors.As.
package service
