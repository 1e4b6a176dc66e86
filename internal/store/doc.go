// Package store defines the persistence contracts for the application
// along with the shared error taxonomy and transaction helpers.
package store
