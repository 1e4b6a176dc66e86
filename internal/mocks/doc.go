// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes optional function fields for
// per-test behavior and falls back to a simple in-memory default.
package mocks
