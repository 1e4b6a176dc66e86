// Package events defines the task status-change event and the in-process
// channel that decouples task mutations from notification delivery.
//
// The publisher is deliberately not a general pub/sub bus: there is one
// event type, one bounded queue, and one consumer. Delivery is best
// effort; events are never persisted and do not survive a restart.
package events
