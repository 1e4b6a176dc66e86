package domain

import "strconv"

// TaskStatus classifies the progress of a task. The integer values are
// part of the wire contract and must not be renumbered.
type TaskStatus int

// Possible task status values
const (
	StatusOpen       TaskStatus = 1
	StatusInProgress TaskStatus = 2
	StatusPending    TaskStatus = 3
	StatusClosed     TaskStatus = 4
	StatusCanceled   TaskStatus = 5
)

// StatusValues returns all valid status values in declaration order.
func StatusValues() []TaskStatus {
	return []TaskStatus{
		StatusOpen,
		StatusInProgress,
		StatusPending,
		StatusClosed,
		StatusCanceled,
	}
}

// Valid reports whether the status is a member of the closed enumeration.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusPending, StatusClosed, StatusCanceled:
		return true
	default:
		return false
	}
}

// String returns a human-readable name for the status. Unknown values
// render as their integer form so they remain identifiable in logs.
func (s TaskStatus) String() string {
	switch s {
	case StatusOpen:
		return "open"
	case StatusInProgress:
		return "in_progress"
	case StatusPending:
		return "pending"
	case StatusClosed:
		return "closed"
	case StatusCanceled:
		return "canceled"
	default:
		return strconv.Itoa(int(s))
	}
}

// ParseTaskStatus converts a wire integer into a TaskStatus.
// Returns ErrTaskStatusInvalid for values outside the enumeration.
func ParseTaskStatus(v int) (TaskStatus, error) {
	s := TaskStatus(v)
	if !s.Valid() {
		return 0, ErrTaskStatusInvalid
	}
	return s, nil
}
