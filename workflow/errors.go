package workflow

import "errors"

// The three outcomes callers must distinguish from plain storage failures.
var (
	// ErrNotFound means the submission id does not exist.
	ErrNotFound = errors.New("submission not found")
	// ErrInvalidTransition means the requested status is not one a reviewer
	// can issue, or the submission is not in a state the operation accepts.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrNotApproved means no APPROVED agreement exists for the
	// campaign/creator pair, so the creator cannot submit.
	ErrNotApproved = errors.New("creator is not approved for this campaign")
)
