package events

import (
	"sync"
	"time"

	"creatoramp-backend/utils"
)

// SubmissionApproved is published by the review workflow whenever a reviewer
// approves a submission (or the publish path advances one to PUBLISHED). The
// payment issuer consumes it; the reviewer's request never waits on that.
type SubmissionApproved struct {
	SubmissionID string
	CreatorID    string
	AgreementID  string
	OccurredAt   time.Time
}

// Bus is the in-process event channel between the workflow engine and the
// payment issuer. Publish never blocks the caller: when the buffer is full
// the event is dropped and logged, to be picked up by an out-of-band
// reconciliation sweep.
type Bus struct {
	ch        chan SubmissionApproved
	closeOnce sync.Once
}

func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = 64
	}
	return &Bus{ch: make(chan SubmissionApproved, buffer)}
}

func (b *Bus) Publish(event SubmissionApproved) {
	select {
	case b.ch <- event:
	default:
		utils.LogError(nil, "Event buffer full, dropping SubmissionApproved for submission "+event.SubmissionID)
	}
}

// Events is the consumer side of the bus. The channel closes after Close,
// once buffered events have been drained.
func (b *Bus) Events() <-chan SubmissionApproved {
	return b.ch
}

func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		close(b.ch)
	})
}
