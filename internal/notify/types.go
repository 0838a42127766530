// Package notify fans capture events out to registered senders.
package notify

import (
	"context"
	"time"

	"github.com/inovacc/clipr/internal/model"
)

// Event describes a clipboard capture.
type Event struct {
	// Entry is the captured history entry
	Entry model.ClipEntry

	// Total is the history size after the capture
	Total int

	// Timestamp is when the event was emitted
	Timestamp time.Time

	// Success indicates if the capture was stored
	Success bool

	// Error contains error details when the capture failed
	Error string
}

// Sender is the interface for capture-event consumers.
type Sender interface {
	// Send delivers the event. Returns an error if delivery failed.
	Send(ctx context.Context, event *Event) error

	// Name returns the sender's name for logging purposes.
	Name() string
}

// NewEvent creates a capture event for a stored entry.
func NewEvent(entry model.ClipEntry, total int) *Event {
	return &Event{
		Entry:     entry,
		Total:     total,
		Timestamp: time.Now(),
		Success:   true,
	}
}

// WithError marks the event as failed with the given error detail.
func (e *Event) WithError(err string) *Event {
	e.Error = err
	e.Success = false

	return e
}
