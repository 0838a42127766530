package core

import (
	"context"
	"log/slog"
	"time"

	"github.com/inovacc/clipr/internal/classify"
	"github.com/inovacc/clipr/internal/model"
	"github.com/inovacc/clipr/internal/notify"
	"github.com/inovacc/clipr/internal/store"
)

// Recorder turns observed clipboard text into stored history entries and
// dispatches a capture event for each one.
type Recorder struct {
	store      store.Store
	dispatcher *notify.Dispatcher
}

// NewRecorder creates a recorder writing to db. The dispatcher may be nil
// when no observers are registered.
func NewRecorder(db store.Store, dispatcher *notify.Dispatcher) *Recorder {
	return &Recorder{
		store:      db,
		dispatcher: dispatcher,
	}
}

// HandleText classifies and stores one clipboard observation. It is the
// poller callback; errors are reported through the dispatcher and the log,
// never returned, so a failed write does not stop the polling loop.
func (r *Recorder) HandleText(text string, observed time.Time) {
	entry := model.NewClipEntry(text, classify.Classify(text), observed)

	stored, err := r.store.Append(entry)
	if err != nil {
		slog.Error("failed to store clipboard entry", "error", err)
		r.dispatch(notify.NewEvent(entry, 0).WithError(err.Error()))

		return
	}

	// The store can skip an adjacent duplicate, typically when the watcher
	// restarts and the user re-copies the persisted tail. No entry, no event.
	if !stored {
		slog.Debug("adjacent duplicate not recorded")
		return
	}

	total, err := r.store.Count()
	if err != nil {
		slog.Warn("failed to count history entries", "error", err)
	}

	r.dispatch(notify.NewEvent(entry, total))
}

func (r *Recorder) dispatch(event *notify.Event) {
	if r.dispatcher == nil {
		return
	}

	r.dispatcher.Dispatch(context.Background(), event)
}
