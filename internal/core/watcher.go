package core

import (
	"log/slog"
	"time"

	"github.com/inovacc/clipr/internal/clipboard"
	"github.com/inovacc/clipr/internal/monitor"
	"github.com/inovacc/clipr/internal/notify"
	"github.com/inovacc/clipr/internal/store"
)

// Watcher owns the full capture pipeline: poller, recorder, store, and the
// capture-event dispatcher. It is used by the watch command and by the OS
// service program.
type Watcher struct {
	db     store.Store
	poller *monitor.Poller
}

// NewWatcher builds a watcher over an open store. Senders receive one event
// per capture.
func NewWatcher(db store.Store, clip clipboard.Clipboard, interval time.Duration, senders ...notify.Sender) *Watcher {
	dispatcher := notify.NewDispatcher(false)
	for _, sender := range senders {
		dispatcher.Register(sender)
	}

	names := make([]string, 0, len(senders))
	for _, sender := range dispatcher.Senders() {
		names = append(names, sender.Name())
	}

	slog.Info("capture senders registered", "senders", names)

	recorder := NewRecorder(db, dispatcher)

	return &Watcher{
		db:     db,
		poller: monitor.NewPoller(clip, interval, recorder.HandleText),
	}
}

// Start begins polling in the background.
func (w *Watcher) Start() {
	w.poller.Start()
}

// Stop stops polling and closes the store.
func (w *Watcher) Stop() error {
	w.poller.Stop()

	return w.db.Close()
}
