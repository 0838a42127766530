package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/inovacc/clipr/internal/model"
	"github.com/stretchr/testify/require"
)

type collectingSender struct {
	mu     sync.Mutex
	events []*Event
}

func (c *collectingSender) Name() string { return "collector" }

func (c *collectingSender) Send(_ context.Context, event *Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.events = append(c.events, event)

	return nil
}

func (c *collectingSender) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.events)
}

type panickySender struct{}

func (panickySender) Name() string                        { return "panicky" }
func (panickySender) Send(context.Context, *Event) error { panic("boom") }

func captureEvent() *Event {
	entry := model.NewClipEntry("hello", model.CategoryPlaintext, time.Now())
	return NewEvent(entry, 1)
}

func TestDispatcherDeliversToAllSenders(t *testing.T) {
	d := NewDispatcher(false)

	first := &collectingSender{}
	second := &collectingSender{}

	d.Register(first)
	d.Register(second)
	require.True(t, d.HasSenders())
	require.Len(t, d.Senders(), 2)

	d.Dispatch(context.Background(), captureEvent())

	require.Equal(t, 1, first.count())
	require.Equal(t, 1, second.count())
}

func TestDispatcherUnregister(t *testing.T) {
	d := NewDispatcher(false)

	sender := &collectingSender{}
	d.Register(sender)
	d.Unregister("collector")

	require.False(t, d.HasSenders())

	d.Dispatch(context.Background(), captureEvent())
	require.Zero(t, sender.count())
}

func TestDispatcherRecoversFromPanickingSender(t *testing.T) {
	d := NewDispatcher(false)

	survivor := &collectingSender{}
	d.Register(panickySender{})
	d.Register(survivor)

	// Must not panic, and the remaining sender still gets the event.
	d.Dispatch(context.Background(), captureEvent())

	require.Equal(t, 1, survivor.count())
}

func TestEventWithError(t *testing.T) {
	event := captureEvent().WithError("disk full")

	require.False(t, event.Success)
	require.Equal(t, "disk full", event.Error)
}
