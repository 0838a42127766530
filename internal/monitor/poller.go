// Package monitor samples the system clipboard on a fixed interval and
// reports each distinct text it observes.
package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/inovacc/clipr/internal/clipboard"
)

// OnText is invoked for each new clipboard text, in tick order, from the
// poller goroutine.
type OnText func(text string, observed time.Time)

// Poller periodically reads the clipboard and invokes a callback when the
// content changes. Read failures are skipped until the next tick; there is
// no retry or backoff.
type Poller struct {
	clip     clipboard.Clipboard
	interval time.Duration
	onText   OnText

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool

	lastSeen string
}

// NewPoller creates a poller reading from clip every interval.
func NewPoller(clip clipboard.Clipboard, interval time.Duration, onText OnText) *Poller {
	return &Poller{
		clip:     clip,
		interval: interval,
		onText:   onText,
	}
}

// Start begins the polling loop in a background goroutine. The text already
// on the clipboard at start time becomes the baseline and is not reported.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.running {
		return // Already running
	}

	p.ctx, p.cancel = context.WithCancel(context.Background())
	p.running = true

	if text, err := p.clip.ReadText(); err == nil {
		p.lastSeen = text
	}

	p.wg.Add(1)
	go p.run()

	slog.Info("clipboard poller started", "interval", p.interval)
}

// Stop gracefully stops the polling loop.
func (p *Poller) Stop() {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return
	}
	p.cancel()
	p.running = false
	p.mu.Unlock()

	p.wg.Wait()
	slog.Info("clipboard poller stopped")
}

// run is the main polling loop.
func (p *Poller) run() {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.tick()
		case <-p.ctx.Done():
			return
		}
	}
}

// tick reads the clipboard once and reports the text if it changed.
func (p *Poller) tick() {
	text, err := p.clip.ReadText()
	if err != nil {
		slog.Debug("clipboard read skipped", "error", err)
		return
	}

	if text == "" || text == p.lastSeen {
		return
	}

	p.lastSeen = text
	p.onText(text, time.Now())
}
