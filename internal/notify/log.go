package notify

import (
	"context"
	"log/slog"
)

// Log records each capture with the structured logger.
type Log struct {
	logger *slog.Logger
}

// NewLog creates a log sender. A nil logger uses slog.Default.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}

	return &Log{logger: logger}
}

func (l *Log) Name() string {
	return "log"
}

func (l *Log) Send(_ context.Context, event *Event) error {
	if !event.Success {
		l.logger.Error("clipboard capture failed", "error", event.Error)
		return nil
	}

	l.logger.Info("clipboard captured",
		"id", event.Entry.ID,
		"category", event.Entry.Category,
		"chars", event.Entry.Chars,
		"total", event.Total)

	return nil
}
