package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ClipEntry is one recorded clipboard capture.
type ClipEntry struct {
	// ID is the unique identifier assigned at capture time
	ID string `json:"id"`

	// Text is the captured clipboard content
	Text string `json:"text"`

	// Timestamp is when the capture was observed
	Timestamp time.Time `json:"timestamp"`

	// Category is the heuristic content class
	Category Category `json:"category"`

	// Chars is the character count of Text
	Chars int `json:"chars"`
}

// NewClipEntry builds an entry for freshly captured text.
func NewClipEntry(text string, category Category, ts time.Time) ClipEntry {
	return ClipEntry{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: ts,
		Category:  category,
		Chars:     len([]rune(text)),
	}
}

// Preview returns the first line of the entry text, shortened for display.
func (e ClipEntry) Preview(maxLen int) string {
	s := strings.TrimSpace(e.Text)

	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}

	runes := []rune(s)
	if maxLen > 3 && len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}

	return s
}
