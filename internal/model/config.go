package model

// Config holds the application configuration
type Config struct {
	// PollIntervalMS is the clipboard polling interval in milliseconds
	PollIntervalMS int `ini:"poll_interval_ms"`

	// HistoryFile is the path to the history file; empty means the
	// backend default inside the application directory
	HistoryFile string `ini:"history_file"`

	// MaxEntries caps the stored history; 0 means unlimited
	MaxEntries int `ini:"max_entries"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		PollIntervalMS: 500,
		HistoryFile:    "",
		MaxEntries:     0,
	}
}
