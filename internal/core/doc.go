// Package core wires the clipboard poller, the categorizer, and the history
// store together, and exposes the operations the CLI commands run.
package core
