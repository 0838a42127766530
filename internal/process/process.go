// Package process inspects running processes so the watcher can refuse to
// start when another instance already owns the history file.
package process

import (
	"os"
	"strings"

	"github.com/google/gops/goprocess"
)

// AnotherInstanceRunning reports whether a process other than the current
// one matches the given executable name.
func AnotherInstanceRunning(name string) bool {
	name = strings.ToLower(name)

	for _, proc := range goprocess.FindAll() {
		if proc.PID == os.Getpid() {
			continue
		}

		if strings.Contains(strings.ToLower(proc.Exec), name) ||
			strings.Contains(strings.ToLower(proc.Path), name) {
			return true
		}
	}

	return false
}
