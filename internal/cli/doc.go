// Package cli contains the bubbletea models for clipr's interactive views.
package cli
