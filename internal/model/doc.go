// Package model defines the data types shared across clipr: clipboard
// history entries, content categories, and application configuration.
package model
