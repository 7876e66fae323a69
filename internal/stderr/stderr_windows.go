//go:build windows

// Package stderr is a no-op on Windows, where the audio output does not
// write to the console.
package stderr

import "os"

// Messages never receives anything on Windows.
var Messages = make(chan string)

// Start is a no-op.
func Start() error { return nil }

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op.
func Stop() {}
