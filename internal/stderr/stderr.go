//go:build !windows

// Package stderr redirects file descriptor 2 into a pipe while the canvas is
// on screen. The audio output (ALSA through oto) prints underruns and device
// warnings straight to fd 2, which would otherwise scribble over the frame.
package stderr

import (
	"bufio"
	"os"
	"strings"
	"sync"
	"syscall"
)

// Messages receives captured lines. It is never closed; a reader blocked
// on it after Stop simply waits until exit.
var Messages = make(chan string, 100)

type capture struct {
	orig int
	r, w *os.File
}

var (
	mu     sync.Mutex
	active *capture
)

// Start begins capturing. Call it before the speaker is initialised. On
// error nothing is redirected and the program can carry on.
func Start() error {
	mu.Lock()
	defer mu.Unlock()
	if active != nil {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}
	fd := int(os.Stderr.Fd())
	orig, err := syscall.Dup(fd)
	if err != nil {
		r.Close()
		w.Close()
		return err
	}
	if err := syscall.Dup2(int(w.Fd()), fd); err != nil {
		syscall.Close(orig)
		r.Close()
		w.Close()
		return err
	}

	active = &capture{orig: orig, r: r, w: w}
	go forward(r)
	return nil
}

func forward(r *os.File) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		select {
		case Messages <- line:
		default:
			// full, drop
		}
	}
}

// WriteOriginal writes to the real stderr, bypassing the capture.
func WriteOriginal(msg string) {
	mu.Lock()
	defer mu.Unlock()
	if active == nil {
		_, _ = os.Stderr.WriteString(msg)
		return
	}
	_, _ = syscall.Write(active.orig, []byte(msg))
}

// Stop restores fd 2.
func Stop() {
	mu.Lock()
	defer mu.Unlock()
	if active == nil {
		return
	}

	fd := int(os.Stderr.Fd())
	_ = syscall.Dup2(active.orig, fd)
	_ = syscall.Close(active.orig)
	active.w.Close()
	active.r.Close()
	active = nil
}
