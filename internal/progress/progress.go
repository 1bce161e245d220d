// Package progress provides CLI progress indicators. Output goes to stderr
// to keep stdout clean for piping, and TTY detection ensures nothing is
// written at all in scripted usage.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

// interval is the time between spinner frames.
const interval = 100 * time.Millisecond

// Spinner provides visual feedback while a node or indexer request is in
// flight, when completion time is unknown.
type Spinner struct {
	w      io.Writer
	label  string
	isTTY  bool
	frames []string

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// NewSpinner creates a spinner that writes to stderr.
func NewSpinner(label string) *Spinner {
	return newSpinner(os.Stderr, label, term.IsTerminal(int(os.Stderr.Fd())))
}

func newSpinner(w io.Writer, label string, isTTY bool) *Spinner {
	return &Spinner{
		w:      w,
		label:  label,
		isTTY:  isTTY,
		frames: []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start displays the spinner and animates it until Stop.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isTTY || s.stop != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	fmt.Fprintf(s.w, "%s %s...", s.frames[0], s.label)
	go s.run(s.stop, s.done)
}

func (s *Spinner) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	t := time.NewTicker(interval)
	defer t.Stop()
	for frame := 1; ; frame++ {
		select {
		case <-stop:
			return
		case <-t.C:
			fmt.Fprintf(s.w, "\r%s %s...", s.frames[frame%len(s.frames)], s.label)
		}
	}
}

// Stop clears the spinner line. Safe to call more than once.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop == nil {
		return
	}
	close(s.stop)
	<-s.done
	s.stop = nil
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", len(s.label)+6))
}
