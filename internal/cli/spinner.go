package cli

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

// spinner renders an animated progress line on stderr while a network call is
// in flight. It starts animating on construction and stops at most once,
// either through Stop or when the surrounding context ends.
type spinner struct {
	parent context.Context
	cancel context.CancelFunc
	done   chan struct{}
	stop   sync.Once
}

// newSpinner starts a spinner showing message until Stop is called or ctx is
// cancelled, whichever comes first.
func newSpinner(ctx context.Context, message string) *spinner {
	runCtx, cancel := context.WithCancel(ctx)
	s := &spinner{parent: ctx, cancel: cancel, done: make(chan struct{})}
	go s.run(runCtx, message)
	return s
}

func (s *spinner) run(ctx context.Context, message string) {
	defer close(s.done)
	ticker := time.NewTicker(90 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-ctx.Done():
			// \033[K erases from the cursor to the end of the line.
			fmt.Fprint(os.Stderr, "\r\033[K")
			return
		case <-ticker.C:
			frame := spinnerFrames[i%len(spinnerFrames)]
			fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(message))
		}
	}
}

// Stop halts the animation and clears the line. Safe to call more than once.
func (s *spinner) Stop() {
	s.stop.Do(func() {
		s.cancel()
		<-s.done
	})
}

// StopWithError stops the spinner and prints an error line in its place.
func (s *spinner) StopWithError(format string, args ...any) {
	s.Stop()
	printError(format, args...)
}

// Cancelled reports whether the surrounding context ended, as opposed to a
// regular Stop.
func (s *spinner) Cancelled() bool {
	return s.parent.Err() != nil
}
