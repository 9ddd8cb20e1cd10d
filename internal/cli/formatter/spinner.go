package formatter

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// lineSpinner redraws a single status line on w. One-shot commands point it
// at stderr so piped answers on stdout stay clean. It uses the shell's dot
// frames so both surfaces look alike.
type lineSpinner struct {
	w       io.Writer
	message string
	frames  spinner.Spinner
	once    sync.Once
	stop    chan struct{}
	done    chan struct{}
}

// StartSpinner animates message on w until the returned function is called.
// `haven ask` and `haven model test` run it while waiting on a remote model.
// The stop function erases the line and may be called more than once.
func StartSpinner(w io.Writer, message string) func() {
	s := &lineSpinner{
		w:       w,
		message: message,
		frames:  spinner.Dot,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go s.run()
	return s.halt
}

func (s *lineSpinner) run() {
	defer close(s.done)
	ticker := time.NewTicker(s.frames.FPS)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.stop:
			fmt.Fprint(s.w, "\r\033[K")
			return
		case <-ticker.C:
			frame := s.frames.Frames[i%len(s.frames.Frames)]
			fmt.Fprintf(s.w, "\r  %s %s", StylePurple.Render(frame), Dim(s.message))
		}
	}
}

func (s *lineSpinner) halt() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}
