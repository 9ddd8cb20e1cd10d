package llm

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single provider invocation.
type CallEvent struct {
	Provider   ModelID
	Model      string
	LatencyMs  int64
	TokensUsed int
	Success    bool
	ErrorCode  string
	Cached     bool
}

// Observer receives events about provider calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] llm_call provider=%s model=%s latency_ms=%d tokens=%d cached=%t status=%s\n",
		ts, event.Provider, event.Model, event.LatencyMs, event.TokensUsed, event.Cached, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
