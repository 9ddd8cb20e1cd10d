package advisor

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// AnswerEvent is the telemetry emitted once per answered question.
type AnswerEvent struct {
	Scenario  string
	Source    string
	Duration  time.Duration
	HistoryOK bool
	Err       error
	StartedAt time.Time
}

// AnswerObserver receives answer events.
type AnswerObserver interface {
	ObserveAnswer(ctx context.Context, event AnswerEvent)
}

// NoopAnswerObserver ignores all events.
type NoopAnswerObserver struct{}

func (NoopAnswerObserver) ObserveAnswer(context.Context, AnswerEvent) {}

type logAnswerObserver struct {
	logger *slog.Logger
}

// NewLogAnswerObserver writes answer events to w as slog text records.
func NewLogAnswerObserver(w io.Writer) AnswerObserver {
	if w == nil {
		return NoopAnswerObserver{}
	}
	return &logAnswerObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logAnswerObserver) ObserveAnswer(ctx context.Context, event AnswerEvent) {
	attrs := []any{
		"scenario", event.Scenario,
		"source", event.Source,
		"duration_ms", event.Duration.Milliseconds(),
		"history_ok", event.HistoryOK,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.WarnContext(ctx, "advisor_answer", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "advisor_answer", attrs...)
}
