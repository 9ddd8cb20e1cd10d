// Package advisor answers survival questions by running a fixed chain of
// strategies: scenario routing with remote generation, intent patterns,
// keyword categories, knowledge search and finally a "no match" reply.
package advisor

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/matcher"
	"github.com/alexanderramin/haven/internal/repository"
	"github.com/alexanderramin/haven/internal/scenario"
)

// EmptyQuestionReply is returned for blank questions.
const EmptyQuestionReply = "请输入您的问题，我会尽力为您解答。😊"

// Answer is the composed reply to one question.
type Answer struct {
	Text     string
	Source   domain.AnswerSource
	Category domain.Category
}

// Deps wires the composer. Responder nil disables the scenario/remote step;
// History nil disables recording.
type Deps struct {
	Router     *scenario.Router
	Responder  Responder
	Patterns   *matcher.PatternMatcher
	Classifier *matcher.Classifier
	Knowledge  repository.KnowledgeRepo
	History    repository.HistoryRepo
	Logger     *slog.Logger
	Observer   AnswerObserver
	Picker     Picker
}

// Composer holds no per-session state and may serve several sessions at once.
type Composer struct {
	strategies []Strategy
	history    repository.HistoryRepo
	logger     *slog.Logger
	observer   AnswerObserver
}

func NewComposer(d Deps) *Composer {
	if d.Logger == nil {
		d.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if d.Observer == nil {
		d.Observer = NoopAnswerObserver{}
	}
	if d.Picker == nil {
		d.Picker = randomPicker
	}
	if d.Router == nil {
		d.Router = scenario.NewRouter()
	}
	if d.Patterns == nil {
		d.Patterns = matcher.NewPatternMatcher()
	}
	if d.Classifier == nil {
		d.Classifier = matcher.NewClassifier()
	}

	var chain []Strategy
	if d.Responder != nil {
		chain = append(chain, advancedStrategy{router: d.Router, responder: d.Responder})
	}
	chain = append(chain, patternStrategy{patterns: d.Patterns, pick: d.Picker})
	if d.Knowledge != nil {
		chain = append(chain,
			categoryStrategy{classifier: d.Classifier, knowledge: d.Knowledge, pick: d.Picker, logger: d.Logger},
			searchStrategy{knowledge: d.Knowledge, logger: d.Logger},
		)
	}
	chain = append(chain, noMatchStrategy{pick: d.Picker})

	return &Composer{
		strategies: chain,
		history:    d.History,
		logger:     d.Logger,
		observer:   d.Observer,
	}
}

// Answer runs the strategy chain for question under the session's active
// scenario. The first strategy that replies wins.
func (c *Composer) Answer(ctx context.Context, sess *Session, question, callerContext string) Answer {
	if strings.TrimSpace(question) == "" {
		return Answer{Text: EmptyQuestionReply, Source: domain.SourceEmpty}
	}

	start := time.Now()
	q := Query{
		Question:   question,
		Normalized: matcher.Normalize(question),
		Context:    callerContext,
		Scenario:   sess.Scenario(),
	}

	var ans Answer
	for _, s := range c.strategies {
		if reply, ok := s.Attempt(ctx, q); ok {
			ans = Answer{Text: reply.Text, Source: reply.Source, Category: reply.Category}
			break
		}
	}

	err := c.record(ctx, question, ans)
	c.observer.ObserveAnswer(ctx, AnswerEvent{
		Scenario:  string(q.Scenario),
		Source:    string(ans.Source),
		Duration:  time.Since(start),
		HistoryOK: err == nil,
		Err:       err,
		StartedAt: start,
	})
	return ans
}

func (c *Composer) record(ctx context.Context, question string, ans Answer) error {
	if c.history == nil {
		return nil
	}
	err := c.history.Append(ctx, &domain.QueryHistoryRecord{
		Question: question,
		Response: domain.HistoryExcerpt(ans.Text),
		Category: string(ans.Source),
	})
	if err != nil {
		c.logger.WarnContext(ctx, "recording query history failed", "error", err)
	}
	return err
}
