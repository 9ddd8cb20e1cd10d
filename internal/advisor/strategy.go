package advisor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alexanderramin/haven/internal/domain"
	"github.com/alexanderramin/haven/internal/llm"
	"github.com/alexanderramin/haven/internal/matcher"
	"github.com/alexanderramin/haven/internal/repository"
	"github.com/alexanderramin/haven/internal/scenario"
)

const (
	categoryEntryLimit = 2
	categoryExcerpt    = 200
	searchResultLimit  = 3
	searchExcerpt      = 300
)

// Query is one question as seen by the strategies.
type Query struct {
	Question string
	// Normalized is Question lower-cased with punctuation removed.
	Normalized string
	Context    string
	Scenario   domain.Scenario
}

// Reply is a strategy's answer.
type Reply struct {
	Text     string
	Source   domain.AnswerSource
	Category domain.Category
}

// Strategy is one link of the answer chain. ok=false passes the question on.
type Strategy interface {
	Attempt(ctx context.Context, q Query) (Reply, bool)
}

// Responder is the remote text generator.
type Responder interface {
	Generate(ctx context.Context, req llm.Request) llm.Result
}

// advancedStrategy routes the question through the scenario table and asks
// the responder to answer it, with the routed text as the local fallback.
type advancedStrategy struct {
	router    *scenario.Router
	responder Responder
}

func (s advancedStrategy) Attempt(ctx context.Context, q Query) (Reply, bool) {
	routed := s.router.Route(q.Scenario, q.Question)
	res := s.responder.Generate(ctx, llm.Request{
		Question: q.Question,
		Context:  q.Context,
		Scenario: q.Scenario,
		Fallback: routed.Text,
	})
	if res.OK && strings.TrimSpace(res.Text) != "" {
		src := domain.SourceRemote
		if res.Model == llm.ModelLocal {
			src = domain.SourceScenario
		}
		return Reply{Text: formatAdvanced(q.Scenario, res.Text, res.Model), Source: src}, true
	}
	if routed.Text != "" {
		return Reply{Text: routed.Text, Source: domain.SourceScenario}, true
	}
	return Reply{}, false
}

func formatAdvanced(s domain.Scenario, body string, model llm.ModelID) string {
	meta := s.Meta()
	text := fmt.Sprintf("%s 【%s场景】\n\n%s", meta.Icon, meta.Name, body)
	if model != llm.ModelLocal {
		name := string(model)
		if spec, ok := llm.LookupModel(model); ok {
			name = spec.Name
		}
		text += fmt.Sprintf("\n\n🤖 由 %s 提供支持", name)
	}
	return text
}

type patternStrategy struct {
	patterns *matcher.PatternMatcher
	pick     Picker
}

func (s patternStrategy) Attempt(_ context.Context, q Query) (Reply, bool) {
	intent, ok := s.patterns.Match(q.Question)
	if !ok {
		return Reply{}, false
	}
	if intent == domain.IntentGreeting {
		return Reply{Text: s.pick.pick(tmplGreeting) + greetingExamples, Source: domain.SourcePattern}, true
	}
	text, ok := cannedAnswer(intent)
	if !ok {
		text = s.pick.pick(tmplNoMatch)
	}
	return Reply{Text: text, Source: domain.SourcePattern}, true
}

type categoryStrategy struct {
	classifier *matcher.Classifier
	knowledge  repository.KnowledgeRepo
	pick       Picker
	logger     *slog.Logger
}

func (s categoryStrategy) Attempt(ctx context.Context, q Query) (Reply, bool) {
	cat, ok := s.classifier.Classify(q.Question)
	if !ok {
		return Reply{}, false
	}
	entries, err := s.knowledge.ListByCategory(ctx, cat, categoryEntryLimit)
	if err != nil {
		s.logger.WarnContext(ctx, "category lookup failed", "category", cat, "error", err)
		entries = nil
	}
	reply := Reply{Source: domain.SourceCategory, Category: cat}
	if len(entries) == 0 {
		reply.Text = fmt.Sprintf("关于%s的问题，让我为您查找相关信息...\n\n", cat) + s.pick.pick(tmplNoMatch)
		return reply, true
	}

	var b strings.Builder
	b.WriteString(s.pick.forCategory(cat))
	b.WriteString("\n\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "📌 %s\n%s...\n\n", e.Title, domain.Truncate(e.Content, categoryExcerpt))
	}
	b.WriteString("💡 提示：您可以在'生存知识'选项卡中查看更多详细信息。")
	reply.Text = b.String()
	return reply, true
}

type searchStrategy struct {
	knowledge repository.KnowledgeRepo
	logger    *slog.Logger
}

func (s searchStrategy) Attempt(ctx context.Context, q Query) (Reply, bool) {
	if q.Normalized == "" {
		return Reply{}, false
	}
	results, err := s.knowledge.Search(ctx, q.Normalized, "")
	if err != nil {
		s.logger.WarnContext(ctx, "knowledge search failed", "keyword", q.Normalized, "error", err)
		return Reply{}, false
	}
	if len(results) == 0 {
		return Reply{}, false
	}

	var b strings.Builder
	b.WriteString("🔍 根据您的问题，我找到了以下相关信息：\n\n")
	for i, r := range results {
		if i == searchResultLimit {
			break
		}
		fmt.Fprintf(&b, "📖 %d. %s\n", i+1, r.Title)
		fmt.Fprintf(&b, "分类: %s | 难度: %s\n", r.Category, strings.Repeat("⭐", max(r.Difficulty, 0)))
		fmt.Fprintf(&b, "%s...\n\n", domain.Truncate(r.Content, searchExcerpt))
	}
	if extra := len(results) - searchResultLimit; extra > 0 {
		fmt.Fprintf(&b, "还有 %d 条相关信息，请在搜索框中查看完整结果。\n\n", extra)
	}
	b.WriteString("💡 提示：您可以在其他选项卡中查看更多专业内容。")
	return Reply{Text: b.String(), Source: domain.SourceSearch}, true
}

type noMatchStrategy struct {
	pick Picker
}

func (s noMatchStrategy) Attempt(context.Context, Query) (Reply, bool) {
	return Reply{Text: s.pick.pick(tmplNoMatch), Source: domain.SourceNoMatch}, true
}
