package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type claudeProvider struct {
	client anthropic.Client
	spec   ModelSpec
}

func newClaudeProvider(spec ModelSpec, apiKey, baseURL string, hc *http.Client) *claudeProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(hc),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &claudeProvider{client: anthropic.NewClient(opts...), spec: spec}
}

func (p *claudeProvider) Complete(ctx context.Context, pr Prompt) (Completion, error) {
	var blocks []anthropic.ContentBlockParamUnion
	if pr.Context != "" {
		blocks = append(blocks, anthropic.NewTextBlock(contextMessage(pr.Context)))
	}
	blocks = append(blocks, anthropic.NewTextBlock(pr.Question))

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(p.spec.ModelName),
		MaxTokens:   int64(p.spec.MaxTokens),
		System:      []anthropic.TextBlockParam{{Text: pr.System}},
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(blocks...)},
		Temperature: anthropic.Float(p.spec.Temperature),
	})
	if err != nil {
		var apiErr *anthropic.Error
		if errors.As(err, &apiErr) {
			return Completion{}, fmt.Errorf("%w: %s status %d", ErrBadStatus, p.spec.ID, apiErr.StatusCode)
		}
		return Completion{}, transportError(ctx, err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(b.Text)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return Completion{}, fmt.Errorf("%w: %s returned no text", ErrInvalidOutput, p.spec.ID)
	}
	return Completion{
		Text:       text.String(),
		TokensUsed: int(msg.Usage.InputTokens + msg.Usage.OutputTokens),
		Model:      string(msg.Model),
	}, nil
}
