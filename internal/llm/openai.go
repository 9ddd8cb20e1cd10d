package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// chatProvider talks to any OpenAI-compatible chat completions endpoint.
// DeepSeek and OpenAI both use it.
type chatProvider struct {
	client openai.Client
	spec   ModelSpec
}

func newChatProvider(spec ModelSpec, apiKey, baseURL string, hc *http.Client) *chatProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(hc),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &chatProvider{client: openai.NewClient(opts...), spec: spec}
}

func (p *chatProvider) Complete(ctx context.Context, pr Prompt) (Completion, error) {
	messages := []openai.ChatCompletionMessageParamUnion{openai.SystemMessage(pr.System)}
	if pr.Context != "" {
		messages = append(messages, openai.UserMessage(contextMessage(pr.Context)))
	}
	messages = append(messages, openai.UserMessage(pr.Question))

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(p.spec.ModelName),
		Messages:    messages,
		MaxTokens:   openai.Int(int64(p.spec.MaxTokens)),
		Temperature: openai.Float(p.spec.Temperature),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return Completion{}, fmt.Errorf("%w: %s status %d", ErrBadStatus, p.spec.ID, apiErr.StatusCode)
		}
		return Completion{}, transportError(ctx, err)
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return Completion{}, fmt.Errorf("%w: %s returned no content", ErrInvalidOutput, p.spec.ID)
	}
	return Completion{
		Text:       resp.Choices[0].Message.Content,
		TokensUsed: int(resp.Usage.TotalTokens),
		Model:      resp.Model,
	}, nil
}
