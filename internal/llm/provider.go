package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// Prompt is what a provider is asked to complete.
type Prompt struct {
	System   string
	Context  string
	Question string
	// Fallback is the answer the local model gives.
	Fallback string
}

// Completion is a provider's answer.
type Completion struct {
	Text       string
	TokensUsed int
	Model      string
}

// Provider completes a prompt against one backend.
type Provider interface {
	Complete(ctx context.Context, p Prompt) (Completion, error)
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
		},
	}
}

// contextMessage frames caller context as a separate user turn.
func contextMessage(c string) string {
	return "背景信息：" + c
}

// transportError maps a failed call that carried no API status to a sentinel.
func transportError(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingCredential):
		return "NO_CREDENTIAL"
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrProviderUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrBadStatus):
		return "BAD_STATUS"
	case errors.Is(err, ErrInvalidOutput):
		return "INVALID_OUTPUT"
	default:
		return "UNKNOWN"
	}
}
