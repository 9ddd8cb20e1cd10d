package llm

import "errors"

var (
	// ErrUnknownModel indicates a model id outside the catalogue.
	ErrUnknownModel = errors.New("unknown model")

	// ErrMissingCredential indicates a remote model was selected or called
	// without a stored API key. No request is sent.
	ErrMissingCredential = errors.New("missing api key")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrProviderUnavailable indicates the provider endpoint is unreachable.
	ErrProviderUnavailable = errors.New("llm provider unavailable")

	// ErrBadStatus indicates the provider answered with a non-success status.
	ErrBadStatus = errors.New("llm provider returned error status")

	// ErrInvalidOutput indicates the response carried no usable text.
	ErrInvalidOutput = errors.New("invalid llm output")
)
