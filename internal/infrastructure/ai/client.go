// Package ai wraps the external text-completion providers the platform
// forwards user input to. Providers are opaque: one prompt in, one text
// response out. Nothing in this package interprets the model output.
package ai

import (
	"context"
	"errors"
)

var ErrUnavailable = errors.New("ai provider unavailable")

type Completion struct {
	Text       string
	Provider   string
	TokensUsed int
}

type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (Completion, error)
	Provider() string
}
