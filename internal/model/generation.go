package model

import (
	"context"
	"encoding/json"
	"fmt"
)

// GenerationClient invokes the external image/text generation API. Responses
// are opaque JSON passed through to the UI unmodified.
type GenerationClient interface {
	GenerateImage(ctx context.Context, prompt string) (json.RawMessage, error)
	Reason(ctx context.Context, prompt string) (json.RawMessage, error)
}

// UpstreamError is returned when the generation API answers with a non-success
// status. Body carries the raw upstream payload for verbatim display.
type UpstreamError struct {
	StatusCode int
	Body       json.RawMessage
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.StatusCode)
}
