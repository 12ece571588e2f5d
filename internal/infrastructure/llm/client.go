package llm

import (
	"context"

	"github.com/priyansh/carmitra/internal/model"
)

// Provider is the seam between the orchestration services and the remote
// completion endpoint. Services depend on this interface, never on the
// concrete client, so tests inject fakes here.
type Provider interface {
	// Complete sends the full ordered message list and returns the raw
	// markdown reply. The endpoint is stateless across calls; context
	// accumulation is the caller's job.
	Complete(ctx context.Context, messages []model.ChatMessage) (string, error)
}

// CompletionError wraps any remote failure: transport, auth, rate limit or
// model error. It is caught at the orchestration layer and stored as a
// Failure result; it never crashes a page.
type CompletionError struct {
	Cause error
}

func (e *CompletionError) Error() string {
	return "completion failed: " + e.Cause.Error()
}

func (e *CompletionError) Unwrap() error { return e.Cause }
