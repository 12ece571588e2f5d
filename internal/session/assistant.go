package session

import (
	"sync"

	"github.com/priyansh/carmitra/internal/model"
)

// AssistantState owns the conversational assistant's per-session history and
// sticky preferences. History is append-only; turns are never rewritten.
type AssistantState struct {
	mu      sync.Mutex
	history []model.ChatMessage
	prefs   model.Preferences
}

// NewAssistantState starts with an empty history. The owning service seeds
// the system prompt via Reset before first use.
func NewAssistantState() *AssistantState {
	return &AssistantState{}
}

// Reset replaces the history with the given seed (system prompt only).
func (a *AssistantState) Reset(seed []model.ChatMessage) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = append([]model.ChatMessage(nil), seed...)
}

// Append adds turns to the history in order.
func (a *AssistantState) Append(msgs ...model.ChatMessage) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.history = append(a.history, msgs...)
}

// History returns a copied snapshot of the conversation.
func (a *AssistantState) History() []model.ChatMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.ChatMessage, len(a.history))
	copy(out, a.history)
	return out
}

// Empty reports whether the history has been seeded yet.
func (a *AssistantState) Empty() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.history) == 0
}

// SetPreferences stores the latest preference submission.
func (a *AssistantState) SetPreferences(p model.Preferences) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.prefs = p
}

// Preferences returns the stored preferences by value.
func (a *AssistantState) Preferences() model.Preferences {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.prefs
}
