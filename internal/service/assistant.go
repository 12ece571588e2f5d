package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/priyansh/carmitra/internal/infrastructure/llm"
	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/normalize"
	"github.com/priyansh/carmitra/internal/prompt"
	"github.com/priyansh/carmitra/internal/render"
	"github.com/priyansh/carmitra/internal/session"
)

// AssistantService drives the multi-turn shopping assistant. Unlike the
// one-shot features it accumulates conversation history per session and
// resends the full ordered message list on every turn.
type AssistantService struct {
	llm llm.Provider
}

func NewAssistantService(provider llm.Provider) *AssistantService {
	return &AssistantService{llm: provider}
}

// ChatReply is one assistant turn. Speech is only set for voice-mode turns:
// the same reply with emoji and markup stripped for TTS.
type ChatReply struct {
	Reply  string `json:"reply"`
	Speech string `json:"speech,omitempty"`
}

// ensureSeeded installs the system prompt on first contact with a session.
func (s *AssistantService) ensureSeeded(st *session.AssistantState) {
	if st.Empty() {
		st.Reset(prompt.AssistantSeed())
	}
}

// Chat appends the user turn, runs the completion over the whole history and
// appends the reply. A completion failure becomes a bracketed error reply
// recorded in history like any other turn, so the conversation survives it.
// Voice turns swap in the TTS system prompt and add a stripped speech text.
func (s *AssistantService) Chat(ctx context.Context, st *session.AssistantState, text string, voice bool) (ChatReply, error) {
	if err := normalize.Required(normalize.Field{Name: "Message", Value: text}); err != nil {
		return ChatReply{}, err
	}
	s.ensureSeeded(st)

	st.Append(model.User(text))

	msgs := st.History()
	if voice {
		// Same history, speech-oriented instruction.
		msgs[0] = prompt.AssistantVoiceSystem()
	}

	reply, err := s.llm.Complete(ctx, msgs)
	if err != nil {
		slog.Error("assistant completion failed", "error", err)
		reply = fmt.Sprintf("[Error: %v]", err)
	}
	st.Append(model.Assistant(reply))

	out := ChatReply{Reply: reply}
	if voice {
		out.Speech = render.StripForSpeech(reply)
	}
	return out, nil
}

// UpdatePreferences validates and records the preference block as a
// synthetic user turn. No completion call is made; the next real turn
// carries the preferences as context.
func (s *AssistantService) UpdatePreferences(st *session.AssistantState, p model.Preferences) error {
	var errs []error
	if p.PrimaryUse != "" {
		_, err := normalize.Enum("Primary Use", p.PrimaryUse, model.PrimaryUses)
		errs = append(errs, err)
	}
	if p.FamilySize != "" {
		_, err := normalize.Enum("Family Size", p.FamilySize, model.FamilySizes)
		errs = append(errs, err)
	}
	if p.FuelPreference != "" {
		_, err := normalize.Enum("Fuel Preference", p.FuelPreference, model.FuelPreferences)
		errs = append(errs, err)
	}
	if p.Transmission != "" {
		_, err := normalize.Enum("Transmission", p.Transmission, model.TransmissionPreferences)
		errs = append(errs, err)
	}
	if err := normalize.Merge(errs...); err != nil {
		return err
	}

	s.ensureSeeded(st)
	st.SetPreferences(p)
	st.Append(prompt.PreferenceTurn(p))
	return nil
}

// History returns the conversation without the leading system prompt.
func (s *AssistantService) History(st *session.AssistantState) []model.ChatMessage {
	s.ensureSeeded(st)
	return st.History()[1:]
}

// Clear drops all turns, keeping only a fresh system prompt.
func (s *AssistantService) Clear(st *session.AssistantState) {
	st.Reset(prompt.AssistantSeed())
}
