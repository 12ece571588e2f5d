package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/session"
)

func TestChatAppendsHistoryInOrder(t *testing.T) {
	p := &fakeProvider{reply: "Consider the Creta."}
	svc := NewAssistantService(p)
	st := session.NewAssistantState()

	if _, err := svc.Chat(context.Background(), st, "Best SUV under 20 lakh?", false); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Chat(context.Background(), st, "And its mileage?", false); err != nil {
		t.Fatal(err)
	}

	hist := svc.History(st)
	wantRoles := []string{model.RoleUser, model.RoleAssistant, model.RoleUser, model.RoleAssistant}
	if len(hist) != len(wantRoles) {
		t.Fatalf("history has %d turns, want %d", len(hist), len(wantRoles))
	}
	for i, role := range wantRoles {
		if hist[i].Role != role {
			t.Errorf("turn %d role = %q, want %q", i, hist[i].Role, role)
		}
	}

	// The second call must carry the whole conversation so far.
	second := p.got[1]
	if second[0].Role != model.RoleSystem || len(second) != 4 {
		t.Fatalf("second request shape wrong: %d messages, first role %q", len(second), second[0].Role)
	}
	if second[2].Content != "Consider the Creta." {
		t.Errorf("prior assistant turn not resent: %q", second[2].Content)
	}
}

func TestChatVoiceSwapsSystemPromptAndStrips(t *testing.T) {
	p := &fakeProvider{reply: "**Great choice** 🚗 [details](url)"}
	svc := NewAssistantService(p)
	st := session.NewAssistantState()

	out, err := svc.Chat(context.Background(), st, "Tell me about the Nexon EV", true)
	if err != nil {
		t.Fatal(err)
	}

	sent := p.got[0]
	if !strings.Contains(sent[0].Content, "text-to-speech") {
		t.Error("voice turn did not swap in the speech system prompt")
	}
	if out.Speech != "Great choice details" {
		t.Errorf("speech = %q, want stripped reply", out.Speech)
	}
	if out.Reply != "**Great choice** 🚗 [details](url)" {
		t.Errorf("reply = %q, want the untouched reply", out.Reply)
	}

	// The stored history keeps the text-mode seed; the swap is per call.
	if hist := st.History(); !strings.Contains(hist[0].Content, "Use emojis") {
		t.Error("stored system prompt should remain the text-mode one")
	}
}

func TestChatErrorBecomesBracketedReplyInHistory(t *testing.T) {
	p := &fakeProvider{err: errors.New("timeout")}
	svc := NewAssistantService(p)
	st := session.NewAssistantState()

	out, err := svc.Chat(context.Background(), st, "hello", false)
	if err != nil {
		t.Fatal(err)
	}
	if want := "[Error: timeout]"; out.Reply != want {
		t.Errorf("reply = %q, want %q", out.Reply, want)
	}

	hist := svc.History(st)
	if len(hist) != 2 || hist[1].Content != "[Error: timeout]" {
		t.Errorf("error reply not recorded in history: %+v", hist)
	}
}

func TestUpdatePreferencesAppendsTurnWithoutCompletion(t *testing.T) {
	p := &fakeProvider{reply: "unused"}
	svc := NewAssistantService(p)
	st := session.NewAssistantState()

	err := svc.UpdatePreferences(st, model.Preferences{
		Budget: "12,00,000", PrimaryUse: "Family Car", FuelPreference: "Petrol",
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(p.got) != 0 {
		t.Error("preference update must not call the provider")
	}

	hist := svc.History(st)
	if len(hist) != 1 || hist[0].Role != model.RoleUser {
		t.Fatalf("history = %+v, want one synthetic user turn", hist)
	}
	if !strings.Contains(hist[0].Content, "Budget: ₹12,00,000") {
		t.Errorf("preference turn missing budget: %q", hist[0].Content)
	}

	if err := svc.UpdatePreferences(st, model.Preferences{PrimaryUse: "Racing"}); err == nil {
		t.Error("unknown primary use should fail validation")
	}
}

func TestClearReseeds(t *testing.T) {
	p := &fakeProvider{reply: "ok"}
	svc := NewAssistantService(p)
	st := session.NewAssistantState()

	if _, err := svc.Chat(context.Background(), st, "hi", false); err != nil {
		t.Fatal(err)
	}
	svc.Clear(st)

	if got := svc.History(st); len(got) != 0 {
		t.Errorf("history after clear = %+v, want empty", got)
	}
	if hist := st.History(); len(hist) != 1 || hist[0].Role != model.RoleSystem {
		t.Errorf("cleared state = %+v, want only the system seed", hist)
	}
}
