package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/session"
)

// fakeProvider records every message list it receives and returns a canned
// reply or error.
type fakeProvider struct {
	reply string
	err   error
	got   [][]model.ChatMessage
}

func (f *fakeProvider) Complete(_ context.Context, msgs []model.ChatMessage) (string, error) {
	cp := make([]model.ChatMessage, len(msgs))
	copy(cp, msgs)
	f.got = append(f.got, cp)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestRunSuccessColorizesAndStoresRaw(t *testing.T) {
	p := &fakeProvider{reply: "🟢 Good deal"}
	st := session.NewFeatureState()

	r := run(context.Background(), p, st, []model.ChatMessage{model.User("hi")}, nil)

	if r.Phase != session.PhaseSuccess {
		t.Fatalf("phase = %q, want success", r.Phase)
	}
	if r.Raw != "🟢 Good deal" {
		t.Errorf("raw = %q, want the uncolorized reply", r.Raw)
	}
	if !strings.Contains(r.Markdown, `<span style="color:#34d399;font-weight:700;">🟢</span>`) {
		t.Errorf("markdown not colorized: %q", r.Markdown)
	}
}

func TestRunProviderFailureRecordsBracketedError(t *testing.T) {
	p := &fakeProvider{err: errors.New("connection refused")}
	st := session.NewFeatureState()

	r := run(context.Background(), p, st, []model.ChatMessage{model.User("hi")}, nil)

	if r.Phase != session.PhaseFailure {
		t.Fatalf("phase = %q, want failure", r.Phase)
	}
	if want := "[Error: connection refused]"; r.Error != want {
		t.Errorf("error = %q, want %q", r.Error, want)
	}
	if r.Markdown != "" {
		t.Errorf("failure result should carry no markdown, got %q", r.Markdown)
	}
}

func TestSplitLines(t *testing.T) {
	got := splitLines("  Accessories: ₹50,000  \n\n RTO: ₹80,000\n   ")
	want := []string{"Accessories: ₹50,000", "RTO: ₹80,000"}
	if len(got) != len(want) {
		t.Fatalf("splitLines = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDepreciationPredictAttachesProjection(t *testing.T) {
	p := &fakeProvider{reply: "report"}
	svc := NewDepreciationService(p)
	st := session.NewFeatureState()

	r, err := svc.Predict(context.Background(), st, CarInput{
		Make: "Tata", Model: "Nexon EV", Year: "2023", Price: "14,50,000",
		Condition: "Excellent", FuelType: "Electric", Transmission: "Automatic",
	})
	if err != nil {
		t.Fatal(err)
	}

	if r.Phase != session.PhaseSuccess {
		t.Fatalf("phase = %q, want success", r.Phase)
	}
	if len(r.Projection) != 6 {
		t.Fatalf("projection has %d points, want 6 (years 0 through 5)", len(r.Projection))
	}
	if r.Projection[0].Value != 1450000 {
		t.Errorf("year 0 value = %v, want the purchase price", r.Projection[0].Value)
	}

	user := p.got[0][1].Content
	if !strings.Contains(user, "Base Depreciation Rate: 12.0% per year") {
		t.Errorf("excellent condition should project at 12%%:\n%s", user)
	}
}

func TestDepreciationValidationLeavesStateEmpty(t *testing.T) {
	p := &fakeProvider{reply: "report"}
	svc := NewDepreciationService(p)
	st := session.NewFeatureState()

	_, err := svc.Predict(context.Background(), st, CarInput{Make: "Tata"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if len(p.got) != 0 {
		t.Error("validation failure must not reach the provider")
	}
	if got := st.Snapshot().Phase; got != session.PhaseEmpty {
		t.Errorf("state phase = %q, want empty", got)
	}
}

func TestComparisonCompare(t *testing.T) {
	p := &fakeProvider{reply: "verdict"}
	svc := NewComparisonService(p)
	st := session.NewComparisonState()

	if _, err := svc.Compare(context.Background(), st); err == nil {
		t.Error("comparing an empty set should fail validation")
	}
	if len(p.got) != 0 {
		t.Fatal("empty set must not reach the provider")
	}

	for _, in := range []ComparisonInput{
		{Make: "Hyundai", Model: "Creta", Year: "2023", Price: "16,50,000"},
		{Make: "Kia", Model: "Seltos", Year: "2023", Price: "15,90,000"},
	} {
		if err := svc.Add(st, in); err != nil {
			t.Fatal(err)
		}
	}

	r, err := svc.Compare(context.Background(), st)
	if err != nil {
		t.Fatal(err)
	}
	if r.Phase != session.PhaseSuccess {
		t.Fatalf("phase = %q, want success", r.Phase)
	}

	user := p.got[0][1].Content
	if !strings.Contains(user, "Model 1:\nMake: Hyundai") || !strings.Contains(user, "Model 2:\nMake: Kia") {
		t.Errorf("models not serialized in insertion order:\n%s", user)
	}
}
