package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/priyansh/carmitra/internal/finance"
	"github.com/priyansh/carmitra/internal/normalize"
	"github.com/priyansh/carmitra/internal/session"
)

// rupees formats a value the way the prompt layer does, so the test derives
// the expected EMI string independently of the code under test.
func rupees(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.Index(s, ".")
	whole, frac := s[:dot], s[dot:]
	var parts []string
	for len(whole) > 3 {
		parts = append([]string{whole[len(whole)-3:]}, parts...)
		whole = whole[:len(whole)-3]
	}
	parts = append([]string{whole}, parts...)
	return strings.Join(parts, ",") + frac
}

func TestAnalyzeEmbedsComputedEMI(t *testing.T) {
	p := &fakeProvider{reply: "assessment"}
	svc := NewFinanceService(p)
	st := session.NewFeatureState()

	r, err := svc.Analyze(context.Background(), st, FinanceInput{
		CarPrice:     "15,00,000",
		DownPayment:  "3,00,000",
		LoanTerm:     "60",
		InterestRate: "8.5",
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.Phase != session.PhaseSuccess {
		t.Fatalf("phase = %q, want success", r.Phase)
	}
	if len(p.got) != 1 {
		t.Fatalf("provider called %d times, want 1", len(p.got))
	}

	emi, err := finance.ComputeEMI(1200000, 8.5, 60)
	if err != nil {
		t.Fatal(err)
	}

	user := p.got[0][1].Content
	want := "EMI: ₹" + rupees(emi) + " per month"
	if !strings.Contains(user, want) {
		t.Errorf("prompt missing %q\npayload:\n%s", want, user)
	}
	if !strings.Contains(user, "Car Price: ₹1,500,000") {
		t.Errorf("indian-grouped input not normalized:\n%s", user)
	}
}

func TestAnalyzeMissingFieldsReportedTogether(t *testing.T) {
	p := &fakeProvider{reply: "assessment"}
	svc := NewFinanceService(p)
	st := session.NewFeatureState()

	_, err := svc.Analyze(context.Background(), st, FinanceInput{CarPrice: "10,00,000"})

	var verr *normalize.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want a validation error", err)
	}
	got := verr.MissingFields()
	want := []string{"Down Payment", "Loan Term", "Interest Rate"}
	if len(got) != len(want) {
		t.Fatalf("missing fields = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("missing[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if len(p.got) != 0 {
		t.Error("validation failure must not reach the provider")
	}
	if st.Snapshot().Phase != session.PhaseEmpty {
		t.Error("state must stay empty on validation failure")
	}
}

func TestAnalyzeNegativePrincipalRecordsCalculationError(t *testing.T) {
	p := &fakeProvider{reply: "assessment"}
	svc := NewFinanceService(p)
	st := session.NewFeatureState()

	r, err := svc.Analyze(context.Background(), st, FinanceInput{
		CarPrice:     "5,00,000",
		DownPayment:  "6,00,000",
		LoanTerm:     "36",
		InterestRate: "9",
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.Phase != session.PhaseFailure {
		t.Fatalf("phase = %q, want failure", r.Phase)
	}
	if !strings.HasPrefix(r.Error, "[Error in calculation:") {
		t.Errorf("error = %q, want a calculation error", r.Error)
	}
	if len(p.got) != 0 {
		t.Error("calculation failure must not reach the provider")
	}
}

func TestAnalyzeProviderFailure(t *testing.T) {
	p := &fakeProvider{err: errors.New("rate limited")}
	svc := NewFinanceService(p)
	st := session.NewFeatureState()

	r, err := svc.Analyze(context.Background(), st, FinanceInput{
		CarPrice: "10,00,000", DownPayment: "2,00,000", LoanTerm: "48", InterestRate: "9.5",
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.Phase != session.PhaseFailure {
		t.Fatalf("phase = %q, want failure", r.Phase)
	}
	if want := "[Error: rate limited]"; r.Error != want {
		t.Errorf("error = %q, want %q", r.Error, want)
	}
}
