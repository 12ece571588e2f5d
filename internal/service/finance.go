package service

import (
	"context"
	"fmt"

	"github.com/priyansh/carmitra/internal/finance"
	"github.com/priyansh/carmitra/internal/infrastructure/llm"
	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/normalize"
	"github.com/priyansh/carmitra/internal/prompt"
	"github.com/priyansh/carmitra/internal/session"
)

// FinanceService grades a car deal: it computes EMI, interest and TCO
// locally and has the model reason over those exact figures.
type FinanceService struct {
	llm llm.Provider
}

func NewFinanceService(provider llm.Provider) *FinanceService {
	return &FinanceService{llm: provider}
}

// FinanceInput is the raw form submission. Car price, down payment, loan
// term and interest rate are required; the rest default to zero/absent.
type FinanceInput struct {
	CarPrice        string `json:"car_price"`
	DownPayment     string `json:"down_payment"`
	LoanTerm        string `json:"loan_term"`
	InterestRate    string `json:"interest_rate"`
	Insurance       string `json:"insurance"`
	Maintenance     string `json:"maintenance"`
	Fuel            string `json:"fuel"`
	ResaleValue     string `json:"resale_value"`
	AdditionalCosts string `json:"additional_costs"` // one cost per line
}

// Normalize turns the raw submission into typed financial inputs, reporting
// every bad field in one pass.
func (in FinanceInput) Normalize() (model.FinancialInputs, error) {
	if err := normalize.Required(
		normalize.Field{Name: "Car Price", Value: in.CarPrice},
		normalize.Field{Name: "Down Payment", Value: in.DownPayment},
		normalize.Field{Name: "Loan Term", Value: in.LoanTerm},
		normalize.Field{Name: "Interest Rate", Value: in.InterestRate},
	); err != nil {
		return model.FinancialInputs{}, err
	}

	price, priceErr := normalize.Currency("Car Price", in.CarPrice)
	down, downErr := normalize.Currency("Down Payment", in.DownPayment)
	term, termErr := normalize.PositiveInt("Loan Term", in.LoanTerm)
	rate, rateErr := normalize.Rate("Interest Rate", in.InterestRate)
	insurance, insErr := normalize.OptionalCurrency("Insurance", in.Insurance)
	maintenance, maintErr := normalize.OptionalCurrency("Maintenance", in.Maintenance)
	fuel, fuelErr := normalize.OptionalCurrency("Fuel", in.Fuel)
	resale, resaleErr := normalize.OptionalCurrency("Expected Resale Value", in.ResaleValue)

	if err := normalize.Merge(priceErr, downErr, termErr, rateErr, insErr, maintErr, fuelErr, resaleErr); err != nil {
		return model.FinancialInputs{}, err
	}

	return model.FinancialInputs{
		CarPrice:          price,
		DownPayment:       down,
		Principal:         price - down,
		TermMonths:        term,
		AnnualRatePercent: rate,
		InsuranceAnnual:   insurance,
		MaintenanceAnnual: maintenance,
		FuelMonthly:       fuel,
		ResaleValue:       resale,
		AdditionalCosts:   splitLines(in.AdditionalCosts),
	}, nil
}

// Analyze validates the submission, computes the deal metrics and runs the
// financial advisor prompt. A numeric precondition failure (DomainError) is
// recorded as a calculation error result, not propagated.
func (s *FinanceService) Analyze(ctx context.Context, st *session.FeatureState, in FinanceInput) (session.Result, error) {
	inputs, err := in.Normalize()
	if err != nil {
		return session.Result{}, err
	}

	metrics, err := finance.ComputeDealMetrics(
		inputs.Principal, inputs.AnnualRatePercent, inputs.TermMonths,
		inputs.InsuranceAnnual, inputs.MaintenanceAnnual, inputs.FuelMonthly, inputs.ResaleValue,
	)
	if err != nil {
		st.Begin()
		st.Fail(fmt.Sprintf("[Error in calculation: %v]", err))
		return st.Snapshot(), nil
	}

	msgs := prompt.FinancialAnalysis(inputs, metrics)
	return run(ctx, s.llm, st, msgs, nil), nil
}
