package service

import (
	"context"

	"github.com/priyansh/carmitra/internal/infrastructure/llm"
	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/normalize"
	"github.com/priyansh/carmitra/internal/prompt"
	"github.com/priyansh/carmitra/internal/session"
)

// PolicyService analyzes pasted dealer policies and terms.
type PolicyService struct {
	llm llm.Provider
}

func NewPolicyService(provider llm.Provider) *PolicyService {
	return &PolicyService{llm: provider}
}

// PolicyInput is the raw form submission. Only the policy text is required;
// the context fields narrow the analysis when present.
type PolicyInput struct {
	PolicyType    string `json:"policy_type"`
	DealerName    string `json:"dealer_name"`
	CarModel      string `json:"car_model"`
	PurchaseType  string `json:"purchase_type"`
	FinancingType string `json:"financing_type"`
	PolicyText    string `json:"policy_text"`
}

// Scan validates, builds the policy prompt and runs the completion. On
// invalid input the state container is left untouched.
func (s *PolicyService) Scan(ctx context.Context, st *session.FeatureState, in PolicyInput) (session.Result, error) {
	var enumErrs []error
	if in.PolicyType != "" {
		_, err := normalize.Enum("Policy Type", in.PolicyType, model.PolicyTypes)
		enumErrs = append(enumErrs, err)
	}
	if in.PurchaseType != "" {
		_, err := normalize.Enum("Purchase Type", in.PurchaseType, model.PurchaseTypes)
		enumErrs = append(enumErrs, err)
	}
	if in.FinancingType != "" {
		_, err := normalize.Enum("Financing Type", in.FinancingType, model.FinancingTypes)
		enumErrs = append(enumErrs, err)
	}
	if err := normalize.Merge(append([]error{
		normalize.Required(normalize.Field{Name: "Policy Text", Value: in.PolicyText}),
	}, enumErrs...)...); err != nil {
		return session.Result{}, err
	}

	msgs := prompt.PolicyScan(prompt.PolicyContext{
		PolicyType:    in.PolicyType,
		DealerName:    in.DealerName,
		CarModel:      in.CarModel,
		PurchaseType:  in.PurchaseType,
		FinancingType: in.FinancingType,
	}, in.PolicyText)

	return run(ctx, s.llm, st, msgs, nil), nil
}
