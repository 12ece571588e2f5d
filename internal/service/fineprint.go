package service

import (
	"context"

	"github.com/priyansh/carmitra/internal/infrastructure/llm"
	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/normalize"
	"github.com/priyansh/carmitra/internal/prompt"
	"github.com/priyansh/carmitra/internal/session"
)

// FinePrintService translates contract legalese into plain language with a
// risk assessment.
type FinePrintService struct {
	llm llm.Provider
}

func NewFinePrintService(provider llm.Provider) *FinePrintService {
	return &FinePrintService{llm: provider}
}

// FinePrintInput is the raw contract submission.
type FinePrintInput struct {
	ContractType      string `json:"contract_type"`
	ContractText      string `json:"contract_text"`
	DealerName        string `json:"dealer_name"`
	CarDetails        string `json:"car_details"`
	AdditionalContext string `json:"additional_context"`
}

// Analyze validates and runs the contract analysis prompt.
func (s *FinePrintService) Analyze(ctx context.Context, st *session.FeatureState, in FinePrintInput) (session.Result, error) {
	contractType, typeErr := normalize.Enum("Contract Type", in.ContractType, model.ContractTypes)
	if err := normalize.Merge(
		normalize.Required(normalize.Field{Name: "Contract Text", Value: in.ContractText}),
		typeErr,
	); err != nil {
		return session.Result{}, err
	}

	msgs := prompt.Contract(prompt.ContractContext{
		ContractType:      contractType,
		DealerName:        in.DealerName,
		CarDetails:        in.CarDetails,
		AdditionalContext: in.AdditionalContext,
	}, in.ContractText)

	return run(ctx, s.llm, st, msgs, nil), nil
}
