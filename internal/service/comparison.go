package service

import (
	"context"

	"github.com/priyansh/carmitra/internal/infrastructure/llm"
	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/normalize"
	"github.com/priyansh/carmitra/internal/prompt"
	"github.com/priyansh/carmitra/internal/session"
)

// ComparisonService maintains the per-session model set and runs the
// head-to-head comparison over it.
type ComparisonService struct {
	llm llm.Provider
}

func NewComparisonService(provider llm.Provider) *ComparisonService {
	return &ComparisonService{llm: provider}
}

// ComparisonInput is one car to add to the set.
type ComparisonInput struct {
	Make    string `json:"make"`
	Model   string `json:"model"`
	Year    string `json:"year"`
	Price   string `json:"price"`
	Variant string `json:"variant"`
	Mileage string `json:"mileage"` // expected annual mileage, optional
}

// Add validates and appends a model. A full set rejects the entry and stays
// unchanged.
func (s *ComparisonService) Add(st *session.ComparisonState, in ComparisonInput) error {
	if err := normalize.Required(
		normalize.Field{Name: "Make", Value: in.Make},
		normalize.Field{Name: "Model", Value: in.Model},
		normalize.Field{Name: "Year", Value: in.Year},
		normalize.Field{Name: "Price", Value: in.Price},
	); err != nil {
		return err
	}

	year, yearErr := normalize.Year("Year", in.Year)
	price, priceErr := normalize.Currency("Price", in.Price)
	if err := normalize.Merge(yearErr, priceErr); err != nil {
		return err
	}

	return st.Add(model.ComparisonModel{
		Make:    in.Make,
		Model:   in.Model,
		Year:    year,
		Price:   price,
		Variant: in.Variant,
		Mileage: in.Mileage,
	})
}

// Remove drops the model at the given position.
func (s *ComparisonService) Remove(st *session.ComparisonState, i int) error {
	return st.Remove(i)
}

// Models returns the current set in insertion order.
func (s *ComparisonService) Models(st *session.ComparisonState) []model.ComparisonModel {
	return st.Models()
}

// Compare runs the comparison prompt over the current set.
func (s *ComparisonService) Compare(ctx context.Context, st *session.ComparisonState) (session.Result, error) {
	models := st.Models()
	if len(models) == 0 {
		return session.Result{}, &normalize.ValidationError{Fields: []normalize.FieldError{
			{Field: "Models", Reason: "add at least one model to compare"},
		}}
	}

	msgs := prompt.Comparison(models)
	return run(ctx, s.llm, st.FeatureState, msgs, nil), nil
}
