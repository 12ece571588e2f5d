package service

import (
	"context"

	"github.com/priyansh/carmitra/internal/finance"
	"github.com/priyansh/carmitra/internal/infrastructure/llm"
	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/prompt"
	"github.com/priyansh/carmitra/internal/session"
)

// insightsHorizonYears is shorter than the predictor's: the insights page
// charts a 5-point curve (years 0 through 4).
const insightsHorizonYears = 4

// InsightsService produces the market overview: LLM analysis plus the
// adjusted value projection and the ownership cost breakdown.
type InsightsService struct {
	llm llm.Provider
}

func NewInsightsService(provider llm.Provider) *InsightsService {
	return &InsightsService{llm: provider}
}

// adjustments returns the depreciation scaling factors for a profile:
// electric/hybrid drivetrains retain value better, automatics slightly worse.
func adjustments(car model.CarProfile) []float64 {
	var out []float64
	if car.FuelType == "Electric" || car.FuelType == "Hybrid" {
		out = append(out, finance.AdjustmentEVHybrid)
	}
	if car.Transmission == "Automatic" {
		out = append(out, finance.AdjustmentAutomatic)
	}
	return out
}

// Generate runs the insights prompt and attaches the adjusted projection and
// cost breakdown to the result.
func (s *InsightsService) Generate(ctx context.Context, st *session.FeatureState, in CarInput) (session.Result, error) {
	car, err := in.Normalize()
	if err != nil {
		return session.Result{}, err
	}

	series := finance.ProjectDepreciation(
		car.Price,
		finance.ConditionRate(car.Condition),
		insightsHorizonYears,
		adjustments(car)...,
	)
	breakdown := finance.BreakdownCosts(series[0].Value, series[len(series)-1].Value, car.Price)

	msgs := prompt.Insights(car)
	return run(ctx, s.llm, st, msgs, func(r *session.Result) {
		r.Projection = series
		r.Breakdown = &breakdown
	}), nil
}
