package service

import (
	"context"

	"github.com/priyansh/carmitra/internal/finance"
	"github.com/priyansh/carmitra/internal/infrastructure/llm"
	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/normalize"
	"github.com/priyansh/carmitra/internal/prompt"
	"github.com/priyansh/carmitra/internal/session"
)

// depreciationHorizonYears is the projection length of the predictor.
const depreciationHorizonYears = 5

// DepreciationService projects a car's value curve from its condition base
// rate and asks the model to adjust it for market factors.
type DepreciationService struct {
	llm llm.Provider
}

func NewDepreciationService(provider llm.Provider) *DepreciationService {
	return &DepreciationService{llm: provider}
}

// CarInput is the raw car form shared by the depreciation predictor and the
// market insights feature. Make, model, year and price are required.
type CarInput struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         string `json:"year"`
	Price        string `json:"price"`
	Variant      string `json:"variant"`
	Mileage      string `json:"mileage"`
	Condition    string `json:"condition"`
	Location     string `json:"location"`
	FuelType     string `json:"fuel_type"`
	Transmission string `json:"transmission"`
}

// Normalize validates the car form and produces a typed profile.
func (in CarInput) Normalize() (model.CarProfile, error) {
	if err := normalize.Required(
		normalize.Field{Name: "Make", Value: in.Make},
		normalize.Field{Name: "Model", Value: in.Model},
		normalize.Field{Name: "Year", Value: in.Year},
		normalize.Field{Name: "Price", Value: in.Price},
	); err != nil {
		return model.CarProfile{}, err
	}

	year, yearErr := normalize.Year("Year", in.Year)
	price, priceErr := normalize.Currency("Price", in.Price)
	condition, condErr := normalize.Enum("Condition", in.Condition, model.Conditions)
	fuel, fuelErr := normalize.Enum("Fuel Type", in.FuelType, model.FuelTypes)
	transmission, transErr := normalize.Enum("Transmission", in.Transmission, model.Transmissions)

	if err := normalize.Merge(yearErr, priceErr, condErr, fuelErr, transErr); err != nil {
		return model.CarProfile{}, err
	}

	return model.CarProfile{
		Make:         in.Make,
		Model:        in.Model,
		Year:         year,
		Price:        price,
		Variant:      in.Variant,
		Location:     in.Location,
		FuelType:     fuel,
		Transmission: transmission,
		Mileage:      in.Mileage,
		Condition:    condition,
	}, nil
}

// Predict projects the baseline value curve and runs the depreciation
// prompt. The projection is attached to the result for charting.
func (s *DepreciationService) Predict(ctx context.Context, st *session.FeatureState, in CarInput) (session.Result, error) {
	car, err := in.Normalize()
	if err != nil {
		return session.Result{}, err
	}

	baseRate := finance.ConditionRate(car.Condition)
	series := finance.ProjectDepreciation(car.Price, baseRate, depreciationHorizonYears)

	msgs := prompt.Depreciation(car, baseRate, series)
	return run(ctx, s.llm, st, msgs, func(r *session.Result) {
		r.Projection = series
	}), nil
}
