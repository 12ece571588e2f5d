package service

import (
	"context"

	"github.com/priyansh/carmitra/internal/infrastructure/llm"
	"github.com/priyansh/carmitra/internal/model"
	"github.com/priyansh/carmitra/internal/normalize"
	"github.com/priyansh/carmitra/internal/prompt"
	"github.com/priyansh/carmitra/internal/session"
)

// BrowserService turns filter selections into a ranked shortlist via the
// search prompt. It also serves the static featured catalog.
type BrowserService struct {
	llm llm.Provider
}

func NewBrowserService(provider llm.Provider) *BrowserService {
	return &BrowserService{llm: provider}
}

// BrowserInput is the filter submission. Multi-selects left empty mean
// "Any"; the sort key must be one of the declared orders.
type BrowserInput struct {
	PriceMin     float64  `json:"price_min"`
	PriceMax     float64  `json:"price_max"`
	YearMin      int      `json:"year_min"`
	YearMax      int      `json:"year_max"`
	BodyTypes    []string `json:"body_types"`
	FuelTypes    []string `json:"fuel_types"`
	Transmission []string `json:"transmission"`
	Seating      []string `json:"seating"`
	Makes        []string `json:"makes"`
	SortBy       string   `json:"sort_by"`
}

// Normalize checks ranges and multi-select membership in one pass.
func (in BrowserInput) Normalize() (model.BrowserFilters, error) {
	var errs []error
	if in.PriceMin < 0 || in.PriceMax < in.PriceMin {
		errs = append(errs, &normalize.ValidationError{Fields: []normalize.FieldError{
			{Field: "Price Range", Reason: "minimum must be non-negative and not above maximum"},
		}})
	}
	if in.YearMax < in.YearMin {
		errs = append(errs, &normalize.ValidationError{Fields: []normalize.FieldError{
			{Field: "Year Range", Reason: "minimum must not be above maximum"},
		}})
	}
	for _, v := range in.BodyTypes {
		_, err := normalize.Enum("Body Types", v, model.BodyTypes)
		errs = append(errs, err)
	}
	for _, v := range in.FuelTypes {
		_, err := normalize.Enum("Fuel Types", v, model.FuelTypes)
		errs = append(errs, err)
	}
	for _, v := range in.Transmission {
		_, err := normalize.Enum("Transmission", v, model.Transmissions)
		errs = append(errs, err)
	}
	for _, v := range in.Seating {
		_, err := normalize.Enum("Seating Capacity", v, model.SeatingOptions)
		errs = append(errs, err)
	}
	for _, v := range in.Makes {
		_, err := normalize.Enum("Makes", v, model.Makes)
		errs = append(errs, err)
	}
	_, sortErr := normalize.Enum("Sort By", in.SortBy, model.SortOrderKeys())
	errs = append(errs, sortErr)

	if err := normalize.Merge(errs...); err != nil {
		return model.BrowserFilters{}, err
	}

	return model.BrowserFilters{
		PriceMin:     in.PriceMin,
		PriceMax:     in.PriceMax,
		YearMin:      in.YearMin,
		YearMax:      in.YearMax,
		BodyTypes:    in.BodyTypes,
		FuelTypes:    in.FuelTypes,
		Transmission: in.Transmission,
		Seating:      in.Seating,
		Makes:        in.Makes,
		SortBy:       in.SortBy,
	}, nil
}

// Search runs the car search prompt over the normalized filters.
func (s *BrowserService) Search(ctx context.Context, st *session.FeatureState, in BrowserInput) (session.Result, error) {
	filters, err := in.Normalize()
	if err != nil {
		return session.Result{}, err
	}

	msgs := prompt.Search(filters)
	return run(ctx, s.llm, st, msgs, nil), nil
}

// Featured returns the fixed landing catalog; no completion call involved.
func (s *BrowserService) Featured() []model.FeaturedCar {
	return model.FeaturedCars
}
