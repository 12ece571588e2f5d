package model

import "errors"

// MaxComparisonModels caps how many cars one comparison may hold.
const MaxComparisonModels = 5

// ErrComparisonFull is returned by Add when the set already holds the
// maximum number of models. The set is left untouched.
var ErrComparisonFull = errors.New("maximum 5 models can be compared")

// ErrComparisonIndex is returned by Remove for an out-of-range index.
var ErrComparisonIndex = errors.New("no model at that position")

// ComparisonModel is one entry of a comparison. Mileage here is the expected
// annual mileage, not an odometer reading.
type ComparisonModel struct {
	Make    string  `json:"make"`
	Model   string  `json:"model"`
	Year    int     `json:"year"`
	Price   float64 `json:"price"`
	Variant string  `json:"variant"`
	Mileage string  `json:"mileage"`
}

// ComparisonSet is an ordered collection of up to MaxComparisonModels cars.
// Insertion order is meaningful: it fixes both display order and the
// "Model N" numbering inside the comparison prompt.
type ComparisonSet struct {
	models []ComparisonModel
}

// Add appends a model, rejecting (not truncating) past capacity.
func (s *ComparisonSet) Add(m ComparisonModel) error {
	if len(s.models) >= MaxComparisonModels {
		return ErrComparisonFull
	}
	s.models = append(s.models, m)
	return nil
}

// Remove deletes the model at position i, preserving order of the rest.
func (s *ComparisonSet) Remove(i int) error {
	if i < 0 || i >= len(s.models) {
		return ErrComparisonIndex
	}
	s.models = append(s.models[:i], s.models[i+1:]...)
	return nil
}

func (s *ComparisonSet) Len() int { return len(s.models) }

// Models returns a copied snapshot so callers never hold a live reference.
func (s *ComparisonSet) Models() []ComparisonModel {
	out := make([]ComparisonModel, len(s.models))
	copy(out, s.models)
	return out
}
