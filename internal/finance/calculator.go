// Package finance holds the pure numeric projections that ground every
// prompt: loan amortization, depreciation curves and ownership cost
// aggregation. Everything here is deterministic float arithmetic.
package finance

import (
	"fmt"
	"math"
)

// DomainError marks a numeric precondition violation (e.g. a zero-length
// loan term). It is recoverable: the submission fails, the process does not.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return "calculation error: " + e.Reason
}

// Condition base depreciation rates, annual.
var conditionRates = map[string]float64{
	"Excellent": 0.12,
	"Good":      0.15,
	"Fair":      0.18,
	"Poor":      0.25,
}

// ConditionRate returns the annual base depreciation rate for a condition.
// Unknown conditions fall back to the "Good" rate.
func ConditionRate(condition string) float64 {
	if r, ok := conditionRates[condition]; ok {
		return r
	}
	return conditionRates["Good"]
}

// Depreciation adjustment factors applied on top of the condition rate.
const (
	// Electric and hybrid drivetrains retain value better.
	AdjustmentEVHybrid = 0.9
	// Automatics shed value slightly faster in the used market.
	AdjustmentAutomatic = 1.1
)

// ComputeEMI returns the equated monthly installment for a loan.
// With a zero rate the EMI degenerates to principal/termMonths exactly.
func ComputeEMI(principal, annualRatePercent float64, termMonths int) (float64, error) {
	if termMonths <= 0 {
		return 0, &DomainError{Reason: fmt.Sprintf("loan term must be positive, got %d", termMonths)}
	}
	if principal < 0 {
		return 0, &DomainError{Reason: fmt.Sprintf("principal must not be negative, got %.2f", principal)}
	}
	if annualRatePercent < 0 {
		return 0, &DomainError{Reason: fmt.Sprintf("interest rate must not be negative, got %.2f", annualRatePercent)}
	}

	r := annualRatePercent / 12 / 100
	n := float64(termMonths)
	if r == 0 {
		return principal / n, nil
	}
	pow := math.Pow(1+r, n)
	return principal * r * pow / (pow - 1), nil
}

// TotalCostOfOwnership aggregates loan payments and running costs over the
// loan term, net of the expected resale value. Annual costs are prorated by
// termMonths/12; resaleValue of 0 means "not expected to sell".
func TotalCostOfOwnership(emi float64, termMonths int, insuranceAnnual, maintenanceAnnual, fuelMonthly, resaleValue float64) float64 {
	years := float64(termMonths) / 12
	total := emi*float64(termMonths) +
		insuranceAnnual*years +
		maintenanceAnnual*years +
		fuelMonthly*float64(termMonths)
	return total - resaleValue
}

// ProjectionSeries is a value-per-year curve. Index 0 is the starting value.
type ProjectionSeries []ProjectionPoint

type ProjectionPoint struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// Values flattens the series for callers that only need the numbers.
func (s ProjectionSeries) Values() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Value
	}
	return out
}

// ProjectDepreciation compounds a fixed annual decay over horizonYears.
// The effective rate is conditionRate scaled by the product of the
// adjustment factors; each successive value is previous * (1 - rate).
func ProjectDepreciation(startValue, conditionRate float64, horizonYears int, adjustments ...float64) ProjectionSeries {
	rate := conditionRate
	for _, a := range adjustments {
		rate *= a
	}

	series := make(ProjectionSeries, 0, horizonYears+1)
	series = append(series, ProjectionPoint{Year: 0, Value: startValue})
	for i := 1; i <= horizonYears; i++ {
		prev := series[len(series)-1].Value
		series = append(series, ProjectionPoint{Year: i, Value: prev * (1 - rate)})
	}
	return series
}

// CostBreakdown allocates a basis price into ownership cost categories.
// Order is fixed for display and prompt serialization.
type CostBreakdown struct {
	Depreciation float64 `json:"depreciation"`
	Maintenance  float64 `json:"maintenance"`
	Fuel         float64 `json:"fuel"`
	Insurance    float64 `json:"insurance"`
	Other        float64 `json:"other"`
}

// BreakdownCosts builds the ownership cost breakdown: depreciation is the
// projected value loss, the remaining categories are flat percentages of the
// basis price. The categories deliberately do not sum back to the basis
// price; that matches the inherited allocation and must not be "fixed" here.
func BreakdownCosts(startValue, endValue, basisPrice float64) CostBreakdown {
	return CostBreakdown{
		Depreciation: startValue - endValue,
		Maintenance:  basisPrice * 0.15,
		Fuel:         basisPrice * 0.25,
		Insurance:    basisPrice * 0.10,
		Other:        basisPrice * 0.05,
	}
}

// DealMetrics are the derived figures embedded in the financial advisor
// prompt so the model reasons over our numbers, not its own arithmetic.
type DealMetrics struct {
	EMI           float64 `json:"emi"`
	TotalPayment  float64 `json:"total_payment"`
	TotalInterest float64 `json:"total_interest"`
	TCO           float64 `json:"tco"`
}

// ComputeDealMetrics derives EMI, total payment, total interest and TCO for
// a normalized set of financial inputs.
func ComputeDealMetrics(principal, annualRatePercent float64, termMonths int, insuranceAnnual, maintenanceAnnual, fuelMonthly, resaleValue float64) (DealMetrics, error) {
	emi, err := ComputeEMI(principal, annualRatePercent, termMonths)
	if err != nil {
		return DealMetrics{}, err
	}
	totalPayment := emi * float64(termMonths)
	return DealMetrics{
		EMI:           emi,
		TotalPayment:  totalPayment,
		TotalInterest: totalPayment - principal,
		TCO:           TotalCostOfOwnership(emi, termMonths, insuranceAnnual, maintenanceAnnual, fuelMonthly, resaleValue),
	}, nil
}
