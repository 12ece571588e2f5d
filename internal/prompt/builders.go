package prompt

import (
	"fmt"
	"strings"

	"github.com/priyansh/carmitra/internal/finance"
	"github.com/priyansh/carmitra/internal/model"
)

// PolicyContext is the optional surrounding context of a policy scan.
// Empty fields are omitted from the prompt entirely.
type PolicyContext struct {
	PolicyType    string
	DealerName    string
	CarModel      string
	PurchaseType  string
	FinancingType string
}

// PolicyScan builds the policy scanner conversation: context block first,
// then the pasted policy text.
func PolicyScan(ctx PolicyContext, policyText string) []model.ChatMessage {
	pairs := []struct{ key, value string }{
		{"policy_type", ctx.PolicyType},
		{"dealer_name", ctx.DealerName},
		{"car_model", ctx.CarModel},
		{"purchase_type", ctx.PurchaseType},
		{"financing_type", ctx.FinancingType},
	}
	var lines []string
	for _, p := range pairs {
		if p.value != "" {
			lines = append(lines, p.key+": "+p.value)
		}
	}
	content := fmt.Sprintf("Context:\n%s\n\nPolicy Text:\n%s", strings.Join(lines, "\n"), policyText)
	return []model.ChatMessage{model.System(policySystem), model.User(content)}
}

// FinancialAnalysis builds the financial advisor conversation. The deal
// metrics are computed by the caller and embedded verbatim so the EMI the
// model sees is exactly the EMI we computed.
func FinancialAnalysis(in model.FinancialInputs, m finance.DealMetrics) []model.ChatMessage {
	additional := "None"
	if len(in.AdditionalCosts) > 0 {
		additional = strings.Join(in.AdditionalCosts, "\n")
	}
	summary := fmt.Sprintf(
		"Car Price: ₹%s\n"+
			"Down Payment: ₹%s\n"+
			"Loan Term: %d months\n"+
			"Interest Rate: %v%% per annum\n"+
			"EMI: ₹%s per month\n"+
			"Total Payment (Principal + Interest): ₹%s\n"+
			"Total Interest Paid: ₹%s\n"+
			"Insurance: ₹%s per year\n"+
			"Maintenance: ₹%s per year\n"+
			"Fuel: ₹%s per month\n"+
			"Expected Resale Value: ₹%s\n"+
			"Additional Costs:\n%s\n"+
			"Total Cost of Ownership (TCO): ₹%s",
		amount0(in.CarPrice),
		amount0(in.DownPayment),
		in.TermMonths,
		in.AnnualRatePercent,
		amount(m.EMI),
		amount(m.TotalPayment),
		amount(m.TotalInterest),
		amountOrNA(in.InsuranceAnnual),
		amountOrNA(in.MaintenanceAnnual),
		amountOrNA(in.FuelMonthly),
		amountOrNA(in.ResaleValue),
		additional,
		amount(m.TCO),
	)
	return []model.ChatMessage{model.System(financeSystem), model.User(summary)}
}

// Depreciation builds the depreciation predictor conversation, embedding the
// base rate and the year-by-year baseline projection.
func Depreciation(car model.CarProfile, baseRate float64, series finance.ProjectionSeries) []model.ChatMessage {
	points := make([]string, len(series))
	for i, p := range series {
		points[i] = fmt.Sprintf("Year %d: ₹%s", p.Year, amount0(p.Value))
	}
	summary := fmt.Sprintf(
		"Make: %s\n"+
			"Model: %s\n"+
			"Year: %d\n"+
			"Variant: %s\n"+
			"Purchase Price: ₹%s\n"+
			"Current Mileage: %s\n"+
			"Condition: %s\n"+
			"Location: %s\n"+
			"Fuel Type: %s\n"+
			"Transmission: %s\n"+
			"Base Depreciation Rate: %.1f%% per year\n"+
			"Year-by-year value projection: %s",
		car.Make, car.Model, car.Year, car.Variant,
		amount0(car.Price),
		orNA(car.Mileage),
		car.Condition, car.Location, car.FuelType, car.Transmission,
		baseRate*100,
		strings.Join(points, ", "),
	)
	return []model.ChatMessage{model.System(depreciationSystem), model.User(summary)}
}

// Comparison serializes the comparison set as numbered model blocks in
// insertion order.
func Comparison(set []model.ComparisonModel) []model.ChatMessage {
	blocks := make([]string, len(set))
	for i, car := range set {
		blocks[i] = fmt.Sprintf(
			"Model %d:\n"+
				"Make: %s\n"+
				"Model: %s\n"+
				"Year: %d\n"+
				"Price: ₹%s\n"+
				"Variant: %s\n"+
				"Expected Annual Mileage: %s",
			i+1, car.Make, car.Model, car.Year, amount0(car.Price), car.Variant, orNA(car.Mileage),
		)
	}
	return []model.ChatMessage{model.System(comparisonSystem), model.User(strings.Join(blocks, "\n\n"))}
}

// Search serializes the browser filters; empty multi-selects read "Any".
func Search(f model.BrowserFilters) []model.ChatMessage {
	content := fmt.Sprintf(
		"Price Range: ₹%s - ₹%s\n"+
			"Year Range: %d - %d\n"+
			"Body Types: %s\n"+
			"Fuel Types: %s\n"+
			"Transmission: %s\n"+
			"Seating Capacity: %s\n"+
			"Makes: %s\n"+
			"Sort By: %s",
		amount0(f.PriceMin), amount0(f.PriceMax),
		f.YearMin, f.YearMax,
		joinOrAny(f.BodyTypes),
		joinOrAny(f.FuelTypes),
		joinOrAny(f.Transmission),
		joinOrAny(f.Seating),
		joinOrAny(f.Makes),
		model.SortOrders[f.SortBy],
	)
	return []model.ChatMessage{model.System(searchSystem), model.User(content)}
}

// ContractContext is the optional surrounding context of a contract analysis.
type ContractContext struct {
	ContractType      string
	DealerName        string
	CarDetails        string
	AdditionalContext string
}

// contractTypeLabel turns "purchase_agreement" into "Purchase Agreement".
func contractTypeLabel(t string) string {
	words := strings.Split(t, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Contract builds the fine print analyzer conversation.
func Contract(ctx ContractContext, contractText string) []model.ChatMessage {
	pairs := []struct{ key, value string }{
		{"Contract Type", contractTypeLabel(ctx.ContractType)},
		{"Dealer Name", ctx.DealerName},
		{"Car Details", ctx.CarDetails},
		{"Additional Context", ctx.AdditionalContext},
	}
	var lines []string
	for _, p := range pairs {
		if p.value != "" {
			lines = append(lines, p.key+": "+p.value)
		}
	}
	content := fmt.Sprintf("Context:\n%s\n\nContract Text:\n%s", strings.Join(lines, "\n"), contractText)
	return []model.ChatMessage{model.System(contractSystem), model.User(content)}
}

// Insights builds the market insights conversation from a car profile alone.
func Insights(car model.CarProfile) []model.ChatMessage {
	summary := fmt.Sprintf(
		"Make: %s\n"+
			"Model: %s\n"+
			"Year: %d\n"+
			"Variant: %s\n"+
			"Price: ₹%s\n"+
			"Location: %s\n"+
			"Fuel Type: %s\n"+
			"Transmission: %s\n"+
			"Mileage: %s\n"+
			"Condition: %s",
		car.Make, car.Model, car.Year, car.Variant,
		amount0(car.Price),
		car.Location, car.FuelType, car.Transmission,
		orNA(car.Mileage), car.Condition,
	)
	return []model.ChatMessage{model.System(insightsSystem), model.User(summary)}
}

// AssistantSeed starts a fresh assistant conversation: the text-mode system
// prompt and nothing else.
func AssistantSeed() []model.ChatMessage {
	return []model.ChatMessage{model.System(assistantSystem)}
}

// AssistantVoiceSystem is the system message substituted for TTS-bound
// turns. History stays shared between the two modes; only the instruction
// at index 0 is swapped per call.
func AssistantVoiceSystem() model.ChatMessage {
	return model.System(assistantVoiceSystem)
}

// PreferenceTurn encodes a preference update as a synthetic user turn. It is
// appended to the history so later turns retain the context; no completion
// call is made for it.
func PreferenceTurn(p model.Preferences) model.ChatMessage {
	text := fmt.Sprintf(
		"User Preferences:\n"+
			"Budget: ₹%s\n"+
			"Primary Use: %s\n"+
			"Family Size: %s\n"+
			"Fuel Preference: %s\n"+
			"Transmission: %s\n"+
			"Location: %s",
		p.Budget, p.PrimaryUse, p.FamilySize, p.FuelPreference, p.Transmission, p.Location,
	)
	return model.User("Please consider these preferences for future recommendations: " + text)
}
