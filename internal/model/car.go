package model

// CarProfile is a fully normalized car description. Instances are only
// produced by the normalize package, so downstream code can assume
// Price > 0, Year is plausible and the enum fields hold declared values.
type CarProfile struct {
	Make         string  `json:"make"`
	Model        string  `json:"model"`
	Year         int     `json:"year"`
	Price        float64 `json:"price"`
	Variant      string  `json:"variant"`
	Location     string  `json:"location"`
	FuelType     string  `json:"fuel_type"`
	Transmission string  `json:"transmission"`
	Mileage      string  `json:"mileage"` // odometer km, free text, optional
	Condition    string  `json:"condition"`
}

// FinancialInputs are the normalized loan/ownership parameters for the
// financial advisor. Principal is the financed amount (price minus down
// payment); the raw price and down payment are kept for the prompt.
type FinancialInputs struct {
	CarPrice          float64  `json:"car_price"`
	DownPayment       float64  `json:"down_payment"`
	Principal         float64  `json:"principal"`
	TermMonths        int      `json:"term_months"`
	AnnualRatePercent float64  `json:"annual_rate_percent"`
	InsuranceAnnual   float64  `json:"insurance_annual"`
	MaintenanceAnnual float64  `json:"maintenance_annual"`
	FuelMonthly       float64  `json:"fuel_monthly"`
	ResaleValue       float64  `json:"resale_value"`
	AdditionalCosts   []string `json:"additional_costs"` // free-text lines, order kept
}

// Preferences is the assistant's sticky user profile, recorded into the chat
// history as a synthetic user turn whenever it is updated.
type Preferences struct {
	Budget         string `json:"budget"`
	PrimaryUse     string `json:"primary_use"`
	FamilySize     string `json:"family_size"`
	FuelPreference string `json:"fuel_preference"`
	Transmission   string `json:"transmission"`
	Location       string `json:"location"`
}

// BrowserFilters are the car search criteria. Empty slices mean "Any".
type BrowserFilters struct {
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
