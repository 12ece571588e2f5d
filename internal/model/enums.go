package model

// Enumerated value sets shared by the forms and the prompt builders. Each
// list is the single source of truth for both validation and serialization,
// so the values here must stay in sync with nothing else.

var FuelTypes = []string{"Petrol", "Diesel", "Electric", "Hybrid", "CNG"}

var Transmissions = []string{"Manual", "Automatic", "CVT", "DCT"}

var Conditions = []string{"Excellent", "Good", "Fair", "Poor"}

var BodyTypes = []string{"Sedan", "SUV", "Hatchback", "Crossover", "MPV", "Coupe", "Convertible"}

var SeatingOptions = []string{"2", "4", "5", "6", "7", "8+"}

var Makes = []string{
	"Maruti Suzuki", "Hyundai", "Tata", "Mahindra", "Toyota",
	"Honda", "Kia", "Volkswagen", "Skoda", "MG", "Others",
}

var PurchaseTypes = []string{"New", "Used", "Certified Pre-owned"}

var FinancingTypes = []string{"Cash", "Loan", "Lease"}

var PolicyTypes = []string{
	"dealer_policy", "warranty_terms", "financing_terms",
	"insurance_terms", "service_terms",
}

var ContractTypes = []string{
	"purchase_agreement", "warranty_terms", "financing_agreement",
	"insurance_policy", "service_agreement", "lease_agreement",
}

var PrimaryUses = []string{"City Commute", "Highway Travel", "Family Car", "Luxury", "Off-road", "Business"}

var FamilySizes = []string{"1-2", "3-4", "5-6", "7+"}

// Preference enums allow an explicit "No Preference" on top of the base sets.
var FuelPreferences = append(append([]string{}, FuelTypes...), "No Preference")

var TransmissionPreferences = []string{"Manual", "Automatic", "No Preference"}

// SortOrders maps the stable sort keys to their display labels. The label is
// what goes into the search prompt, so the model sees human wording.
var SortOrders = map[string]string{
	"price_low_to_high": "Price: Low to High",
	"price_high_to_low": "Price: High to Low",
	"year_new_to_old":   "Year: Newest First",
	"year_old_to_new":   "Year: Oldest First",
}

// SortOrderKeys returns the sort keys in their fixed display order.
func SortOrderKeys() []string {
	return []string{"price_low_to_high", "price_high_to_low", "year_new_to_old", "year_old_to_new"}
}
