package model

// FeaturedCar is a catalog entry for the landing grid. The list below is a
// small fixed selection of popular Indian-market models; no LLM call is
// involved in serving it.
type FeaturedCar struct {
	Make       string `json:"make"`
	Model      string `json:"model"`
	Variant    string `json:"variant"`
	Year       int    `json:"year"`
	PriceRange string `json:"price_range"`
	FuelType   string `json:"fuel_type"`
	BodyType   string `json:"body_type"`
}

var FeaturedCars = []FeaturedCar{
	{Make: "Hyundai", Model: "Creta", Variant: "SX(O)", Year: 2023, PriceRange: "₹14.5-16.5 lakhs", FuelType: "Petrol", BodyType: "SUV"},
	{Make: "Toyota", Model: "Urban Cruiser", Variant: "Hyryder", Year: 2023, PriceRange: "₹13.5-15.5 lakhs", FuelType: "Hybrid", BodyType: "SUV"},
	{Make: "Honda", Model: "Elevate", Variant: "ZX", Year: 2023, PriceRange: "₹14.8-16.8 lakhs", FuelType: "Petrol", BodyType: "SUV"},
	{Make: "Maruti Suzuki", Model: "Baleno", Variant: "Alpha", Year: 2023, PriceRange: "₹6.6-9.9 lakhs", FuelType: "Petrol", BodyType: "Hatchback"},
	{Make: "Tata", Model: "Nexon EV", Variant: "Empowered+", Year: 2023, PriceRange: "₹14.7-19.9 lakhs", FuelType: "Electric", BodyType: "SUV"},
	{Make: "Mahindra", Model: "XUV700", Variant: "AX7", Year: 2023, PriceRange: "₹13.9-26.9 lakhs", FuelType: "Diesel", BodyType: "SUV"},
}
