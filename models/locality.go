package models

// Locality is a named neighbourhood with the parameters listings in it are
// derived from.
type Locality struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	// Distance to the nearest metro station, km
	TransitDistanceBase float64 `json:"metro_distance_base"`
	// Scales the category base price
	PriceMultiplier float64 `json:"price_multiplier"`
	// Percent
	AppreciationBase int `json:"appreciation_base"`
}
