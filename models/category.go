package models

// Category is the property type of a listing. The set is closed.
type Category string

const (
	Apartment  Category = "Apartment"
	Villa      Category = "Villa"
	Plot       Category = "Plot"
	Commercial Category = "Commercial"
)

// Categories lists every category in declaration order. Generation walks
// categories in this order and the last one absorbs rounding in the plan.
var Categories = []Category{Apartment, Villa, Plot, Commercial}

// IsValid checks if a category is part of the closed set.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// IsResidential is true for categories that have bedrooms.
func (c Category) IsResidential() bool {
	return c == Apartment || c == Villa
}

// Label returns a human-readable plural label for reports.
func (c Category) Label() string {
	switch c {
	case Apartment:
		return "Apartments"
	case Villa:
		return "Villas"
	case Plot:
		return "Plots"
	case Commercial:
		return "Commercial"
	default:
		return string(c)
	}
}

// Distribution maps each category to its target share of the batch.
type Distribution map[Category]float64
