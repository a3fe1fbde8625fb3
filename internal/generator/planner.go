package generator

import (
	"fmt"
	"math"
	"strings"

	"veridian-datagen/models"
)

// distributionTolerance is how far the shares may drift from summing to 1.
const distributionTolerance = 1e-9

// Allocation is the planned record count per category.
type Allocation map[models.Category]int

// Total sums the planned counts.
func (a Allocation) Total() int {
	n := 0
	for _, c := range a {
		n += c
	}
	return n
}

// String renders the counts in declaration order, e.g. "Apartment=500 Villa=150".
func (a Allocation) String() string {
	parts := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		parts = append(parts, fmt.Sprintf("%s=%d", c, a[c]))
	}
	return strings.Join(parts, " ")
}

// ValidateDistribution checks that every key is a known category, no share is
// negative and the shares sum to 1. Categories missing from d count as 0.
func ValidateDistribution(d models.Distribution) error {
	for c, f := range d {
		if !c.IsValid() {
			return fmt.Errorf("ValidateDistribution: unknown category %q: %w", c, ErrInvalidDistribution)
		}
		if f < 0 || math.IsNaN(f) {
			return fmt.Errorf("ValidateDistribution: %s share %g: %w", c, f, ErrInvalidDistribution)
		}
	}

	sum := 0.0
	for _, c := range models.Categories {
		sum += d[c]
	}
	if math.Abs(sum-1) > distributionTolerance {
		return fmt.Errorf("ValidateDistribution: shares sum to %g: %w", sum, ErrInvalidDistribution)
	}
	return nil
}

// Plan splits total records across categories. Every category except the last
// in declaration order gets floor(total*share); the last one takes whatever is
// left so the counts always add up to total.
func Plan(total int, d models.Distribution) (Allocation, error) {
	if total <= 0 {
		return nil, fmt.Errorf("Plan: total %d: %w", total, ErrInvalidTotal)
	}
	if err := ValidateDistribution(d); err != nil {
		return nil, fmt.Errorf("Plan: %w", err)
	}

	last := len(models.Categories) - 1
	alloc := make(Allocation, len(models.Categories))
	assigned := 0
	for _, c := range models.Categories[:last] {
		n := int(math.Floor(float64(total) * d[c]))
		alloc[c] = n
		assigned += n
	}

	rest := total - assigned
	if rest < 0 {
		return nil, fmt.Errorf("Plan: shares overshoot total %d by %d: %w", total, -rest, ErrInvalidDistribution)
	}
	alloc[models.Categories[last]] = rest
	return alloc, nil
}
