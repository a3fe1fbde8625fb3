package generator

import "errors"

// Callers branch on these with errors.Is; returned errors wrap them with the
// method that failed. Every one of them aborts the run.
var (
	// ErrInvalidDistribution: category shares are negative, name an unknown
	// category, or do not sum to 1.
	ErrInvalidDistribution = errors.New("generator: invalid category distribution")

	// ErrInvalidTrapCount: trap count is negative or exceeds the batch size.
	ErrInvalidTrapCount = errors.New("generator: invalid trap count")

	// ErrUnknownLocality: registry lookup miss.
	ErrUnknownLocality = errors.New("generator: unknown locality")

	// ErrInvalidCategory: synthesis requested for a category outside the closed set.
	ErrInvalidCategory = errors.New("generator: invalid category")

	// ErrInvalidTotal: the batch size is not positive.
	ErrInvalidTotal = errors.New("generator: invalid record count")

	// ErrInvalidLocality: the locality table is empty, has a duplicate name or
	// a non-positive price multiplier.
	ErrInvalidLocality = errors.New("generator: invalid locality table")

	// ErrInvalidCatalog: a developer tier or a category image list is empty.
	ErrInvalidCatalog = errors.New("generator: invalid catalog")

	// ErrNeedRandSource: no random source was configured.
	ErrNeedRandSource = errors.New("generator: rng is required")
)
