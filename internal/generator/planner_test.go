package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veridian-datagen/models"
)

func TestPlan_DefaultSplit(t *testing.T) {
	alloc, err := Plan(1000, testDistribution())
	require.NoError(t, err)

	assert.Equal(t, 500, alloc[models.Apartment])
	assert.Equal(t, 150, alloc[models.Villa])
	assert.Equal(t, 200, alloc[models.Plot])
	assert.Equal(t, 150, alloc[models.Commercial])
	assert.Equal(t, 1000, alloc.Total())
	assert.Equal(t, "Apartment=500 Villa=150 Plot=200 Commercial=150", alloc.String())
}

func TestPlan_LastCategoryAbsorbsRounding(t *testing.T) {
	// 3.5, 1.05 and 1.4 floor to 3, 1 and 1; Commercial takes the other 2.
	alloc, err := Plan(7, testDistribution())
	require.NoError(t, err)

	assert.Equal(t, 3, alloc[models.Apartment])
	assert.Equal(t, 1, alloc[models.Villa])
	assert.Equal(t, 1, alloc[models.Plot])
	assert.Equal(t, 2, alloc[models.Commercial])
	assert.Equal(t, 7, alloc.Total())
}

func TestPlan_MissingCategoriesGetZero(t *testing.T) {
	alloc, err := Plan(10, models.Distribution{models.Villa: 1})
	require.NoError(t, err)

	assert.Equal(t, 0, alloc[models.Apartment])
	assert.Equal(t, 10, alloc[models.Villa])
	assert.Equal(t, 0, alloc[models.Plot])
	assert.Equal(t, 0, alloc[models.Commercial])
}

func TestPlan_SumAlwaysMatches(t *testing.T) {
	for total := 1; total <= 257; total++ {
		alloc, err := Plan(total, testDistribution())
		require.NoError(t, err)
		require.Equal(t, total, alloc.Total(), "total %d", total)
		for _, c := range models.Categories {
			require.GreaterOrEqual(t, alloc[c], 0)
		}
	}
}

func TestPlan_Idempotent(t *testing.T) {
	a, err := Plan(1234, testDistribution())
	require.NoError(t, err)
	b, err := Plan(1234, testDistribution())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlan_Errors(t *testing.T) {
	_, err := Plan(0, testDistribution())
	assert.True(t, errors.Is(err, ErrInvalidTotal), "got %v", err)

	bad := map[string]models.Distribution{
		"sum below one": {models.Apartment: 0.5, models.Villa: 0.3},
		"sum above one": {models.Apartment: 0.9, models.Villa: 0.3},
		"negative":      {models.Apartment: 1.2, models.Villa: -0.2},
		"unknown":       {models.Apartment: 0.5, models.Category("Farmhouse"): 0.5},
		"empty":         {},
	}
	for name, d := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := Plan(100, d)
			assert.True(t, errors.Is(err, ErrInvalidDistribution), "got %v", err)
			assert.True(t, errors.Is(ValidateDistribution(d), ErrInvalidDistribution))
		})
	}
}
