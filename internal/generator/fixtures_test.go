package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"veridian-datagen/models"
)

var fixedNow = time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func testLocalities() []models.Locality {
	return []models.Locality{
		{Name: "Baner", Lat: 18.5590, Lng: 73.7868, TransitDistanceBase: 0.8, PriceMultiplier: 1.3, AppreciationBase: 55},
		{Name: "Wagholi", Lat: 18.5769, Lng: 73.9804, TransitDistanceBase: 5.5, PriceMultiplier: 0.7, AppreciationBase: 35},
		{Name: "Kothrud", Lat: 18.5074, Lng: 73.8077, TransitDistanceBase: 0.1, PriceMultiplier: 1.25, AppreciationBase: 5},
	}
}

func testCatalog() Catalog {
	return Catalog{
		TierOneDevelopers:    []string{"Godrej Properties", "Tata Housing"},
		TierTwoDevelopers:    []string{"Kolte-Patil"},
		UnreliableDevelopers: []string{"Unknown Promoters", "VK Builders"},
		Images: map[models.Category][]string{
			models.Apartment:  {"https://img.example/apt-1", "https://img.example/apt-2"},
			models.Villa:      {"https://img.example/villa-1"},
			models.Plot:       {"https://img.example/plot-1"},
			models.Commercial: {"https://img.example/shop-1"},
		},
	}
}

func testDistribution() models.Distribution {
	return models.Distribution{
		models.Apartment:  0.50,
		models.Villa:      0.15,
		models.Plot:       0.20,
		models.Commercial: 0.15,
	}
}

func newTestSynthesizer(t *testing.T, seed int64, locs []models.Locality) *Synthesizer {
	t.Helper()
	reg, err := NewRegistry(locs)
	require.NoError(t, err)
	s, err := NewSynthesizer(reg, testCatalog(), WithSeed(seed), WithClock(fixedClock))
	require.NoError(t, err)
	return s
}
