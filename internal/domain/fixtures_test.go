package domain

import (
	"time"

	"veridian-datagen/models"
)

var sampleTime = time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)

// sampleDataset builds n records cycling through the categories; every
// fifth record is a revoked trap.
func sampleDataset(n int) models.Dataset {
	locs := []models.Locality{
		{Name: "Baner", Lat: 18.5590, Lng: 73.7868, TransitDistanceBase: 0.8, PriceMultiplier: 1.3, AppreciationBase: 55},
		{Name: "Koregaon Park", Lat: 18.5362, Lng: 73.8961, TransitDistanceBase: 2.8, PriceMultiplier: 1.5, AppreciationBase: 48},
	}
	records := make([]models.PropertyRecord, n)
	for i := range records {
		c := models.Categories[i%len(models.Categories)]
		loc := locs[i%len(locs)]
		rec := models.PropertyRecord{
			ID:              models.FormatID(i + 1),
			Title:           "Listing in " + loc.Name,
			Developer:       models.NoDeveloper,
			Locality:        loc.Name,
			Lat:             loc.Lat + 0.000123,
			Lng:             loc.Lng - 0.000456,
			Price:           int64(8_500_000 + i*1000),
			CarpetArea:      900 + i,
			Category:        c,
			LandTitle:       models.Freehold,
			RentalYield:     3.25,
			Appreciation:    loc.AppreciationBase,
			TransitDistance: 1.75,
			ApprovalStatus:  models.Approved,
			PossessionDate:  "2027-03-01",
			Maintenance:     3150,
			ImageURL:        "https://images.example/" + string(c),
		}
		if c.IsResidential() {
			rec.Bedrooms = 2
			rec.Developer = "Godrej Properties"
		}
		if i%5 == 0 {
			rec.Trap = true
			rec.ApprovalStatus = models.Revoked
		}
		records[i] = rec
	}
	return models.Dataset{
		RunID:       "5b2f0d5e-8d3c-4a57-9f7e-0c1d2e3f4a5b",
		GeneratedAt: sampleTime,
		Localities:  locs,
		Records:     records,
	}
}
