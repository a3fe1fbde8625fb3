package config

import (
	"veridian-datagen/internal/generator"
	"veridian-datagen/models"
)

// DefaultLocalities returns the Pune locality table in registry order.
func DefaultLocalities() []models.Locality {
	return []models.Locality{
		{Name: "Baner", Lat: 18.5590, Lng: 73.7868, TransitDistanceBase: 0.8, PriceMultiplier: 1.3, AppreciationBase: 55},
		{Name: "Hinjewadi", Lat: 18.5913, Lng: 73.7389, TransitDistanceBase: 3.2, PriceMultiplier: 1.1, AppreciationBase: 48},
		{Name: "Wagholi", Lat: 18.5769, Lng: 73.9804, TransitDistanceBase: 5.5, PriceMultiplier: 0.7, AppreciationBase: 35},
		{Name: "Kothrud", Lat: 18.5074, Lng: 73.8077, TransitDistanceBase: 2.1, PriceMultiplier: 1.25, AppreciationBase: 42},
		{Name: "Viman Nagar", Lat: 18.5675, Lng: 73.9143, TransitDistanceBase: 1.5, PriceMultiplier: 1.35, AppreciationBase: 52},
		{Name: "Koregaon Park", Lat: 18.5362, Lng: 73.8961, TransitDistanceBase: 2.8, PriceMultiplier: 1.5, AppreciationBase: 48},
		{Name: "Magarpatta", Lat: 18.5157, Lng: 73.9290, TransitDistanceBase: 3.5, PriceMultiplier: 1.2, AppreciationBase: 45},
		{Name: "Aundh", Lat: 18.5590, Lng: 73.8078, TransitDistanceBase: 1.8, PriceMultiplier: 1.28, AppreciationBase: 50},
	}
}

// DefaultDistribution returns the 50/15/20/15 category split.
func DefaultDistribution() models.Distribution {
	return models.Distribution{
		models.Apartment:  0.50,
		models.Villa:      0.15,
		models.Plot:       0.20,
		models.Commercial: 0.15,
	}
}

// DefaultCatalog returns the developer and image pools.
func DefaultCatalog() generator.Catalog {
	return generator.Catalog{
		TierOneDevelopers: []string{
			"Godrej Properties",
			"Lodha Group",
			"Tata Housing",
			"Mahindra Lifespaces",
			"Prestige Group",
		},
		TierTwoDevelopers: []string{
			"Kumar Properties",
			"Kolte-Patil",
			"Puravankara",
			"Shriram Properties",
		},
		UnreliableDevelopers: []string{
			"Unknown Promoters",
			"VK Builders",
			"Local Developer",
			"City Constructions",
		},
		Images: map[models.Category][]string{
			models.Apartment: {
				"https://images.unsplash.com/photo-1545324418-cc1a3fa10c00?w=1200&q=80",
				"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1200&q=80",
				"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=1200&q=80",
			},
			models.Villa: {
				"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=1200&q=80",
				"https://images.unsplash.com/photo-1600585154340-be6161a56a0c?w=1200&q=80",
				"https://images.unsplash.com/photo-1600566753086-00f18fb6b3ea?w=1200&q=80",
			},
			models.Plot: {
				"https://images.unsplash.com/photo-1500382017468-9049fed747ef?w=1200&q=80",
			},
			models.Commercial: {
				"https://images.unsplash.com/photo-1497366216548-37526070297c?w=1200&q=80",
			},
		},
	}
}
