package generator

import "veridian-datagen/models"

// Jitter, pricing and legal constants shared by every category.
const (
	coordJitter   = 0.001 // degrees
	transitJitter = 0.2   // km

	trapDiscount = 0.8

	appreciationSpread = 10

	maintenancePerSqFt = 3.5

	trapRevokedChance    = 0.5
	trapLitigationMin    = 1
	trapLitigationMax    = 3
	approvedWeight       = 8
	revokedWeight        = 1
	litigationChance     = 0.1
	nonTrapLitigationMin = 1
	nonTrapLitigationMax = 2

	minPossessionDays = 30
	maxPossessionDays = 730

	coordPlaces   = 6
	transitPlaces = 2
	yieldPlaces   = 2
)

// categoryRule is the sizing and pricing recipe of one category.
type categoryRule struct {
	// Bedroom choices; empty for non-residential categories.
	bedrooms []int
	// Area range; per bedroom when bedrooms is set, otherwise total.
	areaMin, areaMax int
	// Price per square foot before the locality multiplier.
	rateMin, rateMax int
	// Rental yield range in percent; zero range means no yield.
	yieldMin, yieldMax float64
	// Probability of a leasehold title. 0 and 1 are fixed, no draw.
	leaseholdChance float64
	title           func(bedrooms, area int, locality string) string
}

var categoryRules = map[models.Category]categoryRule{
	models.Apartment: {
		bedrooms: []int{1, 2, 3, 4},
		areaMin:  380, areaMax: 450,
		rateMin: 8000, rateMax: 12000,
		yieldMin: 2.8, yieldMax: 3.8,
		leaseholdChance: 0.3,
		title:           apartmentTitle,
	},
	models.Villa: {
		bedrooms: []int{3, 4, 5},
		areaMin:  600, areaMax: 800,
		rateMin: 15000, rateMax: 25000,
		yieldMin: 2.0, yieldMax: 2.8,
		leaseholdChance: 0,
		title:           villaTitle,
	},
	models.Plot: {
		areaMin: 1000, areaMax: 5000,
		rateMin: 8000, rateMax: 15000,
		leaseholdChance: 0,
		title:           plotTitle,
	},
	models.Commercial: {
		areaMin: 300, areaMax: 2000,
		rateMin: 12000, rateMax: 20000,
		yieldMin: 5.0, yieldMax: 7.5,
		leaseholdChance: 1,
		title:           commercialTitle,
	},
}
