package models

import "fmt"

// LandTitle is the tenure under which the land is held.
type LandTitle string

const (
	Freehold  LandTitle = "Freehold"
	Leasehold LandTitle = "Leasehold"
)

// ApprovalStatus is the regulatory (RERA) registration state of a project.
type ApprovalStatus string

const (
	Approved ApprovalStatus = "Approved"
	Revoked  ApprovalStatus = "Revoked"
)

// NoDeveloper marks listings that are not sold by a developer (plots, shops).
const NoDeveloper = "N/A"

// PossessionDateLayout is the calendar format of PropertyRecord.PossessionDate.
const PossessionDateLayout = "2006-01-02"

// PropertyRecord is one synthesized listing. The json keys match the files
// the front end reads; Trap is the ground-truth label and stays in memory.
type PropertyRecord struct {
	ID              string         `json:"id" dynamodbav:"id"`
	Title           string         `json:"title" dynamodbav:"title"`
	Developer       string         `json:"developer" dynamodbav:"developer"`
	Locality        string         `json:"locality" dynamodbav:"locality"`
	Lat             float64        `json:"lat" dynamodbav:"lat"`
	Lng             float64        `json:"lng" dynamodbav:"lng"`
	Price           int64          `json:"price" dynamodbav:"price"`
	CarpetArea      int            `json:"carpet_area" dynamodbav:"carpet_area"`
	Bedrooms        int            `json:"bedrooms" dynamodbav:"bedrooms"`
	Category        Category       `json:"property_type" dynamodbav:"property_type"`
	LandTitle       LandTitle      `json:"land_title" dynamodbav:"land_title"`
	RentalYield     float64        `json:"rental_yield" dynamodbav:"rental_yield"`
	Appreciation    int            `json:"appreciation" dynamodbav:"appreciation"`
	TransitDistance float64        `json:"distance_metro" dynamodbav:"distance_metro"`
	ApprovalStatus  ApprovalStatus `json:"rera_status" dynamodbav:"rera_status"`
	Litigation      int            `json:"litigation" dynamodbav:"litigation"`
	PossessionDate  string         `json:"possession_date" dynamodbav:"possession_date"`
	Maintenance     int            `json:"maintenance" dynamodbav:"maintenance"`
	ImageURL        string         `json:"image_url" dynamodbav:"image_url"`

	Trap bool `json:"-" dynamodbav:"-"`
}

// IsRisky reports whether the listing carries a legal red flag: a revoked
// approval or at least one pending litigation.
func (p PropertyRecord) IsRisky() bool {
	return p.ApprovalStatus == Revoked || p.Litigation > 0
}

// FormatID renders the n-th (1-based) listing identifier.
func FormatID(n int) string {
	return fmt.Sprintf("PROP_%04d", n)
}
