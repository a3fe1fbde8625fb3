package domain

import (
	"context"
	"os"
	"path/filepath"
	"strconv"

	"veridian-datagen/models"
)

// PropertyRepository persists one generated dataset.
type PropertyRepository interface {
	Save(ctx context.Context, dataset models.Dataset) error
	Name() string
}

// IsRemote reports whether repo talks to a network service. Remote saves are
// safe to repeat and are retried by the caller.
func IsRemote(repo PropertyRepository) bool {
	r, ok := repo.(interface{ Remote() bool })
	return ok && r.Remote()
}

// recordColumns is the flat column layout shared by the CSV and SQL sinks.
var recordColumns = []string{
	"id",
	"title",
	"developer",
	"locality",
	"lat",
	"lng",
	"price",
	"carpet_area",
	"bedrooms",
	"property_type",
	"land_title",
	"rental_yield",
	"appreciation",
	"distance_metro",
	"rera_status",
	"litigation",
	"possession_date",
	"maintenance",
	"image_url",
}

// recordArgs returns the record's values in recordColumns order.
func recordArgs(p models.PropertyRecord) []any {
	return []any{
		p.ID,
		p.Title,
		p.Developer,
		p.Locality,
		p.Lat,
		p.Lng,
		p.Price,
		p.CarpetArea,
		p.Bedrooms,
		string(p.Category),
		string(p.LandTitle),
		p.RentalYield,
		p.Appreciation,
		p.TransitDistance,
		string(p.ApprovalStatus),
		p.Litigation,
		p.PossessionDate,
		p.Maintenance,
		p.ImageURL,
	}
}

// recordStrings is recordArgs rendered as text.
func recordStrings(p models.PropertyRecord) []string {
	return []string{
		p.ID,
		p.Title,
		p.Developer,
		p.Locality,
		strconv.FormatFloat(p.Lat, 'f', -1, 64),
		strconv.FormatFloat(p.Lng, 'f', -1, 64),
		strconv.FormatInt(p.Price, 10),
		strconv.Itoa(p.CarpetArea),
		strconv.Itoa(p.Bedrooms),
		string(p.Category),
		string(p.LandTitle),
		strconv.FormatFloat(p.RentalYield, 'f', -1, 64),
		strconv.Itoa(p.Appreciation),
		strconv.FormatFloat(p.TransitDistance, 'f', -1, 64),
		string(p.ApprovalStatus),
		strconv.Itoa(p.Litigation),
		p.PossessionDate,
		strconv.Itoa(p.Maintenance),
		p.ImageURL,
	}
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
