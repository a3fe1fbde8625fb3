package domain

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jonas-p/go-shp"

	"veridian-datagen/models"
)

// ShapefileRepository writes the records as a point layer (X=lng, Y=lat) and
// the locality centres as a second layer next to it, <base>_localities.shp.
type ShapefileRepository struct {
	filePath string
}

func NewShapefileRepository(filePath string) *ShapefileRepository {
	return &ShapefileRepository{filePath: filePath}
}

func (r *ShapefileRepository) Name() string { return "shapefile" }

// DBF field names are capped at 10 characters.
var recordFields = []shp.Field{
	shp.StringField("ID", 12),
	shp.StringField("TITLE", 80),
	shp.StringField("DEVELOPER", 40),
	shp.StringField("LOCALITY", 40),
	shp.NumberField("PRICE", 15),
	shp.NumberField("AREA_SQFT", 8),
	shp.NumberField("BEDROOMS", 2),
	shp.StringField("PROP_TYPE", 12),
	shp.StringField("LAND_TITLE", 10),
	shp.FloatField("YIELD", 6, 2),
	shp.NumberField("APPREC", 4),
	shp.FloatField("METRO_KM", 6, 2),
	shp.StringField("RERA", 10),
	shp.NumberField("LITIGATION", 2),
	shp.StringField("POSSESSION", 10),
	shp.NumberField("MAINT", 8),
	shp.StringField("IMAGE_URL", 120),
}

var localityFields = []shp.Field{
	shp.StringField("NAME", 40),
	shp.FloatField("METRO_KM", 6, 2),
	shp.FloatField("PRICE_MULT", 6, 2),
	shp.NumberField("APPREC", 4),
}

func (r *ShapefileRepository) Save(ctx context.Context, dataset models.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ensureParentDir(r.filePath); err != nil {
		return fmt.Errorf("shapefile: create directory: %w", err)
	}

	err := writePointLayer(r.filePath, recordFields, len(dataset.Records), func(w *shp.Writer, i int) error {
		p := dataset.Records[i]
		row := int(w.Write(&shp.Point{X: p.Lng, Y: p.Lat}))
		return writeRow(w, row,
			p.ID, p.Title, p.Developer, p.Locality,
			int(p.Price), p.CarpetArea, p.Bedrooms,
			string(p.Category), string(p.LandTitle),
			p.RentalYield, p.Appreciation, p.TransitDistance,
			string(p.ApprovalStatus), p.Litigation, p.PossessionDate,
			p.Maintenance, p.ImageURL,
		)
	})
	if err != nil {
		return fmt.Errorf("shapefile: records: %w", err)
	}

	localitiesPath := localityLayerPath(r.filePath)
	err = writePointLayer(localitiesPath, localityFields, len(dataset.Localities), func(w *shp.Writer, i int) error {
		l := dataset.Localities[i]
		row := int(w.Write(&shp.Point{X: l.Lng, Y: l.Lat}))
		return writeRow(w, row, l.Name, l.TransitDistanceBase, l.PriceMultiplier, l.AppreciationBase)
	})
	if err != nil {
		removeLayer(r.filePath)
		return fmt.Errorf("shapefile: localities: %w", err)
	}

	log.Printf("[sink:shapefile] wrote %d points to %s and %d to %s",
		len(dataset.Records), r.filePath, len(dataset.Localities), localitiesPath)
	return nil
}

// writePointLayer writes one layer. On failure no file of the layer is left
// behind.
func writePointLayer(path string, fields []shp.Field, n int, write func(w *shp.Writer, i int) error) error {
	w, err := shp.Create(path, shp.POINT)
	if err != nil {
		removeLayer(path)
		return err
	}
	fail := func(err error) error {
		w.Close()
		removeLayer(path)
		return err
	}
	if err := w.SetFields(fields); err != nil {
		return fail(err)
	}
	for i := 0; i < n; i++ {
		if err := write(w, i); err != nil {
			return fail(err)
		}
	}
	w.Close()
	if err := fixDBFName(path); err != nil {
		removeLayer(path)
		return err
	}
	return nil
}

// removeLayer deletes every file a layer at shpPath may have produced,
// including the undotted attribute table.
func removeLayer(shpPath string) {
	base := strings.TrimSuffix(shpPath, ".shp")
	for _, name := range []string{base + ".shp", base + ".shx", base + ".dbf", base + "dbf"} {
		if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
			log.Printf("[sink:shapefile] remove %s: %v", name, err)
		}
	}
}

func writeRow(w *shp.Writer, row int, values ...any) error {
	for field, v := range values {
		if err := w.WriteAttribute(row, field, v); err != nil {
			return fmt.Errorf("row %d: %w", row, err)
		}
	}
	return nil
}

// fixDBFName moves <base>dbf to <base>.dbf; go-shp v0.1.1 drops the dot when
// creating the attribute table.
func fixDBFName(shpPath string) error {
	base := strings.TrimSuffix(shpPath, ".shp")
	if _, err := os.Stat(base + "dbf"); err != nil {
		return nil
	}
	return os.Rename(base+"dbf", base+".dbf")
}

func localityLayerPath(shpPath string) string {
	return strings.TrimSuffix(shpPath, ".shp") + "_localities.shp"
}
