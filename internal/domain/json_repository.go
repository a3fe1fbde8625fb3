package domain

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"veridian-datagen/models"
)

// JSONRepository writes the records as one indented JSON array, the document
// the listing front end loads.
type JSONRepository struct {
	filePath string
}

func NewJSONRepository(filePath string) *JSONRepository {
	return &JSONRepository{filePath: filePath}
}

func (r *JSONRepository) Name() string { return "json" }

func (r *JSONRepository) Save(ctx context.Context, dataset models.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ensureParentDir(r.filePath); err != nil {
		return fmt.Errorf("json: create directory: %w", err)
	}

	file, err := os.Create(r.filePath)
	if err != nil {
		return fmt.Errorf("json: %w", err)
	}
	if err := writeRecordsJSON(file, dataset.Records); err != nil {
		file.Close()
		return fmt.Errorf("json: encode %s: %w", r.filePath, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("json: %w", err)
	}

	log.Printf("[sink:json] wrote %d records to %s", len(dataset.Records), r.filePath)
	return nil
}

func writeRecordsJSON(w io.Writer, records []models.PropertyRecord) error {
	return json.MarshalWrite(w, records, jsontext.WithIndent("  "))
}
