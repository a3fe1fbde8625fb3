package domain

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"os"

	"veridian-datagen/models"
)

// CSVRepository writes one row per record under a header of the JSON keys.
type CSVRepository struct {
	filePath string
}

func NewCSVRepository(filePath string) *CSVRepository {
	return &CSVRepository{
		filePath: filePath,
	}
}

func (r *CSVRepository) Name() string { return "csv" }

func (r *CSVRepository) Save(ctx context.Context, dataset models.Dataset) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := ensureParentDir(r.filePath); err != nil {
		return fmt.Errorf("csv: create directory: %w", err)
	}

	file, err := os.Create(r.filePath)
	if err != nil {
		return fmt.Errorf("csv: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	// header
	if err := writer.Write(recordColumns); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	for _, p := range dataset.Records {
		if err := writer.Write(recordStrings(p)); err != nil {
			return fmt.Errorf("csv: write %s: %w", p.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("csv: %w", err)
	}

	log.Printf("[sink:csv] wrote %d rows to %s", len(dataset.Records), r.filePath)
	return nil
}
