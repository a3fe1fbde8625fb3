package service

import (
	"context"
	"fmt"
	"log"

	"veridian-datagen/config"
	"veridian-datagen/internal/domain"
	"veridian-datagen/internal/generator"
	"veridian-datagen/models"
)

// DatasetService generates one batch and hands it to every configured sink.
type DatasetService struct {
	assembler *generator.Assembler
	repos     []domain.PropertyRepository
	gen       config.GenerationConfig
	retry     config.RetryConfig
}

func NewDatasetService(
	a *generator.Assembler,
	repos []domain.PropertyRepository,
	cfg *config.Config,
) *DatasetService {

	return &DatasetService{
		assembler: a,
		repos:     repos,
		gen:       cfg.Generation,
		retry:     cfg.Retry,
	}
}

// Run assembles the dataset and saves it to each sink in order. Remote sinks
// are retried with backoff; the first sink that still fails stops the run.
// The generated dataset is returned even when a sink fails.
func (s *DatasetService) Run(ctx context.Context) (models.Dataset, error) {
	dataset, err := s.assembler.AssembleDataset(s.gen.Total, s.gen.Distribution, s.gen.Traps)
	if err != nil {
		return models.Dataset{}, fmt.Errorf("generation failed: %w", err)
	}
	log.Printf("[service] run %s: generated %d records (%d risky)",
		dataset.RunID, len(dataset.Records), dataset.RiskyCount())

	for _, repo := range s.repos {
		if domain.IsRemote(repo) {
			err = s.saveWithRetry(ctx, repo, dataset)
		} else {
			err = repo.Save(ctx, dataset)
		}
		if err != nil {
			return dataset, fmt.Errorf("sink %s: %w", repo.Name(), err)
		}
	}
	return dataset, nil
}
