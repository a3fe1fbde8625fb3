package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"veridian-datagen/internal/domain"
	"veridian-datagen/models"
)

// saveWithRetry hands dataset to a remote sink, allowing MaxRetries repeats
// with backoffFor(n) between them. Cancelling ctx ends the wait.
func (s *DatasetService) saveWithRetry(ctx context.Context, repo domain.PropertyRepository, dataset models.Dataset) error {
	attempts := s.retry.MaxRetries + 1

	var err error
	for n := 1; ; n++ {
		if err = repo.Save(ctx, dataset); err == nil {
			if n > 1 {
				log.Printf("[sink:%s] run %s delivered on attempt %d", repo.Name(), dataset.RunID, n)
			}
			return nil
		}
		if n >= attempts {
			break
		}

		wait := s.backoffFor(n)
		log.Printf("[sink:%s] run %s attempt %d/%d: %v; next in %v",
			repo.Name(), dataset.RunID, n, attempts, err, wait)
		timer := time.NewTimer(wait)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		}
	}
	return fmt.Errorf("gave up after %d attempts: %w", attempts, err)
}

// backoffFor is the pause after failed attempt n: InitialBackoff doubled for
// each earlier failure, never above MaxBackoff.
func (s *DatasetService) backoffFor(n int) time.Duration {
	wait := s.retry.InitialBackoff
	for i := 1; i < n && wait < s.retry.MaxBackoff; i++ {
		wait *= 2
	}
	return min(wait, s.retry.MaxBackoff)
}
