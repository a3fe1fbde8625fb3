package generator

import (
	"fmt"

	"veridian-datagen/models"
)

// Catalog holds the name and image pools records draw from.
type Catalog struct {
	TierOneDevelopers    []string
	TierTwoDevelopers    []string
	UnreliableDevelopers []string
	Images               map[models.Category][]string
}

func (c Catalog) validate() error {
	if len(c.TierOneDevelopers)+len(c.TierTwoDevelopers) == 0 {
		return fmt.Errorf("no tier-1 or tier-2 developers: %w", ErrInvalidCatalog)
	}
	if len(c.UnreliableDevelopers) == 0 {
		return fmt.Errorf("no unreliable developers: %w", ErrInvalidCatalog)
	}
	for _, cat := range models.Categories {
		if len(c.Images[cat]) == 0 {
			return fmt.Errorf("no images for %s: %w", cat, ErrInvalidCatalog)
		}
	}
	return nil
}
