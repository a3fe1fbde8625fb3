package generator

import (
	"fmt"

	"veridian-datagen/models"
)

// Registry is the read-only locality table. Build it once with NewRegistry.
type Registry struct {
	byName map[string]models.Locality
	names  []string
}

// NewRegistry validates the table and indexes it by name, keeping the
// declaration order for Names.
func NewRegistry(localities []models.Locality) (*Registry, error) {
	if len(localities) == 0 {
		return nil, fmt.Errorf("NewRegistry: empty table: %w", ErrInvalidLocality)
	}

	r := &Registry{
		byName: make(map[string]models.Locality, len(localities)),
		names:  make([]string, 0, len(localities)),
	}
	for _, loc := range localities {
		if loc.Name == "" {
			return nil, fmt.Errorf("NewRegistry: unnamed locality: %w", ErrInvalidLocality)
		}
		if _, dup := r.byName[loc.Name]; dup {
			return nil, fmt.Errorf("NewRegistry: duplicate locality %q: %w", loc.Name, ErrInvalidLocality)
		}
		if loc.PriceMultiplier <= 0 {
			return nil, fmt.Errorf("NewRegistry: locality %q price multiplier %g: %w", loc.Name, loc.PriceMultiplier, ErrInvalidLocality)
		}
		r.byName[loc.Name] = loc
		r.names = append(r.names, loc.Name)
	}
	return r, nil
}

// Get returns the locality called name.
func (r *Registry) Get(name string) (models.Locality, error) {
	loc, ok := r.byName[name]
	if !ok {
		return models.Locality{}, fmt.Errorf("Get(%q): %w", name, ErrUnknownLocality)
	}
	return loc, nil
}

// Names returns the locality names in declaration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len is the number of localities.
func (r *Registry) Len() int {
	return len(r.names)
}

// Localities returns a copy of the table in declaration order.
func (r *Registry) Localities() []models.Locality {
	out := make([]models.Locality, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byName[name])
	}
	return out
}
