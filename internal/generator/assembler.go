package generator

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"veridian-datagen/models"
)

// Assembler runs a whole batch on top of a Synthesizer, sharing its random
// source for trap selection and the final shuffle.
type Assembler struct {
	synth *Synthesizer
}

// NewAssembler returns an Assembler driving synth.
func NewAssembler(synth *Synthesizer) *Assembler {
	return &Assembler{synth: synth}
}

// Assemble plans the batch, picks the trap slots, synthesizes every record in
// category declaration order, shuffles the result and renumbers it
// PROP_0001..PROP_N in final order. Any error aborts the whole batch.
func (a *Assembler) Assemble(total int, dist models.Distribution, traps int) ([]models.PropertyRecord, error) {
	records, _, err := a.generate(total, dist, traps)
	if err != nil {
		return nil, err
	}

	a.synth.rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
	for i := range records {
		records[i].ID = models.FormatID(i + 1)
	}
	return records, nil
}

// generate returns the batch before the shuffle. Record i is generation index
// i and is a trap exactly when the returned set contains i.
func (a *Assembler) generate(total int, dist models.Distribution, traps int) ([]models.PropertyRecord, TrapSet, error) {
	alloc, err := Plan(total, dist)
	if err != nil {
		return nil, nil, fmt.Errorf("Assemble: %w", err)
	}
	trapSet, err := SelectTraps(a.synth.rng, total, traps)
	if err != nil {
		return nil, nil, fmt.Errorf("Assemble: %w", err)
	}
	log.Printf("[generator] plan: %s traps=%d", alloc, trapSet.Len())

	records := make([]models.PropertyRecord, 0, total)
	index := 0
	for _, c := range models.Categories {
		for i := 0; i < alloc[c]; i++ {
			rec, err := a.synth.Synthesize(index, c, trapSet.Contains(index))
			if err != nil {
				return nil, nil, fmt.Errorf("Assemble: record %d: %w", index, err)
			}
			records = append(records, rec)
			index++
		}
	}
	return records, trapSet, nil
}

// AssembleDataset runs Assemble and packages the batch with the locality
// table, a fresh run ID and the generation time.
func (a *Assembler) AssembleDataset(total int, dist models.Distribution, traps int) (models.Dataset, error) {
	generatedAt := a.synth.clock()
	records, err := a.Assemble(total, dist, traps)
	if err != nil {
		return models.Dataset{}, err
	}
	return models.Dataset{
		RunID:       uuid.NewString(),
		GeneratedAt: generatedAt,
		Localities:  a.synth.registry.Localities(),
		Records:     records,
	}, nil
}
