package generator

import (
	"fmt"
	"sort"
)

// TrapSet holds the generation indices that must be synthesized high-risk.
type TrapSet map[int]struct{}

// Contains reports whether generation index i is a trap slot.
func (s TrapSet) Contains(i int) bool {
	_, ok := s[i]
	return ok
}

// Len is the number of trap slots.
func (s TrapSet) Len() int {
	return len(s)
}

// Indices returns the trap slots in ascending order.
func (s TrapSet) Indices() []int {
	out := make([]int, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// SelectTraps draws traps distinct indices uniformly from [0, total) with a
// partial Fisher-Yates shuffle.
func SelectTraps(r Rand, total, traps int) (TrapSet, error) {
	if r == nil {
		return nil, fmt.Errorf("SelectTraps: %w", ErrNeedRandSource)
	}
	if total < 0 {
		return nil, fmt.Errorf("SelectTraps: total %d: %w", total, ErrInvalidTotal)
	}
	if traps < 0 || traps > total {
		return nil, fmt.Errorf("SelectTraps: %d traps for %d records: %w", traps, total, ErrInvalidTrapCount)
	}

	pool := make([]int, total)
	for i := range pool {
		pool[i] = i
	}

	set := make(TrapSet, traps)
	for i := 0; i < traps; i++ {
		j := i + r.Intn(total-i)
		pool[i], pool[j] = pool[j], pool[i]
		set[pool[i]] = struct{}{}
	}
	return set, nil
}
