// Package generator synthesizes the listing fixture dataset.
//
// A run is a single synchronous batch:
//
//   - Plan turns the target size and category shares into per-category counts.
//   - SelectTraps picks the generation indices that must come out high-risk.
//   - Synthesizer builds one record from a locality, a category and the trap flag.
//   - Assembler drives the three, shuffles the batch and numbers it PROP_0001...
//
// All randomness flows through one injected Rand (WithSeed / WithRand), in a
// fixed call order, so a seed reproduces a batch exactly.
package generator
