package generator

// Rand is the random source shared by trap selection, synthesis and the final
// shuffle. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// uniformInt draws from the closed interval [lo, hi].
func uniformInt(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// uniformFloat draws from [lo, hi).
func uniformFloat(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// chance is true with probability p.
func chance(r Rand, p float64) bool {
	return r.Float64() < p
}

func pick[T any](r Rand, items []T) T {
	return items[r.Intn(len(items))]
}
