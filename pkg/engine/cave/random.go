package cave

import (
	"math/rand"
)

// Random is the source of randomness used for hazard placement and movement.
type Random interface {
	// IntRange returns a uniformly distributed integer in [lo, hi].
	IntRange(lo, hi int) int
}

type mathRandom struct {
	r *rand.Rand
}

// NewRandom returns a Random backed by math/rand seeded with seed.
func NewRandom(seed int64) Random {
	return &mathRandom{r: rand.New(rand.NewSource(seed))}
}

func (m *mathRandom) IntRange(lo, hi int) int {
	return lo + m.r.Intn(hi-lo+1)
}

// Choose returns a uniformly selected element of items.
func Choose[T any](rng Random, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, ErrEmptyCollection
	}
	return items[rng.IntRange(0, len(items)-1)], nil
}
