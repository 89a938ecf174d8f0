package app

import (
	"fmt"
	"math/rand"

	"github.com/cesargomez89/musicshelf/internal/domain"
)

// Picker is the source of randomness used for suggestions.
type Picker interface {
	IntN(n int) int
	Perm(n int) []int
}

type globalPicker struct{}

func (globalPicker) IntN(n int) int   { return rand.Intn(n) }
func (globalPicker) Perm(n int) []int { return rand.Perm(n) }

// Suggester samples albums out of a result set.
type Suggester struct {
	picker Picker
}

// NewSuggester returns a Suggester drawing from picker, or from the
// process-wide random source when picker is nil.
func NewSuggester(picker Picker) *Suggester {
	if picker == nil {
		picker = globalPicker{}
	}
	return &Suggester{picker: picker}
}

// Suggest picks quantity distinct elements of pool uniformly at random.
// It never truncates: quantity must be within [1, len(pool)].
func Suggest[T any](s *Suggester, pool []T, quantity int) ([]T, error) {
	if quantity < 1 || quantity > len(pool) {
		return nil, fmt.Errorf("%w: asked for %d, have %d", domain.ErrInvalidQuantity, quantity, len(pool))
	}
	if quantity == 1 {
		return []T{pool[s.picker.IntN(len(pool))]}, nil
	}

	order := s.picker.Perm(len(pool))
	picked := make([]T, quantity)
	for i := range picked {
		picked[i] = pool[order[i]]
	}
	return picked, nil
}

// ClampQuantity caps a requested count at what the pool can satisfy.
// Non-positive requests are not raised; callers reject them first.
func ClampQuantity(quantity, available int) int {
	return max(0, min(quantity, available))
}
