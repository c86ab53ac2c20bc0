package model

import (
	"slices"

	"github.com/google/uuid"
)

// DefaultNecklaceSize is the number of pearls a generated necklace holds.
const DefaultNecklaceSize = 35

// Necklace is an ordered collection of pearls. Insertion order is kept and
// used for index-based reporting.
type Necklace struct {
	id     uuid.UUID
	pearls []Pearl
}

// NewNecklace creates a necklace holding the given pearls in order.
func NewNecklace(pearls ...Pearl) *Necklace {
	return &Necklace{
		id:     uuid.New(),
		pearls: slices.Clone(pearls),
	}
}

// ID returns the necklace identifier.
func (n *Necklace) ID() uuid.UUID {
	return n.id
}

// Add appends a pearl to the end of the necklace.
func (n *Necklace) Add(p Pearl) {
	n.pearls = append(n.pearls, p)
}

// Len returns the number of pearls.
func (n *Necklace) Len() int {
	return len(n.pearls)
}

// Pearls returns a copy of the pearls in insertion order.
func (n *Necklace) Pearls() []Pearl {
	return slices.Clone(n.pearls)
}

// CountByShape returns the number of pearls per shape. Every shape is
// present as a key, including those with a zero count.
func (n *Necklace) CountByShape() map[Shape]int {
	counts := make(map[Shape]int, len(Shapes()))
	for _, s := range Shapes() {
		counts[s] = 0
	}
	for _, p := range n.pearls {
		counts[p.Shape]++
	}
	return counts
}

// TotalPrice sums the price of every pearl. It is recomputed on every call.
func (n *Necklace) TotalPrice() int {
	total := 0
	for _, p := range n.pearls {
		total += p.Price()
	}
	return total
}

// Find returns the first pearl, in insertion order, whose attributes all
// equal the target's, together with its zero-based index.
func (n *Necklace) Find(target Pearl) (int, Pearl, bool) {
	i := slices.IndexFunc(n.pearls, target.Equal)
	if i < 0 {
		return -1, Pearl{}, false
	}
	return i, n.pearls[i], true
}

// Sorted returns the pearls stably sorted by diameter, color and shape.
// The necklace order is left untouched.
func (n *Necklace) Sorted() []Pearl {
	sorted := slices.Clone(n.pearls)
	slices.SortStableFunc(sorted, Pearl.Compare)
	return sorted
}
