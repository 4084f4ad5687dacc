package world

import (
	"math/bits"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Occupancy is a bitset over a square grid recording which cells are
// claimed by a non-hidden object. Out-of-grid points are ignored.
type Occupancy struct {
	size  int
	words []uint64
}

// NewOccupancy creates an empty index for a size x size grid.
func NewOccupancy(size int) *Occupancy {
	return &Occupancy{
		size:  size,
		words: make([]uint64, (size*size+63)/64),
	}
}

func (o *Occupancy) index(p core.Point) (word int, mask uint64, ok bool) {
	if !p.InBounds(o.size) {
		return 0, 0, false
	}
	i := p.Y*o.size + p.X
	return i / 64, 1 << uint(i%64), true
}

// Set marks p as occupied.
func (o *Occupancy) Set(p core.Point) {
	if w, m, ok := o.index(p); ok {
		o.words[w] |= m
	}
}

// Clear marks p as free.
func (o *Occupancy) Clear(p core.Point) {
	if w, m, ok := o.index(p); ok {
		o.words[w] &^= m
	}
}

// Has reports whether p is occupied. Out-of-grid points never are.
func (o *Occupancy) Has(p core.Point) bool {
	w, m, ok := o.index(p)
	return ok && o.words[w]&m != 0
}

// Count returns the number of occupied cells.
func (o *Occupancy) Count() int {
	n := 0
	for _, w := range o.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Reset frees every cell.
func (o *Occupancy) Reset() {
	clear(o.words)
}

// Size returns the grid side.
func (o *Occupancy) Size() int { return o.size }
