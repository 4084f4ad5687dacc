package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ExplodeBomb clears every non-food object in the blast around p.
func (w *World) ExplodeBomb(p core.Point) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.explodeBomb(p)
}

// explodeBomb is the bomb detonation callback. It runs inside Update with
// the lock already held.
func (w *World) explodeBomb(p core.Point) {
	cells := w.blastCells(p)
	if cells.Size() == 0 {
		return
	}

	hit := 0
	for _, id := range w.order {
		o := w.objects[id]
		if o.Hidden() || !cells.Has(o.Location()) {
			continue
		}
		w.occ.Clear(o.Location())
		o.SetColor(core.Background)
		o.Hide()
		o.SetAvailable(true)
		hit++
	}
	w.logger.Debug("bomb exploded", "x", p.X, "y", p.Y, "cleared", hit)
}

// blastCells returns p and its neighbors on both axes, up to nine cells.
// The blast does not wrap: cells past the grid edge are dropped.
func (w *World) blastCells(p core.Point) mapset.Set[core.Point] {
	cells := mapset.New[core.Point]()
	if !p.InBounds(w.size) {
		return cells
	}

	xs := neighbors(p.X, w.size)
	ys := neighbors(p.Y, w.size)
	for _, x := range xs {
		for _, y := range ys {
			cells.Put(core.Point{X: x, Y: y})
		}
	}
	return cells
}

func neighbors(v, size int) []int {
	out := []int{v}
	if v > 0 {
		out = append(out, v-1)
	}
	if v < size-1 {
		out = append(out, v+1)
	}
	return out
}
