package element

import "github.com/vovakirdan/gridsnake/internal/core"

// fuse is a bomb's detonation countdown. It is advanced by the owning world
// in whole fuse steps, so the heat-color schedule does not depend on the
// frame rate.
type fuse struct {
	duration  int
	remaining int
}

// stage returns the heat color index for the current remaining count, or 0
// when the count is not on an eighth boundary. The color moves one stage
// hotter at 7/8, 6/8, ... 1/8 of the duration.
func (f fuse) stage() int {
	eighth := f.duration / 8
	if eighth == 0 || f.remaining%eighth != 0 {
		return 0
	}
	k := f.remaining / eighth
	if k < 1 || k >= 8 {
		return 0
	}
	return 8 - k
}

// arm plants the bomb at p and lights the fuse.
func (o *Object) arm(p core.Point) {
	o.join()

	o.loc = p
	o.current = HeatColors[0]
	o.fuse.remaining = o.fuse.duration
	o.appearTimer = 0
	o.vis = Visible
	o.solid = false
}

// join burns down a fuse that is still running from a previous use, so
// that a reused bomb never has two detonations in flight.
func (o *Object) join() {
	if o.Armed() {
		o.AdvanceFuse(o.fuse.remaining)
	}
}

// AdvanceFuse burns up to steps fuse steps, one at a time so no heat stage
// is skipped. It returns true if the bomb detonated.
func (o *Object) AdvanceFuse(steps int) bool {
	if !o.Armed() {
		return false
	}
	for ; steps > 0 && o.fuse.remaining > 0; steps-- {
		if k := o.fuse.stage(); k > 0 {
			o.current = HeatColors[k]
		}
		o.fuse.remaining--
	}
	if o.fuse.remaining > 0 {
		return false
	}
	o.detonate()
	return true
}

// detonate restores the resting color, fires the blast callback at the
// bomb's location, then hides the bomb and frees it for reuse.
func (o *Object) detonate() {
	o.current = o.def
	if o.onUse != nil {
		o.onUse(o.loc)
	}
	o.Hide()
	o.available = true
}
