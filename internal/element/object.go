// Package element implements the interactive objects that occupy grid cells:
// food, walls, potions, bombs and pills. Each object runs a small visual
// lifecycle (Hidden -> Appearing -> Visible) and a kind-specific use action.
//
// Objects are not safe for concurrent use; the world that owns them
// serializes every access.
package element

import "github.com/vovakirdan/gridsnake/internal/core"

// ID identifies an object within one world. IDs are handed out by the
// world's monotonic counter.
type ID int64

// NoID is the id carried by copies of an object.
const NoID ID = -1

// Visibility is the visual lifecycle state of an object.
type Visibility int

const (
	Hidden Visibility = iota
	Appearing
	Visible
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Appearing:
		return "appearing"
	case Visible:
		return "visible"
	default:
		return "unknown"
	}
}

// UseFunc is invoked when an object is used, with the object's location.
type UseFunc func(at core.Point)

// Timings configures the lifecycle durations of new objects.
type Timings struct {
	AppearanceTicks int // Ticks spent fading in; Food always appears instantly
	FuseSteps       int // Bomb fuse length in fuse steps
}

// Object is a single interactive object.
type Object struct {
	id   ID
	kind Kind

	loc  core.Point
	home core.Point // Fixed cell walls return to

	current core.Color
	def     core.Color

	vis       Visibility
	solid     bool
	available bool

	appearDuration int
	appearTimer    int

	fuse  fuse
	onUse UseFunc
}

// New creates a hidden, available object of the given kind.
func New(id ID, kind Kind, t Timings) *Object {
	o := &Object{
		id:             id,
		kind:           kind,
		loc:            core.OffGrid,
		home:           core.OffGrid,
		current:        core.Background,
		def:            kind.Color(),
		vis:            Hidden,
		available:      true,
		appearDuration: t.AppearanceTicks,
	}
	if kind == Food {
		o.appearDuration = 0
	}
	if kind == Bomb {
		o.fuse.duration = t.FuseSteps
	}
	return o
}

// NewWall creates a hidden wall that materializes at home.
func NewWall(id ID, home core.Point, t Timings) *Object {
	o := New(id, Wall, t)
	o.home = home
	return o
}

// ID returns the object's identifier.
func (o *Object) ID() ID { return o.id }

// Kind returns the object's kind.
func (o *Object) Kind() Kind { return o.kind }

// Location returns the cell the object sits on, or core.OffGrid.
func (o *Object) Location() core.Point { return o.loc }

// Home returns the cell a wall returns to when it is revealed.
func (o *Object) Home() core.Point { return o.home }

// Color returns the live color, which moves during appearance and burning.
func (o *Object) Color() core.Color { return o.current }

// DefaultColor returns the resting color of the kind.
func (o *Object) DefaultColor() core.Color { return o.def }

// Visibility returns the lifecycle state.
func (o *Object) Visibility() Visibility { return o.vis }

// Solid reports whether the object blocks the snake.
func (o *Object) Solid() bool { return o.solid }

// Available reports whether placement may reuse the object.
func (o *Object) Available() bool { return o.available }

// Hidden reports whether the object is off the board.
func (o *Object) Hidden() bool { return o.vis == Hidden }

// Armed reports whether a bomb fuse is burning.
func (o *Object) Armed() bool { return o.fuse.remaining > 0 }

// FuseRemaining returns the fuse steps left before detonation.
func (o *Object) FuseRemaining() int { return o.fuse.remaining }

// SetColor overrides the live color.
func (o *Object) SetColor(c core.Color) { o.current = c }

// SetAvailable marks whether the object may be reused by placement.
func (o *Object) SetAvailable(available bool) { o.available = available }

// OnUse registers the callback invoked by Use.
func (o *Object) OnUse(fn UseFunc) { o.onUse = fn }

// Place puts the object on the board at p. Objects with an appearance
// duration fade in from the background color; others appear at once.
// A bomb whose previous fuse is still burning detonates first.
func (o *Object) Place(p core.Point) {
	o.join()

	o.loc = p
	o.solid = false
	if o.appearDuration > 0 {
		o.appearTimer = o.appearDuration
		o.current = core.Background
		o.vis = Appearing
		return
	}
	o.show()
}

// show completes the lifecycle: default color, Visible, solid for walls.
func (o *Object) show() {
	o.appearTimer = 0
	o.current = o.def
	o.vis = Visible
	o.solid = o.kind == Wall
}

// AdvanceVisual runs one tick of the appearing animation: the color is
// nudged toward the default color until the timer runs out, then the
// object becomes Visible.
func (o *Object) AdvanceVisual() {
	if o.vis != Appearing {
		return
	}
	if o.appearTimer > 0 {
		o.current = o.current.Nudge(o.def)
		o.appearTimer--
		return
	}
	o.show()
}

// Advance runs one simulation tick: the appearing animation plus fuseSteps
// steps of a burning fuse. It returns true if a bomb detonated.
func (o *Object) Advance(fuseSteps int) bool {
	o.AdvanceVisual()
	return o.AdvanceFuse(fuseSteps)
}

// Hide takes the object off the board. A hidden bomb never detonates, so
// any burning fuse is put out. Calling Hide repeatedly is harmless.
func (o *Object) Hide() {
	o.vis = Hidden
	o.loc = core.OffGrid
	o.solid = false
	o.appearTimer = 0
	o.fuse.remaining = 0
}

// Use triggers the kind-specific action. at is where the snake's head is;
// only bombs care, since they are planted there.
func (o *Object) Use(at core.Point) {
	if action := useActions[o.kind]; action != nil {
		action(o, at)
	}
}

var useActions = map[Kind]func(*Object, core.Point){
	Potion:     (*Object).consume,
	ShrinkPill: (*Object).consume,
	SlowPill:   (*Object).consume,
	Bomb:       (*Object).arm,
	// Food and walls have no use action.
}

// consume releases the object for reuse and fires its callback.
func (o *Object) consume(core.Point) {
	o.available = true
	if o.onUse != nil {
		o.onUse(o.loc)
	}
}

// Clone returns a copy for inspection. The copy has no id and no callback.
func (o *Object) Clone() Object {
	c := *o
	c.id = NoID
	c.onUse = nil
	return c
}
