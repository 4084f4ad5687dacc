package world

import (
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/element"
)

// EventKind describes something that happened during a tick.
type EventKind int

const (
	EventAte EventKind = iota
	EventPickup
	EventUsed
	EventPlaced
	EventDeferred
	EventWallSmashed
	EventDetonated
	EventDied
	EventRestarted
)

func (k EventKind) String() string {
	switch k {
	case EventAte:
		return "ate"
	case EventPickup:
		return "pickup"
	case EventUsed:
		return "used"
	case EventPlaced:
		return "placed"
	case EventDeferred:
		return "deferred"
	case EventWallSmashed:
		return "wall_smashed"
	case EventDetonated:
		return "detonated"
	case EventDied:
		return "died"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event records a single simulation event.
type Event struct {
	Kind    EventKind
	Element element.Kind
	ID      element.ID
	At      core.Point
}

// StepResult contains information about what happened during a tick.
// Events raised by input handling since the previous tick are included.
type StepResult struct {
	Tick   uint64
	Events []Event
	Alive  bool
	Score  int
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func (w *World) emit(kind EventKind, o *element.Object, at core.Point) {
	e := Event{Kind: kind, ID: element.NoID, At: at, Element: -1}
	if o != nil {
		e.Element = o.Kind()
		e.ID = o.ID()
	}
	w.events = append(w.events, e)
	w.logger.Debug("event", "kind", kind, "element", e.Element, "id", e.ID, "x", at.X, "y", at.Y, "tick", w.tick)
}
