package snake

import "github.com/vovakirdan/gridsnake/internal/element"

// AddItem appends a picked-up object to the queue for its kind.
// Non-consumable kinds are ignored.
func (s *Snake) AddItem(kind element.Kind, id element.ID) {
	if !kind.Consumable() {
		return
	}
	s.inventory[kind] = append(s.inventory[kind], id)
}

// TakeItem pops the oldest held object of the given kind. Ability items
// are refused while another ability is in effect; taking one sets the lock.
func (s *Snake) TakeItem(kind element.Kind) (element.ID, bool) {
	queue := s.inventory[kind]
	if len(queue) == 0 {
		return element.NoID, false
	}
	if kind.Ability() {
		if s.abilityActive {
			return element.NoID, false
		}
		s.abilityActive = true
	}

	id := queue[0]
	s.inventory[kind] = queue[1:]
	return id, true
}

// ItemCount returns how many objects of the kind are held.
func (s *Snake) ItemCount(kind element.Kind) int {
	return len(s.inventory[kind])
}

// Items returns a copy of the held ids for the kind, oldest first.
func (s *Snake) Items(kind element.Kind) []element.ID {
	out := make([]element.ID, len(s.inventory[kind]))
	copy(out, s.inventory[kind])
	return out
}
