package ecs

type slotState uint8

const (
	slotFree slotState = iota
	slotPending
	slotAlive
)

// entityStore tracks entity generations, slot states, and free indices.
// Indices are recycled only once an entity is released during Maintain.
type entityStore struct {
	gen   []generation
	state []slotState
	free  []entityID
}

func (s *entityStore) reserve() Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.state = append(s.state, slotFree)
		id = entityID(len(s.gen))
	}
	s.state[id-1] = slotPending
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) slot(e Entity) (int, bool) {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return 0, false
	}
	idx := int(id) - 1
	if s.gen[idx] != e.generation() || s.state[idx] == slotFree {
		return 0, false
	}
	return idx, true
}

func (s *entityStore) activate(e Entity) bool {
	idx, ok := s.slot(e)
	if !ok || s.state[idx] != slotPending {
		return false
	}
	s.state[idx] = slotAlive
	return true
}

func (s *entityStore) release(e Entity) bool {
	idx, ok := s.slot(e)
	if !ok {
		return false
	}
	s.state[idx] = slotFree
	s.gen[idx]++
	s.free = append(s.free, e.id())
	return true
}

// exists reports whether the handle refers to a reserved or live slot.
func (s *entityStore) exists(e Entity) bool {
	_, ok := s.slot(e)
	return ok
}

func (s *entityStore) isAlive(e Entity) bool {
	idx, ok := s.slot(e)
	return ok && s.state[idx] == slotAlive
}

// aliveByID resolves an index to its live handle.
func (s *entityStore) aliveByID(id entityID) (Entity, bool) {
	if id == 0 || int(id) > len(s.gen) {
		return 0, false
	}
	idx := int(id) - 1
	if s.state[idx] != slotAlive {
		return 0, false
	}
	return makeEntity(id, s.gen[idx]), true
}
