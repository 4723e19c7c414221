package ecs

// entityStore tracks entity generations and free indexes. Indexes released
// during a tick only become reusable after flush, so an id destroyed this
// tick can never alias an entity spawned later in the same tick.
type entityStore struct {
	gen      []uint32
	alive    bitset
	free     []uint32
	released []uint32
}

func (s *entityStore) create() Entity {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.gen))
		s.gen = append(s.gen, 1)
	}
	s.alive.set(int(idx))
	return makeEntity(idx, s.gen[idx])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := uint32(e.Index())
	s.gen[idx]++
	if s.gen[idx] == 0 {
		s.gen[idx] = 1
	}
	s.alive.clear(int(idx))
	s.released = append(s.released, idx)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	idx := e.Index()
	if idx >= len(s.gen) {
		return false
	}
	return s.gen[idx] == e.generation() && s.alive.has(idx)
}

// entityAt rebuilds the live handle for an index taken from a bitset.
func (s *entityStore) entityAt(idx int) Entity {
	return makeEntity(uint32(idx), s.gen[idx])
}

func (s *entityStore) count() int {
	return s.alive.count()
}

func (s *entityStore) flush() {
	s.free = append(s.free, s.released...)
	s.released = s.released[:0]
}
