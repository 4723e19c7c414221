package system

import "github.com/milk9111/gravitywell/prefabs"

// Scores is indexed by player id.
type Scores []int

// Add credits one point to id, growing the slice if needed.
func (s *Scores) Add(id int) {
	if id < 0 {
		return
	}
	for len(*s) <= id {
		*s = append(*s, 0)
	}
	(*s)[id]++
}

func (s Scores) Total() int {
	n := 0
	for _, v := range s {
		n += v
	}
	return n
}

// Session is the state scoped to one visit of the playing mode.
type Session struct {
	Scores   Scores
	Particle *Timer
	Salvage  *Timer
}

// NewSession zeroes one score slot per ship and starts both timers at zero.
func NewSession(c *prefabs.Catalog) *Session {
	return &Session{
		Scores:   make(Scores, len(c.Ships.Ships)),
		Particle: NewTimer(c.Effects.Trail.IntervalMS, true),
		Salvage:  NewTimer(c.Salvage.SpawnIntervalMS, true),
	}
}
