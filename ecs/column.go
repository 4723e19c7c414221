package ecs

import "fmt"

const columnPageSize = 256

// Column stores one component type for every entity that has it. Values live
// in fixed-size pages so pointers handed out by Get stay valid while other
// entities are spawned during the same tick.
type Column[T any] struct {
	store   *entityStore
	pages   []*[columnPageSize]T
	present bitset
	changed bitset
	track   bool
}

func newColumn[T any](store *entityStore, track bool) *Column[T] {
	return &Column[T]{store: store, track: track}
}

func (c *Column[T]) slot(idx int) *T {
	page := idx / columnPageSize
	for page >= len(c.pages) {
		c.pages = append(c.pages, new([columnPageSize]T))
	}
	return &c.pages[page][idx%columnPageSize]
}

// Set attaches or replaces the component. It returns false for dead entities.
func (c *Column[T]) Set(e Entity, v T) bool {
	if c == nil || !c.store.isAlive(e) {
		return false
	}
	idx := e.Index()
	*c.slot(idx) = v
	c.present.set(idx)
	if c.track {
		c.changed.set(idx)
	}
	return true
}

// Get returns a pointer to the component, or false when the entity is dead or
// does not carry it.
func (c *Column[T]) Get(e Entity) (*T, bool) {
	if !c.Has(e) {
		return nil, false
	}
	return c.slot(e.Index()), true
}

func (c *Column[T]) Has(e Entity) bool {
	if c == nil || !c.store.isAlive(e) {
		return false
	}
	return c.present.has(e.Index())
}

// Must is Get for callers whose query already guarantees presence.
func (c *Column[T]) Must(e Entity) *T {
	v, ok := c.Get(e)
	if !ok {
		var zero T
		panic(fmt.Sprintf("ecs: entity %s has no %T component", e, zero))
	}
	return v
}

// Mut is Must that also records the entity as changed this tick.
func (c *Column[T]) Mut(e Entity) *T {
	v := c.Must(e)
	if c.track {
		c.changed.set(e.Index())
	}
	return v
}

// Remove detaches the component. It reports whether anything was removed.
func (c *Column[T]) Remove(e Entity) bool {
	if !c.Has(e) {
		return false
	}
	c.removeIndex(e.Index())
	return true
}

func (c *Column[T]) Len() int {
	if c == nil {
		return 0
	}
	return c.present.count()
}

// Changed lists entities whose component was set or mutated through Mut since
// the last World.Flush, in ascending index order.
func (c *Column[T]) Changed() []Entity {
	if c == nil || !c.track {
		return nil
	}
	bits := c.changed.clone().and(c.present)
	out := make([]Entity, 0, bits.count())
	bits.each(func(idx int) {
		out = append(out, c.store.entityAt(idx))
	})
	return out
}

func (c *Column[T]) removeIndex(idx int) {
	if !c.present.has(idx) {
		return
	}
	var zero T
	*c.slot(idx) = zero
	c.present.clear(idx)
	c.changed.clear(idx)
}

func (c *Column[T]) clearChanged() {
	c.changed.reset()
}

func (c *Column[T]) presence() bitset {
	return c.present
}

// column is the type-erased view World uses for bulk maintenance.
type column interface {
	removeIndex(idx int)
	clearChanged()
}
