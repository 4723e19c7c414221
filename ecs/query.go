package ecs

// Mask is anything a query can filter on. Every Column is a Mask.
type Mask interface {
	presence() bitset
}

// Query selects entities carrying all of a set of columns and none of an
// optional exclusion set.
type Query struct {
	w       *World
	with    []Mask
	without []Mask
}

// Query starts a query over the given columns. A query with no columns
// matches nothing.
func (w *World) Query(with ...Mask) *Query {
	return &Query{w: w, with: with}
}

// Without excludes entities present in any of the given columns.
func (q *Query) Without(masks ...Mask) *Query {
	q.without = append(q.without, masks...)
	return q
}

func (q *Query) match() bitset {
	if q == nil || q.w == nil || len(q.with) == 0 {
		return nil
	}
	acc := q.with[0].presence().clone()
	for _, m := range q.with[1:] {
		acc = acc.and(m.presence())
	}
	for _, m := range q.without {
		acc = acc.andNot(m.presence())
	}
	return acc.and(q.w.entities.alive)
}

// Entities returns a snapshot of matching entities in ascending index order.
// Destroying entities while walking the snapshot is safe.
func (q *Query) Entities() []Entity {
	bits := q.match()
	if bits.count() == 0 {
		return nil
	}
	out := make([]Entity, 0, bits.count())
	bits.each(func(idx int) {
		out = append(out, q.w.entities.entityAt(idx))
	})
	return out
}

// Count returns the number of matching entities.
func (q *Query) Count() int {
	return q.match().count()
}
