package ecs

import "github.com/milk9111/gravitywell/ecs/component"

// World owns entities, the fixed component columns, and the event queue.
type World struct {
	entities entityStore
	events   EventQueue
	columns  []column

	Transforms *Column[component.Transform]
	Velocities *Column[component.Velocity]
	Boxes      *Column[component.BoundingBox]
	Attractors *Column[component.Attractor]
	Players    *Column[component.Player]
	Trails     *Column[component.EmitTrail]
	Salvage    *Column[component.Salvage]
	Lifetimes  *Column[component.ParticleLifetime]
	ColorLerps *Column[component.ParticleColorLerp]
	Sprites    *Column[component.Sprite]
	Labels     *Column[component.Label]
	Scenes     *Column[component.SceneTag]
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	w := &World{}
	w.Transforms = register(w, newColumn[component.Transform](&w.entities, true))
	w.Velocities = register(w, newColumn[component.Velocity](&w.entities, false))
	w.Boxes = register(w, newColumn[component.BoundingBox](&w.entities, false))
	w.Attractors = register(w, newColumn[component.Attractor](&w.entities, false))
	w.Players = register(w, newColumn[component.Player](&w.entities, false))
	w.Trails = register(w, newColumn[component.EmitTrail](&w.entities, false))
	w.Salvage = register(w, newColumn[component.Salvage](&w.entities, false))
	w.Lifetimes = register(w, newColumn[component.ParticleLifetime](&w.entities, false))
	w.ColorLerps = register(w, newColumn[component.ParticleColorLerp](&w.entities, false))
	w.Sprites = register(w, newColumn[component.Sprite](&w.entities, false))
	w.Labels = register(w, newColumn[component.Label](&w.entities, false))
	w.Scenes = register(w, newColumn[component.SceneTag](&w.entities, false))
	return w
}

func register[T any](w *World, c *Column[T]) *Column[T] {
	w.columns = append(w.columns, c)
	return c
}

// Option attaches a component while an entity is being created.
type Option func(e Entity)

// With sets v on column c for the new entity.
func With[T any](c *Column[T], v T) Option {
	return func(e Entity) {
		c.Set(e, v)
	}
}

// Create allocates a new entity and applies opts in order.
func (w *World) Create(opts ...Option) Entity {
	e := w.entities.create()
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Destroy removes every component and invalidates the handle. Destroying a
// stale handle is a no-op that returns false.
func (w *World) Destroy(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	idx := e.Index()
	for _, c := range w.columns {
		c.removeIndex(idx)
	}
	return w.entities.destroy(e)
}

// Alive reports whether an entity handle is valid.
func (w *World) Alive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Count returns the number of live entities.
func (w *World) Count() int {
	if w == nil {
		return 0
	}
	return w.entities.count()
}

// DestroyTagged destroys every entity owned by scene and returns how many
// were removed.
func (w *World) DestroyTagged(scene component.SceneID) int {
	if w == nil {
		return 0
	}
	n := 0
	for _, e := range w.Query(w.Scenes).Entities() {
		if w.Scenes.Must(e).Scene == scene && w.Destroy(e) {
			n++
		}
	}
	return n
}

// Flush ends a tick: freed indexes become reusable, change marks are cleared
// and undrained events are dropped.
func (w *World) Flush() {
	if w == nil {
		return
	}
	w.entities.flush()
	for _, c := range w.columns {
		c.clearChanged()
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
