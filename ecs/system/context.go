package system

import (
	"time"

	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/input"
	"github.com/milk9111/gravitywell/prefabs"
)

// Tuning holds the numeric rules of a session.
type Tuning struct {
	// NominalFrameMS is the frame length velocities are expressed against.
	NominalFrameMS     float64
	AttractionStrength float64
	ArenaWidth         float64
	ArenaHeight        float64
	RotateDegrees      float64
	Thrust             float64
	MaxSpeed           float64
}

func DefaultTuning() Tuning {
	return Tuning{
		NominalFrameMS:     33,
		AttractionStrength: 2000,
		ArenaWidth:         1024,
		ArenaHeight:        768,
		RotateDegrees:      2,
		Thrust:             0.1,
		MaxSpeed:           5,
	}
}

// Context carries everything a system may touch during one tick. It is built
// by the playing scene and never retained by a system.
type Context struct {
	World   *ecs.World
	Elapsed time.Duration
	Input   input.Frame
	Session *Session
	Random  *Random
	Catalog *prefabs.Catalog
	Tuning  Tuning
	Summary Summarizer

	ended   bool
	summary string
}

// ElapsedMS is the tick length in fractional milliseconds.
func (c *Context) ElapsedMS() float64 {
	return float64(c.Elapsed) / float64(time.Millisecond)
}

// FrameFraction is the tick length relative to the nominal frame.
func (c *Context) FrameFraction() float64 {
	if c.Tuning.NominalFrameMS <= 0 {
		return 0
	}
	return c.ElapsedMS() / c.Tuning.NominalFrameMS
}

// End records that the session finished this tick.
func (c *Context) End(summary string) {
	if c.ended {
		return
	}
	c.ended = true
	c.summary = summary
}

// Ended returns the summary once the end condition fired.
func (c *Context) Ended() (string, bool) {
	return c.summary, c.ended
}

func (c *Context) push(kind ecs.EventKind, e ecs.Entity, data any) {
	c.World.Events().Push(ecs.Event{Kind: kind, Entity: e, Data: data})
}
