package scene

import (
	"time"

	"github.com/milk9111/gravitywell/ecs"
	"github.com/milk9111/gravitywell/ecs/component"
	"github.com/milk9111/gravitywell/ecs/entity"
	"github.com/milk9111/gravitywell/ecs/system"
	"github.com/milk9111/gravitywell/input"
	"github.com/milk9111/gravitywell/mode"
	"go.uber.org/zap"
)

// Playing owns one session: the ships, the gravity well, scores and timers.
type Playing struct {
	env      Env
	schedule *ecs.Scheduler[*system.Context]
	session  *system.Session
}

func (s *Playing) Enter(mode.State) {
	w := s.env.World
	s.session = system.NewSession(s.env.Catalog)
	entity.NewShips(w, s.env.Catalog.Ships)
	entity.NewGravityWell(w, s.env.Catalog.Well)
	if s.env.Observer != nil {
		s.env.Observer.SessionStarted()
	}
}

// Update runs one tick of the systems, reports what happened and ends the
// tick.
func (s *Playing) Update(frame input.Frame, elapsed time.Duration) mode.Event {
	if s.session == nil {
		return nil
	}
	ctx := &system.Context{
		World:   s.env.World,
		Elapsed: elapsed,
		Input:   frame,
		Session: s.session,
		Random:  s.env.Random,
		Catalog: s.env.Catalog,
		Tuning:  s.env.Tuning,
		Summary: s.env.Summary,
	}
	s.schedule.Update(ctx)

	for _, evt := range s.env.World.Events().Drain() {
		s.env.Log.Debug("gameplay event",
			zap.String("kind", string(evt.Kind)),
			zap.Stringer("entity", evt.Entity),
			zap.Any("data", evt.Data),
		)
		if s.env.Observer != nil {
			s.env.Observer.Event(evt)
		}
	}
	if s.env.Observer != nil {
		s.env.Observer.Tick(elapsed)
	}
	s.env.World.Flush()

	summary, ended := ctx.Ended()
	if !ended {
		return nil
	}
	if s.env.Observer != nil {
		s.env.Observer.SessionEnded(summary, s.session.Scores)
	}
	return mode.GameEnded{Summary: summary}
}

func (s *Playing) Exit() {
	n := s.env.World.DestroyTagged(component.ScenePlaying)
	s.env.Log.Debug("playing scene cleared", zap.Int("entities", n))
	s.session = nil
}

// Session is the live session, or nil outside the playing mode.
func (s *Playing) Session() *system.Session {
	return s.session
}
