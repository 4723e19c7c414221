package mode

import (
	"fmt"
	"time"

	"github.com/milk9111/gravitywell/input"
	"go.uber.org/zap"
)

// Scene holds the hooks of one mode. Enter receives the state being entered
// so it can read data such as the game-over summary. Update returns the
// event it raised this tick, or nil. Exit must release everything the scene
// created.
type Scene interface {
	Enter(s State)
	Update(frame input.Frame, elapsed time.Duration) Event
	Exit()
}

// Controller drives the active scene and applies transitions. Quit input is
// handled here for every mode.
type Controller struct {
	scenes map[Mode]Scene
	state  State
	log    *zap.Logger
	done   bool
}

// NewController starts in Loading and runs its Enter hook.
func NewController(scenes map[Mode]Scene, log *zap.Logger) (*Controller, error) {
	for _, m := range []Mode{ModeLoading, ModeMainMenu, ModePlaying, ModeGameOver} {
		if scenes[m] == nil {
			return nil, fmt.Errorf("mode: no scene for %s", m)
		}
	}
	if log == nil {
		log = zap.NewNop()
	}
	c := &Controller{scenes: scenes, state: Loading{}, log: log}
	c.scenes[ModeLoading].Enter(c.state)
	c.log.Info("mode entered", zap.Stringer("mode", ModeLoading))
	return c, nil
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Mode() Mode {
	return c.state.Mode()
}

// Done reports whether a quit was requested.
func (c *Controller) Done() bool {
	return c.done
}

// Tick runs one update of the active scene and applies any event it raised.
func (c *Controller) Tick(frame input.Frame, elapsed time.Duration) {
	if c.done {
		return
	}
	if frame.Quit {
		c.Dispatch(QuitPressed{})
		return
	}
	if evt := c.scenes[c.state.Mode()].Update(frame, elapsed); evt != nil {
		c.Dispatch(evt)
	}
}

// Dispatch applies evt. An event the current mode does not accept is a
// scheduling bug and panics.
func (c *Controller) Dispatch(evt Event) {
	if c.done {
		return
	}
	next, effect, err := Transition(c.state, evt)
	if err != nil {
		panic(err)
	}

	if effect == EffectQuit {
		c.scenes[c.state.Mode()].Exit()
		c.done = true
		c.log.Info("quit requested", zap.Stringer("mode", c.state.Mode()))
		return
	}

	from := c.state.Mode()
	c.scenes[from].Exit()
	c.state = next
	c.scenes[next.Mode()].Enter(next)
	c.log.Info("mode changed",
		zap.Stringer("from", from),
		zap.Stringer("to", next.Mode()),
		zap.Stringer("event", evt),
	)
}
