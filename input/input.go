package input

// Ship holds the held controls for one player this tick.
type Ship struct {
	RotateLeft  bool
	RotateRight bool
	Thrust      bool
}

// Frame is the logical input for one tick. Start, Confirm and Quit are edge
// triggered: they are true only on the tick the action happened.
type Frame struct {
	Players [2]Ship
	Start   bool
	Confirm bool
	Quit    bool
}

// Player returns the controls for id, or no input for unknown ids.
func (f Frame) Player(id int) Ship {
	if id < 0 || id >= len(f.Players) {
		return Ship{}
	}
	return f.Players[id]
}

// Merge ORs every action of other into f.
func (f Frame) Merge(other Frame) Frame {
	for i := range f.Players {
		f.Players[i].RotateLeft = f.Players[i].RotateLeft || other.Players[i].RotateLeft
		f.Players[i].RotateRight = f.Players[i].RotateRight || other.Players[i].RotateRight
		f.Players[i].Thrust = f.Players[i].Thrust || other.Players[i].Thrust
	}
	f.Start = f.Start || other.Start
	f.Confirm = f.Confirm || other.Confirm
	f.Quit = f.Quit || other.Quit
	return f
}
