package building

import (
	"math"

	"elevsim/common"
)

// FloorState holds the hall call buttons for one floor.
type FloorState struct {
	Floor    common.Floor
	HallUp   bool
	HallDown bool
}

// CarState is the full state of one elevator car. Position is continuous so
// locations in transit between integer floors are representable. At most one
// target floor is held at a time; nil means the car is idle.
type CarState struct {
	ID       common.CarID
	Position float64
	Target   *common.Floor
	DoorOpen bool
	Buttons  []bool // destination buttons, indexed by floor, length == floor count
}

// AtFloor reports whether the car is physically at the given floor, meaning
// its continuous position rounds to it. Passengers and the dispatcher both
// perceive arrival through this rounding.
func (c *CarState) AtFloor(f common.Floor) bool {
	return common.Floor(math.Round(c.Position)) == f
}

// State combines all floor and car state. It is handed by reference to the
// passenger model, the dispatcher and the renderer each step; only Sim may
// mutate it.
type State struct {
	Floors []FloorState
	Cars   []CarState
}

// Clone returns a deep copy of the state, button vectors included.
func (s *State) Clone() *State {
	out := &State{
		Floors: make([]FloorState, len(s.Floors)),
		Cars:   make([]CarState, len(s.Cars)),
	}
	copy(out.Floors, s.Floors)
	for i, car := range s.Cars {
		cp := car
		if car.Target != nil {
			t := *car.Target
			cp.Target = &t
		}
		cp.Buttons = common.CopyBools(car.Buttons)
		out.Cars[i] = cp
	}
	return out
}
