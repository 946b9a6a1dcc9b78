// assigner.go
// Purpose: Dispatch policy. Reads a building state and decides which cars
// should move where. Stateless; alternative policies plug in behind the
// Controller interface.
package assigner

import (
	"math"

	"elevsim/building"
	"elevsim/common"
)

// Controller converts an observed building state into car assignment
// commands. The step loop holds this interface, never a concrete policy, so
// a zone-based or load-balanced policy can be swapped in without touching
// the other components.
type Controller interface {
	Decide(state *building.State) []building.Command
}

// NearestCar is the default policy. Each floor with a pressed hall button is
// assigned the closest idle car, unless some car already serves it. Every
// pressed car button re-issues a move for its own car on every call, and
// those commands come after the hall assignments: when both passes pick the
// same car in one step, applying in emission order makes the interior
// button win.
type NearestCar struct{}

func (NearestCar) Decide(state *building.State) []building.Command {
	var commands []building.Command

	for fi := range state.Floors {
		fs := &state.Floors[fi]
		if !fs.HallUp && !fs.HallDown {
			continue
		}
		if len(state.Cars) == 0 {
			break
		}
		if alreadyServed(state, fs.Floor) {
			continue
		}

		// Closest idle car wins; ties go to the lower car index.
		best := -1
		bestDistance := math.MaxFloat64
		for ci := range state.Cars {
			car := &state.Cars[ci]
			if car.Target != nil {
				continue
			}
			d := math.Abs(car.Position - float64(fs.Floor))
			if d < bestDistance {
				bestDistance = d
				best = ci
			}
		}
		if best >= 0 {
			commands = append(commands, building.MoveCarTo{
				Car:   state.Cars[best].ID,
				Floor: fs.Floor,
			})
		}
		// No idle car: the request stays pending for the next step.
	}

	for ci := range state.Cars {
		car := &state.Cars[ci]
		for fi, pressed := range car.Buttons {
			if !pressed {
				continue
			}
			commands = append(commands, building.MoveCarTo{
				Car:   car.ID,
				Floor: common.Floor(fi),
			})
		}
	}

	return commands
}

// alreadyServed reports whether some car is targeting the floor or is
// sitting there with its door open.
func alreadyServed(state *building.State, floor common.Floor) bool {
	for i := range state.Cars {
		car := &state.Cars[i]
		if car.Target != nil && *car.Target == floor {
			return true
		}
		if car.DoorOpen && car.AtFloor(floor) {
			return true
		}
	}
	return false
}
