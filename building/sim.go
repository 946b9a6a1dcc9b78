// sim.go
// Purpose: The building model. Owns the authoritative floor and car state;
// all mutation funnels through Apply (commands) and Tick (physics).
package building

import (
	"math"

	"elevsim/common"
)

// Cars closer than this to their target are treated as arrived.
const arriveThreshold = 0.01

// Sim owns the authoritative building state. Other components only ever
// read the state between mutation points.
type Sim struct {
	state State
	speed float64
}

// New builds a Sim with floorCount floors, both hall buttons clear, and
// carCount cars at floor 0 with closed doors, no target and all destination
// buttons unset. Non-positive counts simply yield empty collections.
func New(floorCount, carCount int) *Sim {
	s := &Sim{speed: 1.0}
	for i := 0; i < floorCount; i++ {
		s.state.Floors = append(s.state.Floors, FloorState{Floor: common.Floor(i)})
	}
	for i := 0; i < carCount; i++ {
		s.state.Cars = append(s.state.Cars, CarState{
			ID:      common.CarID(i),
			Buttons: make([]bool, floorCount),
		})
	}
	return s
}

// SetSpeed overrides the constant car velocity (floors per simulated
// second). Non-positive values are ignored.
func (s *Sim) SetSpeed(v float64) {
	if v > 0 {
		s.speed = v
	}
}

// State returns the authoritative building state. Read-only to callers.
func (s *Sim) State() *State {
	return &s.state
}

// Apply executes a single command against the building state. Out-of-range
// car or floor references are absorbed silently; Apply never fails.
func (s *Sim) Apply(cmd Command) {
	switch c := cmd.(type) {
	case PressHallButton:
		if int(c.Floor) < 0 || int(c.Floor) >= len(s.state.Floors) {
			return
		}
		switch c.Dir {
		case common.DirUp:
			s.state.Floors[c.Floor].HallUp = true
		case common.DirDown:
			s.state.Floors[c.Floor].HallDown = true
		}

	case PressCarButton:
		car := s.car(c.Car)
		if car == nil {
			return
		}
		if int(c.Floor) < 0 || int(c.Floor) >= len(car.Buttons) {
			return
		}
		car.Buttons[c.Floor] = true

	case MoveCarTo:
		car := s.car(c.Car)
		if car == nil {
			return
		}
		f := c.Floor
		car.Target = &f
		car.DoorOpen = false
	}
}

// Tick advances the physical model by dt simulated seconds. Cars with a
// target move toward it at constant speed; a car within arriveThreshold of
// its target snaps to the integer floor, drops the target, opens its door,
// and in the same step clears the floor's hall buttons and its own button
// for that floor. Cars without a target do not move and keep their door
// state, so doors stay open until a new target closes them.
func (s *Sim) Tick(dt float64) {
	for i := range s.state.Cars {
		car := &s.state.Cars[i]
		if car.Target == nil {
			continue
		}
		target := *car.Target
		diff := float64(target) - car.Position
		if math.Abs(diff) < arriveThreshold {
			car.Position = float64(target)
			car.Target = nil
			car.DoorOpen = true
			if int(target) >= 0 && int(target) < len(s.state.Floors) {
				s.state.Floors[target].HallUp = false
				s.state.Floors[target].HallDown = false
			}
			if int(target) >= 0 && int(target) < len(car.Buttons) {
				car.Buttons[target] = false
			}
		} else {
			step := s.speed * dt
			if diff < 0 {
				step = -step
			}
			car.Position += step
		}
	}
}

func (s *Sim) car(id common.CarID) *CarState {
	if int(id) < 0 || int(id) >= len(s.state.Cars) {
		return nil
	}
	return &s.state.Cars[id]
}
