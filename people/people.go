// people.go
// Purpose: The passenger model. Owns the passenger population, spawns new
// passengers on a timer, and steps each passenger's decision state machine
// against a read-only view of the building. Emits intents; never mutates
// building state itself.
package people

import (
	"fmt"
	"math/rand"
	"time"

	"elevsim/building"
	"elevsim/common"
)

// PersonState is a passenger's life-cycle state.
type PersonState int

const (
	StateNew PersonState = iota
	StateWaiting
	StateRiding
	StateDone
)

func (ps PersonState) String() string {
	switch ps {
	case StateNew:
		return "new"
	case StateWaiting:
		return "waiting"
	case StateRiding:
		return "riding"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("PersonState(%d)", int(ps))
	}
}

// Action is an intent a passenger emits toward the building. The step loop
// translates actions into building commands.
type Action interface {
	isAction()
}

// CallElevator asks for service at a floor in a direction (hall button).
type CallElevator struct {
	Floor common.Floor
	Dir   common.Direction
}

// PressCarButton registers the passenger's destination inside the boarded car.
type PressCarButton struct {
	Car   common.CarID
	Floor common.Floor
}

func (CallElevator) isAction()   {}
func (PressCarButton) isAction() {}

// Person is one simulated passenger. InCar is an identifier into the
// building's car collection, not an owning reference; the car's door and
// position stay authoritative in the building model.
type Person struct {
	ID           common.PersonID
	CurrentFloor common.Floor
	TargetFloor  common.Floor
	State        PersonState
	InCar        *common.CarID
}

// Sim owns all passengers for the run. Passengers are never removed, even
// once done, so the history is available for reporting.
type Sim struct {
	nextID        common.PersonID
	numFloors     common.Floor
	spawnTimer    float64
	spawnInterval float64
	rng           *rand.Rand
	people        []*Person
}

// New builds a passenger model for a building with numFloors floors. rng is
// the source for spawn floors; pass a seeded source for deterministic runs,
// or nil for a time-seeded one.
func New(numFloors common.Floor, spawnInterval float64, rng *rand.Rand) *Sim {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sim{
		numFloors:     numFloors,
		spawnInterval: spawnInterval,
		rng:           rng,
	}
}

// People returns every passenger spawned so far, in spawn order.
func (s *Sim) People() []*Person {
	return s.people
}

// Counts reports how many passengers have been spawned and how many have
// reached their destination.
func (s *Sim) Counts() (spawned, delivered int) {
	spawned = len(s.people)
	for _, p := range s.people {
		if p.State == StateDone {
			delivered++
		}
	}
	return spawned, delivered
}

// Tick advances the spawn timer and every passenger's state machine by one
// step, reading (never writing) the building state b. Passengers spawned
// within this call are evaluated in the same call. The returned actions are
// in passenger order.
func (s *Sim) Tick(dt float64, b *building.State) []Action {
	var actions []Action

	s.spawnTimer += dt
	if s.spawnTimer >= s.spawnInterval {
		s.spawnTimer = 0
		s.spawn()
	}

	for _, p := range s.people {
		switch p.State {
		case StateNew:
			// Skip the hall call if a door-open car is already here.
			if !carAtFloor(b, p.CurrentFloor) {
				dir := common.DirDown
				if p.TargetFloor > p.CurrentFloor {
					dir = common.DirUp
				}
				actions = append(actions, CallElevator{Floor: p.CurrentFloor, Dir: dir})
			}
			p.State = StateWaiting

		case StateWaiting:
			if car := boardableCar(b, p.CurrentFloor); car != nil {
				actions = append(actions, PressCarButton{Car: car.ID, Floor: p.TargetFloor})
				id := car.ID
				p.InCar = &id
				p.State = StateRiding
			}

		case StateRiding:
			if p.InCar == nil {
				break
			}
			if int(*p.InCar) < 0 || int(*p.InCar) >= len(b.Cars) {
				break
			}
			car := &b.Cars[*p.InCar]
			if car.DoorOpen && car.AtFloor(p.TargetFloor) {
				p.CurrentFloor = p.TargetFloor
				p.InCar = nil
				p.State = StateDone
			}

		case StateDone:
			// Terminal. Kept for reporting.
		}
	}

	return actions
}

// spawn creates one passenger on a random floor with a random distinct
// target floor. A building with fewer than two floors cannot satisfy the
// distinct-target guarantee, so nothing spawns there.
func (s *Sim) spawn() {
	if s.numFloors < 2 {
		return
	}
	start := common.Floor(s.rng.Intn(int(s.numFloors)))
	target := common.Floor(s.rng.Intn(int(s.numFloors)))
	for target == start {
		target = common.Floor(s.rng.Intn(int(s.numFloors)))
	}
	s.people = append(s.people, &Person{
		ID:           s.nextID,
		CurrentFloor: start,
		TargetFloor:  target,
		State:        StateNew,
	})
	s.nextID++
}

func carAtFloor(b *building.State, f common.Floor) bool {
	return boardableCar(b, f) != nil
}

// boardableCar returns the first car that is door-open and physically at
// the floor, or nil.
func boardableCar(b *building.State, f common.Floor) *building.CarState {
	for i := range b.Cars {
		car := &b.Cars[i]
		if !car.DoorOpen {
			continue
		}
		if car.AtFloor(f) {
			return car
		}
	}
	return nil
}
