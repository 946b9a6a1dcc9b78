package building

import "elevsim/common"

// Command is the only way building state gets mutated. Commands referring to
// an unknown car or floor are absorbed as no-ops when applied.
type Command interface {
	isCommand()
}

// PressHallButton registers an up/down call at a floor.
type PressHallButton struct {
	Floor common.Floor
	Dir   common.Direction
}

// PressCarButton registers a destination inside a specific car.
type PressCarButton struct {
	Car   common.CarID
	Floor common.Floor
}

// MoveCarTo commits a car to a target floor and closes its door. Any prior
// target is overwritten unconditionally, so a car in transit is retargeted
// immediately.
type MoveCarTo struct {
	Car   common.CarID
	Floor common.Floor
}

func (PressHallButton) isCommand() {}
func (PressCarButton) isCommand()  {}
func (MoveCarTo) isCommand()       {}
