package common

import "fmt"

// Floor indexes a building level, counted from 0 at the bottom.
type Floor int

// Direction of a hall call.
type Direction int

const (
	DirUp Direction = iota
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// CarID identifies an elevator car. Stable for the whole run.
type CarID int

// PersonID identifies a simulated passenger. Assigned monotonically by the
// passenger model, never reused.
type PersonID int
