// render.go
// Purpose: Text rendering of the building state to a terminal. Reporting
// only; nothing here feeds back into the simulation.
package main

import (
	"fmt"
	"io"
	"strings"

	"elevsim/building"
	"elevsim/people"
)

// render prints one frame: every floor from the top down with its hall
// button glyphs, the count of passengers waiting there, and a cell per car
// showing id and rider count when the car is physically on that floor.
func render(w io.Writer, state *building.State, persons []*people.Person) {
	waiting := make([]int, len(state.Floors))
	riding := make([]int, len(state.Cars))

	for _, p := range persons {
		switch p.State {
		case people.StateWaiting:
			if int(p.CurrentFloor) < len(waiting) {
				waiting[p.CurrentFloor]++
			}
		case people.StateRiding:
			if p.InCar != nil && int(*p.InCar) < len(riding) {
				riding[*p.InCar]++
			}
		}
	}

	for fi := len(state.Floors) - 1; fi >= 0; fi-- {
		fs := &state.Floors[fi]

		up := '.'
		if fs.HallUp {
			up = '^'
		}
		down := '.'
		if fs.HallDown {
			down = 'v'
		}

		cells := make([]string, 0, len(state.Cars))
		for ci := range state.Cars {
			car := &state.Cars[ci]
			if car.AtFloor(fs.Floor) {
				cells = append(cells, fmt.Sprintf("%d(%d)", car.ID, riding[ci]))
			} else {
				cells = append(cells, "  . ")
			}
		}

		fmt.Fprintf(w, "Floor: %d [%c%c] Waiting: %d | %s\n",
			fs.Floor, up, down, waiting[fi], strings.Join(cells, " "))
	}

	fmt.Fprintln(w)
}
