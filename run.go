// run.go
// Purpose: The simulation step loop. Each step asks the passenger model for
// intents, translates them into commands, lets the dispatcher decide, applies
// everything to the building model in order, advances the physical clock and
// renders. Pacing is wall-clock only and carries no simulation semantics.
package main

import (
	"context"
	"io"
	"time"

	"elevsim/assigner"
	"elevsim/building"
	"elevsim/common"
	"elevsim/people"
)

// runSim drives the whole simulation for the given number of steps, or until
// ctx is cancelled between steps. All mutation goes through sim.Apply and
// sim.Tick; passenger intents are applied before the dispatcher looks at the
// building, and dispatcher commands are applied in emission order so
// interior-button moves override hall assignments for the same car.
func runSim(
	ctx context.Context,
	cfg common.Config,
	sim *building.Sim,
	crowd *people.Sim,
	ctrl assigner.Controller,
	steps int,
	out io.Writer,
) {
	delay := time.Duration(cfg.StepDelayMs) * time.Millisecond

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		for _, act := range crowd.Tick(cfg.Timestep, sim.State()) {
			if cmd := personActionToCommand(act); cmd != nil {
				sim.Apply(cmd)
			}
		}

		for _, cmd := range ctrl.Decide(sim.State()) {
			sim.Apply(cmd)
		}

		sim.Tick(cfg.Timestep)

		render(out, sim.State(), crowd.People())

		if delay > 0 {
			time.Sleep(delay)
		}
	}
}

// personActionToCommand translates a passenger intent into the building
// command that realizes it.
func personActionToCommand(act people.Action) building.Command {
	switch a := act.(type) {
	case people.CallElevator:
		return building.PressHallButton{Floor: a.Floor, Dir: a.Dir}
	case people.PressCarButton:
		return building.PressCarButton{Car: a.Car, Floor: a.Floor}
	}
	return nil
}
