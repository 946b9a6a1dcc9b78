package main

import (
	"context"
	"io"
	"math/rand"
	"testing"

	"elevsim/assigner"
	"elevsim/building"
	"elevsim/common"
	"elevsim/people"
)

func TestPersonActionToCommand(t *testing.T) {
	cmd := personActionToCommand(people.CallElevator{Floor: 3, Dir: common.DirUp})
	hall, ok := cmd.(building.PressHallButton)
	if !ok {
		t.Fatalf("got %T, want PressHallButton", cmd)
	}
	if hall.Floor != 3 || hall.Dir != common.DirUp {
		t.Errorf("got %+v", hall)
	}

	cmd = personActionToCommand(people.PressCarButton{Car: 1, Floor: 4})
	press, ok := cmd.(building.PressCarButton)
	if !ok {
		t.Fatalf("got %T, want PressCarButton", cmd)
	}
	if press.Car != 1 || press.Floor != 4 {
		t.Errorf("got %+v", press)
	}
}

func TestParsePositive(t *testing.T) {
	args := []string{"12", "abc", "-3"}

	if got := parsePositive(args, 0, "floors", 10); got != 12 {
		t.Errorf("valid arg: got %d, want 12", got)
	}
	if got := parsePositive(args, 1, "cars", 2); got != 2 {
		t.Errorf("malformed arg: got %d, want default 2", got)
	}
	if got := parsePositive(args, 2, "steps", 2000); got != 2000 {
		t.Errorf("negative arg: got %d, want default 2000", got)
	}
	if got := parsePositive(args, 3, "steps", 2000); got != 2000 {
		t.Errorf("missing arg: got %d, want default 2000", got)
	}
}

func TestNoOpStepEmitsNoCommands(t *testing.T) {
	// 3 floors, 1 car, nothing pressed, spawn interval far away: one full
	// decision step produces zero commands from both the passenger
	// translation and the dispatcher.
	sim := building.New(3, 1)
	crowd := people.New(3, 1000, rand.New(rand.NewSource(1)))

	actions := crowd.Tick(0.1, sim.State())
	if len(actions) != 0 {
		t.Errorf("passenger model emitted %d actions", len(actions))
	}
	cmds := assigner.NearestCar{}.Decide(sim.State())
	if len(cmds) != 0 {
		t.Errorf("dispatcher emitted %d commands", len(cmds))
	}
}

func TestRunSimDeliversPassengers(t *testing.T) {
	cfg := common.DefaultConfig()
	cfg.StepDelayMs = 0
	cfg.SpawnInterval = 1.0

	sim := building.New(5, 2)
	crowd := people.New(5, cfg.SpawnInterval, rand.New(rand.NewSource(42)))

	runSim(context.Background(), cfg, sim, crowd, assigner.NearestCar{}, 3000, io.Discard)

	spawned, delivered := crowd.Counts()
	if spawned == 0 {
		t.Fatal("no passengers spawned")
	}
	if delivered == 0 {
		t.Fatal("no passengers delivered")
	}
}

func TestRunSimHonorsCancellation(t *testing.T) {
	cfg := common.DefaultConfig()
	cfg.StepDelayMs = 0

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sim := building.New(3, 1)
	crowd := people.New(3, 0.1, rand.New(rand.NewSource(1)))

	runSim(ctx, cfg, sim, crowd, assigner.NearestCar{}, 1000, io.Discard)

	if len(crowd.People()) != 0 {
		t.Error("cancelled run still advanced the simulation")
	}
}
