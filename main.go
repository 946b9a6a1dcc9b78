// main.go
// Purpose: Process entry point. Parses startup parameters, loads the
// simulation tunables, wires the building model, passenger model and
// dispatcher together and runs the step loop. Handles shutdown on
// interrupt (Ctrl+C).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"strconv"

	"github.com/google/uuid"

	"elevsim/assigner"
	"elevsim/building"
	"elevsim/common"
	"elevsim/people"
)

// Defaults used when a positional argument is missing or malformed.
const (
	DEFAULT_FLOORS = 10
	DEFAULT_CARS   = 2
	DEFAULT_STEPS  = 2000
)

func main() {
	configPath := flag.String("config", "simulation.yaml", "path to the YAML tunables file")
	seed := flag.Int64("seed", 0, "fixed spawn RNG seed for reproducible runs (0 = time-seeded)")
	flag.Parse()

	args := flag.Args()
	if len(args) > 3 {
		fmt.Fprintln(os.Stderr, "Too many arguments.")
		fmt.Fprintln(os.Stderr, "Usage: elevsim [floors] [cars] [steps]")
		os.Exit(2)
	}

	floors := parsePositive(args, 0, "floors", DEFAULT_FLOORS)
	cars := parsePositive(args, 1, "cars", DEFAULT_CARS)
	steps := parsePositive(args, 2, "steps", DEFAULT_STEPS)

	cfg, err := common.LoadConfig(*configPath)
	if err != nil {
		log.Printf("config: %v (using defaults)", err)
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}

	runID := uuid.New()
	log.Printf("run %s: %d floors, %d cars, %d steps", runID, floors, cars, steps)

	// ctrl + c handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		cancel()
	}()

	sim := building.New(floors, cars)
	sim.SetSpeed(cfg.CarSpeed)
	crowd := people.New(common.Floor(floors), cfg.SpawnInterval, rng)
	var ctrl assigner.Controller = assigner.NearestCar{}

	runSim(ctx, cfg, sim, crowd, ctrl, steps, os.Stdout)

	spawned, delivered := crowd.Counts()
	log.Printf("run %s finished: %d passengers spawned, %d delivered", runID, spawned, delivered)
}

// parsePositive reads args[i] as a positive integer. Missing arguments use
// the default silently; malformed or non-positive values warn and use the
// default.
func parsePositive(args []string, i int, name string, def int) int {
	if i >= len(args) {
		return def
	}
	v, err := strconv.Atoi(args[i])
	if err != nil || v <= 0 {
		log.Printf("%s must be a positive integer, got %q (using %d)", name, args[i], def)
		return def
	}
	return v
}
