// Command battlesim runs a tiny fixed scenario through the Round Engine
// and prints the resulting event log. It exists as a smoke test for the
// core packages; the real sandbox (compiling and instrumenting player
// code, a replay writer, a viewer) is out of this module's scope.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/config"
	"github.com/nicoberrocal/battlecore/control"
	"github.com/nicoberrocal/battlecore/engine"
	"github.com/nicoberrocal/battlecore/gamemap"
	"github.com/nicoberrocal/battlecore/geometry"
	"github.com/nicoberrocal/battlecore/robot"
	"github.com/nicoberrocal/battlecore/world"
)

func main() {
	configPath := flag.String("config", "", "optional constants file (any viper-supported format)")
	rounds := flag.Int("rounds", 20, "number of rounds to simulate")
	flag.Parse()

	constants, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "battlesim: load config:", err)
		os.Exit(1)
	}

	gm := buildScenario(*rounds)
	w := world.New(gm, constants)
	eng := engine.New(w, map[catalog.Team]engine.PlayerFunc{
		catalog.TeamA: archonHoldController,
		catalog.TeamB: soldierAdvanceController,
	})

	ctx := context.Background()
	for round := 0; round < *rounds; round++ {
		events, result, err := eng.RunRound(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, "battlesim: round", round, err)
			os.Exit(1)
		}
		for _, ev := range events {
			slog.Info("event", "round", ev.Round, "kind", kindName(ev.Kind), "data", ev.Data)
		}
		if result != nil {
			fmt.Printf("match over at round %d: %s wins (%v)\n", w.Round, result.Winner, result.Reason)
			return
		}
	}
	fmt.Printf("reached round limit %d with no decisive winner\n", *rounds)
}

func kindName(k world.EventKind) string {
	names := map[world.EventKind]string{
		world.EventMovement:            "MOVEMENT",
		world.EventAttack:              "ATTACK",
		world.EventSpawn:               "SPAWN",
		world.EventMine:                "MINE",
		world.EventResearch:            "RESEARCH",
		world.EventCast:                "CAST",
		world.EventIndicatorDot:        "INDICATOR_DOT",
		world.EventIndicatorLine:       "INDICATOR_LINE",
		world.EventIndicatorString:     "INDICATOR_STRING",
		world.EventMatchObservation:    "MATCH_OBSERVATION",
		world.EventLocationSupplyChange: "LOCATION_SUPPLY_CHANGE",
		world.EventDeath:               "DEATH",
	}
	if name, ok := names[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// buildScenario constructs a small 10x10 map: an ARCHON for team A at the
// origin, a SOLDIER for team B nearby, and a modest parts scatter.
func buildScenario(rounds int) *gamemap.GameMap {
	const size = 10
	terrain := make([][]gamemap.TerrainTile, size)
	rubble := make([][]float64, size)
	parts := make([][]float64, size)
	for x := 0; x < size; x++ {
		terrain[x] = make([]gamemap.TerrainTile, size)
		rubble[x] = make([]float64, size)
		parts[x] = make([]float64, size)
	}
	parts[1][0] = 30
	parts[0][1] = 30

	initial := []gamemap.InitialRobot{
		{Type: catalog.Archon, Team: catalog.TeamA, Location: geometry.New(0, 0)},
		{Type: catalog.Soldier, Team: catalog.TeamB, Location: geometry.New(1, 1)},
	}

	return gamemap.New(size, size, 0, 0, rounds, 1, terrain, rubble, parts, nil, initial, nil)
}

func archonHoldController(id robot.ID, rc *control.Handle) uint32 {
	_ = id
	_ = rc
	return 0
}

func soldierAdvanceController(id robot.ID, rc *control.Handle) uint32 {
	_ = id
	if rc.Location().Equals(geometry.New(1, 1)) {
		_ = rc.Move(geometry.East)
	}
	return 0
}
