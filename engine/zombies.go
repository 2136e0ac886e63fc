package engine

import (
	"log/slog"

	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/gamemap"
	"github.com/nicoberrocal/battlecore/geometry"
	"github.com/nicoberrocal/battlecore/robot"
	"github.com/nicoberrocal/battlecore/world"
)

// OverflowPolicy decides what happens to a scheduled zombie spawn that has
// no free adjacent tile (spec.md §4.8, §9 Open Questions: "pluggable
// policy"). remaining is how many of entryType were left unplaced.
type OverflowPolicy interface {
	OnOverflow(den *robot.Robot, entryType catalog.RobotType, remaining int)
}

// DiscardOverflow is the conservative default: drop the unplaced spawns and
// log a warning, per spec.md §9 "the conservative rule is 'discard with
// log'".
type DiscardOverflow struct {
	Logger *slog.Logger
}

func (p DiscardOverflow) OnOverflow(den *robot.Robot, entryType catalog.RobotType, remaining int) {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("zombie spawn overflow discarded",
		"den", den.ID, "type", entryType, "remaining", remaining)
}

// spawnZombies implements spec.md §4.8: at a scheduled round, spawn the
// listed types around each living zombie den at deterministically chosen
// free adjacent tiles, scanning in the fixed NORTH..NORTH_WEST order. When
// more free tiles exist than spawns for a den this round, the engine's
// round-seeded RNG breaks the tie among which free tiles get used instead
// of always favoring the scan order.
func (e *Engine) spawnZombies() {
	w := e.World
	entries := w.GameMap.ZombieSpawns.EntriesAt(w.Round)
	if len(entries) == 0 {
		return
	}

	var dens []*robot.Robot
	for _, r := range w.AllObjects() {
		if r.Type == catalog.ZombieDen {
			dens = append(dens, r)
		}
	}

	for _, den := range dens {
		freeTiles := make([]geometry.MapLocation, 0, len(geometry.AllDirections))
		for _, dir := range geometry.AllDirections {
			loc := den.Location.Add(dir)
			if w.CanMove(loc, catalog.StandardZombie) {
				freeTiles = append(freeTiles, loc)
			}
		}

		totalSpawns := 0
		for _, entry := range entries {
			totalSpawns += entry.Count
		}
		if len(freeTiles) > totalSpawns && totalSpawns > 0 {
			rng := RoundRNG(w.GameMap.Seed, w.Round)
			rng.Shuffle(len(freeTiles), func(i, j int) { freeTiles[i], freeTiles[j] = freeTiles[j], freeTiles[i] })
		}

		next := 0
		mult := gamemap.OutbreakMultiplier(w.Round)
		for _, entry := range entries {
			data, ok := catalog.Lookup(entry.Type)
			if !ok {
				continue
			}
			placed := 0
			for placed < entry.Count && next < len(freeTiles) {
				loc := freeTiles[next]
				next++
				z := robot.New(w.NextID(), entry.Type, catalog.TeamZombie, loc, data.MaxHealth*mult)
				w.PlaceNewRobot(z)
				w.AppendEvent(world.EventSpawn, world.SpawnEventData{Parent: den.ID, Child: z.ID, Type: entry.Type, Loc: loc})
				placed++
			}
			if placed < entry.Count {
				e.Overflow.OnOverflow(den, entry.Type, entry.Count-placed)
			}
		}
	}
}
