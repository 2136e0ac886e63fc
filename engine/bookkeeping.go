package engine

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/geometry"
	"github.com/nicoberrocal/battlecore/world"
)

// playableTeams lists the two teams that own resources/memory; iterated in
// this fixed order wherever results must merge deterministically.
var playableTeams = []catalog.Team{catalog.TeamA, catalog.TeamB}

// teamBookkeeping scans team's living units' sight and computes its parts
// income for this round. It touches no state outside team's own slots, so
// it is safe to run concurrently with the other team's pass (spec.md §4.2,
// §4.7).
func (e *Engine) teamBookkeeping(team catalog.Team) {
	w := e.World
	mem := w.Memory(team)
	ts := w.Team(team)
	if ts == nil {
		return
	}

	livingArchons, livingNonArchons := 0, 0
	for _, r := range w.AllObjects() {
		if r.Team != team {
			continue
		}
		if r.Type == catalog.Archon {
			livingArchons++
		} else {
			livingNonArchons++
		}

		d, _ := catalog.Lookup(r.Type)
		sightRadius := d.SensorRadiusSquared
		for _, loc := range tilesWithin(w.GameMap.AllLocations(), r.Location, sightRadius) {
			mem.RecordRubble(loc, w.Rubble(loc))
			mem.RecordParts(loc, w.Parts(loc))
		}
	}

	gain := e.World.Constants.ArchonPartIncome*float64(livingArchons) - e.World.Constants.PartIncomeUnitPenalty*float64(livingNonArchons)
	if gain > 0 {
		ts.Resources += gain
	}
}

// tilesWithin filters all to those within radiusSquared of center. A
// full-map scan per robot is the simplest implementation that stays
// correct for the modest map sizes this engine targets; a quadtree or
// grid-bucket index would only pay off on much larger boards.
func tilesWithin(all []geometry.MapLocation, center geometry.MapLocation, radiusSquared int64) []geometry.MapLocation {
	out := make([]geometry.MapLocation, 0, 32)
	for _, loc := range all {
		if center.DistanceSquaredTo(loc) <= radiusSquared {
			out = append(out, loc)
		}
	}
	return out
}

// runBookkeeping runs teamBookkeeping for both playable teams concurrently
// via errgroup, joining before the round continues so parallelism never
// leaks into simulation order (spec.md §9 "Determinism").
func (e *Engine) runBookkeeping(ctx context.Context) error {
	g, _ := errgroup.WithContext(ctx)
	for _, team := range playableTeams {
		team := team
		g.Go(func() error {
			e.teamBookkeeping(team)
			return nil
		})
	}
	return g.Wait()
}

// tickResearch advances every playable team's in-progress research and
// emits completion events, in team-ascending order.
func (e *Engine) tickResearch() {
	for _, team := range playableTeams {
		ts := e.World.Team(team)
		if ts == nil {
			continue
		}
		for _, upg := range ts.TickResearch() {
			e.World.AppendEvent(world.EventResearch, world.ResearchEventData{Team: team, Upgrade: upg, Started: false})
		}
	}
}

// tickBuilds advances every robot's in-progress spawn/build by one round,
// releasing the tile reservation on completion.
func (e *Engine) tickBuilds() {
	for _, r := range e.World.AllObjects() {
		if r.Build == nil {
			continue
		}
		r.Build.RoundsRemaining--
		if r.Build.RoundsRemaining <= 0 {
			e.World.ReleaseTile(r.Location)
			r.Build = nil
		}
	}
}

// reportMetrics pushes the round's observable counts to e.Metrics.
func (e *Engine) reportMetrics(eventCount int) {
	for _, team := range playableTeams {
		count := 0
		for _, r := range e.World.AllObjects() {
			if r.Team == team {
				count++
			}
		}
		e.Metrics.RobotsAlive(team.String(), count)
	}
	e.Metrics.RoundsProcessed(1)
	e.Metrics.SignalsEmitted(eventCount)
}
