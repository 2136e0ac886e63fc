package engine

import (
	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/world"
)

// VictoryReason names why a match ended.
type VictoryReason int

const (
	ReasonArchonsEliminated VictoryReason = iota
	ReasonRoundLimitArchonCount
	ReasonRoundLimitTotalHealth
	ReasonRoundLimitIDTiebreak
)

// VictoryResult is returned by Engine.RunRound once a winner is decided.
type VictoryResult struct {
	Winner catalog.Team
	Reason VictoryReason
}

// livingArchonCount returns how many ARCHONs team currently has alive.
func livingArchonCount(w *world.World, team catalog.Team) int {
	n := 0
	for _, r := range w.AllObjects() {
		if r.Team == team && r.Type == catalog.Archon {
			n++
		}
	}
	return n
}

// checkArchonVictory implements the archon-elimination half of spec.md
// §4.7: "if both teams lose their last archon in the same round, the one
// whose last archon died later in emission order wins; otherwise the
// surviving team wins". It must run after reap, using this round's death
// event log (still in emission order) to break the simultaneous case.
func (e *Engine) checkArchonVictory(hadArchonsAtRoundStart map[catalog.Team]bool) *VictoryResult {
	w := e.World
	aAlive := livingArchonCount(w, catalog.TeamA) > 0
	bAlive := livingArchonCount(w, catalog.TeamB) > 0

	if aAlive && bAlive {
		return nil
	}
	if !aAlive && bAlive {
		if hadArchonsAtRoundStart[catalog.TeamA] {
			return &VictoryResult{Winner: catalog.TeamB, Reason: ReasonArchonsEliminated}
		}
		return nil
	}
	if aAlive && !bAlive {
		if hadArchonsAtRoundStart[catalog.TeamB] {
			return &VictoryResult{Winner: catalog.TeamA, Reason: ReasonArchonsEliminated}
		}
		return nil
	}

	// Both sides currently have zero living archons. If neither team ever
	// fielded one, there is nothing to adjudicate here (e.g. an
	// archon-less scenario) rather than a spurious win by emission-order
	// tiebreak.
	if !hadArchonsAtRoundStart[catalog.TeamA] && !hadArchonsAtRoundStart[catalog.TeamB] {
		return nil
	}

	// Both eliminated this round: the team whose last archon died LATER in
	// this round's emission order wins.
	lastDeathIndex := map[catalog.Team]int{}
	for i, ev := range w.PeekEvents() {
		if ev.Kind != world.EventDeath {
			continue
		}
		data, ok := ev.Data.(world.DeathEventData)
		if !ok || data.Type != catalog.Archon {
			continue
		}
		lastDeathIndex[data.Team] = i
	}
	if lastDeathIndex[catalog.TeamB] > lastDeathIndex[catalog.TeamA] {
		return &VictoryResult{Winner: catalog.TeamB, Reason: ReasonArchonsEliminated}
	}
	return &VictoryResult{Winner: catalog.TeamA, Reason: ReasonArchonsEliminated}
}

// checkRoundLimitVictory applies the spec.md §4.7 tiebreak once the match
// reaches its round limit: archon count desc, then total health desc, then
// lowest robot id asc (spec.md §9 Open Questions, resolved in SPEC_FULL).
func (e *Engine) checkRoundLimitVictory() *VictoryResult {
	w := e.World
	if w.Round < w.GameMap.Rounds {
		return nil
	}

	archons := map[catalog.Team]int{catalog.TeamA: 0, catalog.TeamB: 0}
	health := map[catalog.Team]float64{catalog.TeamA: 0, catalog.TeamB: 0}
	lowestID := map[catalog.Team]uint32{}
	for _, r := range w.AllObjects() {
		if !r.Team.IsPlayable() {
			continue
		}
		if r.Type == catalog.Archon {
			archons[r.Team]++
		}
		health[r.Team] += r.Health
		if cur, ok := lowestID[r.Team]; !ok || uint32(r.ID) < cur {
			lowestID[r.Team] = uint32(r.ID)
		}
	}

	if archons[catalog.TeamA] != archons[catalog.TeamB] {
		if archons[catalog.TeamA] > archons[catalog.TeamB] {
			return &VictoryResult{Winner: catalog.TeamA, Reason: ReasonRoundLimitArchonCount}
		}
		return &VictoryResult{Winner: catalog.TeamB, Reason: ReasonRoundLimitArchonCount}
	}
	if health[catalog.TeamA] != health[catalog.TeamB] {
		if health[catalog.TeamA] > health[catalog.TeamB] {
			return &VictoryResult{Winner: catalog.TeamA, Reason: ReasonRoundLimitTotalHealth}
		}
		return &VictoryResult{Winner: catalog.TeamB, Reason: ReasonRoundLimitTotalHealth}
	}
	if lowestID[catalog.TeamA] <= lowestID[catalog.TeamB] {
		return &VictoryResult{Winner: catalog.TeamA, Reason: ReasonRoundLimitIDTiebreak}
	}
	return &VictoryResult{Winner: catalog.TeamB, Reason: ReasonRoundLimitIDTiebreak}
}
