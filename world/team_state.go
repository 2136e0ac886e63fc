package world

import "github.com/nicoberrocal/battlecore/catalog"

// TeamMemorySize is the length of the long-lived team memory array
// (spec.md §3 "teamMemory: array[N] of i64").
const TeamMemorySize = 64

// TeamState is the per-team ambient record: resources, upgrades, team
// memory, and the handful of running counters the spec names (commander
// spawn count, hasCommander, robotCounts). Applies only to playable teams
// (A, B); NEUTRAL and ZOMBIE never get a TeamState.
type TeamState struct {
	Resources float64
	Upgrades  map[catalog.Upgrade]bool

	CommanderSpawnedCount uint32
	HasCommander          bool

	RobotCounts map[catalog.RobotType]uint32

	teamMemory    [TeamMemorySize]int64
	oldTeamMemory [TeamMemorySize]int64 // snapshot at round start

	research map[catalog.Upgrade]*researchState
}

type researchState struct {
	roundsRemaining int
}

// NewTeamState returns a team state with the map's initial parts balance.
func NewTeamState(initialResources float64) *TeamState {
	return &TeamState{
		Resources:   initialResources,
		Upgrades:    make(map[catalog.Upgrade]bool),
		RobotCounts: make(map[catalog.RobotType]uint32),
		research:    make(map[catalog.Upgrade]*researchState),
	}
}

// SnapshotRoundStart captures teamMemory into oldTeamMemory. The Round
// Engine calls this once per team at the start of every round, before any
// robot acts (spec.md §4.3 "getTeamMemory... returns the snapshot captured
// at the start of the round").
func (t *TeamState) SnapshotRoundStart() {
	t.oldTeamMemory = t.teamMemory
}

// GetTeamMemory returns a defensive copy of the round-start snapshot.
func (t *TeamState) GetTeamMemory() [TeamMemorySize]int64 {
	return t.oldTeamMemory
}

// SetTeamMemory applies new = (old & ^mask) | (value & mask) at index,
// or overwrites outright when mask is all-ones (spec.md §4.3). Writes are
// immediately visible to GetTeamMemory only after the next
// SnapshotRoundStart, matching "team memory writes ... visible ... from the
// next round" (spec.md §5).
func (t *TeamState) SetTeamMemory(index int, value int64, mask int64) {
	if index < 0 || index >= TeamMemorySize {
		return
	}
	old := t.teamMemory[index]
	t.teamMemory[index] = (old &^ mask) | (value & mask)
}

// SetTeamMemoryOverwrite is SetTeamMemory with an all-ones mask.
func (t *TeamState) SetTeamMemoryOverwrite(index int, value int64) {
	t.SetTeamMemory(index, value, ^int64(0))
}

// HasUpgrade reports whether the team owns upg.
func (t *TeamState) HasUpgrade(upg catalog.Upgrade) bool {
	return t.Upgrades[upg]
}

// StartResearch begins the upgrade's countdown; it does not touch
// Resources. The
// caller is responsible for the "only one in progress per upgrade" check
// and for deducting Resources before calling this.
func (t *TeamState) StartResearch(upg catalog.Upgrade, rounds int) {
	t.research[upg] = &researchState{roundsRemaining: rounds}
}

// IsResearching reports whether upg currently has an in-progress research
// record for this team.
func (t *TeamState) IsResearching(upg catalog.Upgrade) bool {
	_, ok := t.research[upg]
	return ok
}

// TickResearch decrements every in-progress research countdown by one
// round and returns the upgrades that completed this call.
func (t *TeamState) TickResearch() []catalog.Upgrade {
	var completed []catalog.Upgrade
	for upg, st := range t.research {
		st.roundsRemaining--
		if st.roundsRemaining <= 0 {
			completed = append(completed, upg)
			delete(t.research, upg)
			if t.Upgrades == nil {
				t.Upgrades = make(map[catalog.Upgrade]bool)
			}
			t.Upgrades[upg] = true
		}
	}
	return completed
}
