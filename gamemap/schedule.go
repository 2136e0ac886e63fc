package gamemap

import "sort"

import "github.com/nicoberrocal/battlecore/catalog"

// SpawnEntry is one (type, count) pair scheduled to spawn at a round.
type SpawnEntry struct {
	Type  catalog.RobotType
	Count int
}

// ZombieSpawnSchedule maps rounds to the zombies that appear around each
// zombie den at the start of that round (spec.md §4.8). The zero value is
// an empty schedule.
type ZombieSpawnSchedule struct {
	byRound map[int][]SpawnEntry
}

// NewZombieSpawnSchedule builds a schedule from a round->entries map. The
// input is copied; later mutation of m does not affect the schedule.
func NewZombieSpawnSchedule(m map[int][]SpawnEntry) *ZombieSpawnSchedule {
	s := &ZombieSpawnSchedule{byRound: make(map[int][]SpawnEntry, len(m))}
	for round, entries := range m {
		cp := make([]SpawnEntry, len(entries))
		copy(cp, entries)
		s.byRound[round] = cp
	}
	return s
}

// GetRounds returns the scheduled rounds in ascending order. Mutating the
// returned slice never affects the schedule.
func (s *ZombieSpawnSchedule) GetRounds() []int {
	if s == nil {
		return nil
	}
	rounds := make([]int, 0, len(s.byRound))
	for r := range s.byRound {
		rounds = append(rounds, r)
	}
	sort.Ints(rounds)
	return rounds
}

// EntriesAt returns a copy of the spawn entries scheduled for round.
// Mutating the returned slice never affects the schedule.
func (s *ZombieSpawnSchedule) EntriesAt(round int) []SpawnEntry {
	if s == nil {
		return nil
	}
	entries, ok := s.byRound[round]
	if !ok {
		return nil
	}
	cp := make([]SpawnEntry, len(entries))
	copy(cp, entries)
	return cp
}

// OutbreakMultiplier scales zombie health on spawn and zombie rubble on
// death at round. It is 1.0 before round 500, 1.1 for rounds 500-599, and
// gains 0.1 per further 100 rounds, matching the pinned example in spec.md
// §8 (round 601 -> 1.2).
func OutbreakMultiplier(round int) float64 {
	const rampStart = 500
	if round < rampStart {
		return 1.0
	}
	steps := (round - rampStart) / 100
	return 1.0 + 0.1*float64(steps+1)
}
