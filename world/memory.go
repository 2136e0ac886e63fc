package world

import "github.com/nicoberrocal/battlecore/geometry"

// tileMemory records the last observed parts/rubble for one tile. Absent
// entries mean "never observed" (senseX returns -1).
type tileMemory struct {
	rubble     float64
	parts      float64
	hasRubble  bool
	hasParts   bool
}

// TeamMapMemory is one team's per-tile cache of the last value it observed
// for parts and rubble (spec.md §2.7 "Memory Model", §4.2). Reads against a
// tile currently in sight never consult this; it only backstops senses on
// tiles currently out of sight.
type TeamMapMemory struct {
	tiles map[geometry.MapLocation]*tileMemory
}

// NewTeamMapMemory returns an empty memory.
func NewTeamMapMemory() *TeamMapMemory {
	return &TeamMapMemory{tiles: make(map[geometry.MapLocation]*tileMemory)}
}

func (m *TeamMapMemory) entry(loc geometry.MapLocation) *tileMemory {
	e, ok := m.tiles[loc]
	if !ok {
		e = &tileMemory{}
		m.tiles[loc] = e
	}
	return e
}

// RecordRubble stores the currently-observed rubble value for loc.
func (m *TeamMapMemory) RecordRubble(loc geometry.MapLocation, v float64) {
	e := m.entry(loc)
	e.rubble, e.hasRubble = v, true
}

// RecordParts stores the currently-observed parts value for loc.
func (m *TeamMapMemory) RecordParts(loc geometry.MapLocation, v float64) {
	e := m.entry(loc)
	e.parts, e.hasParts = v, true
}

// Rubble returns the memorized rubble for loc, or -1 if never observed.
func (m *TeamMapMemory) Rubble(loc geometry.MapLocation) float64 {
	e, ok := m.tiles[loc]
	if !ok || !e.hasRubble {
		return -1
	}
	return e.rubble
}

// Parts returns the memorized parts for loc, or -1 if never observed.
func (m *TeamMapMemory) Parts(loc geometry.MapLocation) float64 {
	e, ok := m.tiles[loc]
	if !ok || !e.hasParts {
		return -1
	}
	return e.parts
}

// HasEverSeen reports whether loc has ever been recorded, for the §8
// round-trip law "senseRubble(loc) == -1 iff the tile has never been in
// sight".
func (m *TeamMapMemory) HasEverSeen(loc geometry.MapLocation) bool {
	e, ok := m.tiles[loc]
	return ok && (e.hasRubble || e.hasParts)
}
