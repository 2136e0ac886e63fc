package gamemap

import (
	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/geometry"
)

// InitialRobot places a robot type for a team at a location when the match
// starts, before the Round Engine assigns it a live id.
type InitialRobot struct {
	Type     catalog.RobotType
	Team     catalog.Team
	Location geometry.MapLocation
}

// GameMap is the immutable value the Round Engine and World State are built
// from. Everything here is read-only after load; the mutable copies of
// rubble/parts that change during a match live in world.World, seeded from
// this value.
type GameMap struct {
	Width, Height int32
	OriginX       int32
	OriginY       int32
	Rounds        int
	Seed          int64

	terrain [][]TerrainTile // [x][y]
	rubble  [][]float64
	parts   [][]float64
	ore     [][]float64 // optional; nil entries read as 0

	InitialRobots []InitialRobot
	ZombieSpawns  *ZombieSpawnSchedule
}

// New builds a GameMap. terrain, rubble and parts must each be width x
// height (indexed [x][y]); ore may be nil, in which case InitialOre reads 0
// everywhere.
func New(width, height, originX, originY int32, rounds int, seed int64, terrain [][]TerrainTile, rubble, parts, ore [][]float64, initial []InitialRobot, zombies *ZombieSpawnSchedule) *GameMap {
	if zombies == nil {
		zombies = NewZombieSpawnSchedule(nil)
	}
	return &GameMap{
		Width: width, Height: height,
		OriginX: originX, OriginY: originY,
		Rounds: rounds, Seed: seed,
		terrain: terrain, rubble: rubble, parts: parts, ore: ore,
		InitialRobots: append([]InitialRobot(nil), initial...),
		ZombieSpawns:  zombies,
	}
}

// InBounds reports whether loc falls within [0, Width) x [0, Height) of the
// map's local (not origin-shifted) coordinate system.
func (m *GameMap) InBounds(loc geometry.MapLocation) bool {
	x, y := loc.X-m.OriginX, loc.Y-m.OriginY
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

func (m *GameMap) idx(loc geometry.MapLocation) (int, int) {
	return int(loc.X - m.OriginX), int(loc.Y - m.OriginY)
}

// Terrain returns the terrain at loc, or OffMap if out of bounds.
func (m *GameMap) Terrain(loc geometry.MapLocation) TerrainTile {
	if !m.InBounds(loc) {
		return OffMap
	}
	x, y := m.idx(loc)
	return m.terrain[x][y]
}

// InitialRubble returns the rubble the map was authored with at loc.
func (m *GameMap) InitialRubble(loc geometry.MapLocation) float64 {
	if !m.InBounds(loc) {
		return 0
	}
	x, y := m.idx(loc)
	return m.rubble[x][y]
}

// InitialParts returns the parts the map was authored with at loc.
func (m *GameMap) InitialParts(loc geometry.MapLocation) float64 {
	if !m.InBounds(loc) {
		return 0
	}
	x, y := m.idx(loc)
	return m.parts[x][y]
}

// InitialOre returns the ore the map was authored with at loc, or 0 if the
// map carries no ore layer.
func (m *GameMap) InitialOre(loc geometry.MapLocation) float64 {
	if !m.InBounds(loc) || m.ore == nil {
		return 0
	}
	x, y := m.idx(loc)
	return m.ore[x][y]
}

// AllLocations returns every in-bounds location in row-major (y outer, x
// inner) order, the deterministic scan order the Round Engine uses to seed
// World State.
func (m *GameMap) AllLocations() []geometry.MapLocation {
	locs := make([]geometry.MapLocation, 0, int(m.Width)*int(m.Height))
	for y := int32(0); y < m.Height; y++ {
		for x := int32(0); x < m.Width; x++ {
			locs = append(locs, geometry.MapLocation{X: m.OriginX + x, Y: m.OriginY + y})
		}
	}
	return locs
}

// InitialArchonLocations returns the starting ARCHON locations for team,
// sorted by (y, x) ascending (spec.md §8 scenario 7).
func (m *GameMap) InitialArchonLocations(team catalog.Team) []geometry.MapLocation {
	var locs []geometry.MapLocation
	for _, r := range m.InitialRobots {
		if r.Team == team && r.Type == catalog.Archon {
			locs = append(locs, r.Location)
		}
	}
	sortByYThenX(locs)
	return locs
}

func sortByYThenX(locs []geometry.MapLocation) {
	for i := 1; i < len(locs); i++ {
		for j := i; j > 0; j-- {
			a, b := locs[j-1], locs[j]
			if a.Y > b.Y || (a.Y == b.Y && a.X > b.X) {
				locs[j-1], locs[j] = locs[j], locs[j-1]
			} else {
				break
			}
		}
	}
}
