package control

import (
	"sort"

	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/gamemap"
	"github.com/nicoberrocal/battlecore/geometry"
	"github.com/nicoberrocal/battlecore/robot"
)

// InSight reports whether loc is within actor's sensor range, with the
// zombie "sees everything" override already baked into the catalog's
// per-type SensorRadiusSquared (spec.md §4.2).
func (c *Controller) InSight(actor *robot.Robot, loc geometry.MapLocation) bool {
	return actor.Location.DistanceSquaredTo(loc) <= c.data(actor).SensorRadiusSquared
}

// SenseMapTerrain returns the map's terrain at loc (OffMap outside the map)
// for any loc; neither actor's sight nor its team's map memory is
// consulted, so it never reports a tile as unknown.
func (c *Controller) SenseMapTerrain(actor *robot.Robot, loc geometry.MapLocation) gamemap.TerrainTile {
	return c.w.GameMap.Terrain(loc)
}

// SenseRubble implements spec.md §4.2: current value if in sight, else the
// team's memorized value, else -1.
func (c *Controller) SenseRubble(actor *robot.Robot, loc geometry.MapLocation) float64 {
	if c.InSight(actor, loc) {
		return c.w.Rubble(loc)
	}
	return c.w.Memory(actor.Team).Rubble(loc)
}

// SenseParts implements spec.md §4.2 for the parts layer.
func (c *Controller) SenseParts(actor *robot.Robot, loc geometry.MapLocation) float64 {
	if c.InSight(actor, loc) {
		return c.w.Parts(loc)
	}
	return c.w.Memory(actor.Team).Parts(loc)
}

// SenseOre returns the current ore amount at loc if in sight, else -1. Ore
// depletes as it is mined, so unlike rubble/parts a stale memorized value
// would mislead a controller into re-mining an exhausted tile; the engine
// simply withholds the reading instead of caching it.
func (c *Controller) SenseOre(actor *robot.Robot, loc geometry.MapLocation) float64 {
	if c.InSight(actor, loc) {
		return c.w.Ore(loc)
	}
	return -1
}

// SenseSupplyLevel returns the supply level of the robot at loc if any
// robot is there and in sight, else -1.
func (c *Controller) SenseSupplyLevel(actor *robot.Robot, loc geometry.MapLocation) float64 {
	if !c.InSight(actor, loc) {
		return -1
	}
	target, ok := c.w.GetObject(loc)
	if !ok {
		return -1
	}
	return target.SupplyLevel
}

// SensePartLocations returns every location currently in actor's sight
// whose current parts > 0; radius < 0 means "anywhere in sight" (spec.md
// §4.2 "sensePartLocations(radius)").
func (c *Controller) SensePartLocations(actor *robot.Robot, radiusSquared int64) []geometry.MapLocation {
	var out []geometry.MapLocation
	for _, loc := range c.w.GameMap.AllLocations() {
		if !c.InSight(actor, loc) {
			continue
		}
		if radiusSquared >= 0 && actor.Location.DistanceSquaredTo(loc) > radiusSquared {
			continue
		}
		if c.w.Parts(loc) > 0 {
			out = append(out, loc)
		}
	}
	return out
}

// SenseNearbyGameObjects implements spec.md §4.2: robots within radius (or
// unbounded if radius < 0) of center, visible to actor (in sensor range or
// same team), matching type/teamFilter if supplied, excluding actor,
// ordered by ascending id.
func (c *Controller) SenseNearbyGameObjects(actor *robot.Robot, filterType catalog.RobotType, center geometry.MapLocation, radiusSquared int64, teamFilter catalog.Team) []*robot.Robot {
	candidates := c.w.AllObjects()
	out := make([]*robot.Robot, 0, len(candidates))
	for _, r := range candidates {
		if r.ID == actor.ID {
			continue
		}
		if radiusSquared >= 0 && center.DistanceSquaredTo(r.Location) > radiusSquared {
			continue
		}
		visible := r.Team == actor.Team || c.InSight(actor, r.Location)
		if !visible {
			continue
		}
		if filterType != "" && r.Type != filterType {
			continue
		}
		if teamFilter != catalog.TeamAny && r.Team != teamFilter {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
