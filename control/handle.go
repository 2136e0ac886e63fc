package control

import (
	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/geometry"
	"github.com/nicoberrocal/battlecore/robot"
	"github.com/nicoberrocal/battlecore/world"
)

// Handle is the per-turn RobotController instance a PlayerFunc receives
// (spec.md §6 "Controller callback contract"): every method acts on the
// robot the Round Engine is currently visiting, so player code never
// threads an actor argument through itself. It is a thin wrapper over
// Controller plus the bound actor and must not be retained past the turn
// that created it.
type Handle struct {
	c     *Controller
	actor *robot.Robot
}

// NewHandle binds a Controller to the robot currently being visited.
func NewHandle(c *Controller, actor *robot.Robot) *Handle {
	return &Handle{c: c, actor: actor}
}

func (h *Handle) Move(dir geometry.Direction) error { return h.c.Move(h.actor, dir) }
func (h *Handle) AttackLocation(loc geometry.MapLocation) error {
	return h.c.AttackLocation(h.actor, loc)
}
func (h *Handle) Bash() error      { return h.c.Bash(h.actor) }
func (h *Handle) Explode() error   { return h.c.Explode(h.actor) }
func (h *Handle) Disintegrate() error { return h.c.Disintegrate(h.actor) }
func (h *Handle) Spawn(dir geometry.Direction, t catalog.RobotType) error {
	return h.c.Spawn(h.actor, dir, t)
}
func (h *Handle) Build(dir geometry.Direction, t catalog.RobotType) error {
	return h.c.Build(h.actor, dir, t)
}
func (h *Handle) Mine() error { return h.c.Mine(h.actor) }
func (h *Handle) LaunchMissile(dir geometry.Direction) error {
	return h.c.LaunchMissile(h.actor, dir)
}
func (h *Handle) Repair(loc geometry.MapLocation) error { return h.c.Repair(h.actor, loc) }
func (h *Handle) TransferSupplies(loc geometry.MapLocation, amount float64) error {
	return h.c.TransferSupplies(h.actor, loc, amount)
}
func (h *Handle) ClearRubble(dir geometry.Direction) error {
	return h.c.ClearRubble(h.actor, dir)
}
func (h *Handle) Activate(loc geometry.MapLocation) error { return h.c.Activate(h.actor, loc) }
func (h *Handle) CastFlash(loc geometry.MapLocation) error { return h.c.CastFlash(h.actor, loc) }
func (h *Handle) ResearchUpgrade(upg catalog.Upgrade) error {
	return h.c.ResearchUpgrade(h.actor, upg)
}

func (h *Handle) Broadcast(channel int, value int32) error {
	return h.c.Broadcast(h.actor, channel, value)
}
func (h *Handle) ReadBroadcast(channel int) int32 { return h.c.ReadBroadcast(h.actor, channel) }
func (h *Handle) BroadcastSignal(radiusSquared int64) error {
	return h.c.BroadcastSignal(h.actor, radiusSquared)
}
func (h *Handle) BroadcastMessageSignal(m1, m2 int32, radiusSquared int64) error {
	return h.c.BroadcastMessageSignal(h.actor, m1, m2, radiusSquared)
}
func (h *Handle) ReadSignal() []world.BroadcastSignal   { return h.c.ReadSignal(h.actor) }
func (h *Handle) EmptySignalQueue() []world.BroadcastSignal { return h.c.EmptySignalQueue(h.actor) }

func (h *Handle) GetTeamMemory() [world.TeamMemorySize]int64 { return h.c.GetTeamMemory(h.actor) }
func (h *Handle) SetTeamMemory(index int, value, mask int64) error {
	return h.c.SetTeamMemory(h.actor, index, value, mask)
}
func (h *Handle) SetTeamMemoryOverwrite(index int, value int64) error {
	return h.c.SetTeamMemoryOverwrite(h.actor, index, value)
}

func (h *Handle) InSight(loc geometry.MapLocation) bool { return h.c.InSight(h.actor, loc) }
func (h *Handle) SenseMapTerrain(loc geometry.MapLocation) int {
	return int(h.c.SenseMapTerrain(h.actor, loc))
}
func (h *Handle) SenseRubble(loc geometry.MapLocation) float64 { return h.c.SenseRubble(h.actor, loc) }
func (h *Handle) SenseParts(loc geometry.MapLocation) float64  { return h.c.SenseParts(h.actor, loc) }
func (h *Handle) SenseOre(loc geometry.MapLocation) float64    { return h.c.SenseOre(h.actor, loc) }
func (h *Handle) SenseSupplyLevel(loc geometry.MapLocation) float64 {
	return h.c.SenseSupplyLevel(h.actor, loc)
}
func (h *Handle) SensePartLocations(radiusSquared int64) []geometry.MapLocation {
	return h.c.SensePartLocations(h.actor, radiusSquared)
}
func (h *Handle) SenseNearbyGameObjects(filterType catalog.RobotType, center geometry.MapLocation, radiusSquared int64, teamFilter catalog.Team) []*robot.Robot {
	return h.c.SenseNearbyGameObjects(h.actor, filterType, center, radiusSquared, teamFilter)
}

// Self returns the id of the robot this Handle acts on.
func (h *Handle) Self() robot.ID { return h.actor.ID }

// Location returns the current location of the robot this Handle acts on.
func (h *Handle) Location() geometry.MapLocation { return h.actor.Location }
