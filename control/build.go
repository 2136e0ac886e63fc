package control

import (
	"math"

	"github.com/nicoberrocal/battlecore/actionerr"
	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/geometry"
	"github.com/nicoberrocal/battlecore/robot"
	"github.com/nicoberrocal/battlecore/world"
)

// spawnCost returns childData's part cost, doubled per existing commander
// spawn-count when the child is a COMMANDER, capped at eight doublings
// (spec.md §4.3: "COMMANDER spawn cost doubles per existing commander
// spawn-count for that team (capped at eight doublings)").
func spawnCost(ts *world.TeamState, childData catalog.RobotTypeData) float64 {
	if childData.Type != catalog.Commander {
		return childData.PartCost
	}
	doublings := ts.CommanderSpawnedCount
	if doublings > 8 {
		doublings = 8
	}
	return childData.PartCost * math.Pow(2, float64(doublings))
}

// spawnOrBuild is the shared implementation behind Spawn and Build: they
// differ only in which spawnSource must match actor.Type (spec.md §4.3
// "Build & Spawn ... differ only in whose spawnSource they match").
func (c *Controller) spawnOrBuild(actor *robot.Robot, dir geometry.Direction, childType catalog.RobotType) error {
	if err := requireActive(actor, true); err != nil {
		return err
	}
	if err := requireDirection(dir); err != nil {
		return err
	}
	childData, ok := catalog.Lookup(childType)
	if !ok {
		return actionerr.ErrCantDoThatBro
	}
	if childData.SpawnSource != actor.Type {
		return actionerr.ErrCantDoThatBro
	}
	if childData.Dependency != "" {
		ts := c.w.Team(actor.Team)
		if ts == nil || ts.RobotCounts[childData.Dependency] == 0 {
			return actionerr.ErrMissingUpgrade
		}
	}

	target := actor.Location.Add(dir)
	if !c.w.CanMove(target, childType) {
		return actionerr.ErrCantMoveThere
	}

	ts := c.w.Team(actor.Team)
	if ts == nil {
		return actionerr.ErrCantDoThatBro
	}
	cost := spawnCost(ts, childData)
	if ts.Resources < cost {
		return actionerr.ErrNotEnoughResource
	}
	ts.Resources -= cost
	if childType == catalog.Commander {
		ts.CommanderSpawnedCount++
		ts.HasCommander = true
	}

	child := robot.New(c.w.NextID(), childType, actor.Team, target, childData.MaxHealth)
	if childData.BuildTurns > 0 {
		child.Build = &robot.BuildRecord{RoundsRemaining: childData.BuildTurns, Builder: actor.ID}
		c.w.ReserveTile(target, childData.BuildTurns)
	}
	c.w.PlaceNewRobot(child)

	actor.CoreDelay += c.data(actor).MovementDelay
	c.w.AppendEvent(world.EventSpawn, world.SpawnEventData{Parent: actor.ID, Child: child.ID, Type: childType, Loc: target})
	return nil
}

// Spawn creates an ARCHON-sourced unit adjacent to actor (spec.md §4.3
// "archon-style spawn(dir, type)").
func (c *Controller) Spawn(actor *robot.Robot, dir geometry.Direction, childType catalog.RobotType) error {
	if !c.data(actor).Flags.CanSpawn {
		return actionerr.ErrCantDoThatBro
	}
	return c.spawnOrBuild(actor, dir, childType)
}

// Build creates a BEAVER-sourced unit adjacent to actor (spec.md §4.3
// "beaver-style build(dir, type)").
func (c *Controller) Build(actor *robot.Robot, dir geometry.Direction, childType catalog.RobotType) error {
	if !c.data(actor).Flags.CanBuild {
		return actionerr.ErrCantDoThatBro
	}
	return c.spawnOrBuild(actor, dir, childType)
}

// Mine reduces ore(tile) and credits actor's team (spec.md §4.3 "mine()").
// The yield is half the tile's ore, floored at 1 when any ore remains, so
// a tile depletes over several mining turns rather than in a single one.
func (c *Controller) Mine(actor *robot.Robot) error {
	if !c.data(actor).Flags.CanMine {
		return actionerr.ErrCantDoThatBro
	}
	if err := requireActive(actor, true); err != nil {
		return err
	}
	ore := c.w.Ore(actor.Location)
	if ore <= 0 {
		return actionerr.ErrCantDoThatBro
	}
	yield := ore / 2
	if yield < 1 {
		yield = 1
	}
	if yield > ore {
		yield = ore
	}
	c.w.SetOre(actor.Location, ore-yield)
	if ts := c.w.Team(actor.Team); ts != nil {
		ts.Resources += yield
	}
	actor.CoreDelay += c.w.Constants.MiningLoadingDelay
	c.w.AppendEvent(world.EventMine, world.MineEventData{Actor: actor.ID, Loc: actor.Location, Amount: yield})
	return nil
}

// LaunchMissile fires a MISSILE from actor's stock in dir (spec.md §4.3
// "launchMissile(dir)").
func (c *Controller) LaunchMissile(actor *robot.Robot, dir geometry.Direction) error {
	if !c.data(actor).Flags.CanLaunch {
		return actionerr.ErrCantDoThatBro
	}
	if actor.HasMovedThisTurn {
		return actionerr.ErrCantDoThatBro
	}
	if actor.MissileCount == 0 {
		return actionerr.ErrNotEnoughResource
	}
	if err := requireDirection(dir); err != nil {
		return err
	}
	target := actor.Location.Add(dir)
	if !c.w.CanMove(target, catalog.Missile) {
		return actionerr.ErrCantMoveThere
	}
	md, _ := catalog.Lookup(catalog.Missile)
	actor.MissileCount--
	missile := robot.New(c.w.NextID(), catalog.Missile, actor.Team, target, md.MaxHealth)
	c.w.PlaceNewRobot(missile)
	c.w.AppendEvent(world.EventSpawn, world.SpawnEventData{Parent: actor.ID, Child: missile.ID, Type: catalog.Missile, Loc: target})
	return nil
}
