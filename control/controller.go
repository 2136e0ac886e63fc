// Package control implements the RobotController action surface (spec.md
// §4.3): the single entry point every player-visible action goes through.
// Every method follows validate -> charge costs and delays -> emit a signal
// -> mutate state, and fails closed with a sentinel from actionerr.
package control

import (
	"github.com/nicoberrocal/battlecore/actionerr"
	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/geometry"
	"github.com/nicoberrocal/battlecore/robot"
	"github.com/nicoberrocal/battlecore/world"
)

// Controller is the action arbitration layer over one World. It holds no
// state of its own; every call reads and writes through w.
type Controller struct {
	w *world.World
}

// New returns a Controller bound to w.
func New(w *world.World) *Controller {
	return &Controller{w: w}
}

func (c *Controller) data(r *robot.Robot) catalog.RobotTypeData {
	d, _ := catalog.Lookup(r.Type)
	return d
}

func requireActive(r *robot.Robot, movement bool) error {
	if !r.CanAct() {
		return actionerr.ErrNotActive
	}
	if movement && r.CoreDelay >= 1.0 {
		return actionerr.ErrNotActive
	}
	if !movement && r.WeaponDelay >= 1.0 {
		return actionerr.ErrNotActive
	}
	return nil
}

func requireDirection(dir geometry.Direction) error {
	if dir == geometry.None || dir == geometry.Omni || !dir.IsValid() {
		return actionerr.ErrCantDoThatBro
	}
	return nil
}

// Move relocates actor one tile in dir (spec.md §4.3 "move(dir)").
func (c *Controller) Move(actor *robot.Robot, dir geometry.Direction) error {
	if err := requireActive(actor, true); err != nil {
		return err
	}
	d := c.data(actor)
	if !d.Flags.CanMove {
		return actionerr.ErrCantDoThatBro
	}
	if err := requireDirection(dir); err != nil {
		return err
	}
	target := actor.Location.Add(dir)
	if !c.w.CanMove(target, actor.Type) {
		return actionerr.ErrCantMoveThere
	}

	delay := d.MovementDelay * (1 + c.w.Rubble(target)/c.w.Constants.SlowThreshold)
	if dir.IsDiagonal() && d.DiagonalMovementFactor != 0 {
		delay *= d.DiagonalMovementFactor
	}

	actor.CoreDelay += delay
	actor.HasMovedThisTurn = true

	if parts := c.w.Parts(target); parts > 0 {
		c.w.SetParts(target, 0)
		if ts := c.w.Team(actor.Team); ts != nil {
			ts.Resources += parts
		}
	}

	c.w.MoveRobot(actor, target)
	c.w.AppendEvent(world.EventMovement, world.MovementEventData{Actor: actor.ID, NewLoc: target, Delay: delay})
	return nil
}

// canAttackSquare implements spec.md §4.1's type-specific attack radius
// rule, including TURRET's minimum-range dead zone.
func (c *Controller) canAttackSquare(actor *robot.Robot, loc geometry.MapLocation) bool {
	d := c.data(actor)
	if !d.Flags.CanAttack || actor.Type == catalog.Basher {
		return false
	}
	distSq := actor.Location.DistanceSquaredTo(loc)
	if distSq > d.AttackRadiusSquared {
		return false
	}
	if d.MinAttackRadiusSquared > 0 && distSq < d.MinAttackRadiusSquared {
		return false
	}
	return true
}

// AttackLocation resolves a ranged attack against loc (spec.md §4.3
// "attackLocation(loc)"). BASHER must use Bash instead.
func (c *Controller) AttackLocation(actor *robot.Robot, loc geometry.MapLocation) error {
	if err := requireActive(actor, false); err != nil {
		return err
	}
	if actor.Type == catalog.Basher {
		return actionerr.ErrCantDoThatBro
	}
	if !c.canAttackSquare(actor, loc) {
		return actionerr.ErrOutOfRange
	}
	d := c.data(actor)

	actor.WeaponDelay += d.AttackDelay
	actor.CoreDelay += d.CooldownDelay

	c.w.AppendEvent(world.EventAttack, world.AttackEventData{Actor: actor.ID, Target: loc, Damage: d.AttackPower})

	target, ok := c.w.GetObject(loc)
	if !ok {
		return nil
	}
	damage := d.AttackPower
	if target.Type == catalog.Guard && d.IsZombie() {
		damage *= 1 - c.w.Constants.GuardDamageReduction
	}
	c.applyDamage(target, damage, causeFor(d), d.IsZombie(), actor.Team)
	return nil
}

func causeFor(d catalog.RobotTypeData) robot.DeathCause {
	if d.Type == catalog.Turret || d.Type == catalog.Tower || d.Type == catalog.TankedTurret {
		return robot.DeathTurretAttack
	}
	return robot.DeathRegularAttack
}

// applyDamage subtracts damage from target, marking it pending-dead at
// health <= 0. A survivor hit by a zombie attacker becomes infected
// (spec.md §2 "Zombie infection", §4.5).
func (c *Controller) applyDamage(target *robot.Robot, damage float64, cause robot.DeathCause, byZombie bool, killerTeam catalog.Team) {
	target.Health -= damage
	if target.Health <= 0 {
		target.PendingDeath = true
		target.DeathCause = cause
		target.KillerTeam = killerTeam
		return
	}
	if byZombie {
		td, _ := catalog.Lookup(target.Type)
		if !td.IsZombie() {
			target.Infected = true
		}
	}
}

// Bash damages the tiles surrounding actor's own square (spec.md §4.3:
// "BASHER uses bash() which damages the actor's own tile's surroundings").
func (c *Controller) Bash(actor *robot.Robot) error {
	if err := requireActive(actor, false); err != nil {
		return err
	}
	if actor.Type != catalog.Basher {
		return actionerr.ErrCantDoThatBro
	}
	d := c.data(actor)
	actor.WeaponDelay += d.AttackDelay
	actor.CoreDelay += d.CooldownDelay

	for _, dir := range geometry.AllDirections {
		loc := actor.Location.Add(dir)
		if target, ok := c.w.GetObject(loc); ok && target.Team != actor.Team {
			c.applyDamage(target, d.AttackPower, robot.DeathRegularAttack, d.IsZombie(), actor.Team)
		}
	}
	c.w.AppendEvent(world.EventAttack, world.AttackEventData{Actor: actor.ID, Target: actor.Location, Damage: d.AttackPower})
	return nil
}

// Explode detonates a MISSILE: AoE damage to every other robot on its own
// tile and the 8 adjacent tiles, then self-destruct (spec.md §4.3 "Explode/Disintegrate").
func (c *Controller) Explode(actor *robot.Robot) error {
	if actor.Type != catalog.Missile {
		return actionerr.ErrCantDoThatBro
	}
	d := c.data(actor)
	for _, dir := range append([]geometry.Direction{geometry.None}, geometry.AllDirections...) {
		loc := actor.Location.Add(dir)
		if target, ok := c.w.GetObject(loc); ok && target.ID != actor.ID {
			c.applyDamage(target, d.AttackPower, robot.DeathSelfDestruct, false, actor.Team)
		}
	}
	actor.PendingDeath = true
	actor.DeathCause = robot.DeathSelfDestruct
	return nil
}

// Disintegrate removes actor immediately with no rubble (spec.md §4.3).
func (c *Controller) Disintegrate(actor *robot.Robot) error {
	actor.PendingDeath = true
	actor.DeathCause = robot.DeathSelfDestruct
	return nil
}

// Repair restores ARCHON_REPAIR_AMOUNT to an allied robot within range
// (spec.md §4.3 "repair(loc)"). ARCHON-only; does not charge weapon delay.
func (c *Controller) Repair(actor *robot.Robot, loc geometry.MapLocation) error {
	if actor.Type != catalog.Archon {
		return actionerr.ErrCantDoThatBro
	}
	if err := requireActive(actor, true); err != nil {
		return err
	}
	d := c.data(actor)
	if actor.Location.DistanceSquaredTo(loc) > d.SensorRadiusSquared {
		return actionerr.ErrOutOfRange
	}
	target, ok := c.w.GetObject(loc)
	if !ok {
		return actionerr.ErrNoRobotThere
	}
	if target.Team != actor.Team {
		return actionerr.ErrCantDoThatBro
	}
	td, _ := catalog.Lookup(target.Type)
	target.Health += c.w.Constants.ArchonRepairAmount
	if target.Health > td.MaxHealth {
		target.Health = td.MaxHealth
	}
	return nil
}

// TransferSupplies moves up to amount supply units from actor to the allied
// robot at loc, within SUPPLY_TRANSFER_RADIUS_SQUARED (spec.md §3
// "supplyLevel", §6 SUPPLY_TRANSFER_RADIUS_SQUARED). The transfer clamps to
// actor's current supply; it never charges a delay, mirroring Repair's
// treatment of upkeep-style actions. Emits
// LocationSupplyChangeSignal (spec.md §4.3's signal stream).
func (c *Controller) TransferSupplies(actor *robot.Robot, loc geometry.MapLocation, amount float64) error {
	if amount <= 0 {
		return actionerr.ErrCantDoThatBro
	}
	if err := requireActive(actor, true); err != nil {
		return err
	}
	if actor.Location.DistanceSquaredTo(loc) > c.w.Constants.SupplyTransferRadiusSquared {
		return actionerr.ErrOutOfRange
	}
	target, ok := c.w.GetObject(loc)
	if !ok {
		return actionerr.ErrNoRobotThere
	}
	if target.Team != actor.Team {
		return actionerr.ErrCantDoThatBro
	}
	if amount > actor.SupplyLevel {
		amount = actor.SupplyLevel
	}
	if amount <= 0 {
		return actionerr.ErrNotEnoughResource
	}
	actor.SupplyLevel -= amount
	target.SupplyLevel += amount
	c.w.AppendEvent(world.EventLocationSupplyChange, world.LocationSupplyChangeData{
		From:   actor.ID,
		To:     target.ID,
		Amount: amount,
	})
	return nil
}

// ClearRubble reduces rubble(target) per spec.md §4.3's formula.
func (c *Controller) ClearRubble(actor *robot.Robot, dir geometry.Direction) error {
	if err := requireActive(actor, true); err != nil {
		return err
	}
	if err := requireDirection(dir); err != nil {
		return err
	}
	target := actor.Location.Add(dir)
	if !c.w.GameMap.InBounds(target) {
		return actionerr.ErrCantMoveThere
	}
	cur := c.w.Rubble(target)
	next := cur*(1-c.w.Constants.RubbleClearPercentage) - c.w.Constants.RubbleClearFlatAmount
	if next < 0 {
		next = 0
	}
	c.w.SetRubble(target, next)
	actor.CoreDelay += c.data(actor).MovementDelay
	return nil
}

// Activate converts an adjacent NEUTRAL robot to actor's team at full
// health (spec.md §4.3 "activate(loc)"). The neutral is removed cleanly
// (DeathActivationConsumption, no rubble) and a fresh robot of the same
// type takes its tile under a new id for actor's team, matching "produces no
// rubble if later killed at the moment of activation".
func (c *Controller) Activate(actor *robot.Robot, loc geometry.MapLocation) error {
	if err := requireActive(actor, false); err != nil {
		return err
	}
	if !actor.Location.IsAdjacentTo(loc) {
		return actionerr.ErrOutOfRange
	}
	target, ok := c.w.GetObject(loc)
	if !ok {
		return actionerr.ErrNoRobotThere
	}
	if target.Team != catalog.TeamNeutral {
		return actionerr.ErrCantDoThatBro
	}
	td, _ := catalog.Lookup(target.Type)
	targetType, targetLoc := target.Type, target.Location
	c.w.RemoveRobot(target.ID)
	c.w.AppendEvent(world.EventDeath, world.DeathEventData{ID: target.ID, Cause: robot.DeathActivationConsumption, Team: catalog.TeamNeutral, Type: targetType})

	activated := robot.New(c.w.NextID(), targetType, actor.Team, targetLoc, td.MaxHealth)
	c.w.PlaceNewRobot(activated)
	return nil
}

// CastFlash teleports a COMMANDER with the learned FLASH skill to loc
// (spec.md §4.3 "castFlash(loc)").
func (c *Controller) CastFlash(actor *robot.Robot, loc geometry.MapLocation) error {
	if actor.Type != catalog.Commander {
		return actionerr.ErrCantDoThatBro
	}
	if !actor.CommanderSkills[catalog.SkillFlash] {
		return actionerr.ErrMissingUpgrade
	}
	if err := requireActive(actor, true); err != nil {
		return err
	}
	if !c.w.CanMove(loc, actor.Type) {
		return actionerr.ErrCantMoveThere
	}
	actor.CoreDelay += c.w.Constants.FlashMovementDelay
	c.w.MoveRobot(actor, loc)
	c.w.AppendEvent(world.EventCast, world.CastEventData{Actor: actor.ID, Loc: loc})
	return nil
}

// ResearchUpgrade reserves upg's cost and begins its countdown for actor's
// team (spec.md §4.3 "researchUpgrade(upg)"). ARCHON-only ("HQ-only").
func (c *Controller) ResearchUpgrade(actor *robot.Robot, upg catalog.Upgrade) error {
	if actor.Type != catalog.Archon {
		return actionerr.ErrCantDoThatBro
	}
	spec, ok := catalog.Upgrades[upg]
	if !ok {
		return actionerr.ErrCantDoThatBro
	}
	ts := c.w.Team(actor.Team)
	if ts == nil {
		return actionerr.ErrCantDoThatBro
	}
	if ts.HasUpgrade(upg) || ts.IsResearching(upg) {
		return actionerr.ErrCantDoThatBro
	}
	if ts.Resources < spec.PartCost {
		return actionerr.ErrNotEnoughResource
	}
	ts.Resources -= spec.PartCost
	ts.StartResearch(upg, spec.NumRounds)
	c.w.AppendEvent(world.EventResearch, world.ResearchEventData{Team: actor.Team, Upgrade: upg, Started: true})
	return nil
}
