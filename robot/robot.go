// Package robot defines the per-robot mutable record (spec.md §3
// "Robot (InternalRobot)"). A Robot knows nothing about the World it lives
// in; all navigation from a robot to shared state goes through the single
// world.World handle passed into control.RobotController actions, which
// keeps the world<->robot object graph acyclic (spec.md §9).
package robot

import (
	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/geometry"
)

// ID is a monotonically increasing identifier, unique for the lifetime of a
// match and never reused, assigned when the robot record is created. For a
// spawn/build that is when it starts, not when construction completes.
type ID uint32

// BroadcastCounts tracks how many spatial signals of each kind a robot has
// emitted this turn, reset at the start of every turn (spec.md §4.6).
type BroadcastCounts struct {
	Basic   int
	Message int
}

// BuildRecord describes an in-progress spawn or build (spec.md §3
// "Lifecycles"). A robot with a non-nil BuildRecord cannot act.
type BuildRecord struct {
	RoundsRemaining int
	Builder         ID // the ARCHON/BEAVER that issued the spawn/build
}

// Robot is the mutable record for a single live unit.
type Robot struct {
	ID   ID
	Type catalog.RobotType
	Team catalog.Team

	Location geometry.MapLocation

	Health    float64
	CoreDelay float64
	WeaponDelay float64

	SupplyLevel float64
	XP          uint32

	MissileCount uint32

	BytecodesUsedLastTurn uint32

	// Infected is set on a non-zombie that survives a hit from a zombie
	// attacker (spec.md §2 "Zombie infection"). Its death leaves no rubble;
	// the STANDARDZOMBIE that respawns in its place gets health scaled by
	// the outbreak multiplier current at the moment of death, not the
	// moment of infection.
	Infected bool

	Broadcast BroadcastCounts

	// QueuedBroadcasts holds radio-channel writes made this turn; they
	// become visible to other same-team robots starting next round, and to
	// this robot's own reads immediately (spec.md §4.6).
	QueuedBroadcasts map[int]int32

	Build *BuildRecord

	// HasMovedThisTurn gates launchMissile's "must not have moved" rule.
	HasMovedThisTurn bool

	// PendingDeath marks a robot reaped at end-of-round (health <= 0 or
	// self-destruct); it stays in the world's table as "not present" to
	// queries (spec.md §5) until the reap step removes it.
	PendingDeath bool
	DeathCause   DeathCause
	// KillerTeam is the team whose action marked PendingDeath, consulted by
	// the reap step to credit DEN_PART_REWARD when a ZOMBIEDEN dies
	// (spec.md §4.5). Meaningless unless PendingDeath is true.
	KillerTeam catalog.Team

	// CommanderSkills tracks COMMANDER XP-granted
	// abilities (spec.md §4.3 castFlash).
	CommanderSkills map[catalog.CommanderSkillType]bool
}

// DeathCause records why a robot died, driving the rubble formula in
// spec.md §4.5.
type DeathCause int

const (
	DeathNone DeathCause = iota
	DeathRegularAttack
	DeathTurretAttack
	DeathActivationConsumption
	DeathSelfDestruct
)

// New creates a fresh robot at full health with zero delays, not yet under
// construction. Callers that need a spawn-in-progress unit should set
// Build afterward.
func New(id ID, t catalog.RobotType, team catalog.Team, loc geometry.MapLocation, maxHealth float64) *Robot {
	return &Robot{
		ID:               id,
		Type:             t,
		Team:             team,
		Location:         loc,
		Health:           maxHealth,
		QueuedBroadcasts: make(map[int]int32),
		CommanderSkills:  make(map[catalog.CommanderSkillType]bool),
	}
}

// IsAlive reports whether the robot has not been reaped and has positive
// health (a robot with health <= 0 is "pending dead" even before reap).
func (r *Robot) IsAlive() bool {
	return !r.PendingDeath && r.Health > 0
}

// UnderConstruction reports whether the robot cannot yet act because a
// spawn/build is still in progress.
func (r *Robot) UnderConstruction() bool {
	return r.Build != nil && r.Build.RoundsRemaining > 0
}

// CanAct reports whether the robot may attempt any action at all this turn
// (alive and not under construction). Per-action delay/flag checks happen
// in the control package.
func (r *Robot) CanAct() bool {
	return r.IsAlive() && !r.UnderConstruction()
}

// ResetTurnState clears the per-turn counters a robot accumulates, called
// by the Round Engine immediately before visiting the robot.
func (r *Robot) ResetTurnState() {
	r.Broadcast = BroadcastCounts{}
	r.HasMovedThisTurn = false
	r.QueuedBroadcasts = make(map[int]int32)
	r.BytecodesUsedLastTurn = 0
}
