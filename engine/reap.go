package engine

import (
	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/gamemap"
	"github.com/nicoberrocal/battlecore/robot"
	"github.com/nicoberrocal/battlecore/world"
)

// reap collects every robot pending death (health <= 0 or flagged
// self-destruct), applies its rubble deposit and infection respawn, and
// removes it from the world (spec.md §4.5 "End-of-round reaping").
func (e *Engine) reap() {
	w := e.World
	var dead []*robot.Robot
	for _, r := range w.AllObjects() {
		if r.PendingDeath {
			dead = append(dead, r)
		}
	}

	for _, r := range dead {
		d, _ := catalog.Lookup(r.Type)
		loc := r.Location
		infected := r.Infected && !d.IsZombie()

		// A spawned zombie's rubble is scaled by the outbreak multiplier
		// current at its death; an infected non-zombie leaves no rubble,
		// since a STANDARDZOMBIE respawns on its tile.
		rubbleHealth := d.MaxHealth
		if d.IsZombie() && r.Type != catalog.ZombieDen {
			rubbleHealth *= gamemap.OutbreakMultiplier(w.Round)
		} else if infected {
			rubbleHealth = 0
		}

		switch r.DeathCause {
		case robot.DeathRegularAttack:
			w.AddRubble(loc, rubbleHealth)
		case robot.DeathTurretAttack:
			w.AddRubble(loc, rubbleHealth*w.Constants.RubbleFromTurretFactor)
		case robot.DeathActivationConsumption, robot.DeathSelfDestruct:
			// no rubble
		}

		if r.Type == catalog.ZombieDen && r.KillerTeam.IsPlayable() {
			if ts := w.Team(r.KillerTeam); ts != nil {
				ts.Resources += w.Constants.DenPartReward
			}
		}

		team, typ := r.Team, r.Type
		w.RemoveRobot(r.ID)
		w.AppendEvent(world.EventDeath, world.DeathEventData{ID: r.ID, Cause: r.DeathCause, Team: team, Type: typ})

		if infected {
			sd, _ := catalog.Lookup(catalog.StandardZombie)
			mult := gamemap.OutbreakMultiplier(w.Round)
			zombie := robot.New(w.NextID(), catalog.StandardZombie, catalog.TeamZombie, loc, sd.MaxHealth*mult)
			w.PlaceNewRobot(zombie)
			w.AppendEvent(world.EventSpawn, world.SpawnEventData{Child: zombie.ID, Type: catalog.StandardZombie, Loc: loc})
		}
	}
}
