package control_test

import (
	"testing"

	"github.com/nicoberrocal/battlecore/actionerr"
	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/config"
	"github.com/nicoberrocal/battlecore/control"
	"github.com/nicoberrocal/battlecore/gamemap"
	"github.com/nicoberrocal/battlecore/geometry"
	"github.com/nicoberrocal/battlecore/robot"
	"github.com/nicoberrocal/battlecore/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatGrid(w, h int32, fill float64) [][]float64 {
	g := make([][]float64, w)
	for x := range g {
		g[x] = make([]float64, h)
		for y := range g[x] {
			g[x][y] = fill
		}
	}
	return g
}

func flatTerrain(w, h int32) [][]gamemap.TerrainTile {
	g := make([][]gamemap.TerrainTile, w)
	for x := range g {
		g[x] = make([]gamemap.TerrainTile, h)
	}
	return g
}

func newTestWorld(t *testing.T, initial []gamemap.InitialRobot) *world.World {
	t.Helper()
	const size = 10
	gm := gamemap.New(size, size, 0, 0, 1000, 1, flatTerrain(size, size), flatGrid(size, size, 0), flatGrid(size, size, 0), nil, initial, nil)
	return world.New(gm, config.Defaults())
}

func findByType(w *world.World, team catalog.Team, t catalog.RobotType) *robot.Robot {
	for _, r := range w.AllObjects() {
		if r.Team == team && r.Type == t {
			return r
		}
	}
	return nil
}

func TestMoveRelocatesAndChargesDelay(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(5, 5)},
	})
	c := control.New(w)
	r := findByType(w, catalog.TeamA, catalog.Soldier)
	require.NotNil(t, r)

	require.NoError(t, c.Move(r, geometry.East))
	assert.Equal(t, geometry.New(6, 5), r.Location)
	assert.Greater(t, r.CoreDelay, 0.0)
}

func TestMoveFailsWhenNotActive(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(5, 5)},
	})
	c := control.New(w)
	r := findByType(w, catalog.TeamA, catalog.Soldier)
	r.CoreDelay = 1.5

	err := c.Move(r, geometry.East)
	assert.ErrorIs(t, err, actionerr.ErrNotActive)
}

func TestMoveCollectsParts(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(5, 5)},
	})
	w.SetParts(geometry.New(6, 5), 30)
	c := control.New(w)
	r := findByType(w, catalog.TeamA, catalog.Soldier)

	before := w.Team(catalog.TeamA).Resources
	require.NoError(t, c.Move(r, geometry.East))
	assert.Equal(t, before+30, w.Team(catalog.TeamA).Resources)
	assert.Equal(t, 0.0, w.Parts(geometry.New(6, 5)))
}

func TestAttackLocationAppliesDamageAndDeathCause(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(0, 0)},
		{Type: catalog.Soldier, Team: catalog.TeamB, Location: geometry.New(1, 0)},
	})
	c := control.New(w)
	attacker := findByType(w, catalog.TeamA, catalog.Soldier)
	defender := findByType(w, catalog.TeamB, catalog.Soldier)

	defender.Health = 4 // attack power of soldier is 4: lethal
	require.NoError(t, c.AttackLocation(attacker, defender.Location))

	assert.True(t, defender.PendingDeath)
	assert.Equal(t, robot.DeathRegularAttack, defender.DeathCause)
	assert.Equal(t, catalog.TeamA, defender.KillerTeam)
}

func TestTurretAttackOutOfMinRangeIsDeadZone(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Turret, Team: catalog.TeamA, Location: geometry.New(0, 0)},
		{Type: catalog.Soldier, Team: catalog.TeamB, Location: geometry.New(2, 0)}, // distSq=4, below MinAttackRadiusSquared=24
	})
	c := control.New(w)
	turret := findByType(w, catalog.TeamA, catalog.Turret)
	defender := findByType(w, catalog.TeamB, catalog.Soldier)

	err := c.AttackLocation(turret, defender.Location)
	assert.ErrorIs(t, err, actionerr.ErrOutOfRange)
}

func TestBasherCannotAttackLocation(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Basher, Team: catalog.TeamA, Location: geometry.New(0, 0)},
		{Type: catalog.Soldier, Team: catalog.TeamB, Location: geometry.New(1, 0)},
	})
	c := control.New(w)
	basher := findByType(w, catalog.TeamA, catalog.Basher)

	err := c.AttackLocation(basher, geometry.New(1, 0))
	assert.ErrorIs(t, err, actionerr.ErrCantDoThatBro)
}

func TestBashDamagesAllAdjacentEnemies(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Basher, Team: catalog.TeamA, Location: geometry.New(5, 5)},
		{Type: catalog.Soldier, Team: catalog.TeamB, Location: geometry.New(5, 6)},
		{Type: catalog.Soldier, Team: catalog.TeamB, Location: geometry.New(6, 5)},
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(4, 5)}, // ally: untouched
	})
	c := control.New(w)
	basher := findByType(w, catalog.TeamA, catalog.Basher)

	require.NoError(t, c.Bash(basher))

	for _, r := range w.AllObjects() {
		if r.Team == catalog.TeamB {
			assert.Less(t, r.Health, 40.0, "enemy at %s should take bash damage", r.Location)
		}
		if r.ID != basher.ID && r.Team == catalog.TeamA {
			assert.Equal(t, 40.0, r.Health, "ally should be untouched by bash")
		}
	}
}

func TestZombieAttackInfectsSurvivor(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.StandardZombie, Team: catalog.TeamZombie, Location: geometry.New(0, 0)},
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(1, 0)},
	})
	c := control.New(w)
	zombie := findByType(w, catalog.TeamZombie, catalog.StandardZombie)
	soldier := findByType(w, catalog.TeamA, catalog.Soldier)
	soldier.Health = 100 // survives the hit

	require.NoError(t, c.AttackLocation(zombie, soldier.Location))
	assert.True(t, soldier.Infected)
	assert.False(t, soldier.PendingDeath)
}

func TestDisintegrateMarksSelfDestructNoRubbleCause(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(0, 0)},
	})
	c := control.New(w)
	r := findByType(w, catalog.TeamA, catalog.Soldier)

	require.NoError(t, c.Disintegrate(r))
	assert.True(t, r.PendingDeath)
	assert.Equal(t, robot.DeathSelfDestruct, r.DeathCause)
}

func TestRepairHealsAllyWithinRangeCappedAtMax(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Archon, Team: catalog.TeamA, Location: geometry.New(0, 0)},
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(1, 0)},
	})
	c := control.New(w)
	archon := findByType(w, catalog.TeamA, catalog.Archon)
	ally := findByType(w, catalog.TeamA, catalog.Soldier)
	ally.Health = 39

	require.NoError(t, c.Repair(archon, ally.Location))
	assert.Equal(t, 40.0, ally.Health, "repair caps at max health")
}

func TestRepairRejectsEnemyTarget(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Archon, Team: catalog.TeamA, Location: geometry.New(0, 0)},
		{Type: catalog.Soldier, Team: catalog.TeamB, Location: geometry.New(1, 0)},
	})
	c := control.New(w)
	archon := findByType(w, catalog.TeamA, catalog.Archon)
	enemy := findByType(w, catalog.TeamB, catalog.Soldier)

	err := c.Repair(archon, enemy.Location)
	assert.ErrorIs(t, err, actionerr.ErrCantDoThatBro)
}

func TestTransferSuppliesMovesAmountAndEmitsEvent(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Archon, Team: catalog.TeamA, Location: geometry.New(0, 0)},
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(1, 0)},
	})
	c := control.New(w)
	archon := findByType(w, catalog.TeamA, catalog.Archon)
	ally := findByType(w, catalog.TeamA, catalog.Soldier)
	archon.SupplyLevel = 50
	w.DrainEvents()

	require.NoError(t, c.TransferSupplies(archon, ally.Location, 20))
	assert.Equal(t, 30.0, archon.SupplyLevel)
	assert.Equal(t, 20.0, ally.SupplyLevel)

	events := w.DrainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, world.EventLocationSupplyChange, events[0].Kind)
	data, ok := events[0].Data.(world.LocationSupplyChangeData)
	require.True(t, ok)
	assert.Equal(t, archon.ID, data.From)
	assert.Equal(t, ally.ID, data.To)
	assert.Equal(t, 20.0, data.Amount)
}

func TestTransferSuppliesClampsToActorBalance(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Archon, Team: catalog.TeamA, Location: geometry.New(0, 0)},
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(1, 0)},
	})
	c := control.New(w)
	archon := findByType(w, catalog.TeamA, catalog.Archon)
	ally := findByType(w, catalog.TeamA, catalog.Soldier)
	archon.SupplyLevel = 5

	require.NoError(t, c.TransferSupplies(archon, ally.Location, 20))
	assert.Equal(t, 0.0, archon.SupplyLevel)
	assert.Equal(t, 5.0, ally.SupplyLevel)
}

func TestTransferSuppliesRejectsEmptyActorBalance(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Archon, Team: catalog.TeamA, Location: geometry.New(0, 0)},
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(1, 0)},
	})
	c := control.New(w)
	archon := findByType(w, catalog.TeamA, catalog.Archon)
	ally := findByType(w, catalog.TeamA, catalog.Soldier)

	err := c.TransferSupplies(archon, ally.Location, 20)
	assert.ErrorIs(t, err, actionerr.ErrNotEnoughResource)
}

func TestTransferSuppliesRejectsEnemyTarget(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Archon, Team: catalog.TeamA, Location: geometry.New(0, 0)},
		{Type: catalog.Soldier, Team: catalog.TeamB, Location: geometry.New(1, 0)},
	})
	c := control.New(w)
	archon := findByType(w, catalog.TeamA, catalog.Archon)
	archon.SupplyLevel = 50
	enemy := findByType(w, catalog.TeamB, catalog.Soldier)

	err := c.TransferSupplies(archon, enemy.Location, 20)
	assert.ErrorIs(t, err, actionerr.ErrCantDoThatBro)
}

func TestTransferSuppliesRejectsOutOfRange(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Archon, Team: catalog.TeamA, Location: geometry.New(0, 0)},
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(5, 5)},
	})
	c := control.New(w)
	archon := findByType(w, catalog.TeamA, catalog.Archon)
	archon.SupplyLevel = 50
	ally := findByType(w, catalog.TeamA, catalog.Soldier)

	err := c.TransferSupplies(archon, ally.Location, 20)
	assert.ErrorIs(t, err, actionerr.ErrOutOfRange)
}

func TestTransferSuppliesRejectsNoRobotThere(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Archon, Team: catalog.TeamA, Location: geometry.New(0, 0)},
	})
	c := control.New(w)
	archon := findByType(w, catalog.TeamA, catalog.Archon)
	archon.SupplyLevel = 50

	err := c.TransferSupplies(archon, geometry.New(1, 0), 20)
	assert.ErrorIs(t, err, actionerr.ErrNoRobotThere)
}

func TestClearRubbleFormulaAndFloor(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Beaver, Team: catalog.TeamA, Location: geometry.New(0, 0)},
	})
	c := control.New(w)
	beaver := findByType(w, catalog.TeamA, catalog.Beaver)
	target := geometry.New(1, 0)
	w.SetRubble(target, 100)

	require.NoError(t, c.ClearRubble(beaver, geometry.East))
	// 100*(1-0.05) - 5 = 90
	assert.Equal(t, 90.0, w.Rubble(target))

	w.SetRubble(target, 1)
	beaver.CoreDelay = 0 // the first clear charged the beaver's core delay
	require.NoError(t, c.ClearRubble(beaver, geometry.East))
	assert.Equal(t, 0.0, w.Rubble(target), "clear formula floors at zero")
}

func TestActivateConsumesNeutralAndSpawnsForTeam(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(0, 0)},
		{Type: catalog.Archon, Team: catalog.TeamNeutral, Location: geometry.New(1, 0)},
	})
	c := control.New(w)
	actor := findByType(w, catalog.TeamA, catalog.Soldier)
	neutral := findByType(w, catalog.TeamNeutral, catalog.Archon)
	neutralID := neutral.ID

	require.NoError(t, c.Activate(actor, neutral.Location))

	_, stillThere := w.GetRobot(neutralID)
	assert.False(t, stillThere, "the original neutral robot must be removed")

	activated := findByType(w, catalog.TeamA, catalog.Archon)
	require.NotNil(t, activated)
	assert.Equal(t, geometry.New(1, 0), activated.Location)
	assert.Equal(t, 1000.0, activated.Health)
}

func TestResearchUpgradeChargesAndStartsCountdown(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Archon, Team: catalog.TeamA, Location: geometry.New(0, 0)},
	})
	c := control.New(w)
	archon := findByType(w, catalog.TeamA, catalog.Archon)
	ts := w.Team(catalog.TeamA)
	ts.Resources = 1000

	require.NoError(t, c.ResearchUpgrade(archon, catalog.UpgradeVision))
	assert.Equal(t, 1000.0-catalog.Upgrades[catalog.UpgradeVision].PartCost, ts.Resources)
	assert.True(t, ts.IsResearching(catalog.UpgradeVision))

	err := c.ResearchUpgrade(archon, catalog.UpgradeVision)
	assert.ErrorIs(t, err, actionerr.ErrCantDoThatBro, "cannot start the same research twice")
}

func TestResearchUpgradeNonArchonRejected(t *testing.T) {
	w := newTestWorld(t, []gamemap.InitialRobot{
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(0, 0)},
	})
	c := control.New(w)
	soldier := findByType(w, catalog.TeamA, catalog.Soldier)

	err := c.ResearchUpgrade(soldier, catalog.UpgradeVision)
	assert.ErrorIs(t, err, actionerr.ErrCantDoThatBro)
}
