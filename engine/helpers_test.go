package engine

import (
	"testing"

	"github.com/nicoberrocal/battlecore/config"
	"github.com/nicoberrocal/battlecore/gamemap"
	"github.com/nicoberrocal/battlecore/robot"
	"github.com/nicoberrocal/battlecore/world"
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

func newTestWorld(t *testing.T, rounds int, initial []gamemap.InitialRobot, zombies *gamemap.ZombieSpawnSchedule) *world.World {
	t.Helper()
	const size = 10
	gm := gamemap.New(size, size, 0, 0, rounds, 7, flatTerrain(size, size), flatGrid(size, size, 0), flatGrid(size, size, 0), nil, initial, zombies)
	return world.New(gm, config.Defaults())
}

func anyRobot(w *world.World) *robot.Robot {
	objs := w.AllObjects()
	if len(objs) == 0 {
		return nil
	}
	return objs[0]
}
