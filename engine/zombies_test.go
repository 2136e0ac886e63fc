package engine

import (
	"testing"

	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/gamemap"
	"github.com/nicoberrocal/battlecore/geometry"
	"github.com/nicoberrocal/battlecore/robot"
)

func TestSpawnZombiesPlacesEntriesAroundDen(t *testing.T) {
	schedule := gamemap.NewZombieSpawnSchedule(map[int][]gamemap.SpawnEntry{
		1: {{Type: catalog.StandardZombie, Count: 2}},
	})
	w := newTestWorld(t, 1000, []gamemap.InitialRobot{
		{Type: catalog.ZombieDen, Team: catalog.TeamZombie, Location: geometry.New(5, 5)},
	}, schedule)
	w.Round = 1
	e := New(w, nil)

	e.spawnZombies()

	den := geometry.New(5, 5)
	count := 0
	for _, r := range w.AllObjects() {
		if r.Type == catalog.StandardZombie {
			count++
			dx := r.Location.X - den.X
			dy := r.Location.Y - den.Y
			if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
				t.Fatalf("zombie spawned at %v is not adjacent to the den", r.Location)
			}
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 zombies spawned, got %d", count)
	}
}

func TestSpawnZombiesNoScheduledRoundIsNoOp(t *testing.T) {
	schedule := gamemap.NewZombieSpawnSchedule(map[int][]gamemap.SpawnEntry{
		5: {{Type: catalog.StandardZombie, Count: 1}},
	})
	w := newTestWorld(t, 1000, []gamemap.InitialRobot{
		{Type: catalog.ZombieDen, Team: catalog.TeamZombie, Location: geometry.New(5, 5)},
	}, schedule)
	w.Round = 1
	e := New(w, nil)

	e.spawnZombies()

	if len(w.AllObjects()) != 1 {
		t.Fatalf("expected only the den, got %d robots", len(w.AllObjects()))
	}
}

// recordingOverflow captures how much was left unplaced instead of logging.
type recordingOverflow struct {
	remaining int
	calls     int
}

func (r *recordingOverflow) OnOverflow(den *robot.Robot, entryType catalog.RobotType, remaining int) {
	r.calls++
	r.remaining = remaining
}

func TestSpawnZombiesOverflowInvokesPolicy(t *testing.T) {
	schedule := gamemap.NewZombieSpawnSchedule(map[int][]gamemap.SpawnEntry{
		1: {{Type: catalog.StandardZombie, Count: 50}},
	})
	w := newTestWorld(t, 1000, []gamemap.InitialRobot{
		{Type: catalog.ZombieDen, Team: catalog.TeamZombie, Location: geometry.New(5, 5)},
	}, schedule)
	w.Round = 1
	e := New(w, nil)
	rec := &recordingOverflow{}
	e.Overflow = rec

	e.spawnZombies()

	if rec.calls != 1 {
		t.Fatalf("expected overflow policy invoked exactly once, got %d calls", rec.calls)
	}
	if rec.remaining != 50-8 {
		t.Fatalf("expected %d unplaced spawns reported, got %d", 50-8, rec.remaining)
	}
	placed := 0
	for _, r := range w.AllObjects() {
		if r.Type == catalog.StandardZombie {
			placed++
		}
	}
	if placed != 8 {
		t.Fatalf("expected exactly the 8 compass tiles filled, got %d", placed)
	}
}

func TestSpawnZombiesAppliesOutbreakMultiplierToHealth(t *testing.T) {
	schedule := gamemap.NewZombieSpawnSchedule(map[int][]gamemap.SpawnEntry{
		1: {{Type: catalog.StandardZombie, Count: 1}},
	})
	w := newTestWorld(t, 1000, []gamemap.InitialRobot{
		{Type: catalog.ZombieDen, Team: catalog.TeamZombie, Location: geometry.New(5, 5)},
	}, schedule)
	w.Round = 601
	e := New(w, nil)

	e.spawnZombies()

	sd, _ := catalog.Lookup(catalog.StandardZombie)
	want := sd.MaxHealth * gamemap.OutbreakMultiplier(601)
	for _, r := range w.AllObjects() {
		if r.Type == catalog.StandardZombie {
			if r.Health != want {
				t.Fatalf("spawn health: got %v, want %v", r.Health, want)
			}
			return
		}
	}
	t.Fatalf("no zombie was spawned")
}
