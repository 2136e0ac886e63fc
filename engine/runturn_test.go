package engine

import (
	"testing"

	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/control"
	"github.com/nicoberrocal/battlecore/gamemap"
	"github.com/nicoberrocal/battlecore/geometry"
	"github.com/nicoberrocal/battlecore/robot"
)

func TestRunTurnRecordsReturnedBytecodeUsage(t *testing.T) {
	w := newTestWorld(t, 1000, []gamemap.InitialRobot{
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(0, 0)},
	}, nil)
	e := New(w, map[catalog.Team]PlayerFunc{
		catalog.TeamA: func(id robot.ID, rc *control.Handle) uint32 { return 3333 },
	})
	r := anyRobot(w)
	rc := control.New(w)

	e.runTurn(r, rc)

	if r.BytecodesUsedLastTurn != 3333 {
		t.Fatalf("expected BytecodesUsedLastTurn to be set from the callback's return value, got %d", r.BytecodesUsedLastTurn)
	}
}

func TestRunTurnRePanicsInvariantViolation(t *testing.T) {
	w := newTestWorld(t, 1000, []gamemap.InitialRobot{
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(0, 0)},
	}, nil)
	e := New(w, map[catalog.Team]PlayerFunc{
		catalog.TeamA: func(id robot.ID, rc *control.Handle) uint32 {
			w.SetRubble(geometry.New(3, 3), -1)
			return 0
		},
	})
	r := anyRobot(w)
	rc := control.New(w)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected an InvariantViolation raised mid-turn to propagate out of runTurn, not be swallowed")
		}
	}()
	e.runTurn(r, rc)
}

func TestRunTurnPanicLeavesBytecodeUsageAtResetValue(t *testing.T) {
	w := newTestWorld(t, 1000, []gamemap.InitialRobot{
		{Type: catalog.Soldier, Team: catalog.TeamA, Location: geometry.New(0, 0)},
	}, nil)
	e := New(w, map[catalog.Team]PlayerFunc{
		catalog.TeamA: func(id robot.ID, rc *control.Handle) uint32 { panic(RobotDeathException{}) },
	})
	r := anyRobot(w)
	r.BytecodesUsedLastTurn = 0
	rc := control.New(w)

	e.runTurn(r, rc)

	if r.BytecodesUsedLastTurn != 0 {
		t.Fatalf("a panicking turn reports no usage, expected 0, got %d", r.BytecodesUsedLastTurn)
	}
	if !r.PendingDeath {
		t.Fatalf("expected RobotDeathException to mark the robot pending death")
	}
}
