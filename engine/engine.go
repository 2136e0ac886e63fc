// Package engine drives the Round Engine: the single-threaded cooperative
// scheduler that visits every living robot once per round, applies
// end-of-round bookkeeping, and determines victory (spec.md §4.4-§4.8,
// §5). It is the only caller of control.Controller methods on behalf of
// player code.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/control"
	"github.com/nicoberrocal/battlecore/robot"
	"github.com/nicoberrocal/battlecore/world"
	"github.com/pkg/errors"
)

// PlayerFunc is the controller callback contract from spec.md §6:
// "fn(id: u32, rc: &mut RobotController)". rc is bound to the robot being
// visited for the duration of the call; it must not be retained past
// return. The instrumented bytecode-metering sandbox itself is out of this
// module's scope (spec.md §1), but the core still needs the per-turn
// bytecodes-used figure it would have produced (spec.md §1, §4.4) to drive
// delay decay, so the callback reports it as its return value.
type PlayerFunc func(id robot.ID, rc *control.Handle) uint32

// RobotDeathException is the typed panic a PlayerFunc may raise to signal
// immediate self-removal (spec.md §5 "RobotDeathException"). The engine
// treats the frame as if it had yielded at the panic point.
type RobotDeathException struct{}

func (RobotDeathException) Error() string { return "robot self-terminated" }

// Engine owns one World and the per-team player callbacks driving it.
type Engine struct {
	World    *world.World
	Players  map[catalog.Team]PlayerFunc
	Metrics  Metrics
	Overflow OverflowPolicy
	Logger   *slog.Logger

	injected []world.Event
}

// New returns an Engine ready to run rounds against w. Metrics defaults to
// a no-op implementation; Overflow defaults to DiscardOverflow.
func New(w *world.World, players map[catalog.Team]PlayerFunc) *Engine {
	return &Engine{
		World:    w,
		Players:  players,
		Metrics:  noopMetrics{},
		Overflow: DiscardOverflow{},
		Logger:   slog.Default(),
	}
}

// InjectNotification appends e to the next round's event stream verbatim,
// before any robot acts (spec.md §6 "Injected notifications").
func (e *Engine) InjectNotification(ev world.Event) {
	e.injected = append(e.injected, ev)
}

// RunRound advances the simulation by exactly one round: snapshot team
// memory, apply injected notifications, visit every living robot in
// ascending-id order, run end-of-round bookkeeping, reap the dead, check
// victory, and return the round's event log.
func (e *Engine) RunRound(ctx context.Context) (events []world.Event, result *VictoryResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			iv, ok := rec.(world.InvariantViolation)
			if !ok {
				panic(rec)
			}
			events, result = nil, nil
			err = errors.Wrap(iv, "match aborted: internal invariant breach")
		}
	}()

	w := e.World
	w.Round++

	hadArchons := map[catalog.Team]bool{
		catalog.TeamA: livingArchonCount(w, catalog.TeamA) > 0,
		catalog.TeamB: livingArchonCount(w, catalog.TeamB) > 0,
	}

	for _, team := range playableTeams {
		if ts := w.Team(team); ts != nil {
			ts.SnapshotRoundStart()
		}
	}
	w.SwapRadioChannels()

	for _, ev := range e.injected {
		w.InjectEvent(ev)
	}
	e.injected = nil

	e.tickBuilds()

	actors := w.AllObjects()
	rc := control.New(w)
	for _, r := range actors {
		if !r.IsAlive() || r.UnderConstruction() {
			continue
		}
		r.ResetTurnState()
		e.runTurn(r, rc)

		data, _ := catalog.Lookup(r.Type)
		free := data.FreeBytecodeThreshold(w.Constants.FreeBytecodeMargin)
		r.CoreDelay = decayDelay(r.CoreDelay, r.BytecodesUsedLastTurn, free, data.BytecodeLimit)
		r.WeaponDelay = decayDelay(r.WeaponDelay, r.BytecodesUsedLastTurn, free, data.BytecodeLimit)
	}

	e.spawnZombies()
	e.tickResearch()

	if err := e.runBookkeeping(ctx); err != nil {
		return nil, nil, fmt.Errorf("engine: bookkeeping: %w", err)
	}

	e.reap()

	result = e.checkArchonVictory(hadArchons)
	if result == nil {
		result = e.checkRoundLimitVictory()
	}

	events = w.DrainEvents()
	e.reportMetrics(len(events))

	return events, result, nil
}

// runTurn invokes the player callback for r's team, recovering a
// RobotDeathException (or any other panic, logged and treated the same
// way) as an immediate, clean end to r's turn (spec.md §5 "Cancellation &
// timeouts"). A world.InvariantViolation is re-panicked instead of
// swallowed: it signals a core bug, not a player mistake, and only
// RunRound's top-level recover is allowed to turn it into a match abort.
// A panicking turn reports no bytecode usage, leaving BytecodesUsedLastTurn
// at the 0 ResetTurnState left it at.
func (e *Engine) runTurn(r *robot.Robot, c *control.Controller) {
	fn := e.Players[r.Team]
	if fn == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			if _, ok := rec.(RobotDeathException); ok {
				r.PendingDeath = true
				r.DeathCause = robot.DeathSelfDestruct
				return
			}
			if _, ok := rec.(world.InvariantViolation); ok {
				panic(rec) // fatal; only RunRound's recover handles this
			}
			e.Logger.Warn("robot turn aborted", "id", r.ID, "type", r.Type, "panic", rec)
		}
	}()
	r.BytecodesUsedLastTurn = fn(r.ID, control.NewHandle(c, r))
}
