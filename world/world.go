// Package world holds the authoritative, mutable simulation state: the
// spatial index, the id->robot table, per-tile rubble/parts, per-team
// resources/memory/broadcast channels, and the round's signal log
// (spec.md §4.1). It exposes the read/write surface control.RobotController
// sits on top of, and the bookkeeping engine.Engine drives at round
// boundaries.
package world

import (
	"sort"

	"github.com/nicoberrocal/battlecore/actionerr"
	"github.com/nicoberrocal/battlecore/catalog"
	"github.com/nicoberrocal/battlecore/config"
	"github.com/nicoberrocal/battlecore/gamemap"
	"github.com/nicoberrocal/battlecore/geometry"
	"github.com/nicoberrocal/battlecore/robot"
	"github.com/pkg/errors"
)

// InvariantViolation is the typed panic raised when ground-truth state is
// about to break an internal invariant the core itself is responsible for
// upholding (spec.md §5 "internal invariant breaches ... are fatal and
// should abort the match deterministically"). It is never recovered by
// Controller action code; only a top-level caller (engine.Engine.RunRound)
// recovers it, turning it into a returned error instead of a rejected
// action.
type InvariantViolation struct {
	cause error
}

func (v InvariantViolation) Error() string { return v.cause.Error() }
func (v InvariantViolation) Unwrap() error { return v.cause }

// World is the single shared mutable state of a match. All action
// arbitration mutates it; nothing else does.
type World struct {
	Constants *config.Constants
	GameMap   *gamemap.GameMap

	Round int

	robots     map[robot.ID]*robot.Robot
	occupancy  map[geometry.MapLocation]robot.ID
	nextID     robot.ID

	rubble map[geometry.MapLocation]float64
	parts  map[geometry.MapLocation]float64
	ore    map[geometry.MapLocation]float64

	teams map[catalog.Team]*TeamState

	memory map[catalog.Team]*TeamMapMemory

	// radioChannels is what ReadBroadcast exposes: each team's channel
	// values as of the last SwapRadioChannels call.
	radioChannels map[catalog.Team]map[int]int32
	// radioNext accumulates this-round writes (Broadcast); SwapRadioChannels
	// copies it into radioChannels at the next round boundary, so a write
	// only becomes visible to other same-team robots starting next round
	// (spec.md §4.6).
	radioNext map[catalog.Team]map[int]int32

	inboxes map[robot.ID]*Inbox

	events []Event

	reservedTiles map[geometry.MapLocation]int // tile -> rounds remaining reserved by an in-progress build

	buildingCount map[catalog.Team]map[catalog.RobotType]int
}

// New builds a World from an immutable GameMap, seeding mutable rubble and
// parts copies from it and placing every InitialRobot.
func New(gm *gamemap.GameMap, constants *config.Constants) *World {
	w := &World{
		Constants:     constants,
		GameMap:       gm,
		robots:        make(map[robot.ID]*robot.Robot),
		occupancy:     make(map[geometry.MapLocation]robot.ID),
		rubble:        make(map[geometry.MapLocation]float64),
		parts:         make(map[geometry.MapLocation]float64),
		ore:           make(map[geometry.MapLocation]float64),
		teams:         make(map[catalog.Team]*TeamState),
		memory:        make(map[catalog.Team]*TeamMapMemory),
		radioChannels: make(map[catalog.Team]map[int]int32),
		radioNext:     make(map[catalog.Team]map[int]int32),
		inboxes:       make(map[robot.ID]*Inbox),
		reservedTiles: make(map[geometry.MapLocation]int),
		buildingCount: make(map[catalog.Team]map[catalog.RobotType]int),
	}

	for _, loc := range gm.AllLocations() {
		w.rubble[loc] = gm.InitialRubble(loc)
		w.parts[loc] = gm.InitialParts(loc)
		w.ore[loc] = gm.InitialOre(loc)
	}

	for _, team := range []catalog.Team{catalog.TeamA, catalog.TeamB} {
		w.teams[team] = NewTeamState(constants.PartsInitialAmount)
		w.memory[team] = NewTeamMapMemory()
		w.radioChannels[team] = make(map[int]int32)
		w.radioNext[team] = make(map[int]int32)
	}

	nextID := robot.ID(1)
	for _, init := range gm.InitialRobots {
		data, ok := catalog.Lookup(init.Type)
		if !ok {
			continue
		}
		r := robot.New(nextID, init.Type, init.Team, init.Location, data.MaxHealth)
		w.placeRobot(r)
		nextID++
		if team := w.teams[init.Team]; team != nil {
			team.RobotCounts[init.Type]++
			if init.Type == catalog.Commander {
				team.HasCommander = true
			}
		}
	}
	w.nextID = nextID

	return w
}

func (w *World) placeRobot(r *robot.Robot) {
	w.robots[r.ID] = r
	w.occupancy[r.Location] = r.ID
	w.inboxes[r.ID] = NewInbox(w.Constants.SignalQueueMaxSize)
}

// NextID reserves and returns the next unique robot id.
func (w *World) NextID() robot.ID {
	id := w.nextID
	w.nextID++
	return id
}

// PlaceNewRobot registers a freshly created robot (spawn/build completion,
// missile launch, activation) in the id table and spatial index.
func (w *World) PlaceNewRobot(r *robot.Robot) {
	w.placeRobot(r)
	if team := w.teams[r.Team]; team != nil {
		team.RobotCounts[r.Type]++
		if r.Type == catalog.Commander {
			team.HasCommander = true
		}
	}
}

// GetObject returns the live robot at loc, if any.
func (w *World) GetObject(loc geometry.MapLocation) (*robot.Robot, bool) {
	id, ok := w.occupancy[loc]
	if !ok {
		return nil, false
	}
	r, ok := w.robots[id]
	if !ok || !r.IsAlive() {
		return nil, false
	}
	return r, true
}

// GetRobot returns the live robot with the given id.
func (w *World) GetRobot(id robot.ID) (*robot.Robot, bool) {
	r, ok := w.robots[id]
	if !ok || !r.IsAlive() {
		return nil, false
	}
	return r, true
}

// AllObjects returns every live robot ordered by ascending id (spec.md
// §4.1 "deterministic iteration order: by integer id ascending").
func (w *World) AllObjects() []*robot.Robot {
	ids := make([]robot.ID, 0, len(w.robots))
	for id, r := range w.robots {
		if r.IsAlive() {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := make([]*robot.Robot, len(ids))
	for i, id := range ids {
		out[i] = w.robots[id]
	}
	return out
}

// MoveRobot relocates r to newLoc, updating the spatial index. Callers must
// have already validated the move is legal.
func (w *World) MoveRobot(r *robot.Robot, newLoc geometry.MapLocation) {
	delete(w.occupancy, r.Location)
	r.Location = newLoc
	w.occupancy[newLoc] = r.ID
}

// RemoveRobot deletes r from the spatial index and id table (end-of-round
// reap, or immediate removal for disintegrate/activation-consumed).
func (w *World) RemoveRobot(id robot.ID) {
	r, ok := w.robots[id]
	if !ok {
		return
	}
	if cur, ok := w.occupancy[r.Location]; ok && cur == id {
		delete(w.occupancy, r.Location)
	}
	delete(w.robots, id)
	delete(w.inboxes, id)
	if team := w.teams[r.Team]; team != nil && team.RobotCounts[r.Type] > 0 {
		team.RobotCounts[r.Type]--
	}
}

// Team returns the TeamState for a playable team, or nil for NEUTRAL/ZOMBIE.
func (w *World) Team(t catalog.Team) *TeamState {
	return w.teams[t]
}

// AdjustResources applies delta to team's resource balance, failing if the
// result would be negative (spec.md §4.1).
func (w *World) AdjustResources(team catalog.Team, delta float64) error {
	ts := w.teams[team]
	if ts == nil {
		return actionerr.ErrCantDoThatBro
	}
	if ts.Resources+delta < 0 {
		return actionerr.ErrNotEnoughResource
	}
	ts.Resources += delta
	return nil
}

// Rubble returns the current (ground-truth) rubble at loc.
func (w *World) Rubble(loc geometry.MapLocation) float64 {
	return w.rubble[loc]
}

// SetRubble sets the ground-truth rubble at loc. Every caller in this repo
// floors its own delta before calling in (see ClearRubble, reap's rubble
// formula), so a negative v here means the core itself computed a value
// outside rubble's valid domain; that is an internal invariant breach, not
// a rejectable action, so it panics rather than silently clamping (spec.md
// §5).
func (w *World) SetRubble(loc geometry.MapLocation, v float64) {
	if v < 0 {
		panic(InvariantViolation{errors.Errorf("rubble at %v went negative: %v", loc, v)})
	}
	w.rubble[loc] = v
}

// AddRubble adds delta (which may be negative) to loc's rubble. A delta
// that drives the result negative panics via SetRubble.
func (w *World) AddRubble(loc geometry.MapLocation, delta float64) {
	w.SetRubble(loc, w.rubble[loc]+delta)
}

// Parts returns the current ground-truth parts at loc.
func (w *World) Parts(loc geometry.MapLocation) float64 {
	return w.parts[loc]
}

// SetParts sets the ground-truth parts at loc, clamped at 0.
func (w *World) SetParts(loc geometry.MapLocation, v float64) {
	if v < 0 {
		v = 0
	}
	w.parts[loc] = v
}

// Ore returns the current (ground-truth) ore at loc.
func (w *World) Ore(loc geometry.MapLocation) float64 {
	return w.ore[loc]
}

// SetOre sets the ground-truth ore at loc, clamped at 0.
func (w *World) SetOre(loc geometry.MapLocation, v float64) {
	if v < 0 {
		v = 0
	}
	w.ore[loc] = v
}

// CanMove reports whether loc is a legal destination for a robot of type t
// that is not the one already standing there (spec.md §4.1).
func (w *World) CanMove(loc geometry.MapLocation, t catalog.RobotType) bool {
	if !w.GameMap.InBounds(loc) {
		return false
	}
	if !w.GameMap.Terrain(loc).Traversable() {
		return false
	}
	if w.rubble[loc] >= w.Constants.RubbleObstructionThresh {
		return false
	}
	if _, occupied := w.GetObject(loc); occupied {
		return false
	}
	if _, reserved := w.reservedTiles[loc]; reserved {
		return false
	}
	return true
}

// ReserveTile marks loc unavailable for placement for the given number of
// rounds (spec.md §3 "target tile is reserved from further placement for
// the build duration").
func (w *World) ReserveTile(loc geometry.MapLocation, rounds int) {
	w.reservedTiles[loc] = rounds
}

// ReleaseTile clears a build reservation.
func (w *World) ReleaseTile(loc geometry.MapLocation) {
	delete(w.reservedTiles, loc)
}

// IsReserved reports whether loc is currently held for an in-progress build.
func (w *World) IsReserved(loc geometry.MapLocation) bool {
	_, ok := w.reservedTiles[loc]
	return ok
}

// Inbox returns the signal inbox for id, creating one if missing (e.g. a
// robot spawned mid-round).
func (w *World) Inbox(id robot.ID) *Inbox {
	ib, ok := w.inboxes[id]
	if !ok {
		ib = NewInbox(w.Constants.SignalQueueMaxSize)
		w.inboxes[id] = ib
	}
	return ib
}

// DeliverSignal pushes sig into the inbox of every live robot (any team)
// within radiusSquared of sig.SenderLocation, in ascending-id order, so
// delivery order matches emission order across the whole round (spec.md
// §4.6).
func (w *World) DeliverSignal(sig BroadcastSignal, radiusSquared int64) {
	for _, r := range w.AllObjects() {
		if r.Location.DistanceSquaredTo(sig.SenderLocation) <= radiusSquared {
			w.Inbox(r.ID).Push(sig.Copy())
		}
	}
}

// ReadBroadcast returns the value on channel for team as of the last round
// boundary, defaulting to 0. A same-team robot's own write this round is
// not reflected here until the next SwapRadioChannels — control.Controller
// layers the writer's own immediate view on top via robot.QueuedBroadcasts
// (spec.md §4.6).
func (w *World) ReadBroadcast(team catalog.Team, channel int) int32 {
	return w.radioChannels[team][channel]
}

// Broadcast records value on channel for team into the pending radio state,
// due to take effect at the next round boundary. Per spec.md §4.6 a write
// is visible to other same-team robots only starting next round; only the
// writer's own reads see it immediately, which it gets from its own
// robot.QueuedBroadcasts rather than from here (spec.md §8 "broadcast(c,v);
// next-round readBroadcast(c)==v from any same-team robot").
func (w *World) Broadcast(team catalog.Team, channel int, value int32) error {
	if channel < 0 || channel > w.Constants.BroadcastMaxChannels {
		return actionerr.ErrCantDoThatBro
	}
	m := w.radioNext[team]
	if m == nil {
		m = make(map[int]int32)
		w.radioNext[team] = m
	}
	m[channel] = value
	return nil
}

// SwapRadioChannels promotes every team's pending radioNext writes into
// radioChannels, making them visible to ReadBroadcast for the round about
// to start (spec.md §4.6). The Round Engine calls this once per round,
// before any robot acts, mirroring TeamState.SnapshotRoundStart's
// old/current snapshot pattern.
func (w *World) SwapRadioChannels() {
	for team, next := range w.radioNext {
		cur := make(map[int]int32, len(next))
		for ch, v := range next {
			cur[ch] = v
		}
		w.radioChannels[team] = cur
	}
}

// AppendEvent appends an engine-level event to this round's log.
func (w *World) AppendEvent(kind EventKind, data interface{}) {
	w.events = append(w.events, Event{Kind: kind, Round: w.Round, Data: data})
}

// InjectEvent appends an externally supplied event verbatim, implementing
// the InjectNotification collaborator hook (spec.md §6).
func (w *World) InjectEvent(e Event) {
	e.Round = w.Round
	w.events = append(w.events, e)
}

// DrainEvents returns and clears the accumulated event log, called by the
// Round Engine at the end of each round.
func (w *World) DrainEvents() []Event {
	out := w.events
	w.events = nil
	return out
}

// PeekEvents returns the events appended so far this round without
// clearing them, for mid-round bookkeeping (e.g. victory determination)
// that needs to inspect emission order before the round finishes.
func (w *World) PeekEvents() []Event {
	out := make([]Event, len(w.events))
	copy(out, w.events)
	return out
}

// Memory returns the per-team map memory cache.
func (w *World) Memory(team catalog.Team) *TeamMapMemory {
	m, ok := w.memory[team]
	if !ok {
		m = NewTeamMapMemory()
		w.memory[team] = m
	}
	return m
}
