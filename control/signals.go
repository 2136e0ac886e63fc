package control

import (
	"github.com/nicoberrocal/battlecore/actionerr"
	"github.com/nicoberrocal/battlecore/robot"
	"github.com/nicoberrocal/battlecore/world"
)

// Broadcast writes value to a radio channel shared by actor's team
// (spec.md §4.6). Visible to actor's own reads this turn; to teammates
// from next round.
func (c *Controller) Broadcast(actor *robot.Robot, channel int, value int32) error {
	if err := c.w.Broadcast(actor.Team, channel, value); err != nil {
		return err
	}
	actor.QueuedBroadcasts[channel] = value
	return nil
}

// ReadBroadcast returns the current value on channel for actor's team. If
// actor itself wrote this channel earlier this turn, that write is
// reflected immediately even though the team-wide radioChannels state
// doesn't update until next round (spec.md §4.6).
func (c *Controller) ReadBroadcast(actor *robot.Robot, channel int) int32 {
	if v, ok := actor.QueuedBroadcasts[channel]; ok {
		return v
	}
	return c.w.ReadBroadcast(actor.Team, channel)
}

// excessDelay returns the additional core/weapon delay incurred by casting
// a signal beyond actor's own sensor radius (spec.md §4.6: "Casting beyond
// the sender's sensorRadiusSquared incurs additional core/weapon delay
// scaling with excess").
func (c *Controller) excessDelay(actor *robot.Robot, radiusSquared int64) float64 {
	d := c.data(actor)
	if radiusSquared <= d.SensorRadiusSquared {
		return 0
	}
	excess := float64(radiusSquared-d.SensorRadiusSquared) / float64(d.SensorRadiusSquared+1)
	return c.w.Constants.BroadcastBaseDelayIncrease + c.w.Constants.BroadcastAdditionalDelayIncrease*excess
}

// BroadcastSignal emits a bare spatial signal to every robot within
// radiusSquared (spec.md §4.6 "broadcastSignal(radiusSquared)").
func (c *Controller) BroadcastSignal(actor *robot.Robot, radiusSquared int64) error {
	if actor.Broadcast.Basic >= c.w.Constants.BasicSignalsPerTurn {
		return actionerr.ErrCantDoThatBro
	}
	delay := c.excessDelay(actor, radiusSquared)
	actor.CoreDelay += delay
	actor.WeaponDelay += delay
	actor.Broadcast.Basic++
	c.w.DeliverSignal(world.BroadcastSignal{SenderID: actor.ID, SenderTeam: actor.Team, SenderLocation: actor.Location}, radiusSquared)
	return nil
}

// BroadcastMessageSignal emits a two-word spatial signal (spec.md §4.6
// "broadcastMessageSignal(m1, m2, radiusSquared)").
func (c *Controller) BroadcastMessageSignal(actor *robot.Robot, m1, m2 int32, radiusSquared int64) error {
	if actor.Broadcast.Message >= c.w.Constants.MessageSignalsPerTurn {
		return actionerr.ErrCantDoThatBro
	}
	delay := c.excessDelay(actor, radiusSquared)
	actor.CoreDelay += delay
	actor.WeaponDelay += delay
	actor.Broadcast.Message++
	msg := [2]int32{m1, m2}
	c.w.DeliverSignal(world.BroadcastSignal{SenderID: actor.ID, SenderTeam: actor.Team, SenderLocation: actor.Location, Message: &msg}, radiusSquared)
	return nil
}

// ReadSignal peeks actor's inbox without clearing it.
func (c *Controller) ReadSignal(actor *robot.Robot) []world.BroadcastSignal {
	return c.w.Inbox(actor.ID).ReadAll()
}

// EmptySignalQueue atomically returns and clears actor's inbox (spec.md
// §4.6 "emptySignalQueue").
func (c *Controller) EmptySignalQueue(actor *robot.Robot) []world.BroadcastSignal {
	return c.w.Inbox(actor.ID).Empty()
}

// GetTeamMemory returns the round-start snapshot of actor's team memory.
func (c *Controller) GetTeamMemory(actor *robot.Robot) [world.TeamMemorySize]int64 {
	ts := c.w.Team(actor.Team)
	if ts == nil {
		return [world.TeamMemorySize]int64{}
	}
	return ts.GetTeamMemory()
}

// SetTeamMemory applies new = (old &^ mask) | (value & mask) at index for
// actor's team (spec.md §4.3 "setTeamMemory(index, value [, mask])").
func (c *Controller) SetTeamMemory(actor *robot.Robot, index int, value, mask int64) error {
	ts := c.w.Team(actor.Team)
	if ts == nil {
		return actionerr.ErrCantDoThatBro
	}
	ts.SetTeamMemory(index, value, mask)
	return nil
}

// SetTeamMemoryOverwrite is SetTeamMemory with an all-ones mask.
func (c *Controller) SetTeamMemoryOverwrite(actor *robot.Robot, index int, value int64) error {
	ts := c.w.Team(actor.Team)
	if ts == nil {
		return actionerr.ErrCantDoThatBro
	}
	ts.SetTeamMemoryOverwrite(index, value)
	return nil
}
