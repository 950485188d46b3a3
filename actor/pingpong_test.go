package actor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/race-actor/core/actor"
)

type pingerMsg interface{ actor.Msg }
type pongerMsg interface{ actor.Msg }

type pingMsg struct {
	actor.Tag
	N int
}

type pongMsg struct {
	actor.Tag
	N int
}

// pinger receives pong replies and counts them.
type pinger struct {
	ponger *actor.Handle[pongerMsg]
	count  chan int
}

func (p *pinger) Receive(_ context.Context, msg pingerMsg, _ *actor.Handle[pingerMsg], _ *actor.SystemHandle) actor.Directive {
	switch m := msg.(type) {
	case pongMsg:
		p.count <- m.N
		return actor.Continue
	default:
		return actor.DefaultReceiveAction(msg)
	}
}

// ponger receives ping requests and replies with a pong.
type ponger struct {
	pinger *actor.Handle[pingerMsg]
}

func (p *ponger) Receive(_ context.Context, msg pongerMsg, _ *actor.Handle[pongerMsg], _ *actor.SystemHandle) actor.Directive {
	switch m := msg.(type) {
	case pingMsg:
		_ = p.pinger.Send(pongMsg{N: m.N + 1})
		return actor.Continue
	default:
		return actor.DefaultReceiveAction(msg)
	}
}

// TestPingPongPreHandleBreaksConstructionCycle wires two actors that each
// need the other's handle before either behavior can be constructed: ponger's
// mailbox is reserved up front via PreActor, handed to pinger's constructor,
// and bound to real behavior (via BindPreActor) only once pinger itself
// exists and can hand ponger a real handle back.
func TestPingPongPreHandleBreaksConstructionCycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	sys := actor.NewActorSystem("pingpong")
	countCh := make(chan int, 8)

	prePonger := actor.PreActor[pongerMsg](sys, "ponger", 4)
	pingerH := actor.ActorOf[pingerMsg](sys, &pinger{ponger: prePonger.Handle(), count: countCh}, 4, "pinger")
	pongerH := actor.BindPreActor[pongerMsg](sys, prePonger, &ponger{pinger: pingerH})

	require.NoError(t, pongerH.Send(pingMsg{N: 0}))
	require.Equal(t, 1, <-countCh)

	require.NoError(t, sys.TerminateAndWait(actor.Secs(1)))
}
