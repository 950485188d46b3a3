package actor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/race-actor/core/actor"
)

// helloMsg is the message sum a greeter accepts: any actor.Msg qualifies,
// which in practice means greeting plus the automatically-added system
// variants (Start, Terminate, ...) — see actor.Tag's doc comment for why Go
// can't enforce a narrower, code-generated sum here.
type helloMsg interface{ actor.Msg }

type greeting struct {
	actor.Tag
	Text string
}

type greeter struct {
	received chan string
}

func (g *greeter) Receive(_ context.Context, msg helloMsg, _ *actor.Handle[helloMsg], _ *actor.SystemHandle) actor.Directive {
	switch m := msg.(type) {
	case greeting:
		g.received <- m.Text
		return actor.Continue
	default:
		return actor.DefaultReceiveAction(msg)
	}
}

func TestHelloSendAndTerminate(t *testing.T) {
	defer goleak.VerifyNone(t)

	sys := actor.NewActorSystem("hello")
	behavior := &greeter{received: make(chan string, 1)}
	h := actor.ActorOf[helloMsg](sys, behavior, 4, "greeter")

	require.NoError(t, h.Send(greeting{Text: "hello world"}))
	require.Equal(t, "hello world", <-behavior.received)

	require.NoError(t, sys.TerminateAndWait(actor.Secs(1)))
}

func TestHelloDefaultActorID(t *testing.T) {
	defer goleak.VerifyNone(t)

	sys := actor.NewActorSystem("hello")
	behavior := &greeter{received: make(chan string, 1)}
	h := actor.ActorOf[helloMsg](sys, behavior, 4, "")
	require.NotEmpty(t, h.ID())

	require.NoError(t, sys.TerminateAndWait(actor.Secs(1)))
}
