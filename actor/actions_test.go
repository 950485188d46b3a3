package actor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/race-actor/core/actor"
)

type statUpdate struct {
	actor.Tag
	Value int
}

type displayMsg interface{ actor.Msg }

type display struct {
	received chan int
}

func (d *display) Receive(_ context.Context, msg displayMsg, _ *actor.Handle[displayMsg], _ *actor.SystemHandle) actor.Directive {
	switch m := msg.(type) {
	case statUpdate:
		d.received <- m.Value
		return actor.Continue
	default:
		return actor.DefaultReceiveAction(msg)
	}
}

// TestActionListFansOutProviderDataWithoutKnowingSubscriberTypes exercises
// the action pattern: a provider holds a fixed ActionList[int] built from
// handles whose message types it never names, each closure supplied at the
// construction site where both the provider's data type and the
// subscriber's message type are known.
func TestActionListFansOutProviderDataWithoutKnowingSubscriberTypes(t *testing.T) {
	defer goleak.VerifyNone(t)

	sys := actor.NewActorSystem("actions")
	d1 := &display{received: make(chan int, 1)}
	d2 := &display{received: make(chan int, 1)}
	h1 := actor.ActorOf[displayMsg](sys, d1, 4, "display-1")
	h2 := actor.ActorOf[displayMsg](sys, d2, 4, "display-2")

	actions := actor.ActionList[int]{
		actor.NewSendAction[int, displayMsg](h1, func(v int) displayMsg { return statUpdate{Value: v} }),
		actor.NewSendAction[int, displayMsg](h2, func(v int) displayMsg { return statUpdate{Value: v} }),
	}

	require.NoError(t, actions.Execute(99))
	require.Equal(t, 99, <-d1.received)
	require.Equal(t, 99, <-d2.received)

	require.NoError(t, sys.TerminateAndWait(actor.Secs(1)))
}

func TestActionListAggregatesFailures(t *testing.T) {
	var ok, bad actor.Action[int]
	ok = func(int) error { return nil }
	bad = func(int) error { return actor.ErrReceiverClosed }

	list := actor.ActionList[int]{ok, bad, bad}
	err := list.Execute(1)
	require.Error(t, err)

	var actorErr *actor.Error
	require.ErrorAs(t, err, &actorErr)
	require.Equal(t, actor.KindIterOpFailed, actorErr.Kind)
	require.Equal(t, 2, actorErr.Failed)
	require.Equal(t, 3, actorErr.Total)
}
