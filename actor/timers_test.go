package actor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/race-actor/core/actor"
)

type tickerConsumerMsg interface{ actor.Msg }

type timerConsumer struct {
	fired chan int64
	ranFn chan struct{}
}

func (c *timerConsumer) Receive(_ context.Context, msg tickerConsumerMsg, _ *actor.Handle[tickerConsumerMsg], _ *actor.SystemHandle) actor.Directive {
	switch m := msg.(type) {
	case actor.Timer:
		c.fired <- m.ID
		return actor.Continue
	case actor.Exec:
		m.Fn()
		return actor.Continue
	default:
		return actor.DefaultReceiveAction(msg)
	}
}

func TestOneshotTimerFiresOnce(t *testing.T) {
	defer goleak.VerifyNone(t)

	sys := actor.NewActorSystem("timers")
	consumer := &timerConsumer{fired: make(chan int64, 4), ranFn: make(chan struct{}, 1)}
	h := actor.ActorOf[tickerConsumerMsg](sys, consumer, 4, "timer-consumer")

	cancel := h.StartOneshotTimer(1, 10*time.Millisecond, func(tm actor.Timer) tickerConsumerMsg { return tm })
	defer cancel()

	select {
	case id := <-consumer.fired:
		require.Equal(t, int64(1), id)
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}

	require.NoError(t, sys.TerminateAndWait(actor.Secs(1)))
}

func TestRepeatTimerStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	sys := actor.NewActorSystem("repeat-timers")
	consumer := &timerConsumer{fired: make(chan int64, 16), ranFn: make(chan struct{}, 1)}
	h := actor.ActorOf[tickerConsumerMsg](sys, consumer, 4, "repeat-consumer")

	cancel := h.StartRepeatTimer(2, 5*time.Millisecond, func(tm actor.Timer) tickerConsumerMsg { return tm })
	<-consumer.fired
	<-consumer.fired
	cancel()

	require.NoError(t, sys.TerminateAndWait(actor.Secs(1)))
}

func TestExecRunsClosureInsideActorTask(t *testing.T) {
	defer goleak.VerifyNone(t)

	sys := actor.NewActorSystem("exec")
	consumer := &timerConsumer{fired: make(chan int64, 1), ranFn: make(chan struct{}, 1)}
	h := actor.ActorOf[tickerConsumerMsg](sys, consumer, 4, "exec-consumer")

	require.NoError(t, h.Exec(func() { consumer.ranFn <- struct{}{} }, func(e actor.Exec) tickerConsumerMsg { return e }))
	<-consumer.ranFn

	require.NoError(t, sys.TerminateAndWait(actor.Secs(1)))
}
