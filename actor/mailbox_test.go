package actor_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/race-actor/core/actor"
)

type intMsg struct {
	actor.Tag
	V int
}

func TestMailboxTrySendFullAndClosed(t *testing.T) {
	mb := actor.NewMailbox[intMsg](2)
	require.NoError(t, mb.TrySend(intMsg{V: 1}))
	require.NoError(t, mb.TrySend(intMsg{V: 2}))

	err := mb.TrySend(intMsg{V: 3})
	require.ErrorIs(t, err, actor.ErrReceiverFull)

	mb.Close()
	err = mb.TrySend(intMsg{V: 4})
	require.ErrorIs(t, err, actor.ErrReceiverClosed)
}

func TestMailboxSendBlocksUntilRoomThenDrains(t *testing.T) {
	mb := actor.NewMailbox[intMsg](1)
	require.NoError(t, mb.TrySend(intMsg{V: 1}))

	sendDone := make(chan error, 1)
	go func() {
		sendDone <- mb.Send(context.Background(), intMsg{V: 2})
	}()

	select {
	case <-sendDone:
		t.Fatal("Send returned before room was available")
	case <-time.After(20 * time.Millisecond):
	}

	msg, ok, err := mb.Recv(context.Background())
	require.True(t, ok)
	require.NoError(t, err)
	require.Equal(t, 1, msg.V)

	require.NoError(t, <-sendDone)
	require.Equal(t, 1, mb.Len())
}

func TestMailboxSendWithTimeoutExpires(t *testing.T) {
	mb := actor.NewMailbox[intMsg](1)
	require.NoError(t, mb.TrySend(intMsg{V: 1}))

	err := mb.SendWithTimeout(intMsg{V: 2}, 20*time.Millisecond)
	require.Error(t, err)
	var actorErr *actor.Error
	require.ErrorAs(t, err, &actorErr)
	require.Equal(t, actor.KindTimeout, actorErr.Kind)
}

func TestMailboxRecvOnClosedEmptyReturnsNotOk(t *testing.T) {
	mb := actor.NewMailbox[intMsg](2)
	mb.Close()

	_, ok, err := mb.Recv(context.Background())
	require.False(t, ok)
	require.NoError(t, err)
}
