package ewebsock

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSenderSendFIFO(t *testing.T) {
	tx := make(chan Message, 10)
	s := newSender(tx)

	s.Send(NewTextMessage("1"))
	s.Send(NewTextMessage("2"))
	s.Send(NewBinaryMessage([]byte("3")))

	for _, want := range []string{"1", "2", "3"} {
		got := <-tx
		require.Equal(t, want, string(got.Data()))
	}
	s.Close()
}

func TestSenderCloseIsIdempotent(t *testing.T) {
	tx := make(chan Message, 1)
	s := newSender(tx)

	s.Close()
	s.Close()

	_, ok := <-tx
	require.False(t, ok, "channel should be closed")
}

func TestSenderSendAfterCloseIsNoop(t *testing.T) {
	tx := make(chan Message, 1)
	s := newSender(tx)
	s.Close()

	require.NotPanics(t, func() {
		s.Send(NewTextMessage("late"))
	})
}

func TestSenderForgetLeavesChannelOpen(t *testing.T) {
	tx := make(chan Message, 1)
	s := newSender(tx)
	s.Forget()

	select {
	case _, ok := <-tx:
		require.True(t, ok, "channel must not be closed by Forget")
		t.Fatal("unexpected message on channel")
	default:
	}

	// The handle is spent: sends go nowhere.
	s.Send(NewTextMessage("late"))
	require.Empty(t, tx)
}

func TestSenderUnknownMessagePanics(t *testing.T) {
	tx := make(chan Message, 1)
	s := newSender(tx)
	defer s.Close()

	require.Panics(t, func() {
		s.Send(newUnknownMessage("bogus"))
	})
	require.Empty(t, tx, "nothing may be enqueued for an unknown message")
}

func TestSenderCollectionClosesChannel(t *testing.T) {
	tx := make(chan Message)

	func() {
		_ = newSender(tx)
	}()

	closed := false
	for i := 0; i < 100 && !closed; i++ {
		runtime.GC()
		select {
		case _, ok := <-tx:
			if !ok {
				closed = true
			}
		case <-time.After(10 * time.Millisecond):
		}
	}
	require.True(t, closed, "finalizer should close the channel after collection")
}
