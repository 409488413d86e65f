package ewebsock

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventGateDeliversInOrder(t *testing.T) {
	h := newRecordingHandler()
	gate := newEventGate(noopLogger{}, h.Handle, nil)

	gate.dispatch(NewOpenedEvent())
	gate.dispatch(NewMessageEvent(NewTextMessage("a")))
	gate.dispatch(NewMessageEvent(NewTextMessage("b")))

	events := h.Events()
	require.Len(t, events, 3)
	require.Equal(t, EventOpened, events[0].Type)
	require.Equal(t, "a", string(events[1].Message.Data()))
	require.Equal(t, "b", string(events[2].Message.Data()))
}

func TestEventGateTerminalAfterClosed(t *testing.T) {
	h := newRecordingHandler()
	gate := newEventGate(noopLogger{}, h.Handle, nil)

	require.True(t, gate.dispatch(NewClosedEvent()))
	require.False(t, gate.dispatch(NewMessageEvent(NewTextMessage("late"))))
	require.False(t, gate.dispatch(NewClosedEvent()))

	require.Len(t, h.Events(), 1)
}

func TestEventGateTerminalAfterError(t *testing.T) {
	h := newRecordingHandler()
	gate := newEventGate(noopLogger{}, h.Handle, nil)

	require.True(t, gate.dispatch(NewErrorEvent(ErrCannotConnect)))
	require.False(t, gate.dispatch(NewClosedEvent()))

	events := h.Events()
	require.Len(t, events, 1)
	require.ErrorIs(t, events[0].Err, ErrCannotConnect)
}

func TestEventGateBreakStopsDelivery(t *testing.T) {
	sink := &mockEventSink{}
	sink.On("Handle", mock.Anything).Return(ControlFlowBreak).Once()

	breaks := 0
	gate := newEventGate(noopLogger{}, sink.Handle, func() { breaks++ })

	require.True(t, gate.dispatch(NewOpenedEvent()))
	require.Equal(t, 1, breaks)
	require.True(t, gate.stopRequested())

	// The handler must not be invoked again after the break.
	require.False(t, gate.dispatch(NewMessageEvent(NewTextMessage("late"))))

	sink.AssertExpectations(t)
}
