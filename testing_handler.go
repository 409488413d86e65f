package ewebsock

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

// recordingHandler collects every event it is handed and answers a
// scripted ControlFlow, for exercising the delivery contract in tests.
type recordingHandler struct {
	mu     sync.Mutex
	events []Event
	// flow decides the answer per event; nil means always continue.
	flow func(Event) ControlFlow
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{}
}

func (h *recordingHandler) Handle(ev Event) ControlFlow {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.events = append(h.events, ev)
	if h.flow != nil {
		return h.flow(ev)
	}
	return ControlFlowContinue
}

func (h *recordingHandler) Events() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]Event(nil), h.events...)
}

type mockEventSink struct {
	mock.Mock
}

func (m *mockEventSink) Handle(ev Event) ControlFlow {
	args := m.Called(ev)
	return args.Get(0).(ControlFlow)
}
