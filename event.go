package ewebsock

import "fmt"

// ControlFlow is what an EventHandler answers to tell the transport
// whether to keep delivering events.
type ControlFlow byte

const (
	ControlFlowContinue ControlFlow = iota
	ControlFlowBreak
)

func (f ControlFlow) IsBreak() bool {
	return f == ControlFlowBreak
}

// EventHandler is invoked by the transport bridge for every inbound
// event, never by the application directly. Returning ControlFlowBreak
// asks the bridge to stop invoking the handler and shut the connection
// down. The request is cooperative: an event already in flight on a
// concurrent loop may still be dropped with a warning instead of
// delivered, but the handler is not invoked again.
type EventHandler func(Event) ControlFlow

type EventType byte

const (
	// EventOpened signals that the handshake completed and sending is
	// now permitted. It is delivered at most once, before any
	// EventMessage.
	EventOpened EventType = iota + 1
	EventMessage
	EventError
	EventClosed
)

// Event is something happening with the connection. EventError and
// EventClosed are terminal: no further events follow them.
type Event struct {
	Type EventType
	// Message is set when Type is EventMessage.
	Message Message
	// Err is set when Type is EventError.
	Err error
}

// IsTerminal reports whether no further event can follow this one.
func (e Event) IsTerminal() bool {
	return e.Type == EventError || e.Type == EventClosed
}

func (e Event) String() string {
	switch e.Type {
	case EventOpened:
		return "Event{opened}"
	case EventMessage:
		return fmt.Sprintf("Event{message=%s}", e.Message)
	case EventError:
		return fmt.Sprintf("Event{error=%s}", e.Err)
	case EventClosed:
		return "Event{closed}"
	}
	return fmt.Sprintf("Event{type=%d}", e.Type)
}

func NewOpenedEvent() Event {
	return Event{Type: EventOpened}
}

func NewMessageEvent(m Message) Event {
	return Event{Type: EventMessage, Message: m}
}

func NewErrorEvent(err error) Event {
	return Event{Type: EventError, Err: err}
}

func NewClosedEvent() Event {
	return Event{Type: EventClosed}
}
