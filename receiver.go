package ewebsock

import "sync"

// Receiver is the consuming end of the inbound event stream. Events
// queue up in arrival order until the application polls them off with
// TryRecv.
//
// The queue is unbounded: a consumer that stops polling trades memory
// for the events it has not looked at yet.
type Receiver struct {
	mu      sync.Mutex
	queue   []Event
	stopped bool
}

// NewReceiver returns a receiver plus the EventHandler that feeds it,
// for use with ConnectWithHandler or ReceiveOnly. Connect wires the
// two up for you.
func NewReceiver() (*Receiver, EventHandler) {
	return NewReceiverWithWakeup(nil)
}

// NewReceiverWithWakeup is NewReceiver with a callback invoked before
// each event is queued. It lets a foreign event loop or UI thread
// learn that data is ready without polling TryRecv tightly.
func NewReceiverWithWakeup(wakeUp func()) (*Receiver, EventHandler) {
	r := &Receiver{}

	onEvent := func(ev Event) ControlFlow {
		if r.isStopped() {
			return ControlFlowBreak
		}

		if wakeUp != nil {
			wakeUp()
		}

		r.mu.Lock()
		r.queue = append(r.queue, ev)
		r.mu.Unlock()
		return ControlFlowContinue
	}

	return r, onEvent
}

// TryRecv pops the next event in arrival order without blocking. ok
// is false when no event is waiting; that is not an error.
func (r *Receiver) TryRecv() (ev Event, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) == 0 {
		return Event{}, false
	}

	ev = r.queue[0]
	copy(r.queue, r.queue[1:])
	r.queue = r.queue[:len(r.queue)-1]
	return ev, true
}

// Stop makes the receiver stop observing the connection: from the
// next event on its handler answers ControlFlowBreak, which asks the
// transport to shut the connection down. Events already queued remain
// retrievable. A Receiver has no other influence over the connection.
func (r *Receiver) Stop() {
	r.mu.Lock()
	r.stopped = true
	r.mu.Unlock()
}

func (r *Receiver) isStopped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stopped
}
