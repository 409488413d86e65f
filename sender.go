package ewebsock

import (
	"runtime"
	"sync"
)

// outgoingBufferSize is the capacity of the queue between Send and the
// transport write loop. Send only blocks once this many messages are
// waiting to be written.
const outgoingBufferSize = 1000

// Sender is how messages are sent to the server. It is the sole
// producer of the outgoing queue; the transport write loop is its sole
// consumer.
//
// Letting a Sender become unreachable without calling Forget closes
// the connection: a finalizer performs the Close once the handle is
// collected, so teardown happens on every exit path even when the
// caller never calls Close.
type Sender struct {
	mu sync.Mutex
	tx chan<- Message
}

func newSender(tx chan<- Message) *Sender {
	s := &Sender{tx: tx}
	runtime.SetFinalizer(s, (*Sender).Close)
	return s
}

// Send enqueues a message for transmission. Messages are written to
// the wire in the order they were sent. Wait for EventOpened before
// sending. After Close or Forget, Send is a no-op.
//
// Messages of UnknownMessage type are received-only; passing one is a
// programming error and panics before anything is enqueued.
func (s *Sender) Send(m Message) {
	if !m.Type().IsSendable() {
		panic("ewebsock: message of unknown type cannot be sent")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx == nil {
		return
	}
	s.tx <- m
}

// Close signals the transport to finish writing queued messages and
// terminate the connection. It is idempotent, and runs automatically
// when the Sender is garbage collected.
func (s *Sender) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.tx == nil {
		return
	}
	pkgLogger.Debugf("closing websocket sender")
	close(s.tx)
	s.tx = nil
	runtime.SetFinalizer(s, nil)
}

// Forget gives the handle up without closing the connection: the
// outgoing queue is intentionally leaked so the transport keeps
// running after the caller stops tracking the Sender. The send side
// becomes unusable.
func (s *Sender) Forget() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tx = nil
	runtime.SetFinalizer(s, nil)
}
