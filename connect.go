package ewebsock

// Connect connects to url and returns the sender/receiver pair bound
// to that connection. Poll Receiver.TryRecv for events and wait for
// EventOpened before sending.
//
// An error is only returned for local failures to start the transport
// (on web, a rejected WebSocket constructor). A failed handshake
// surfaces as an EventError on the receiver instead.
func Connect(url string, options Options) (*Sender, *Receiver, error) {
	receiver, onEvent := NewReceiver()
	sender, err := wsConnect(url, options, onEvent)
	if err != nil {
		return nil, nil, err
	}
	return sender, receiver, nil
}

// ConnectWithWakeup is Connect with a callback invoked on each inbound
// event before it is queued, e.g. to wake up a UI thread.
func ConnectWithWakeup(url string, options Options, wakeUp func()) (*Sender, *Receiver, error) {
	receiver, onEvent := NewReceiverWithWakeup(wakeUp)
	sender, err := wsConnect(url, options, onEvent)
	if err != nil {
		return nil, nil, err
	}
	return sender, receiver, nil
}

// ConnectWithHandler is the lower-level connect: instead of a
// Receiver, the caller supplies the EventHandler that the transport
// invokes for every event. Returning ControlFlowBreak from the
// handler closes the connection.
func ConnectWithHandler(url string, options Options, onEvent EventHandler) (*Sender, error) {
	return wsConnect(url, options, onEvent)
}

// ReceiveOnly connects without exposing a sender: the connection
// stays open, events flow to onEvent, and nothing can ever be sent.
// This is ConnectWithHandler followed by Sender.Forget.
func ReceiveOnly(url string, options Options, onEvent EventHandler) error {
	sender, err := wsConnect(url, options, onEvent)
	if err != nil {
		return err
	}
	sender.Forget()
	return nil
}
