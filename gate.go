package ewebsock

import "sync"

// closeChan is closed exactly once to signal connection teardown.
type closeChan chan struct{}

// eventGate funnels every event a backend produces through the
// EventHandler while enforcing the delivery contract: handler
// invocations are serialized, nothing is delivered after a terminal
// event, and a ControlFlowBreak answer stops delivery and runs the
// backend's onBreak hook.
type eventGate struct {
	logger  Logger
	onEvent EventHandler
	// onBreak runs at most once, after the handler requests a stop.
	onBreak func()

	mu       sync.Mutex
	stopped  bool
	terminal bool
}

func newEventGate(logger Logger, onEvent EventHandler, onBreak func()) *eventGate {
	return &eventGate{
		logger:  logger,
		onEvent: onEvent,
		onBreak: onBreak,
	}
}

// dispatch delivers ev to the handler and reports whether it was
// actually delivered.
func (g *eventGate) dispatch(ev Event) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.terminal {
		return false
	}
	if g.stopped {
		// A stop was requested while another loop already had this
		// event in flight. Cooperative cancellation cannot prevent
		// that, so report it instead of delivering.
		g.logger.Warnf("dropping %s: handler requested stop", ev)
		return false
	}

	flow := g.onEvent(ev)

	if ev.IsTerminal() {
		g.terminal = true
	}
	if flow.IsBreak() {
		g.stopped = true
		if g.onBreak != nil {
			g.onBreak()
		}
	}
	return true
}

// stopRequested is checked by the backend loops at iteration
// boundaries so a break or terminal event ends them promptly.
func (g *eventGate) stopRequested() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stopped || g.terminal
}
