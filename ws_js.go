//go:build js && wasm

package ewebsock

import (
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Cikmo/ewebsock/internal/wsjs"
)

// jsConn bridges the browser WebSocket object to the uniform event
// model. The browser owns the read side, delivering frames as events;
// only the write pump runs as a goroutine.
type jsConn struct {
	logger Logger
	delay  time.Duration
	ws     *wsjs.WebSocket
	gate   *eventGate
	out    chan Message

	closeC    closeChan
	closeOnce sync.Once
}

// wsConnect starts a connection through the host WebSocket API. The
// MaxIncomingFrameSize option is ignored here: the host enforces its
// own frame limits.
func wsConnect(url string, options Options, onEvent EventHandler) (*Sender, error) {
	ws, err := wsjs.New(url, nil)
	if err != nil {
		return nil, errors.Wrap(ErrCannotConnect, err.Error())
	}

	delay := options.DelayBlocking
	if delay <= 0 {
		delay = defaultDelayBlocking
	}

	c := &jsConn{
		logger: pkgLogger.WithField("backend", "web"),
		delay:  delay,
		ws:     ws,
		out:    make(chan Message, outgoingBufferSize),
		closeC: make(closeChan),
	}
	c.gate = newEventGate(c.logger, onEvent, c.safeClose)

	ws.OnOpen(func() {
		c.logger.Debugf("success opening connection to %s", url)
		c.gate.dispatch(NewOpenedEvent())
	})
	ws.OnMessage(func(data any) {
		switch payload := data.(type) {
		case string:
			c.logger.Debugf("<= [TEXT] %s", payload)
			c.gate.dispatch(NewMessageEvent(NewTextMessage(payload)))
		case []byte:
			c.logger.Debugf("<= [BIN] %d bytes", len(payload))
			c.gate.dispatch(NewMessageEvent(NewBinaryMessage(payload)))
		default:
			c.gate.dispatch(NewMessageEvent(
				newUnknownMessage(fmt.Sprintf("%v", payload))))
		}
	})
	ws.OnError(func(msg string) {
		c.logger.Errorf("error occurred on websocket: %s", msg)
		c.gate.dispatch(NewErrorEvent(errors.Wrap(ErrConnectionClosed, msg)))
		c.safeClose()
	})
	ws.OnClose(func(ev wsjs.CloseEvent) {
		c.logger.Debugf("<= [CLOSE] %d %s", ev.Code, ev.Reason)
		c.gate.dispatch(NewClosedEvent())
		c.safeClose()
	})

	go c.writePump()

	return newSender(c.out), nil
}

func (c *jsConn) writePump() {
	for {
		select {
		case <-c.closeC:
			return
		case msg, ok := <-c.out:
			if !ok {
				// Sender closed or collected. The browser answers with
				// a close event, which delivers EventClosed.
				c.logger.Infof("closing connection from our side")
				_ = c.ws.Close(wsjs.CloseNormal, "")
				return
			}
			c.writeMessage(msg)
		}
	}
}

// writeMessage waits for the socket to leave the connecting state,
// polling at the configured interval since the browser offers no
// blocking primitive, then sends the message.
func (c *jsConn) writeMessage(msg Message) {
	for c.ws.ReadyState() == wsjs.StateConnecting {
		time.Sleep(c.delay)
	}
	if c.ws.ReadyState() != wsjs.StateOpen {
		c.logger.Warnf("dropping %s: socket is not open", msg)
		return
	}

	var err error
	switch msg.Type() {
	case TextMessage:
		c.logger.Debugf("=> [TEXT] %s", msg.Data())
		err = c.ws.SendText(string(msg.Data()))
	case BinaryMessage:
		c.logger.Debugf("=> [BIN] %d bytes", len(msg.Data()))
		err = c.ws.SendBytes(msg.Data())
	case PingMessage, PongMessage:
		c.logger.Warnf("dropping %s: browser sockets cannot send control frames", msg)
	default:
		panic("ewebsock: message of unknown type cannot be sent")
	}

	if err != nil {
		c.gate.dispatch(NewErrorEvent(errors.Wrap(ErrConnectionClosed, err.Error())))
		c.safeClose()
	}
}

func (c *jsConn) safeClose() {
	c.closeOnce.Do(func() {
		_ = c.ws.Close(wsjs.CloseNormal, "")
		close(c.closeC)
		go c.drainOutgoing()
	})
}

// drainOutgoing consumes queued messages after the connection has
// ended, so late Send calls stay non-blocking no-ops until the Sender
// is closed or collected.
func (c *jsConn) drainOutgoing() {
	for range c.out {
	}
}
