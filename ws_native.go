//go:build !js

package ewebsock

import (
	"sync"
	"time"

	"github.com/fasthttp/websocket"
	"github.com/pkg/errors"
)

// writeDeadline bounds a single frame write so a stalled peer cannot
// wedge the write loop forever.
const writeDeadline = 10 * time.Second

// nativeConn bridges one WebSocket connection to the uniform event
// model. The read loop and the write loop run concurrently until one
// of them terminates; safeClose then unblocks the other, so neither
// side is ever left running on its own.
type nativeConn struct {
	logger  Logger
	options Options
	url     string
	gate    *eventGate
	out     chan Message
	conn    *websocket.Conn

	closeC          closeChan
	closeOnce       sync.Once
	closeReason     error
	closeReasonOnce sync.Once
}

func wsConnect(url string, options Options, onEvent EventHandler) (*Sender, error) {
	c := &nativeConn{
		logger:  pkgLogger.WithField("backend", "native"),
		options: options,
		url:     url,
		out:     make(chan Message, outgoingBufferSize),
		closeC:  make(closeChan),
	}
	c.gate = newEventGate(c.logger, onEvent, c.safeClose)

	go c.run()

	return newSender(c.out), nil
}

func (c *nativeConn) run() {
	defer c.drainOutgoing()

	conn, resp, err := websocket.DefaultDialer.Dial(c.url, nil)
	if err != nil {
		c.logger.Errorf("connection err to %s: %s", c.url, err)
		c.gate.dispatch(NewErrorEvent(dialError(resp, err)))
		return
	}

	c.logger.Debugf("success opening connection to %s", c.url)

	c.conn = conn
	if c.options.MaxIncomingFrameSize > 0 {
		conn.SetReadLimit(c.options.MaxIncomingFrameSize)
	}

	// Take over the control frames: pings are answered and surfaced,
	// pongs surfaced, and a close frame becomes the Closed event.
	conn.SetPingHandler(func(appData string) error {
		c.logger.Debugf("<= [PING]")
		_ = conn.WriteControl(
			websocket.PongMessage, []byte(appData), time.Now().Add(writeDeadline))
		c.gate.dispatch(NewMessageEvent(NewPingMessage([]byte(appData))))
		return nil
	})
	conn.SetPongHandler(func(appData string) error {
		c.logger.Debugf("<= [PONG]")
		c.gate.dispatch(NewMessageEvent(NewPongMessage([]byte(appData))))
		return nil
	})
	conn.SetCloseHandler(func(code int, text string) error {
		c.logger.Debugf("<= [CLOSE] %d %s", code, text)
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(code, ""), time.Now().Add(writeDeadline))
		c.gate.dispatch(NewClosedEvent())
		c.setCloseReason(ErrConnectionClosed)
		return nil
	})

	c.gate.dispatch(NewOpenedEvent())

	go c.writeLoop()
	if c.options.KeepAliveInterval > 0 {
		go c.keepAliveLoop()
	}
	c.readLoop()
}

func (c *nativeConn) readLoop() {
	defer c.safeClose()

	for {
		if c.gate.stopRequested() || c.closing() {
			c.setCloseReason(ErrTerminated)
			return
		}

		messageType, bts, err := c.conn.ReadMessage()
		if err != nil {
			if c.closing() {
				c.setCloseReason(ErrTerminated)
				return
			}
			if websocket.IsCloseError(err,
				websocket.CloseNormalClosure,
				websocket.CloseGoingAway,
				websocket.CloseNoStatusReceived,
			) {
				c.gate.dispatch(NewClosedEvent())
				c.setCloseReason(ErrConnectionClosed)
				return
			}

			c.logger.Errorf("error occurred on websocket read: %s", err)
			reason := errors.Wrap(ErrConnectionClosed, err.Error())
			c.gate.dispatch(NewErrorEvent(reason))
			c.setCloseReason(reason)
			return
		}

		switch messageType {
		case websocket.BinaryMessage:
			c.logger.Debugf("<= [BIN] %d bytes", len(bts))
			c.gate.dispatch(NewMessageEvent(NewBinaryMessage(bts)))
		case websocket.TextMessage:
			c.logger.Debugf("<= [TEXT] %s", bts)
			c.gate.dispatch(NewMessageEvent(NewTextMessage(string(bts))))
		}
	}
}

func (c *nativeConn) writeLoop() {
	defer c.safeClose()

	for {
		select {
		case <-c.closeC:
			c.setCloseReason(ErrTerminated)
			return
		case msg, ok := <-c.out:
			if !ok {
				// Sender closed or collected: end the write side and
				// with it the connection.
				c.logger.Infof("closing connection from our side")
				_ = c.conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(writeDeadline))
				c.gate.dispatch(NewClosedEvent())
				c.setCloseReason(ErrTerminated)
				return
			}

			if err := c.writeMessage(msg); err != nil {
				if c.closing() {
					c.setCloseReason(ErrTerminated)
					return
				}
				c.logger.Errorf("error occurred on websocket write: %s", err)
				reason := errors.Wrap(ErrConnectionClosed, err.Error())
				c.gate.dispatch(NewErrorEvent(reason))
				c.setCloseReason(reason)
				return
			}
		}
	}
}

func (c *nativeConn) writeMessage(msg Message) error {
	deadline := time.Now().Add(writeDeadline)
	_ = c.conn.SetWriteDeadline(deadline)

	switch msg.Type() {
	case TextMessage:
		c.logger.Debugf("=> [TEXT] %s", msg.Data())
		return c.conn.WriteMessage(websocket.TextMessage, msg.Data())
	case BinaryMessage:
		c.logger.Debugf("=> [BIN] %d bytes", len(msg.Data()))
		return c.conn.WriteMessage(websocket.BinaryMessage, msg.Data())
	case PingMessage:
		c.logger.Debugf("=> [PING]")
		return c.conn.WriteControl(websocket.PingMessage, msg.Data(), deadline)
	case PongMessage:
		c.logger.Debugf("=> [PONG]")
		return c.conn.WriteControl(websocket.PongMessage, msg.Data(), deadline)
	default:
		panic("ewebsock: message of unknown type cannot be sent")
	}
}

// keepAliveLoop pings the server at the configured interval so idle
// connections are not dropped by intermediaries. WriteControl is safe
// to call concurrently with the write loop.
func (c *nativeConn) keepAliveLoop() {
	ticker := time.NewTicker(c.options.KeepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.closeC:
			return
		case <-ticker.C:
			deadline := time.Now().Add(writeDeadline)
			if err := c.conn.WriteControl(websocket.PingMessage, nil, deadline); err != nil {
				c.logger.Warnf("keep-alive ping failed: %s", err)
				return
			}
		}
	}
}

func (c *nativeConn) safeClose() {
	c.closeOnce.Do(c.close)
}

func (c *nativeConn) close() {
	if c.conn != nil {
		_ = c.conn.Close()
	}
	close(c.closeC)
	c.logger.Debugf("connection finished: %v", c.closeReason)
}

func (c *nativeConn) closing() bool {
	select {
	case <-c.closeC:
		return true
	default:
		return false
	}
}

func (c *nativeConn) setCloseReason(err error) {
	c.closeReasonOnce.Do(func() {
		c.closeReason = err
	})
}

// drainOutgoing consumes queued messages after the connection has
// ended, so late Send calls stay non-blocking no-ops until the Sender
// is closed or collected.
func (c *nativeConn) drainOutgoing() {
	for range c.out {
	}
}
