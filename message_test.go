package ewebsock

import (
	"strings"
	"testing"
)

func TestMessageTypePredicates(t *testing.T) {
	cases := []struct {
		mt       MessageType
		sendable bool
	}{
		{TextMessage, true},
		{BinaryMessage, true},
		{PingMessage, true},
		{PongMessage, true},
		{UnknownMessage, false},
	}

	for _, c := range cases {
		if c.mt.IsSendable() != c.sendable {
			t.Errorf("type %d: expected IsSendable=%v", c.mt, c.sendable)
		}
	}

	if !NewTextMessage("x").Type().IsText() {
		t.Error("expected text message to be text")
	}
	if !NewBinaryMessage(nil).Type().IsBinary() {
		t.Error("expected binary message to be binary")
	}
	if !NewPingMessage(nil).Type().IsPing() {
		t.Error("expected ping message to be ping")
	}
	if !NewPongMessage(nil).Type().IsPong() {
		t.Error("expected pong message to be pong")
	}
	if !newUnknownMessage("?").Type().IsUnknown() {
		t.Error("expected unknown message to be unknown")
	}
}

func TestMessagePayload(t *testing.T) {
	m := NewTextMessage("hello")
	if string(m.Data()) != "hello" {
		t.Errorf("expected payload 'hello', got %q", m.Data())
	}

	b := NewBinaryMessage([]byte{0x1, 0x2})
	if len(b.Data()) != 2 {
		t.Errorf("expected 2 payload bytes, got %d", len(b.Data()))
	}
}

func TestMessageString(t *testing.T) {
	m := NewTextMessage("hello")
	if !strings.Contains(m.String(), "hello") {
		t.Errorf("expected String to contain the payload, got %q", m.String())
	}
}
