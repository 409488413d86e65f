package ewebsock

import "fmt"

type MessageType byte

// Values follow the RFC 6455 opcodes where one exists. UnknownMessage
// has no opcode: it only ever appears on the receive path.
const (
	UnknownMessage MessageType = 0
	TextMessage    MessageType = 1
	BinaryMessage  MessageType = 2
	PingMessage    MessageType = 9
	PongMessage    MessageType = 10
)

func (t MessageType) Is(other MessageType) bool {
	return t == other
}

func (t MessageType) IsText() bool {
	return t.Is(TextMessage)
}

func (t MessageType) IsBinary() bool {
	return t.Is(BinaryMessage)
}

func (t MessageType) IsPing() bool {
	return t.Is(PingMessage)
}

func (t MessageType) IsPong() bool {
	return t.Is(PongMessage)
}

func (t MessageType) IsUnknown() bool {
	return t.Is(UnknownMessage)
}

// IsSendable reports whether messages of this type may be passed to
// Sender.Send. Only UnknownMessage is not sendable.
func (t MessageType) IsSendable() bool {
	return !t.IsUnknown()
}

type Message interface {
	Type() MessageType
	Data() []byte
	String() string
}

type message struct {
	MessageType MessageType
	MessageData []byte
}

func (m message) Type() MessageType {
	return m.MessageType
}

func (m message) Data() []byte {
	return m.MessageData
}

func (m message) String() string {
	return fmt.Sprintf("Message{type=%d,data=%s}",
		m.MessageType, m.MessageData)
}

func NewMessage(mt MessageType, data []byte) Message {
	return message{MessageType: mt, MessageData: data}
}

func NewTextMessage(text string) Message {
	return NewMessage(TextMessage, []byte(text))
}

func NewBinaryMessage(data []byte) Message {
	return NewMessage(BinaryMessage, data)
}

// NewPingMessage builds a ping control message. Only the native
// backend can transmit control messages; browser sockets expose no
// API for them.
func NewPingMessage(data []byte) Message {
	return NewMessage(PingMessage, data)
}

func NewPongMessage(data []byte) Message {
	return NewMessage(PongMessage, data)
}

// newUnknownMessage wraps inbound data of a kind the backend does not
// understand. Applications can receive these but never send them.
func newUnknownMessage(text string) Message {
	return NewMessage(UnknownMessage, []byte(text))
}
