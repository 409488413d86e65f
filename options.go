package ewebsock

import "time"

const (
	defaultMaxIncomingFrameSize = 64 * 1024 * 1024
	defaultDelayBlocking        = 10 * time.Millisecond
)

// Options is the immutable connection configuration captured at
// connect time.
type Options struct {
	// MaxIncomingFrameSize bounds the size of a single inbound frame
	// in bytes, so a malicious or broken server cannot force unbounded
	// allocation. Zero disables the bound. Ignored on web, where the
	// host enforces its own limits.
	MaxIncomingFrameSize int64

	// DelayBlocking is the wait interval used where a backend has to
	// poll instead of block, e.g. the web write pump waiting for the
	// socket to finish connecting. Smaller values lower latency at the
	// cost of idle CPU.
	DelayBlocking time.Duration

	// KeepAliveInterval makes the native backend send a ping frame at
	// this period. Zero disables keep-alive.
	KeepAliveInterval time.Duration
}

func DefaultOptions() Options {
	return Options{
		MaxIncomingFrameSize: defaultMaxIncomingFrameSize,
		DelayBlocking:        defaultDelayBlocking,
	}
}
