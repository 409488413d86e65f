//go:build js && wasm

// Package wsjs provides typed access to the browser WebSocket API.
// https://developer.mozilla.org/en-US/docs/Web/API/WebSocket
package wsjs

import "syscall/js"

// Ready states of a browser WebSocket.
const (
	StateConnecting = 0
	StateOpen       = 1
	StateClosing    = 2
	StateClosed     = 3
)

// CloseNormal is the 1000 close code.
const CloseNormal = 1000

// handleJSError converts a javascript exception raised during the
// surrounding call into an error return.
func handleJSError(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		*err = jsErr
		return
	}
	panic(r)
}

// WebSocket wraps one browser WebSocket object.
type WebSocket struct {
	Protocol string
	URL      string

	v js.Value
}

// New constructs a browser WebSocket. The constructor throws, and New
// returns an error, for malformed URLs and insecure contexts.
func New(url string, protocols []string) (ws *WebSocket, err error) {
	defer handleJSError(&err)

	jsProtocols := make([]any, len(protocols))
	for i, p := range protocols {
		jsProtocols[i] = p
	}

	ws = &WebSocket{
		v: js.Global().Get("WebSocket").New(url, jsProtocols),
	}

	// Binary payloads arrive as ArrayBuffer instead of Blob so they
	// can be copied out synchronously.
	ws.v.Set("binaryType", "arraybuffer")

	ws.Protocol = ws.v.Get("protocol").String()
	ws.URL = ws.v.Get("url").String()
	return ws, nil
}

func (ws *WebSocket) ReadyState() int {
	return ws.v.Get("readyState").Int()
}

func (ws *WebSocket) addEventListener(event string, fn func(e js.Value)) {
	ws.v.Call("addEventListener", event, js.FuncOf(func(this js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	}))
}

func (ws *WebSocket) OnOpen(fn func()) {
	ws.addEventListener("open", func(js.Value) {
		fn()
	})
}

// CloseEvent mirrors the browser CloseEvent fields.
type CloseEvent struct {
	Code     int
	Reason   string
	WasClean bool
}

func (ws *WebSocket) OnClose(fn func(CloseEvent)) {
	ws.addEventListener("close", func(e js.Value) {
		fn(CloseEvent{
			Code:     e.Get("code").Int(),
			Reason:   e.Get("reason").String(),
			WasClean: e.Get("wasClean").Bool(),
		})
	})
}

// OnError reports error events. The browser exposes no detail beyond
// the fact that one happened.
func (ws *WebSocket) OnError(fn func(message string)) {
	ws.addEventListener("error", func(js.Value) {
		fn("websocket error")
	})
}

// OnMessage delivers each message payload as a string (text frames)
// or []byte (binary frames). Anything else is handed over as the raw
// js.Value for the caller to describe.
func (ws *WebSocket) OnMessage(fn func(data any)) {
	ws.addEventListener("message", func(e js.Value) {
		data := e.Get("data")
		switch {
		case data.Type() == js.TypeString:
			fn(data.String())
		case data.InstanceOf(js.Global().Get("ArrayBuffer")):
			fn(extractArrayBuffer(data))
		default:
			fn(data)
		}
	})
}

func (ws *WebSocket) SendText(v string) (err error) {
	defer handleJSError(&err)
	ws.v.Call("send", v)
	return nil
}

func (ws *WebSocket) SendBytes(v []byte) (err error) {
	defer handleJSError(&err)
	ws.v.Call("send", uint8Array(v))
	return nil
}

func (ws *WebSocket) Close(code int, reason string) (err error) {
	defer handleJSError(&err)
	ws.v.Call("close", code, reason)
	return nil
}

func extractArrayBuffer(buf js.Value) []byte {
	arr := js.Global().Get("Uint8Array").New(buf)
	dst := make([]byte, arr.Length())
	js.CopyBytesToGo(dst, arr)
	return dst
}

func uint8Array(src []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(src))
	js.CopyBytesToJS(arr, src)
	return arr
}
