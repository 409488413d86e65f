// Package ewebsock is a WebSocket client that compiles both to native
// targets and to the web (js/wasm), behind one sender/receiver API.
//
// The transport runs in the background; the application only ever
// performs non-blocking calls:
//
//	sender, receiver, err := ewebsock.Connect("ws://example.com", ewebsock.DefaultOptions())
//	if err != nil {
//		// local failure to start the transport; handshake failures
//		// arrive as an EventError instead.
//	}
//	sender.Send(ewebsock.NewTextMessage("Hello!"))
//	for {
//		event, ok := receiver.TryRecv()
//		if !ok {
//			break
//		}
//		fmt.Println(event)
//	}
//
// Wait for EventOpened before sending. Closing the Sender (or letting
// it be garbage collected) closes the connection; call Sender.Forget
// to keep a connection alive past the handle's lifetime.
package ewebsock
