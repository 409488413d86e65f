package ewebsock

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrConnectionClosed = errors.New("connection has been closed")
	ErrCannotConnect    = errors.New("connection cannot be established")
	ErrTerminated       = errors.New("connection terminated locally")
)

// dialError turns a failed handshake into a single descriptive error,
// folding in the HTTP status and response body when the server
// answered with something other than an upgrade.
func dialError(resp *http.Response, err error) error {
	if resp == nil {
		return errors.Wrap(ErrCannotConnect, err.Error())
	}

	var body string
	if resp.Body != nil {
		if bts, rerr := io.ReadAll(resp.Body); rerr == nil {
			body = string(bts)
		}
	}
	return errors.Wrapf(ErrCannotConnect,
		"handshake rejected with status %d: %s: %s", resp.StatusCode, body, err)
}
