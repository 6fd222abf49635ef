package connection

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/hostdeck/wsconnect/api"
)

var ErrInvalidOrigin = errors.New("invalid origin")

// derive the websocket endpoint from the origin the console is served from
//
// The scheme is upgraded (https to wss, http to ws), host and port are kept,
// the path is replaced with the websocket path.
func EndpointFromOrigin(origin string) (string, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidOrigin, err)
	}

	switch u.Scheme {
	case "https", "wss":
		u.Scheme = "wss"
	case "http", "ws":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidOrigin, u.Scheme)
	}

	if u.Host == "" {
		return "", fmt.Errorf("%w: missing host", ErrInvalidOrigin)
	}

	u.Path = api.WebsocketPath
	u.RawPath = ""
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	u.User = nil

	return u.String(), nil
}
