package ws

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/logging"
)

// Dialer opens websocket connections to the console server
type Dialer struct {
	dialer *websocket.Dialer

	// optional, provides the session bearer token
	tokenSource api.TokenSourceInterface
}

// create a new dialer
//
// Parameters:
//   - handshakeTimeout: maximum duration of the opening handshake, 0 uses the default of 10 seconds
//   - tokenSource: optional source of the bearer token sent with the upgrade request
//   - tlsConfig: optional TLS configuration for wss endpoints
func NewDialer(handshakeTimeout time.Duration, tokenSource api.TokenSourceInterface, tlsConfig *tls.Config) *Dialer {
	if handshakeTimeout <= 0 {
		handshakeTimeout = defaultHandshakeTimeout
	}

	return &Dialer{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
			TLSClientConfig:  tlsConfig,
			ReadBufferSize:   4096,
			WriteBufferSize:  4096,
		},
		tokenSource: tokenSource,
	}
}

var _ api.WebsocketDialerInterface = (*Dialer)(nil)

func (d *Dialer) Dial(ctx context.Context, endpoint string) (api.WebsocketDataWriterInterface, error) {
	header := http.Header{}
	if d.tokenSource != nil {
		if token := d.tokenSource.Token(); token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}

	logging.Log().Debug("dialing websocket", endpoint)

	conn, resp, err := d.dialer.DialContext(ctx, endpoint, header)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("websocket handshake failed with status %d: %w", resp.StatusCode, err)
		}
		return nil, err
	}

	return NewWebsocketConnection(conn, endpoint), nil
}
