package ws

import "time"

const (
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = 50 * time.Second

	// frames above this size end the connection
	MaxMessageSize = 1 << 20

	// buffered outgoing frames per connection
	writeBufferSize = 16

	defaultHandshakeTimeout = 10 * time.Second
)
