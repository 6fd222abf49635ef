package model

type ConnectionState uint

// set the values manually instead of using iota, so log data can be associated easier
const (
	// no socket and no pending reconnect, initial state and the result of an explicit disconnect
	ConnectionStateDisconnected ConnectionState = 0
	// a socket is being dialed
	ConnectionStateConnecting ConnectionState = 1
	// the handshake completed, frames can be sent and received
	ConnectionStateOpen ConnectionState = 2
	// the socket was lost, a reconnect is pending
	ConnectionStateClosed ConnectionState = 3
)

func (s ConnectionState) String() string {
	switch s {
	case ConnectionStateDisconnected:
		return "disconnected"
	case ConnectionStateConnecting:
		return "connecting"
	case ConnectionStateOpen:
		return "open"
	case ConnectionStateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// a connection state together with the error that caused it, if any
type ConnectionStateDetail struct {
	State ConnectionState
	Error error
}
