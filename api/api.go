package api

import (
	"time"

	"github.com/hostdeck/wsconnect/model"
)

//go:generate mockery
//go:generate mockgen -destination=../mocks/mockgen_api.go -package=mocks github.com/hostdeck/wsconnect/api DiscoveryProviderInterface

const (
	// websocket endpoint path on the console server, relative to the page origin
	WebsocketPath = "/ws"

	// delay between a closed connection and the next connection attempt
	DefaultReconnectDelay = 5 * time.Second

	// name of the notification carrying inbound messages
	MessageNotificationName = "ws-message"
)

/* Connection Manager */

// interface for the persistent connection to the console server
//
// implemented by connection.Manager, used by applications
type ConnectionManagerInterface interface {
	// start connecting, returns immediately
	Connect() error

	// stop the connection and any pending reconnect
	Disconnect()

	// serialize and transmit a message if the connection is open
	Send(message any) error

	// the current connection state
	State() model.ConnectionState

	// the websocket URL used for connecting
	Endpoint() string
}

// interface for observing connection state transitions
//
// implemented by applications, used by connection.Manager
type ConnectionStateReaderInterface interface {
	// called for every state transition, in transition order
	HandleConnectionStateUpdate(detail model.ConnectionStateDetail)
}
