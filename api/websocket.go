package api

import "context"

/* WebsocketConnection */

// interface for handling the actual websocket data connection
//
// implemented by ws.WebsocketConnection, used by connection.Manager
type WebsocketDataWriterInterface interface {
	// initialize data processing, starts reading and writing
	InitDataProcessing(WebsocketDataReaderInterface)

	// send a text frame via the connection
	WriteMessageToWebsocketConnection([]byte) error

	// close the data connection
	CloseDataConnection(closeCode int, reason string)

	// report if the data connection is closed and the error if available
	IsDataConnectionClosed() (bool, error)
}

// interface for handling incoming data and connection events
//
// implemented by connection.Manager, used by ws.WebsocketConnection
type WebsocketDataReaderInterface interface {
	// called for each incoming text frame, in arrival order
	HandleIncomingWebsocketMessage([]byte)

	// called for transport errors which do not end the connection by themselves
	ReportConnectionError(error)

	// called exactly once if the connection ends without being closed locally
	ReportConnectionClosed(error)
}

// interface for establishing websocket connections
//
// implemented by ws.Dialer, used by connection.Manager
type WebsocketDialerInterface interface {
	// open a connection to the endpoint, blocks until the handshake is done or failed
	Dial(ctx context.Context, endpoint string) (WebsocketDataWriterInterface, error)
}
