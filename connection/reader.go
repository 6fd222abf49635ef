package connection

import (
	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/logging"
)

// receives the events of one websocket connection
//
// events of a connection which was replaced or disconnected are ignored
type connectionReader struct {
	manager    *Manager
	generation uint64
}

var _ api.WebsocketDataReaderInterface = (*connectionReader)(nil)

func (c *connectionReader) HandleIncomingWebsocketMessage(message []byte) {
	if !c.manager.isCurrent(c.generation) {
		return
	}

	if c.manager.dispatcher == nil {
		return
	}

	// malformed frames are dropped by the dispatcher, the connection is not affected
	if err := c.manager.dispatcher.HandleFrame(message); err != nil {
		logging.Log().Trace("inbound frame not dispatched:", err)
	}
}

// transport errors are followed by the connection closure, which drives the reconnect
func (c *connectionReader) ReportConnectionError(err error) {
	if !c.manager.isCurrent(c.generation) {
		return
	}

	logging.Log().Debug("websocket error on", c.manager.endpoint, ":", err)
}

func (c *connectionReader) ReportConnectionClosed(err error) {
	c.manager.handleConnectionClosed(c.generation, err)
}
