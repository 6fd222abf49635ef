package ws

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/logging"
)

var ErrConnectionClosed = errors.New("connection is closed")

// Handling of the actual websocket connection to the console server
type WebsocketConnection struct {
	// The actual websocket connection
	conn *websocket.Conn

	// The implementation handling incoming frames and connection events
	dataProcessing api.WebsocketDataReaderInterface

	// The connection was closed
	closeChannel chan struct{}

	// The write channel for outgoing frames
	writeChannel chan []byte

	// internal handling of closed connections
	connectionClosed bool

	// the error message received for the closed connection
	connectionClosedError error

	// used for logging only
	endpoint string

	// interval of keepalive pings
	pingInterval time.Duration

	muxConnClosed sync.Mutex
	muxWrite      sync.Mutex
	muxConWrite   sync.Mutex
	shutdownOnce  sync.Once
}

// create a new websocket based data connection
func NewWebsocketConnection(conn *websocket.Conn, endpoint string) *WebsocketConnection {
	return &WebsocketConnection{
		conn:         conn,
		endpoint:     endpoint,
		pingInterval: pingPeriod,
		closeChannel: make(chan struct{}),
		writeChannel: make(chan []byte, writeBufferSize),
	}
}

// sets the error message for the closed connection
func (w *WebsocketConnection) setConnClosedError(err error) {
	w.muxConnClosed.Lock()
	defer w.muxConnClosed.Unlock()

	w.connectionClosed = true

	if err != nil {
		w.connectionClosedError = err
	}
}

func (w *WebsocketConnection) connClosedError() error {
	w.muxConnClosed.Lock()
	defer w.muxConnClosed.Unlock()

	return w.connectionClosedError
}

// check if the websocket connection is closed
func (w *WebsocketConnection) isConnClosed() bool {
	w.muxConnClosed.Lock()
	defer w.muxConnClosed.Unlock()

	return w.connectionClosed
}

func (w *WebsocketConnection) run() {
	go w.readPump()
	go w.writePump()
}

// writePump pumps queued frames and keepalive pings to the websocket connection
func (w *WebsocketConnection) writePump() {
	ticker := time.NewTicker(w.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.closeChannel:
			return

		case message := <-w.writeChannel:
			if w.isConnClosed() {
				return
			}

			if !w.writeMessage(websocket.TextMessage, message) {
				return
			}

			logging.Log().Trace("Send:", w.endpoint, string(message))

		case <-ticker.C:
			w.handlePing()
		}
	}
}

func (w *WebsocketConnection) handlePing() {
	if w.isConnClosed() {
		return
	}

	_ = w.writeMessage(websocket.PingMessage, nil)
}

// a transport error is reported and the socket is torn down,
// the read pump then notices the closure and reports it
func (w *WebsocketConnection) reportError(err error, reason string) {
	logging.Log().Debug(w.endpoint, reason, err)

	if w.dataProcessing != nil {
		w.dataProcessing.ReportConnectionError(err)
	}

	if w.conn != nil {
		_ = w.conn.Close()
	}
}

// readPump checks for frames from the websocket connection
func (w *WebsocketConnection) readPump() {
	if w.conn != nil {
		w.conn.SetReadLimit(MaxMessageSize)
		_ = w.conn.SetReadDeadline(time.Now().Add(pongWait))
		w.conn.SetPongHandler(func(string) error { _ = w.conn.SetReadDeadline(time.Now().Add(pongWait)); return nil })
	}

	for {
		if w.isConnClosed() {
			return
		}

		msgType, message, err := w.readWebsocketMessage()
		// ignore read errors if the connection got closed locally
		if w.isConnClosed() {
			return
		}

		if err != nil {
			logging.Log().Debug(w.endpoint, "websocket read error:", err)
			w.close()
			w.setConnClosedError(err)
			w.dataProcessing.ReportConnectionClosed(err)
			return
		}

		if msgType != websocket.TextMessage {
			logging.Log().Debug(w.endpoint, "ignoring websocket frame of type", msgType)
			continue
		}

		logging.Log().Trace("Recv:", w.endpoint, string(message))

		w.dataProcessing.HandleIncomingWebsocketMessage(message)
	}
}

// read a frame from the websocket connection
func (w *WebsocketConnection) readWebsocketMessage() (int, []byte, error) {
	if w.conn == nil {
		return 0, nil, errors.New("connection is not initialized")
	}

	return w.conn.ReadMessage()
}

// close the current websocket connection
func (w *WebsocketConnection) close() {
	w.shutdownOnce.Do(func() {
		w.setConnClosedError(nil)

		close(w.closeChannel)

		if w.conn != nil {
			_ = w.conn.Close()
		}
	})
}

var _ api.WebsocketDataWriterInterface = (*WebsocketConnection)(nil)

func (w *WebsocketConnection) InitDataProcessing(dataProcessing api.WebsocketDataReaderInterface) {
	w.dataProcessing = dataProcessing

	w.run()
}

// queue a frame for the websocket connection
func (w *WebsocketConnection) WriteMessageToWebsocketConnection(message []byte) error {
	w.muxWrite.Lock()
	defer w.muxWrite.Unlock()

	if w.isConnClosed() {
		return ErrConnectionClosed
	}

	select {
	case w.writeChannel <- message:
		return nil
	case <-w.closeChannel:
		return ErrConnectionClosed
	}
}

// make sure websocket Write is only called once at a time
func (w *WebsocketConnection) writeMessage(messageType int, data []byte) bool {
	if w.isConnClosed() || w.conn == nil {
		return false
	}

	w.muxConWrite.Lock()
	defer w.muxConWrite.Unlock()

	_ = w.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := w.conn.WriteMessage(messageType, data); err != nil {
		w.reportError(err, "error writing to websocket:")
		return false
	}

	return true
}

// shutdown the connection and all internals, no closure is reported for this
func (w *WebsocketConnection) CloseDataConnection(closeCode int, reason string) {
	if w.isConnClosed() {
		return
	}

	if closeCode != 0 && w.conn != nil {
		msg := websocket.FormatCloseMessage(closeCode, reason)
		_ = w.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	}

	w.close()
}

// return if the connection is closed
func (w *WebsocketConnection) IsDataConnectionClosed() (bool, error) {
	isClosed := w.isConnClosed()
	err := w.connClosedError()

	if isClosed && err == nil {
		err = ErrConnectionClosed
	}

	return isClosed, err
}
