package connection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/logging"
	"github.com/hostdeck/wsconnect/model"
)

var (
	ErrNotConnected       = errors.New("connection is not open")
	ErrAlreadyConnected   = errors.New("connection is already connecting or open")
	ErrReconnectExhausted = errors.New("reconnect attempts exhausted")
)

type Option func(*Manager)

// use a different reconnect policy, the default is a fixed 5 second delay
func WithReconnectPolicy(policy ReconnectPolicy) Option {
	return func(m *Manager) {
		if policy != nil {
			m.policy = policy
		}
	}
}

// use a fixed reconnect delay
func WithReconnectDelay(delay time.Duration) Option {
	return WithReconnectPolicy(&FixedDelay{Delay: delay})
}

// observe every state transition
func WithStateReader(reader api.ConnectionStateReaderInterface) Option {
	return func(m *Manager) {
		m.notifier = newStateNotifier(reader)
	}
}

// Manager owns the persistent websocket connection to the console server
//
// It keeps at most one socket and at most one pending reconnect timer.
// Every inbound frame is handed to the dispatcher in arrival order.
type Manager struct {
	endpoint   string
	dialer     api.WebsocketDialerInterface
	dispatcher api.DispatcherInterface
	policy     ReconnectPolicy
	notifier   *stateNotifier

	state model.ConnectionState
	conn  api.WebsocketDataWriterInterface

	// incremented for every new connection attempt and every disconnect,
	// callbacks carrying an older value are ignored
	generation uint64

	// cancels a running dial
	cancelDial context.CancelFunc

	reconnectTimer   *time.Timer
	reconnectAttempt int

	mux sync.Mutex
}

// create a new connection manager
//
// Parameters:
//   - endpoint: the websocket URL, see EndpointFromOrigin
//   - dialer: opens the websocket connections
//   - dispatcher: receives every inbound text frame
//   - options: optional settings
func NewManager(
	endpoint string,
	dialer api.WebsocketDialerInterface,
	dispatcher api.DispatcherInterface,
	options ...Option) *Manager {
	m := &Manager{
		endpoint:   endpoint,
		dialer:     dialer,
		dispatcher: dispatcher,
		policy:     &FixedDelay{Delay: api.DefaultReconnectDelay},
		state:      model.ConnectionStateDisconnected,
	}

	for _, option := range options {
		option(m)
	}

	return m
}

var _ api.ConnectionManagerInterface = (*Manager)(nil)

func (m *Manager) Endpoint() string {
	return m.endpoint
}

func (m *Manager) State() model.ConnectionState {
	m.mux.Lock()
	defer m.mux.Unlock()

	return m.state
}

// start connecting to the endpoint
//
// Returns immediately, the dial runs in the background.
// Returns ErrAlreadyConnected if a connection is being established or open.
func (m *Manager) Connect() error {
	m.mux.Lock()
	defer m.mux.Unlock()

	if m.state == model.ConnectionStateConnecting || m.state == model.ConnectionStateOpen {
		return ErrAlreadyConnected
	}

	// a manual connect replaces a pending reconnect
	m.stopReconnectTimer()

	m.connect()

	return nil
}

// close the connection and stop any pending reconnect
//
// Safe to call in every state, the manager stays disconnected until Connect is called.
func (m *Manager) Disconnect() {
	m.mux.Lock()

	m.stopReconnectTimer()

	m.generation++

	if m.cancelDial != nil {
		m.cancelDial()
		m.cancelDial = nil
	}

	conn := m.conn
	m.conn = nil

	m.reconnectAttempt = 0

	if m.state != model.ConnectionStateDisconnected {
		logging.Log().Debug("disconnected from", m.endpoint)
		m.setState(model.ConnectionStateDisconnected, nil)
	}

	m.mux.Unlock()

	// the generation is bumped, events of the old socket are ignored
	if conn != nil {
		conn.CloseDataConnection(websocket.CloseNormalClosure, "disconnect")
	}
}

// serialize the message as JSON and send it as one text frame
//
// Returns ErrNotConnected if the connection is not open, the message is not queued.
func (m *Manager) Send(message any) error {
	m.mux.Lock()
	state := m.state
	conn := m.conn
	m.mux.Unlock()

	if state != model.ConnectionStateOpen || conn == nil {
		logging.Log().Debug("cannot send message, connection state is", state)
		return ErrNotConnected
	}

	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("could not serialize message: %w", err)
	}

	if err := conn.WriteMessageToWebsocketConnection(data); err != nil {
		logging.Log().Debug("sending message failed:", err)
		return err
	}

	return nil
}

// start a new connection attempt
//
// mux has to be locked
func (m *Manager) connect() {
	m.generation++
	generation := m.generation

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelDial = cancel

	m.setState(model.ConnectionStateConnecting, nil)

	logging.Log().Debug("connecting to", m.endpoint)

	go m.dial(ctx, cancel, generation)
}

func (m *Manager) dial(ctx context.Context, cancel context.CancelFunc, generation uint64) {
	defer cancel()

	conn, err := m.dialer.Dial(ctx, m.endpoint)

	m.mux.Lock()

	if generation != m.generation {
		m.mux.Unlock()

		// a disconnect or another connect happened in the meantime
		if conn != nil {
			conn.CloseDataConnection(websocket.CloseNormalClosure, "superseded")
		}
		return
	}

	defer m.mux.Unlock()

	m.cancelDial = nil

	if err != nil {
		logging.Log().Debug("connection to", m.endpoint, "failed:", err)
		m.setState(model.ConnectionStateClosed, err)
		m.scheduleReconnect()
		return
	}

	logging.Log().Debug("connected to", m.endpoint)

	m.conn = conn
	m.reconnectAttempt = 0
	m.setState(model.ConnectionStateOpen, nil)

	conn.InitDataProcessing(&connectionReader{manager: m, generation: generation})
}

func (m *Manager) isCurrent(generation uint64) bool {
	m.mux.Lock()
	defer m.mux.Unlock()

	return generation == m.generation
}

// the connection ended without a local close
func (m *Manager) handleConnectionClosed(generation uint64, err error) {
	m.mux.Lock()
	defer m.mux.Unlock()

	if generation != m.generation || m.state != model.ConnectionStateOpen {
		return
	}

	logging.Log().Debug("connection to", m.endpoint, "closed:", err)

	m.conn = nil
	m.setState(model.ConnectionStateClosed, err)
	m.scheduleReconnect()
}

// mux has to be locked
func (m *Manager) setState(state model.ConnectionState, err error) {
	m.state = state

	if m.notifier != nil {
		m.notifier.push(model.ConnectionStateDetail{State: state, Error: err})
	}
}
