package connection

import (
	"time"

	"github.com/hostdeck/wsconnect/logging"
	"github.com/hostdeck/wsconnect/model"
)

// schedule exactly one reconnect attempt after a closed connection
//
// mux has to be locked
func (m *Manager) scheduleReconnect() {
	m.stopReconnectTimer()

	delay, ok := m.policy.NextDelay(m.reconnectAttempt)
	if !ok {
		logging.Log().Info("giving up reconnecting to", m.endpoint, "after", m.reconnectAttempt, "attempts")
		m.reconnectAttempt = 0
		m.setState(model.ConnectionStateDisconnected, ErrReconnectExhausted)
		return
	}

	m.reconnectAttempt++
	generation := m.generation

	logging.Log().Debugf("reconnecting to %s in %s", m.endpoint, delay)

	m.reconnectTimer = time.AfterFunc(delay, func() {
		m.reconnectTimerFired(generation)
	})
}

func (m *Manager) reconnectTimerFired(generation uint64) {
	m.mux.Lock()
	defer m.mux.Unlock()

	// the timer was stopped or replaced after it already fired
	if generation != m.generation || m.state != model.ConnectionStateClosed {
		return
	}

	m.reconnectTimer = nil

	m.connect()
}

// mux has to be locked
func (m *Manager) stopReconnectTimer() {
	if m.reconnectTimer == nil {
		return
	}

	m.reconnectTimer.Stop()
	m.reconnectTimer = nil
}

// reports whether a reconnect timer is pending
func (m *Manager) reconnectPending() bool {
	m.mux.Lock()
	defer m.mux.Unlock()

	return m.reconnectTimer != nil
}
