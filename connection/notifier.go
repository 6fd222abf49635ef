package connection

import (
	"sync"

	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/model"
)

// delivers state updates in transition order, outside of the manager lock
//
// at most one delivery goroutine runs at a time, so a slow reader delays
// later updates but never the connection handling itself
type stateNotifier struct {
	reader api.ConnectionStateReaderInterface

	pending []model.ConnectionStateDetail
	running bool

	mux sync.Mutex
}

func newStateNotifier(reader api.ConnectionStateReaderInterface) *stateNotifier {
	if reader == nil {
		return nil
	}

	return &stateNotifier{reader: reader}
}

func (s *stateNotifier) push(detail model.ConnectionStateDetail) {
	s.mux.Lock()
	defer s.mux.Unlock()

	s.pending = append(s.pending, detail)

	if s.running {
		return
	}

	s.running = true
	go s.deliver()
}

func (s *stateNotifier) deliver() {
	for {
		s.mux.Lock()
		if len(s.pending) == 0 {
			s.running = false
			s.mux.Unlock()
			return
		}

		detail := s.pending[0]
		s.pending = s.pending[1:]
		s.mux.Unlock()

		s.reader.HandleConnectionStateUpdate(detail)
	}
}
