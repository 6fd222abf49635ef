package dispatch

import (
	"github.com/google/uuid"
	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/model"
)

// ListenerFunc adapts a function to the listener interface
type ListenerFunc func(msg *model.Message)

var _ api.MessageListenerInterface = (ListenerFunc)(nil)

func (f ListenerFunc) HandleMessage(msg *model.Message) {
	f(msg)
}

// Subscription is the handle returned for every registered listener
type Subscription struct {
	id       uuid.UUID
	listener api.MessageListenerInterface
	bridge   *Bridge
}

func (s *Subscription) ID() uuid.UUID {
	return s.id
}

// stop receiving messages, calling it more than once has no effect
//
// A message being delivered at the time of the call may still reach the listener.
func (s *Subscription) Unsubscribe() {
	s.bridge.unsubscribe(s)
}
