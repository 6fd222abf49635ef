package dispatch

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hostdeck/wsconnect/api"
	"github.com/hostdeck/wsconnect/logging"
	"github.com/hostdeck/wsconnect/model"
)

var ErrMalformedFrame = errors.New("malformed frame")

// Bridge decodes inbound frames and fans them out to every current subscriber
//
// Delivery is synchronous, in publish order and in subscription order.
// Subscribers attaching later do not see earlier messages.
type Bridge struct {
	subscriptions []*Subscription

	mux sync.Mutex
}

func NewBridge() *Bridge {
	return &Bridge{}
}

var _ api.DispatcherInterface = (*Bridge)(nil)

// decode a frame and publish it to all subscribers
func (b *Bridge) HandleFrame(frame []byte) error {
	msg, err := model.NewMessage(frame, time.Now())
	if err != nil {
		logging.Log().Debug("dropping malformed websocket frame:", err)
		return fmt.Errorf("%w: %s", ErrMalformedFrame, err)
	}

	logging.Log().Trace("websocket message:", msg.String())

	b.Publish(msg)

	return nil
}

// hand a message to all current subscribers
func (b *Bridge) Publish(msg *model.Message) {
	for _, sub := range b.snapshot() {
		sub.listener.HandleMessage(msg)
	}
}

// add a listener, it receives every message published from now on
func (b *Bridge) Subscribe(listener api.MessageListenerInterface) *Subscription {
	sub := &Subscription{
		id:       uuid.New(),
		listener: listener,
		bridge:   b,
	}

	b.mux.Lock()
	defer b.mux.Unlock()

	b.subscriptions = append(b.subscriptions, sub)

	return sub
}

// add a function as a listener
func (b *Bridge) SubscribeFunc(fn func(msg *model.Message)) *Subscription {
	return b.Subscribe(ListenerFunc(fn))
}

// the number of current subscriptions
func (b *Bridge) Subscribers() int {
	b.mux.Lock()
	defer b.mux.Unlock()

	return len(b.subscriptions)
}

// returns false if the subscription was already removed
func (b *Bridge) unsubscribe(sub *Subscription) bool {
	b.mux.Lock()
	defer b.mux.Unlock()

	for i, item := range b.subscriptions {
		if item != sub {
			continue
		}

		// copy instead of in place removal, snapshots may still iterate the old slice
		subscriptions := make([]*Subscription, 0, len(b.subscriptions)-1)
		subscriptions = append(subscriptions, b.subscriptions[:i]...)
		b.subscriptions = append(subscriptions, b.subscriptions[i+1:]...)
		return true
	}

	return false
}

func (b *Bridge) snapshot() []*Subscription {
	b.mux.Lock()
	defer b.mux.Unlock()

	return b.subscriptions
}
