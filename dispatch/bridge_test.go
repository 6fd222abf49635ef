package dispatch

import (
	"sync"
	"testing"
	"time"

	"github.com/hostdeck/wsconnect/mocks"
	"github.com/hostdeck/wsconnect/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func TestBridgeSuite(t *testing.T) {
	suite.Run(t, new(BridgeSuite))
}

type BridgeSuite struct {
	suite.Suite

	sut *Bridge
}

func (s *BridgeSuite) BeforeTest(suiteName, testName string) {
	s.sut = NewBridge()
}

func (s *BridgeSuite) Test_ThreeSubscribers() {
	var mux sync.Mutex
	var order []int

	received := make([][]string, 3)
	for i := 0; i < 3; i++ {
		index := i
		_ = s.sut.SubscribeFunc(func(msg *model.Message) {
			mux.Lock()
			defer mux.Unlock()
			order = append(order, index)
			received[index] = append(received[index], msg.String())
		})
	}
	assert.Equal(s.T(), 3, s.sut.Subscribers())

	for i := 0; i < 3; i++ {
		assert.Empty(s.T(), received[i])
	}

	err := s.sut.HandleFrame([]byte(`{"type":"ping"}`))
	assert.Nil(s.T(), err)

	for i := 0; i < 3; i++ {
		assert.Equal(s.T(), []string{`{"type":"ping"}`}, received[i])
	}
	assert.Equal(s.T(), []int{0, 1, 2}, order)
}

func (s *BridgeSuite) Test_ArrivalOrder() {
	var received []string
	_ = s.sut.SubscribeFunc(func(msg *model.Message) {
		received = append(received, msg.Type())
	})

	for _, frame := range []string{`{"type":"a"}`, `{"type":"b"}`, `{"type":"c"}`} {
		assert.Nil(s.T(), s.sut.HandleFrame([]byte(frame)))
	}

	assert.Equal(s.T(), []string{"a", "b", "c"}, received)
}

func (s *BridgeSuite) Test_MalformedFrame() {
	listener := mocks.NewMessageListenerInterface(s.T())
	_ = s.sut.Subscribe(listener)

	err := s.sut.HandleFrame([]byte(`{"type":`))
	assert.ErrorIs(s.T(), err, ErrMalformedFrame)

	err = s.sut.HandleFrame([]byte(`not json`))
	assert.ErrorIs(s.T(), err, ErrMalformedFrame)

	listener.AssertNotCalled(s.T(), "HandleMessage", mock.Anything)
}

func (s *BridgeSuite) Test_MockListener() {
	listener := mocks.NewMessageListenerInterface(s.T())
	listener.EXPECT().HandleMessage(mock.MatchedBy(func(msg *model.Message) bool {
		return msg.Type() == "host_added"
	})).Return().Once()

	sub := s.sut.Subscribe(listener)
	assert.NotEqual(s.T(), "", sub.ID().String())

	assert.Nil(s.T(), s.sut.HandleFrame([]byte(`{"type":"host_added","id":"42"}`)))
}

func (s *BridgeSuite) Test_Unsubscribe() {
	count := 0
	sub := s.sut.SubscribeFunc(func(msg *model.Message) { count++ })
	other := s.sut.SubscribeFunc(func(msg *model.Message) {})

	assert.Nil(s.T(), s.sut.HandleFrame([]byte(`{}`)))
	assert.Equal(s.T(), 1, count)

	sub.Unsubscribe()
	assert.Equal(s.T(), 1, s.sut.Subscribers())

	assert.Nil(s.T(), s.sut.HandleFrame([]byte(`{}`)))
	assert.Equal(s.T(), 1, count)

	// unsubscribing twice is fine
	sub.Unsubscribe()
	assert.Equal(s.T(), 1, s.sut.Subscribers())

	other.Unsubscribe()
	assert.Equal(s.T(), 0, s.sut.Subscribers())
}

func (s *BridgeSuite) Test_LateSubscriber() {
	assert.Nil(s.T(), s.sut.HandleFrame([]byte(`{"type":"early"}`)))

	var received []string
	_ = s.sut.SubscribeFunc(func(msg *model.Message) { received = append(received, msg.Type()) })

	assert.Empty(s.T(), received)

	assert.Nil(s.T(), s.sut.HandleFrame([]byte(`{"type":"late"}`)))
	assert.Equal(s.T(), []string{"late"}, received)
}

func (s *BridgeSuite) Test_UnsubscribeDuringPublish() {
	var second []string

	var first *Subscription
	first = s.sut.SubscribeFunc(func(msg *model.Message) {
		first.Unsubscribe()
	})
	_ = s.sut.SubscribeFunc(func(msg *model.Message) { second = append(second, msg.String()) })

	assert.Nil(s.T(), s.sut.HandleFrame([]byte(`1`)))
	assert.Nil(s.T(), s.sut.HandleFrame([]byte(`2`)))

	// the running publish still reaches everybody from its snapshot
	assert.Equal(s.T(), []string{`1`, `2`}, second)
	assert.Equal(s.T(), 1, s.sut.Subscribers())
}

func (s *BridgeSuite) Test_Publish() {
	now := time.Now()
	var got *model.Message
	_ = s.sut.SubscribeFunc(func(msg *model.Message) { got = msg })

	msg := &model.Message{Raw: []byte(`{"type":"direct"}`), ReceivedAt: now}
	s.sut.Publish(msg)

	assert.Equal(s.T(), msg, got)
}
