package model

import (
	"encoding/json"
	"errors"
	"time"

	ordered "gitlab.com/c0b/go-ordered-json"
)

var ErrNotAnObject = errors.New("message is not a JSON object")

// Message is one decoded inbound frame as it is handed to subscribers
type Message struct {
	// the JSON document as received
	Raw json.RawMessage

	// local time the frame was read from the socket
	ReceivedAt time.Time
}

// NewMessage validates the frame and wraps it into a Message
func NewMessage(frame []byte, receivedAt time.Time) (*Message, error) {
	if !json.Valid(frame) {
		return nil, errors.New("invalid JSON document")
	}

	raw := make(json.RawMessage, len(frame))
	copy(raw, frame)

	return &Message{
		Raw:        raw,
		ReceivedAt: receivedAt,
	}, nil
}

// decode the document into the target
func (m *Message) Decode(target any) error {
	return json.Unmarshal(m.Raw, target)
}

// returns the top level "type" member if the document is an object having a string type,
// otherwise an empty string
func (m *Message) Type() string {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(m.Raw, &envelope); err != nil {
		return ""
	}

	return envelope.Type
}

// returns the top level object members in the order they were sent
func (m *Message) Fields() (*ordered.OrderedMap, error) {
	om := ordered.NewOrderedMap()
	if err := json.Unmarshal(m.Raw, om); err != nil {
		return nil, ErrNotAnObject
	}

	return om, nil
}

func (m *Message) String() string {
	return string(m.Raw)
}
