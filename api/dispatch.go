package api

import "github.com/hostdeck/wsconnect/model"

/* Dispatch */

// interface for receiving inbound messages
//
// implemented by any consumer (stores, UI glue, relays), used by dispatch.Bridge
type MessageListenerInterface interface {
	// called synchronously for every published message, must not block
	HandleMessage(msg *model.Message)
}

// interface for handing inbound frames to the notification registry
//
// implemented by dispatch.Bridge, used by connection.Manager
type DispatcherInterface interface {
	// decode a frame and publish it, returns an error if the frame is malformed
	HandleFrame(frame []byte) error
}
