package http

import (
	"github.com/google/uuid"

	"github.com/roomcast/roomcast/internal/metrics"
	"github.com/roomcast/roomcast/internal/proto"
)

// session is one live websocket connection as seen by the gateway. Its
// id doubles as the engine's opaque connection identifier.
type session struct {
	id     string
	events chan proto.Outbound
}

func newSession(buffer int) *session {
	if buffer <= 0 {
		buffer = 32
	}
	return &session{
		id:     uuid.NewString(),
		events: make(chan proto.Outbound, buffer),
	}
}

// send queues an outbound message without blocking. A full buffer means
// the consumer is too slow; the message is dropped and counted.
func (s *session) send(out proto.Outbound) bool {
	select {
	case s.events <- out:
		return true
	default:
		metrics.EventsDropped.Inc()
		return false
	}
}
