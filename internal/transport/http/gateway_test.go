package http

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/roomcast/roomcast/internal/core"
	"github.com/roomcast/roomcast/internal/proto"
)

func newTestGateway() *Gateway {
	logger := zerolog.Nop()
	return NewGateway(&logger)
}

func membershipEvent(roomID string, count int) *core.Event {
	participants := make([]core.Participant, count)
	return &core.Event{
		Kind:         core.EventParticipantsUpdated,
		RoomID:       roomID,
		Participants: participants,
		TotalCount:   count,
	}
}

func TestGatewayNotifyRoomOnlySubscribers(t *testing.T) {
	g := newTestGateway()

	member := newSession(4)
	outsider := newSession(4)
	g.register(member)
	g.register(outsider)
	g.Subscribe("room-1", member.id)

	g.NotifyRoom("room-1", membershipEvent("room-1", 1))

	select {
	case out := <-member.events:
		if out.Event != proto.EventParticipantsUpdated {
			t.Fatalf("unexpected event: %+v", out)
		}
	default:
		t.Fatal("subscriber received nothing")
	}

	select {
	case out := <-outsider.events:
		t.Fatalf("outsider received %+v", out)
	default:
	}
}

func TestGatewayPreservesOrder(t *testing.T) {
	g := newTestGateway()

	s := newSession(8)
	g.register(s)
	g.Subscribe("room-1", s.id)

	for count := 1; count <= 5; count++ {
		g.NotifyRoom("room-1", membershipEvent("room-1", count))
	}

	for want := 1; want <= 5; want++ {
		out := <-s.events
		data, ok := out.Data.(proto.ParticipantsUpdatedData)
		if !ok {
			t.Fatalf("unexpected payload type %T", out.Data)
		}
		if data.TotalCount != want {
			t.Fatalf("event out of order: got totalCount %d, want %d", data.TotalCount, want)
		}
	}
}

func TestGatewayDropsOnFullBuffer(t *testing.T) {
	g := newTestGateway()

	s := newSession(1)
	g.register(s)
	g.Subscribe("room-1", s.id)

	g.NotifyRoom("room-1", membershipEvent("room-1", 1))
	g.NotifyRoom("room-1", membershipEvent("room-1", 2)) // buffer full, dropped

	if len(s.events) != 1 {
		t.Fatalf("expected 1 buffered event, got %d", len(s.events))
	}
}

func TestGatewayReleaseRoom(t *testing.T) {
	g := newTestGateway()

	s := newSession(4)
	g.register(s)
	g.Subscribe("room-1", s.id)
	g.ReleaseRoom("room-1")

	g.NotifyRoom("room-1", membershipEvent("room-1", 1))
	if len(s.events) != 0 {
		t.Fatal("released room must not deliver")
	}
}

func TestGatewayUnregisterStopsDirectDelivery(t *testing.T) {
	g := newTestGateway()

	s := newSession(4)
	g.register(s)
	g.unregister(s)

	g.NotifyConnection(s.id, membershipEvent("room-1", 1))
	if len(s.events) != 0 {
		t.Fatal("unregistered session must not receive events")
	}
}
