package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/roomcast/roomcast/internal/config"
	"github.com/roomcast/roomcast/internal/core"
)

func TestDebugRoomsSnapshot(t *testing.T) {
	logger := zerolog.Nop()
	gateway := NewGateway(&logger)
	engine := core.NewEngine(gateway, &logger)
	server := NewServer(engine, gateway, config.Default(), &logger)

	ts := httptest.NewServer(server.Handler)
	defer ts.Close()

	roomID, err := engine.CreateRoom("conn-a", "alice")
	if err != nil {
		t.Fatal(err)
	}
	if err := engine.JoinRoom("conn-b", roomID, "bob"); err != nil {
		t.Fatal(err)
	}

	resp, err := ts.Client().Get(ts.URL + "/debug/rooms")
	if err != nil {
		t.Fatalf("debug request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("unexpected status: %d", resp.StatusCode)
	}

	var body RoomsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if body.TotalRooms != 1 || len(body.Rooms) != 1 {
		t.Fatalf("unexpected room count: %+v", body)
	}
	room := body.Rooms[0]
	if room.ID != roomID || room.ParticipantsCount != 2 {
		t.Fatalf("unexpected room row: %+v", room)
	}
	if len(room.Participants) != 2 || room.Participants[0] != "alice" || room.Participants[1] != "bob" {
		t.Fatalf("unexpected participants: %+v", room.Participants)
	}
	if room.CreatedAt == "" {
		t.Fatal("createdAt missing")
	}
}

func TestDebugRoomsEmptyStore(t *testing.T) {
	logger := zerolog.Nop()
	gateway := NewGateway(&logger)
	engine := core.NewEngine(gateway, &logger)
	server := NewServer(engine, gateway, config.Default(), &logger)

	ts := httptest.NewServer(server.Handler)
	defer ts.Close()

	resp, err := ts.Client().Get(ts.URL + "/debug/rooms")
	if err != nil {
		t.Fatalf("debug request failed: %v", err)
	}
	defer resp.Body.Close()

	var body RoomsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.TotalRooms != 0 || len(body.Rooms) != 0 {
		t.Fatalf("expected empty snapshot, got %+v", body)
	}
}
