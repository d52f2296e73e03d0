package core

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

// fakeNotifier records every gateway interaction in call order.
type fakeNotifier struct {
	mu         sync.Mutex
	roomEvents map[string][]*Event
	connEvents map[string][]*Event
	subs       map[string]map[string]struct{}
	released   []string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{
		roomEvents: make(map[string][]*Event),
		connEvents: make(map[string][]*Event),
		subs:       make(map[string]map[string]struct{}),
	}
}

func (f *fakeNotifier) Subscribe(roomID, connID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subs[roomID] == nil {
		f.subs[roomID] = make(map[string]struct{})
	}
	f.subs[roomID][connID] = struct{}{}
}

func (f *fakeNotifier) Unsubscribe(roomID, connID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subs[roomID], connID)
}

func (f *fakeNotifier) ReleaseRoom(roomID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.subs, roomID)
	f.released = append(f.released, roomID)
}

func (f *fakeNotifier) NotifyRoom(roomID string, ev *Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.roomEvents[roomID] = append(f.roomEvents[roomID], ev)
}

func (f *fakeNotifier) NotifyConnection(connID string, ev *Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connEvents[connID] = append(f.connEvents[connID], ev)
}

func (f *fakeNotifier) lastRoomEvent(t *testing.T, roomID string) *Event {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	events := f.roomEvents[roomID]
	if len(events) == 0 {
		t.Fatalf("no room events recorded for %q", roomID)
	}
	return events[len(events)-1]
}

func (f *fakeNotifier) roomEventCount(roomID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.roomEvents[roomID])
}

func (f *fakeNotifier) releasedRooms() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.released))
	copy(out, f.released)
	return out
}

func newTestEngine() (*Engine, *fakeNotifier) {
	notifier := newFakeNotifier()
	logger := zerolog.Nop()
	return NewEngine(notifier, &logger), notifier
}

func mustCreateRoom(t *testing.T, e *Engine, connID, username string) string {
	t.Helper()
	roomID, err := e.CreateRoom(connID, username)
	if err != nil {
		t.Fatalf("CreateRoom(%q, %q): %v", connID, username, err)
	}
	return roomID
}
