package core

import (
	"sort"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/roomcast/roomcast/internal/metrics"
)

const (
	minUsernameLen = 1
	maxUsernameLen = 30
)

// Engine owns the room store and the derived connection index. Every
// mutation and every snapshot goes through it under a single mutex, so
// no caller can observe a room mid-mutation. Notifications are emitted
// while the lock is held, which makes per-room notification order equal
// to mutation order; the notifier must never block on delivery.
type Engine struct {
	notifier Notifier
	log      *zerolog.Logger

	mu     sync.Mutex
	rooms  map[string]*Room
	byConn map[string]map[string]struct{} // connID -> room ids, for disconnect cleanup
}

// RoomInfo is a read-only row of the diagnostic snapshot.
type RoomInfo struct {
	ID               string
	CreatedAt        time.Time
	ParticipantCount int
	Usernames        []string
}

// NewEngine constructs an engine delivering through the given notifier.
func NewEngine(notifier Notifier, logger *zerolog.Logger) *Engine {
	return &Engine{
		notifier: notifier,
		log:      logger,
		rooms:    make(map[string]*Room),
		byConn:   make(map[string]map[string]struct{}),
	}
}

// CreateRoom makes a fresh room with the caller as its only participant
// and returns the new room id.
func (e *Engine) CreateRoom(connID, username string) (string, error) {
	if !validUsername(username) {
		return "", ErrInvalidUsername
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	id := uuid.NewString()
	for {
		// v4 collisions are negligible (~2^-122); the store check makes
		// the fresh-key guarantee unconditional anyway.
		if _, taken := e.rooms[id]; !taken {
			break
		}
		id = uuid.NewString()
	}

	room := NewRoom(id, Participant{Username: username, ConnID: connID}, time.Now())
	e.rooms[id] = room
	e.indexJoin(connID, id)
	e.notifier.Subscribe(id, connID)

	metrics.RoomsCreated.Inc()
	metrics.RoomsActive.Inc()
	e.log.Info().Str("room_id", id).Str("conn_id", connID).Str("username", username).Msg("room created")

	e.notifier.NotifyRoom(id, participantsUpdated(room, ""))
	return id, nil
}

// JoinRoom appends the caller to an existing room. The room id shape and
// username are validated, and the room looked up, before any mutation.
// A connection already present in the room is rejected.
func (e *Engine) JoinRoom(connID, roomID, username string) error {
	if !validRoomID(roomID) {
		return ErrInvalidRoomID
	}
	if !validUsername(username) {
		return ErrInvalidUsername
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	room, ok := e.rooms[roomID]
	if !ok {
		return ErrRoomNotFound
	}
	if room.HasConn(connID) {
		return ErrDuplicateMembership
	}

	room.Participants = append(room.Participants, Participant{Username: username, ConnID: connID})
	e.indexJoin(connID, roomID)
	e.notifier.Subscribe(roomID, connID)

	metrics.RoomJoins.Inc()
	e.log.Info().Str("room_id", roomID).Str("conn_id", connID).Str("username", username).
		Int("participants", len(room.Participants)).Msg("participant joined")

	e.notifier.NotifyRoom(roomID, participantsUpdated(room, username))
	return nil
}

// LeaveRoom removes the connection from the room. A missing room is a
// silent no-op: intentional leave treats it as already gone.
func (e *Engine) LeaveRoom(connID, roomID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, ok := e.rooms[roomID]
	if !ok {
		return
	}
	e.removeLocked(room, connID)
}

// Disconnect removes the connection from every room it belongs to,
// applying the leave logic to each room independently. Idempotent: a
// second call finds the connection in no rooms.
func (e *Engine) Disconnect(connID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	roomIDs, ok := e.byConn[connID]
	if !ok {
		return
	}
	for roomID := range roomIDs {
		if room, live := e.rooms[roomID]; live {
			e.removeLocked(room, connID)
		}
	}
	delete(e.byConn, connID)

	metrics.Disconnects.Inc()
	e.log.Info().Str("conn_id", connID).Msg("connection cleaned up")
}

// ClientReady sends the requester the current membership view of a room,
// or a room-missing notice if it does not exist.
func (e *Engine) ClientReady(connID, roomID string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, ok := e.rooms[roomID]
	if !ok {
		e.notifier.NotifyConnection(connID, roomMissing(roomID))
		return
	}
	e.notifier.NotifyConnection(connID, participantsUpdated(room, ""))
}

// Snapshot returns a stable, sorted copy of the store for diagnostics.
// It holds the lock only for the duration of the copy.
func (e *Engine) Snapshot() []RoomInfo {
	e.mu.Lock()
	infos := make([]RoomInfo, 0, len(e.rooms))
	for _, room := range e.rooms {
		infos = append(infos, RoomInfo{
			ID:               room.ID,
			CreatedAt:        room.CreatedAt,
			ParticipantCount: len(room.Participants),
			Usernames:        room.Usernames(),
		})
	}
	e.mu.Unlock()

	sort.Slice(infos, func(i, j int) bool {
		if infos[i].CreatedAt.Equal(infos[j].CreatedAt) {
			return infos[i].ID < infos[j].ID
		}
		return infos[i].CreatedAt.Before(infos[j].CreatedAt)
	})
	return infos
}

// removeLocked applies the shared removal path: drop the participant,
// delete the room if it emptied, otherwise notify the remaining members.
// Caller holds e.mu.
func (e *Engine) removeLocked(room *Room, connID string) {
	if !room.RemoveConn(connID) {
		return
	}
	e.indexLeave(connID, room.ID)
	metrics.RoomLeaves.Inc()

	if room.Empty() {
		delete(e.rooms, room.ID)
		e.notifier.ReleaseRoom(room.ID)
		metrics.RoomsActive.Dec()
		e.log.Info().Str("room_id", room.ID).Msg("room emptied and removed")
		return
	}

	e.notifier.Unsubscribe(room.ID, connID)
	e.log.Debug().Str("room_id", room.ID).Str("conn_id", connID).
		Int("participants", len(room.Participants)).Msg("participant left")
	e.notifier.NotifyRoom(room.ID, participantsUpdated(room, ""))
}

// indexJoin and indexLeave keep the connection index in lockstep with the
// room store; the index is derived state, never a second source of truth.
func (e *Engine) indexJoin(connID, roomID string) {
	rooms, ok := e.byConn[connID]
	if !ok {
		rooms = make(map[string]struct{})
		e.byConn[connID] = rooms
	}
	rooms[roomID] = struct{}{}
}

func (e *Engine) indexLeave(connID, roomID string) {
	rooms, ok := e.byConn[connID]
	if !ok {
		return
	}
	delete(rooms, roomID)
	if len(rooms) == 0 {
		delete(e.byConn, connID)
	}
}

func validUsername(username string) bool {
	n := utf8.RuneCountInString(username)
	return n >= minUsernameLen && n <= maxUsernameLen
}

func validRoomID(roomID string) bool {
	id, err := uuid.Parse(roomID)
	return err == nil && id.Version() == 4
}
