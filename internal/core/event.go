package core

// EventKind is a notification the engine emits through the gateway.
type EventKind int

const (
	// EventParticipantsUpdated carries the full membership view of a room
	// after a mutation.
	EventParticipantsUpdated EventKind = iota
	// EventRoomMissing tells a single requester the room it asked about
	// does not exist.
	EventRoomMissing
)

// Event describes a membership change or notice. Participant slices are
// copies; receivers never observe the store's backing array.
type Event struct {
	Kind         EventKind
	RoomID       string
	Participants []Participant
	TotalCount   int
	NewUser      string
	Message      string
}

func participantsUpdated(room *Room, newUser string) *Event {
	return &Event{
		Kind:         EventParticipantsUpdated,
		RoomID:       room.ID,
		Participants: room.ParticipantList(),
		TotalCount:   len(room.Participants),
		NewUser:      newUser,
	}
}

func roomMissing(roomID string) *Event {
	return &Event{
		Kind:    EventRoomMissing,
		RoomID:  roomID,
		Message: "room " + roomID + " not found",
	}
}
