package core

import "time"

// Participant is one connection's membership in a room.
type Participant struct {
	Username string
	ConnID   string
}

// Room holds the ordered participant list for one room id. A room with
// zero participants never exists in the store; it is deleted in the same
// critical section that removes its last member.
type Room struct {
	ID           string
	CreatedAt    time.Time
	Participants []Participant
}

// NewRoom constructs a room with a single founding participant.
func NewRoom(id string, founder Participant, createdAt time.Time) *Room {
	return &Room{
		ID:           id,
		CreatedAt:    createdAt,
		Participants: []Participant{founder},
	}
}

// HasConn reports whether the connection already holds a participant entry.
func (r *Room) HasConn(connID string) bool {
	for _, p := range r.Participants {
		if p.ConnID == connID {
			return true
		}
	}
	return false
}

// RemoveConn deletes the participant entry for the connection, preserving
// the order of the remaining entries. Returns true if an entry was removed.
func (r *Room) RemoveConn(connID string) bool {
	for i, p := range r.Participants {
		if p.ConnID == connID {
			r.Participants = append(r.Participants[:i], r.Participants[i+1:]...)
			return true
		}
	}
	return false
}

// Empty returns true if no participants remain.
func (r *Room) Empty() bool {
	return len(r.Participants) == 0
}

// ParticipantList returns a copy safe to hand outside the engine's lock.
func (r *Room) ParticipantList() []Participant {
	out := make([]Participant, len(r.Participants))
	copy(out, r.Participants)
	return out
}

// Usernames returns the participant usernames in join order.
func (r *Room) Usernames() []string {
	names := make([]string, 0, len(r.Participants))
	for _, p := range r.Participants {
		names = append(names, p.Username)
	}
	return names
}
