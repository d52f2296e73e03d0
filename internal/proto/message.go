package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	InboundTypeCreateRoom  = "create_room"
	InboundTypeJoinRoom    = "join_room"
	InboundTypeClientReady = "client_ready"
	InboundTypeLeaveRoom   = "leave_room"

	OutboundTypeResult = "result"
	OutboundTypeEvent  = "event"
	OutboundTypeError  = "error"

	EventParticipantsUpdated = "participants_updated"
	EventRoomNotFound        = "room_not_found"
)

// CreateRoomData asks for a fresh room with the sender as first member.
type CreateRoomData struct {
	Username string `json:"username"`
}

// JoinRoomData asks to join an existing room.
type JoinRoomData struct {
	RoomID   string `json:"roomId"`
	Username string `json:"username"`
}

// RoomRefData names a room for client_ready and leave_room.
type RoomRefData struct {
	RoomID string `json:"roomId"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// ResultData is the direct response to create_room and join_room.
type ResultData struct {
	Success bool   `json:"success"`
	RoomID  string `json:"roomId,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ParticipantData is one (username, connection) membership entry.
type ParticipantData struct {
	Username     string `json:"username"`
	ConnectionID string `json:"connectionId"`
}

// ParticipantsUpdatedData carries a room's full membership view.
type ParticipantsUpdatedData struct {
	Participants []ParticipantData `json:"participants"`
	TotalCount   int               `json:"totalCount"`
	NewUser      string            `json:"newUser,omitempty"`
}

// RoomNotFoundData is sent only to the requester.
type RoomNotFoundData struct {
	Message string `json:"message"`
}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
