package core

// Error codes surfaced to the requesting connection.
const (
	ErrCodeValidation          = "validation_error"
	ErrCodeRoomNotFound        = "room_not_found"
	ErrCodeDuplicateMembership = "duplicate_membership"
)

var (
	ErrInvalidUsername = &CoreError{Code: ErrCodeValidation, Message: "username must be between 1 and 30 characters"}
	ErrInvalidRoomID   = &CoreError{Code: ErrCodeValidation, Message: "room id is not a valid identifier"}
	ErrRoomNotFound    = &CoreError{Code: ErrCodeRoomNotFound, Message: "room not found"}
	// ErrDuplicateMembership rejects a second join-room from a connection
	// already present in the room. Multi-tab clients hold distinct
	// connections, so rejecting keeps the one-entry-per-connection
	// invariant without rewriting existing state.
	ErrDuplicateMembership = &CoreError{Code: ErrCodeDuplicateMembership, Message: "connection already joined this room"}
)

// CoreError wraps a code and human-readable message. No core error is
// process-fatal; the transport converts each into a structured response
// for the originating connection only.
type CoreError struct {
	Code    string
	Message string
}

func (e *CoreError) Error() string {
	return e.Message
}
