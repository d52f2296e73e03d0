package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/roomcast/roomcast/internal/core"
)

// DebugHandlers exposes read-only diagnostics over the room store.
type DebugHandlers struct {
	engine *core.Engine
	log    *zerolog.Logger
}

// NewDebugHandlers creates a new debug handlers instance.
func NewDebugHandlers(engine *core.Engine, logger *zerolog.Logger) *DebugHandlers {
	return &DebugHandlers{engine: engine, log: logger}
}

// RoomResponse represents a room in the diagnostic snapshot.
type RoomResponse struct {
	ID                string   `json:"id"`
	CreatedAt         string   `json:"createdAt"`
	ParticipantsCount int      `json:"participantsCount"`
	Participants      []string `json:"participants"`
}

// RoomsResponse is the full diagnostic snapshot.
type RoomsResponse struct {
	TotalRooms int            `json:"totalRooms"`
	Rooms      []RoomResponse `json:"rooms"`
}

// Rooms handles the diagnostic snapshot.
// GET /debug/rooms
func (h *DebugHandlers) Rooms(c *gin.Context) {
	snapshot := h.engine.Snapshot()

	rooms := make([]RoomResponse, 0, len(snapshot))
	for _, info := range snapshot {
		rooms = append(rooms, RoomResponse{
			ID:                info.ID,
			CreatedAt:         info.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			ParticipantsCount: info.ParticipantCount,
			Participants:      info.Usernames,
		})
	}

	h.log.Debug().Int("room_count", len(rooms)).Msg("diagnostic snapshot served")
	c.JSON(http.StatusOK, RoomsResponse{
		TotalRooms: len(rooms),
		Rooms:      rooms,
	})
}
