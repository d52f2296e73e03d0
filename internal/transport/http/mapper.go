package http

import (
	"errors"

	"github.com/roomcast/roomcast/internal/core"
	"github.com/roomcast/roomcast/internal/proto"
)

func outboundFromEvent(event *core.Event) proto.Outbound {
	switch event.Kind {
	case core.EventParticipantsUpdated:
		participants := make([]proto.ParticipantData, 0, len(event.Participants))
		for _, p := range event.Participants {
			participants = append(participants, proto.ParticipantData{
				Username:     p.Username,
				ConnectionID: p.ConnID,
			})
		}
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventParticipantsUpdated,
			Data: proto.ParticipantsUpdatedData{
				Participants: participants,
				TotalCount:   event.TotalCount,
				NewUser:      event.NewUser,
			},
		}
	case core.EventRoomMissing:
		return proto.Outbound{
			Type:  proto.OutboundTypeEvent,
			Event: proto.EventRoomNotFound,
			Data:  proto.RoomNotFoundData{Message: event.Message},
		}
	default:
		return proto.Outbound{Type: proto.OutboundTypeEvent}
	}
}

func successResult(roomID, message string) proto.Outbound {
	return proto.Outbound{
		Type: proto.OutboundTypeResult,
		Data: proto.ResultData{Success: true, RoomID: roomID, Message: message},
	}
}

func failureResult(err error) proto.Outbound {
	var ce *core.CoreError
	if errors.As(err, &ce) {
		return proto.Outbound{
			Type:  proto.OutboundTypeResult,
			Data:  proto.ResultData{Success: false, Error: ce.Message},
			Error: &proto.Error{Code: ce.Code, Msg: ce.Message},
		}
	}
	return proto.Outbound{
		Type:  proto.OutboundTypeResult,
		Data:  proto.ResultData{Success: false, Error: err.Error()},
		Error: &proto.Error{Code: "internal", Msg: err.Error()},
	}
}
