package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	stdhttp "net/http"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/roomcast/roomcast/internal/core"
	"github.com/roomcast/roomcast/internal/metrics"
	"github.com/roomcast/roomcast/internal/proto"
)

// WSHandler upgrades HTTP connections and bridges them to the engine.
type WSHandler struct {
	engine  *core.Engine
	gateway *Gateway
	buffer  int
	log     *zerolog.Logger
}

// NewWSHandler builds a new WebSocket handler.
func NewWSHandler(engine *core.Engine, gateway *Gateway, buffer int, logger *zerolog.Logger) stdhttp.Handler {
	return &WSHandler{engine: engine, gateway: gateway, buffer: buffer, log: logger}
}

func (h *WSHandler) ServeHTTP(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	ctx := r.Context()

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("ws accept error")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "internal error")

	sess := newSession(h.buffer)
	h.gateway.register(sess)
	metrics.ConnectionsActive.Inc()
	h.log.Debug().Str("conn_id", sess.id).Msg("connection established")

	// Disconnect runs before unregister so remaining room members still
	// receive their membership updates; it fires exactly once per
	// connection, on transport close.
	defer func() {
		h.engine.Disconnect(sess.id)
		h.gateway.unregister(sess)
		metrics.ConnectionsActive.Dec()
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errCh := make(chan error, 2)
	go func() {
		errCh <- h.readLoop(ctx, conn, sess)
	}()
	go func() {
		errCh <- h.writeLoop(ctx, conn, sess)
	}()

	err = <-errCh
	cancel() // stop the other goroutine
	<-errCh

	status := websocket.StatusNormalClosure
	reason := "closing"
	if err != nil && !errors.Is(err, context.Canceled) {
		if errors.Is(err, io.EOF) {
			err = nil
		}
		if s := websocket.CloseStatus(err); s != 0 {
			status = s
		}
		if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
			err = nil
		}
		if err != nil {
			if status == websocket.StatusNormalClosure {
				status = websocket.StatusInternalError
			}
			reason = err.Error()
			h.log.Warn().Err(err).Str("conn_id", sess.id).Msg("ws connection closed with error")
		}
	}

	conn.Close(status, reason)
}

func (h *WSHandler) readLoop(ctx context.Context, conn *websocket.Conn, sess *session) error {
	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			return err
		}

		reply, err := h.dispatch(sess, inbound)
		if err != nil {
			h.log.Warn().Err(err).Str("conn_id", sess.id).Msg("failed to decode inbound payload")
			return err
		}
		if reply != nil {
			if err := wsjson.Write(ctx, conn, *reply); err != nil {
				return err
			}
		}
	}
}

func (h *WSHandler) writeLoop(ctx context.Context, conn *websocket.Conn, sess *session) error {
	for {
		select {
		case out := <-sess.events:
			if err := wsjson.Write(ctx, conn, out); err != nil {
				h.log.Error().Err(err).Str("conn_id", sess.id).Msg("write ws event")
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// dispatch maps one inbound envelope to an engine operation. The
// returned reply, if any, goes straight back to the requester; room
// broadcasts travel through the gateway instead. A non-nil error means
// the payload was not even JSON and the connection should drop.
func (h *WSHandler) dispatch(sess *session, inbound proto.Inbound) (*proto.Outbound, error) {
	switch inbound.Type {
	case proto.InboundTypeCreateRoom:
		var data proto.CreateRoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		roomID, err := h.engine.CreateRoom(sess.id, data.Username)
		if err != nil {
			reply := failureResult(err)
			return &reply, nil
		}
		reply := successResult(roomID, "room created")
		return &reply, nil

	case proto.InboundTypeJoinRoom:
		var data proto.JoinRoomData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		if err := h.engine.JoinRoom(sess.id, data.RoomID, data.Username); err != nil {
			reply := failureResult(err)
			return &reply, nil
		}
		reply := successResult(data.RoomID, "joined room")
		return &reply, nil

	case proto.InboundTypeClientReady:
		var data proto.RoomRefData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		h.engine.ClientReady(sess.id, data.RoomID)
		return nil, nil

	case proto.InboundTypeLeaveRoom:
		var data proto.RoomRefData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return nil, err
		}
		h.engine.LeaveRoom(sess.id, data.RoomID)
		return nil, nil

	default:
		return &proto.Outbound{
			Type:  proto.OutboundTypeError,
			Error: &proto.Error{Code: "invalid_message", Msg: "unknown message type"},
		}, nil
	}
}
