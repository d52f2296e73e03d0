package http

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/roomcast/roomcast/internal/core"
)

// Gateway fans engine notifications out to live sessions. It keeps two
// maps: connID -> session for addressing, and roomID -> connID set as a
// delivery list mirror of room membership. The engine drives every
// subscription change inside the mutation that touches the room store,
// so both maps stay in lockstep with membership.
type Gateway struct {
	log *zerolog.Logger

	mu    sync.RWMutex
	conns map[string]*session
	subs  map[string]map[string]struct{}
}

// NewGateway builds an empty gateway.
func NewGateway(logger *zerolog.Logger) *Gateway {
	return &Gateway{
		log:   logger,
		conns: make(map[string]*session),
		subs:  make(map[string]map[string]struct{}),
	}
}

// register makes a session addressable. Called by the ws handler on accept.
func (g *Gateway) register(s *session) {
	g.mu.Lock()
	g.conns[s.id] = s
	g.mu.Unlock()
}

// unregister removes the session from the address map. Room-scoped
// subscriptions are released by the engine's Disconnect pass.
func (g *Gateway) unregister(s *session) {
	g.mu.Lock()
	delete(g.conns, s.id)
	g.mu.Unlock()
}

// Subscribe implements core.Notifier.
func (g *Gateway) Subscribe(roomID, connID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	set, ok := g.subs[roomID]
	if !ok {
		set = make(map[string]struct{})
		g.subs[roomID] = set
	}
	set[connID] = struct{}{}
}

// Unsubscribe implements core.Notifier.
func (g *Gateway) Unsubscribe(roomID, connID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if set, ok := g.subs[roomID]; ok {
		delete(set, connID)
		if len(set) == 0 {
			delete(g.subs, roomID)
		}
	}
}

// ReleaseRoom implements core.Notifier. Called when the engine deletes a
// room so no stale delivery list outlives it.
func (g *Gateway) ReleaseRoom(roomID string) {
	g.mu.Lock()
	delete(g.subs, roomID)
	g.mu.Unlock()
}

// NotifyRoom implements core.Notifier. Delivery is nonblocking per
// subscriber; a slow consumer loses the event, never delays the engine.
func (g *Gateway) NotifyRoom(roomID string, ev *core.Event) {
	out := outboundFromEvent(ev)

	g.mu.RLock()
	defer g.mu.RUnlock()
	for connID := range g.subs[roomID] {
		s, ok := g.conns[connID]
		if !ok {
			continue
		}
		if !s.send(out) {
			g.log.Warn().Str("room_id", roomID).Str("conn_id", connID).Msg("dropped event for slow consumer")
		}
	}
}

// NotifyConnection implements core.Notifier.
func (g *Gateway) NotifyConnection(connID string, ev *core.Event) {
	out := outboundFromEvent(ev)

	g.mu.RLock()
	s, ok := g.conns[connID]
	g.mu.RUnlock()
	if !ok {
		return
	}
	if !s.send(out) {
		g.log.Warn().Str("conn_id", connID).Msg("dropped event for slow consumer")
	}
}
