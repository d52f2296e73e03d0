package core

// Notifier is the broadcast gateway contract. The engine owns membership
// truth; the gateway only mirrors room-scoped subscriptions so it can
// address deliveries, and the engine drives every subscription change
// inside the same mutation that touches the room store.
//
// Delivery is best-effort per subscriber: a failed or slow delivery must
// never block or roll back the mutation that produced the event.
type Notifier interface {
	// Subscribe attaches a connection to a room's delivery list.
	Subscribe(roomID, connID string)
	// Unsubscribe detaches a connection from a room's delivery list.
	Unsubscribe(roomID, connID string)
	// ReleaseRoom drops every residual subscription for a room that was
	// deleted from the store.
	ReleaseRoom(roomID string)
	// NotifyRoom delivers an event to all connections subscribed to a room.
	NotifyRoom(roomID string, ev *Event)
	// NotifyConnection delivers an event to a single connection.
	NotifyConnection(connID string, ev *Event)
}
