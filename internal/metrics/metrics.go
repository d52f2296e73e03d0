// Package metrics exposes the coordinator's Prometheus collectors and
// the /metrics handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RoomsActive tracks rooms currently holding at least one participant.
	RoomsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "roomcast_rooms_active",
		Help: "Number of rooms currently holding at least one participant.",
	})

	// ConnectionsActive tracks live websocket sessions.
	ConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "roomcast_connections_active",
		Help: "Number of live websocket connections.",
	})

	RoomsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roomcast_rooms_created_total",
		Help: "Total rooms created.",
	})

	RoomJoins = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roomcast_room_joins_total",
		Help: "Total successful join operations.",
	})

	RoomLeaves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roomcast_room_leaves_total",
		Help: "Total participant removals, explicit or via disconnect.",
	})

	Disconnects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roomcast_disconnect_cleanups_total",
		Help: "Total disconnect cleanups that removed at least one membership.",
	})

	// EventsDropped counts notifications dropped because a session's send
	// buffer was full. Delivery is best-effort per subscriber.
	EventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "roomcast_events_dropped_total",
		Help: "Total notifications dropped due to slow consumers.",
	})
)

// Handler exposes Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
