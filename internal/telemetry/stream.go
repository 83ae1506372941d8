package telemetry

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// DefaultInterval is how often the dashboard gauge refreshes.
const DefaultInterval = 2 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// RegisterRoutes mounts the one-shot snapshot and the dashboard stream.
func RegisterRoutes(r chi.Router, gauge *Gauge, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}
	r.Get("/api/telemetry", handleSnapshot(gauge))
	r.Get("/api/telemetry/stream", handleStream(gauge, interval))
}

func handleSnapshot(gauge *Gauge) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(gauge.Sample())
	}
}

// handleStream pushes a sample every interval for as long as the
// dashboard stays connected. The ticker lives and dies with the
// connection, so an admin view going away tears the refresh down.
func handleStream(gauge *Gauge, interval time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("telemetry: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Read pump: its only job is noticing the peer going away.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		if err := conn.WriteJSON(gauge.Sample()); err != nil {
			return
		}
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := conn.WriteJSON(gauge.Sample()); err != nil {
					return
				}
			}
		}
	}
}
