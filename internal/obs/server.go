// Package obs exposes the live simulation state to external observers over
// HTTP and WebSocket. It is strictly read-only: observers see snapshots, they
// never inject input.
package obs

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/voidforge/skirmish/internal/sim"
)

// pushInterval is how often each WebSocket observer receives the latest
// snapshot. Slower than the 60Hz tick on purpose; observers watch, they do
// not replay.
const pushInterval = 100 * time.Millisecond

const writeWait = 10 * time.Second

// Server holds the most recent snapshot and fans it out to observers.
type Server struct {
	log      zerolog.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	latest  sim.Snapshot
	hasSnap bool
}

// NewServer builds an observer server. Publish must be called from the game
// loop to keep the state fresh.
func NewServer(log zerolog.Logger) *Server {
	return &Server{
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Publish stores the snapshot as the latest observable state. Safe to call
// concurrently with request handling.
func (s *Server) Publish(snap sim.Snapshot) {
	s.mu.Lock()
	s.latest = snap
	s.hasSnap = true
	s.mu.Unlock()
}

func (s *Server) snapshot() (sim.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.hasSnap
}

// Router builds the HTTP surface: a health probe, the latest snapshot as
// JSON, and a WebSocket stream.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/state", s.handleState)
	r.Get("/ws", s.handleWS)
	return r
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	snap, ok := s.snapshot()
	if !ok {
		http.Error(w, "no snapshot yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		s.log.Error().Err(err).Msg("encode snapshot")
	}
}

// handleWS upgrades the request and streams snapshots until the observer
// disconnects.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	id := uuid.New().String()
	s.log.Info().Str("observer", id).Str("remote", r.RemoteAddr).Msg("observer connected")

	done := make(chan struct{})
	// Read pump: observers send nothing meaningful, but reading is what
	// detects the close frame.
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pushInterval)
	defer func() {
		ticker.Stop()
		conn.Close()
		s.log.Info().Str("observer", id).Msg("observer disconnected")
	}()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			snap, ok := s.snapshot()
			if !ok {
				continue
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(snap); err != nil {
				s.log.Debug().Str("observer", id).Err(err).Msg("write failed")
				return
			}
		}
	}
}
