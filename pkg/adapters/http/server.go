package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/aretw0/stepline"
	"github.com/aretw0/stepline/pkg/domain"
	"github.com/aretw0/stepline/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate go tool oapi-codegen -package http -generate types,chi-server,spec -o api.gen.go ../../../api/openapi.yaml

// Server exposes a Controller over HTTP and streams engine events over SSE.
// It also implements ports.EventBus: register it on the engine to feed /events.
// Controller may be assigned after Handler is built; requests answer 503 until then.
type Server struct {
	Controller ports.Controller
	Streams    *StreamManager
	logger     *slog.Logger
}

// Ensure Server implements ServerInterface
var _ ServerInterface = (*Server)(nil)

// NewServer creates a server for the controller.
func NewServer(c ports.Controller, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		Controller: c,
		Streams:    NewStreamManager(logger),
		logger:     logger,
	}
}

// Publish broadcasts the event to every SSE subscriber.
func (s *Server) Publish(_ context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	s.Streams.Broadcast(string(data))
	return nil
}

// Handler returns the routes of the control API, plus its OpenAPI document.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Swagger UI
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		spec, err := rawSpec()
		if err != nil {
			http.Error(w, "Failed to load spec", http.StatusInternalServerError)
			s.logger.Error("Failed to load OpenAPI spec", "error", err)
			return
		}
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(spec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})

	return enableCORS(HandlerFromMux(s, r))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Stepline API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

// controller returns the wired controller, or answers 503.
func (s *Server) controller(w http.ResponseWriter) (ports.Controller, bool) {
	if s.Controller == nil {
		http.Error(w, "Controller not ready", http.StatusServiceUnavailable)
		return nil, false
	}
	return s.Controller, true
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Health{Status: "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, Info{App: "stepline-http", Version: stepline.Version})
}

// GetStatus handles the GET /status request.
func (s *Server) GetStatus(w http.ResponseWriter, r *http.Request) {
	c, ok := s.controller(w)
	if !ok {
		return
	}
	in, err := c.Inspect(r.Context())
	if err != nil {
		s.writeError(w, "Inspect", err)
		return
	}
	s.writeJSON(w, http.StatusOK, in)
}

// Pause handles POST /pause. Without a body it toggles.
func (s *Server) Pause(w http.ResponseWriter, r *http.Request) {
	var body PauseJSONRequestBody
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			s.logger.Warn("Pause: Invalid request body", "error", err)
			return
		}
	}
	c, ok := s.controller(w)
	if !ok {
		return
	}

	paused := false
	var err error
	if body.Paused == nil {
		paused, err = c.TogglePause(r.Context())
	} else {
		paused = *body.Paused
		err = c.SetPaused(r.Context(), paused)
	}
	if err != nil {
		s.writeError(w, "Pause", err)
		return
	}
	s.writeJSON(w, http.StatusOK, PauseResponse{Paused: paused})
}

// Speed handles POST /speed.
func (s *Server) Speed(w http.ResponseWriter, r *http.Request) {
	var body SpeedJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("Speed: Invalid request body", "error", err)
		return
	}
	c, ok := s.controller(w)
	if !ok {
		return
	}
	if err := c.UpdateSpeed(r.Context(), body.Multiplier); err != nil {
		s.writeError(w, "Speed", err)
		return
	}
	s.writeJSON(w, http.StatusOK, SpeedRequest{Multiplier: body.Multiplier})
}

// SetHelper handles POST /helper.
func (s *Server) SetHelper(w http.ResponseWriter, r *http.Request) {
	var body SetHelperJSONRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("SetHelper: Invalid request body", "error", err)
		return
	}
	c, ok := s.controller(w)
	if !ok {
		return
	}
	if err := c.SetUsingHelperQueue(r.Context(), body.Enabled); err != nil {
		s.writeError(w, "SetHelper", err)
		return
	}
	s.writeJSON(w, http.StatusOK, HelperRequest{Enabled: body.Enabled})
}

// LoadHelper handles POST /helper/{id}.
func (s *Server) LoadHelper(w http.ResponseWriter, r *http.Request, id string) {
	c, ok := s.controller(w)
	if !ok {
		return
	}
	if err := c.LoadCheckpointToHelper(r.Context(), id); err != nil {
		s.writeError(w, "LoadHelper", err)
		return
	}
	s.writeJSON(w, http.StatusOK, LoadHelperResponse{Checkpoint: id})
}

// Reset handles POST /reset.
func (s *Server) Reset(w http.ResponseWriter, r *http.Request) {
	s.command(w, r, "Reset", ports.Controller.Reset)
}

// Redraw handles POST /redraw.
func (s *Server) Redraw(w http.ResponseWriter, r *http.Request) {
	s.command(w, r, "Redraw", ports.Controller.ReDrawAll)
}

// StepNext handles POST /step/next.
func (s *Server) StepNext(w http.ResponseWriter, r *http.Request) {
	s.command(w, r, "StepNext", ports.Controller.StepNext)
}

// StepBack handles POST /step/back.
func (s *Server) StepBack(w http.ResponseWriter, r *http.Request) {
	s.command(w, r, "StepBack", ports.Controller.StepBack)
}

// NextCheckpoint handles POST /checkpoints/next.
func (s *Server) NextCheckpoint(w http.ResponseWriter, r *http.Request) {
	s.seek(w, r, "NextCheckpoint", ports.Controller.LoadNextCheckpoint)
}

// PreviousCheckpoint handles POST /checkpoints/previous.
func (s *Server) PreviousCheckpoint(w http.ResponseWriter, r *http.Request) {
	s.seek(w, r, "PreviousCheckpoint", ports.Controller.LoadPreviousCheckpoint)
}

func (s *Server) command(w http.ResponseWriter, r *http.Request, op string, fn func(ports.Controller, context.Context) error) {
	c, ok := s.controller(w)
	if !ok {
		return
	}
	if err := fn(c, r.Context()); err != nil {
		s.writeError(w, op, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) seek(w http.ResponseWriter, r *http.Request, op string, fn func(ports.Controller, context.Context) (string, bool, error)) {
	c, ok := s.controller(w)
	if !ok {
		return
	}
	id, found, err := fn(c, r.Context())
	if err != nil {
		s.writeError(w, op, err)
		return
	}
	res := SeekResponse{Found: found}
	if found {
		res.Checkpoint = &id
	}
	s.writeJSON(w, http.StatusOK, res)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, op string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnitNotFound), errors.Is(err, domain.ErrCheckpointNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidSpeed):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "op", op, "error", err)
	}
	http.Error(w, fmt.Sprintf("%s error: %v", op, err), status)
}

// StreamManager handles active SSE connections.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]chan string
	logger      *slog.Logger
}

func NewStreamManager(logger *slog.Logger) *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]chan string),
		logger:      logger,
	}
}

// Subscribe registers a client and returns its id, channel and cancel func.
func (sm *StreamManager) Subscribe() (string, <-chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	id := uuid.NewString()
	ch := make(chan string, 32)
	sm.subscribers[id] = ch

	return id, ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if ch, ok := sm.subscribers[id]; ok {
			delete(sm.subscribers, id)
			close(ch)
		}
	}
}

// Len returns the number of connected clients.
func (sm *StreamManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers)
}

func (sm *StreamManager) Broadcast(msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for id, ch := range sm.subscribers {
		select {
		case ch <- msg:
		default:
			// Drop message if channel is full (slow client)
			sm.logger.Warn("SSE: Client buffer full, dropping message", "client_id", id)
		}
	}
}

// SubscribeEvents handles the GET /events request (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	id, ch, cancel := s.Streams.Subscribe()
	defer cancel()
	s.logger.Info("SSE: client subscribed", "client_id", id)

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Info("SSE: client disconnected", "client_id", id)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
