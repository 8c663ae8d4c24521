package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/logger"
	"github.com/osse101/TowerIdle_Go/internal/session"
)

// Sessions is the part of session.Registry the player handlers use
type Sessions interface {
	Config() *domain.EventConfig
	Get(ctx context.Context, playerID string) (*session.Session, error)
	Create(ctx context.Context) (*session.Session, error)
}

// Streamer pushes live updates to a connected client
type Streamer interface {
	ServeSSE(w http.ResponseWriter, r *http.Request, playerID string, snapshot interface{})
	ServeWebSocket(w http.ResponseWriter, r *http.Request, playerID string, snapshot interface{})
}

// CreatePlayerRequest optionally names the player to create
type CreatePlayerRequest struct {
	PlayerID string `json:"player_id,omitempty" validate:"omitempty,max=64,identifier"`
}

// CreatePlayerResponse carries the new player's ID and first view
type CreatePlayerResponse struct {
	PlayerID string       `json:"player_id"`
	State    session.View `json:"state"`
}

// OfflineResponse is the "while you were away" summary
type OfflineResponse struct {
	GapMs       int64              `json:"gap_ms"`
	ProcessedMs int64              `json:"processed_ms"`
	Capped      bool               `json:"capped"`
	Resources   map[string]float64 `json:"resources"`
	Damage      float64            `json:"damage"`
}

// PlayerHandlers serves the per-player API
type PlayerHandlers struct {
	sessions Sessions
	streamer Streamer
}

// NewPlayerHandlers creates the player handlers
func NewPlayerHandlers(sessions Sessions, streamer Streamer) *PlayerHandlers {
	return &PlayerHandlers{sessions: sessions, streamer: streamer}
}

// Routes mounts the game API on r
func (h *PlayerHandlers) Routes(r chi.Router) {
	r.Get("/config", h.HandleGetConfig())
	r.Post("/players", h.HandleCreatePlayer())
	r.Route("/players/{playerID}", func(r chi.Router) {
		r.Get("/state", h.HandleGetState())
		r.Get("/offline", h.HandleGetOffline())
		r.Post("/reset", h.HandleReset())
		r.Post("/producers/{producerID}/upgrade", h.HandleUpgradeProducer())
		r.Post("/boosts/{boostID}/purchase", h.HandlePurchaseBoost())
		r.Get("/events", h.HandleEvents())
		r.Get("/ws", h.HandleWebSocket())
	})
}

// HandleGetConfig returns the loaded event configuration
// @Summary Event configuration
// @Tags game
// @Produce json
// @Success 200 {object} domain.EventConfig
// @Router /api/v1/config [get]
func (h *PlayerHandlers) HandleGetConfig() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, h.sessions.Config())
	}
}

// HandleCreatePlayer starts a session for a new player
// @Summary Create player
// @Description Starts a session for player_id, or for a generated ID when omitted
// @Tags players
// @Accept json
// @Produce json
// @Param request body CreatePlayerRequest false "Optional player ID"
// @Success 201 {object} CreatePlayerResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/players [post]
func (h *PlayerHandlers) HandleCreatePlayer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreatePlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create player"); err != nil {
			return
		}

		var (
			s   *session.Session
			err error
		)
		if req.PlayerID != "" {
			s, err = h.sessions.Get(r.Context(), req.PlayerID)
		} else {
			s, err = h.sessions.Create(r.Context())
		}
		if err != nil {
			respondServiceError(w, r, ErrMsgCreatePlayerFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgPlayerCreated, "player_id", s.PlayerID())
		respondJSON(w, http.StatusCreated, CreatePlayerResponse{
			PlayerID: s.PlayerID(),
			State:    s.View(),
		})
	}
}

// HandleGetState returns the player's derived view
// @Summary Player state
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} session.View
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/players/{playerID}/state [get]
func (h *PlayerHandlers) HandleGetState() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.session(w, r)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, s.View())
	}
}

// HandleGetOffline returns what was credited while the player was away
// @Summary Offline progress
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} OfflineResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/offline [get]
func (h *PlayerHandlers) HandleGetOffline() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.session(w, r)
		if !ok {
			return
		}
		report, ok := s.Offline()
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgNoOfflineReport)
			return
		}
		respondJSON(w, http.StatusOK, OfflineResponse{
			GapMs:       report.Gap.Milliseconds(),
			ProcessedMs: report.Processed.Milliseconds(),
			Capped:      report.Capped,
			Resources:   report.Resources,
			Damage:      report.Damage,
		})
	}
}

// HandleReset wipes the player's progress and restarts the event
// @Summary Reset progress
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} session.View
// @Router /api/v1/players/{playerID}/reset [post]
func (h *PlayerHandlers) HandleReset() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.session(w, r)
		if !ok {
			return
		}
		if err := s.Reset(r.Context()); err != nil {
			respondServiceError(w, r, ErrMsgResetFailed, err)
			return
		}
		logger.FromContext(r.Context()).Info(LogMsgProgressReset, "player_id", s.PlayerID())
		respondJSON(w, http.StatusOK, s.View())
	}
}

// HandleEvents streams live updates over Server-Sent Events.
// The optional types query parameter filters by event type.
// @Summary Live updates (SSE)
// @Tags live
// @Produce text/event-stream
// @Param playerID path string true "Player ID"
// @Param types query string false "Comma separated event types"
// @Router /api/v1/players/{playerID}/events [get]
func (h *PlayerHandlers) HandleEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.session(w, r)
		if !ok {
			return
		}
		logger.FromContext(r.Context()).Debug(LogMsgStreamOpened, "player_id", s.PlayerID(), "transport", "sse")
		h.streamer.ServeSSE(w, r, s.PlayerID(), s.View())
	}
}

// HandleWebSocket streams live updates over a WebSocket
// @Summary Live updates (WebSocket)
// @Tags live
// @Param playerID path string true "Player ID"
// @Param types query string false "Comma separated event types"
// @Router /api/v1/players/{playerID}/ws [get]
func (h *PlayerHandlers) HandleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.session(w, r)
		if !ok {
			return
		}
		logger.FromContext(r.Context()).Debug(LogMsgStreamOpened, "player_id", s.PlayerID(), "transport", "websocket")
		h.streamer.ServeWebSocket(w, r, s.PlayerID(), s.View())
	}
}

// session resolves the playerID path parameter to a running session
func (h *PlayerHandlers) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	playerID, ok := pathParam(w, r, "playerID", RulePlayerID, ErrMsgInvalidPlayerID)
	if !ok {
		return nil, false
	}
	s, err := h.sessions.Get(r.Context(), playerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgLoadPlayerFailed, err)
		return nil, false
	}
	return s, true
}
