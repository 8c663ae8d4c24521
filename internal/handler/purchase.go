package handler

import (
	"net/http"

	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/logger"
	"github.com/osse101/TowerIdle_Go/internal/session"
)

// UpgradeResponse reports a producer after an unlock or upgrade
type UpgradeResponse struct {
	Producer domain.ProducerState `json:"producer"`
	State    session.View         `json:"state"`
}

// BoostResponse reports a boost after a purchase
type BoostResponse struct {
	Boost domain.BoostState `json:"boost"`
	State session.View      `json:"state"`
}

// HandleUpgradeProducer unlocks a locked producer or raises its level
// @Summary Unlock or upgrade a producer
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Param producerID path string true "Producer ID"
// @Success 200 {object} UpgradeResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/producers/{producerID}/upgrade [post]
func (h *PlayerHandlers) HandleUpgradeProducer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.session(w, r)
		if !ok {
			return
		}
		producerID, ok := pathParam(w, r, "producerID", RuleItemID, ErrMsgInvalidItemID)
		if !ok {
			return
		}

		st, err := s.UpgradeProducer(r.Context(), producerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgUpgradeFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgProducerUpgraded,
			"player_id", s.PlayerID(), "producer_id", producerID, "level", st.Level)
		respondJSON(w, http.StatusOK, UpgradeResponse{Producer: st, State: s.View()})
	}
}

// HandlePurchaseBoost buys the next level of a boost
// @Summary Purchase a boost
// @Tags players
// @Produce json
// @Param playerID path string true "Player ID"
// @Param boostID path string true "Boost ID"
// @Success 200 {object} BoostResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/players/{playerID}/boosts/{boostID}/purchase [post]
func (h *PlayerHandlers) HandlePurchaseBoost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, ok := h.session(w, r)
		if !ok {
			return
		}
		boostID, ok := pathParam(w, r, "boostID", RuleItemID, ErrMsgInvalidItemID)
		if !ok {
			return
		}

		st, err := s.PurchaseBoost(r.Context(), boostID)
		if err != nil {
			respondServiceError(w, r, ErrMsgPurchaseBoostFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgBoostPurchased,
			"player_id", s.PlayerID(), "boost_id", boostID, "level", st.Level)
		respondJSON(w, http.StatusOK, BoostResponse{Boost: st, State: s.View()})
	}
}
