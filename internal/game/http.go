package game

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	httperrors "redditionaire/pkg/http/errors"
)

// HTTPHandler exposes the read-only game endpoints: the money ladder and
// the how-to-play rules text.
type HTTPHandler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHTTPHandler(service *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		service: service,
		logger:  logger.With().Str("component", "game_http").Logger(),
	}
}

// HandleLadder responds with the static money ladder.
// Route: GET /v1/ladder
func (h *HTTPHandler) HandleLadder(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w, "Only GET is supported")
		return
	}
	writeJSON(w, map[string]interface{}{"rungs": h.service.Ladder()})
}

// HandleHowToPlay responds with the rules summary shown before a game.
// Route: GET /v1/howtoplay
func (h *HTTPHandler) HandleHowToPlay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w, "Only GET is supported")
		return
	}

	ladder := h.service.Ladder()
	milestones := make([]int, 0, 3)
	for _, rung := range ladder {
		if rung.Milestone {
			milestones = append(milestones, rung.Level)
		}
	}

	writeJSON(w, map[string]interface{}{
		"questions":  len(ladder),
		"milestones": milestones,
		"lifelines":  []Lifeline{LifelineFiftyFifty, LifelineAskAudience, LifelinePhoneFriend},
		"rules": []string{
			"Answer questions of increasing difficulty to climb the money ladder.",
			"A wrong answer or a timeout ends the game; you keep the last milestone amount you passed.",
			"After answering a milestone question you may walk away with your winnings.",
			"Each lifeline can be used once per game.",
		},
	})
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		httperrors.RespondInternalError(w, "Failed to encode response")
	}
}
