package leaderboard

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	httperrors "redditionaire/pkg/http/errors"
)

// HTTPHandler exposes REST endpoints for leaderboard queries.
type HTTPHandler struct {
	store  *Store
	logger zerolog.Logger
}

func NewHTTPHandler(store *Store, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		store:  store,
		logger: logger.With().Str("component", "leaderboard_http").Logger(),
	}
}

// HandleGet responds with the current table for a community.
// Route: GET /v1/leaderboards/{community_id}?limit=10
func (h *HTTPHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w, "Only GET is supported")
		return
	}

	communityID := strings.TrimPrefix(r.URL.Path, "/v1/leaderboards/")
	communityID = strings.TrimSuffix(communityID, "/")
	if communityID == "" {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeMissingField, "Community id required")
		return
	}

	entries := h.store.Top(r.Context(), communityID)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 && limit < len(entries) {
			entries = entries[:limit]
		}
	}
	if entries == nil {
		entries = []Entry{}
	}

	resp := map[string]interface{}{
		"communityId": communityID,
		"entries":     entries,
		"retrievedAt": time.Now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		httperrors.RespondInternalError(w, "Failed to encode response")
	}
}
