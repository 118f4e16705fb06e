package game

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"redditionaire/internal/identity"
	"redditionaire/internal/server"
)

// WSHandler serves the renderer connection: actions in, session snapshots
// out. One connection per player; a second connection from the same player
// shares the session.
type WSHandler struct {
	service   *Service
	players   identity.Resolver
	community identity.CommunityResolver
	logger    zerolog.Logger
}

func NewWSHandler(service *Service, players identity.Resolver, community identity.CommunityResolver, logger zerolog.Logger) *WSHandler {
	return &WSHandler{
		service:   service,
		players:   players,
		community: community,
		logger:    logger.With().Str("component", "game_ws").Logger(),
	}
}

// clientAction is the wire form of a renderer action.
type clientAction struct {
	Type     string `json:"type"`
	Option   int    `json:"option"`
	Lifeline string `json:"lifeline"`
}

// HandleWebSocket upgrades the connection and runs the session loop.
// A missing or invalid token degrades to a guest identity rather than
// rejecting the connection.
func (h *WSHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	player := identity.ResolveOr(r.Context(), h.players, token)
	communityID := identity.CommunityOr(r.Context(), h.community, token)

	conn, err := server.WSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.handleConnection(conn, player, communityID)
}

func (h *WSHandler) handleConnection(conn *websocket.Conn, player identity.Player, communityID string) {
	logger := h.logger.With().Str("player_id", player.ID).Str("community_id", communityID).Logger()
	logger.Info().Msg("player connected")

	updates, cancel := h.service.Watch(player.ID, player.Name, communityID)
	done := make(chan struct{})

	// Writer: one snapshot per transition, stale ones already dropped by the
	// watch channel.
	go func() {
		defer close(done)
		for snap := range updates {
			if err := conn.WriteJSON(snap); err != nil {
				logger.Debug().Err(err).Msg("write snapshot failed")
				return
			}
		}
	}()

	for {
		var msg clientAction
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn().Err(err).Msg("unexpected websocket close")
			}
			break
		}
		action, ok := parseAction(msg)
		if !ok {
			logger.Debug().Str("type", msg.Type).Msg("ignoring unknown action")
			continue
		}
		h.service.Dispatch(context.Background(), player.ID, player.Name, communityID, action)
	}

	cancel()
	_ = conn.Close()
	<-done
	h.service.Drop(player.ID)
	logger.Info().Msg("player disconnected")
}

// parseAction maps a wire action onto an engine action. Tick is internal to
// the countdown and never accepted from the client.
func parseAction(msg clientAction) (Action, bool) {
	switch ActionType(msg.Type) {
	case ActionStart:
		return Action{Type: ActionStart}, true
	case ActionAnswer:
		return Action{Type: ActionAnswer, Option: msg.Option}, true
	case ActionUseLifeline:
		return Action{Type: ActionUseLifeline, Lifeline: Lifeline(msg.Lifeline)}, true
	case ActionWalkAway:
		return Action{Type: ActionWalkAway}, true
	case ActionContinue:
		return Action{Type: ActionContinue}, true
	case ActionTimeout:
		return Action{Type: ActionTimeout}, true
	case ActionReset:
		return Action{Type: ActionReset}, true
	default:
		return Action{}, false
	}
}
