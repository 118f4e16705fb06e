package game

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"redditionaire/internal/question"
)

// Recorder persists a finished game's score. Writes are fire-and-forget
// from the session's perspective.
type Recorder interface {
	Record(ctx context.Context, communityID, username string, score Amount) error
}

// ServiceOptions configures the game service.
type ServiceOptions struct {
	Engine   *Engine
	Selector *question.Selector
	Pool     []question.Question
	Rules    question.Rules
	Recorder Recorder
	Metrics  *Metrics
	Logger   zerolog.Logger
}

// Service owns the live sessions: one per player, each with its own
// countdown and set of watchers. Dispatch serializes all transitions for a
// player under the service lock, so the engine itself needs none.
type Service struct {
	engine   *Engine
	selector *question.Selector
	pool     []question.Question
	rules    question.Rules
	recorder Recorder
	metrics  *Metrics
	logger   zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*playerSession
}

type playerSession struct {
	state    Session
	timer    *Countdown
	watchers map[chan Session]struct{}
}

func NewService(opts ServiceOptions) *Service {
	return &Service{
		engine:   opts.Engine,
		selector: opts.Selector,
		pool:     opts.Pool,
		rules:    opts.Rules,
		recorder: opts.Recorder,
		metrics:  opts.Metrics,
		logger:   opts.Logger.With().Str("component", "game_service").Logger(),
		sessions: make(map[string]*playerSession),
	}
}

// Ladder exposes the money ladder for read-only endpoints.
func (s *Service) Ladder() []Rung { return s.engine.Ladder() }

// Dispatch applies one action to the player's session and returns the new
// snapshot. Unknown players get a fresh waiting session on first contact.
func (s *Service) Dispatch(ctx context.Context, playerID, playerName, communityID string, a Action) Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps := s.ensureSession(playerID, playerName, communityID)

	if a.Type == ActionStart && len(a.Questions) == 0 {
		a.Questions = s.selectQuestions(communityID)
	}

	before := ps.state
	next, effects := s.engine.Apply(ps.state, a)
	ps.state = next

	s.observe(before, next, a)
	s.runEffects(ctx, ps, effects)
	s.broadcast(ps)
	return next
}

// Snapshot returns the player's current session, creating one if needed.
func (s *Service) Snapshot(playerID, playerName, communityID string) Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureSession(playerID, playerName, communityID).state
}

// Watch subscribes to the player's session. The channel immediately carries
// the current snapshot, then one entry per transition; slow readers only
// ever miss intermediate states, never the latest. The returned func
// unsubscribes.
func (s *Service) Watch(playerID, playerName, communityID string) (<-chan Session, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps := s.ensureSession(playerID, playerName, communityID)
	ch := make(chan Session, 1)
	ch <- ps.state
	ps.watchers[ch] = struct{}{}

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := ps.watchers[ch]; ok {
			delete(ps.watchers, ch)
			close(ch)
		}
	}
	return ch, cancel
}

// Drop removes a player's session and stops its timer. Called when the last
// connection for a player goes away.
func (s *Service) Drop(playerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ps, ok := s.sessions[playerID]
	if !ok {
		return
	}
	if len(ps.watchers) > 0 {
		return
	}
	ps.timer.Stop()
	delete(s.sessions, playerID)
}

// Close stops every session timer.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ps := range s.sessions {
		ps.timer.Stop()
		for ch := range ps.watchers {
			close(ch)
		}
		ps.watchers = make(map[chan Session]struct{})
	}
}

func (s *Service) ensureSession(playerID, playerName, communityID string) *playerSession {
	ps, ok := s.sessions[playerID]
	if !ok {
		ps = &playerSession{
			state:    s.engine.NewSession(playerID, playerName, communityID),
			timer:    NewCountdown(),
			watchers: make(map[chan Session]struct{}),
		}
		s.sessions[playerID] = ps
	}
	return ps
}

func (s *Service) selectQuestions(communityID string) []question.GameQuestion {
	selected := s.selector.Select(question.NewSeedMaterial(communityID), s.pool, s.rules)
	if len(selected) == 0 {
		s.logger.Warn().Str("community_id", communityID).Msg("selection empty, serving fallback questions")
		selected = question.Resolve(s.rules.FallbackIDs, s.pool)
	}
	return selected
}

// runEffects is called with the service lock held. The tick closure runs on
// the timer goroutine, so it must not touch ps.state; it closes over copies
// taken here instead.
func (s *Service) runEffects(ctx context.Context, ps *playerSession, effects []Effect) {
	playerID := ps.state.PlayerID
	playerName := ps.state.PlayerName
	communityID := ps.state.CommunityID
	for _, effect := range effects {
		switch e := effect.(type) {
		case StartTimerEffect:
			ps.timer.Start(func() {
				s.Dispatch(context.Background(), playerID, playerName, communityID, Action{Type: ActionTick})
			})
		case StopTimerEffect:
			ps.timer.Stop()
		case RecordScoreEffect:
			s.recordScore(ps.state, e.Score)
		}
	}
}

// recordScore writes the final score in the background. Failures are logged
// and counted, never surfaced to the player.
func (s *Service) recordScore(state Session, score Amount) {
	if s.recorder == nil {
		return
	}
	communityID, username := state.CommunityID, state.PlayerName
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.recorder.Record(ctx, communityID, username, score); err != nil {
			if s.metrics != nil {
				s.metrics.ScoreWriteFailures.Inc()
			}
			s.logger.Error().Err(err).
				Str("community_id", communityID).
				Str("username", username).
				Int64("score", score.Value).
				Msg("failed to record score")
		}
	}()
}

func (s *Service) observe(before, after Session, a Action) {
	if s.metrics == nil {
		return
	}
	if a.Type == ActionStart && before.Status != StatusPlaying && after.Status == StatusPlaying {
		s.metrics.GamesStarted.Inc()
	}
	if !before.Status.Terminal() && after.Status.Terminal() {
		s.metrics.GamesFinished.WithLabelValues(string(after.Status)).Inc()
	}
	if a.Type == ActionUseLifeline && before.Lifelines != after.Lifelines {
		s.metrics.LifelinesUsed.WithLabelValues(string(a.Lifeline)).Inc()
	}
}

// broadcast pushes the new snapshot to every watcher, dropping the stale
// entry first so a slow reader always sees the freshest state.
func (s *Service) broadcast(ps *playerSession) {
	for ch := range ps.watchers {
		select {
		case ch <- ps.state:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- ps.state:
			default:
			}
		}
	}
}
