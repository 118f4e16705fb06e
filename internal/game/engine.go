package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"redditionaire/internal/question"
)

// Engine applies actions to sessions. Transitions are pure: Apply returns
// the successor session plus the effects the caller must run (timer control,
// score persistence). Invalid transitions return the session unchanged with
// no effects.
type Engine struct {
	ladder       []Rung
	questionTime int
	logger       zerolog.Logger
}

func NewEngine(ladder []Rung, questionTimeSeconds int, logger zerolog.Logger) *Engine {
	return &Engine{
		ladder:       ladder,
		questionTime: questionTimeSeconds,
		logger:       logger.With().Str("component", "game_engine").Logger(),
	}
}

// Ladder returns the money ladder the engine plays against.
func (e *Engine) Ladder() []Rung { return e.ladder }

// NewSession returns a fresh waiting session for the given player.
func (e *Engine) NewSession(playerID, playerName, communityID string) Session {
	return Session{
		ID:          uuid.New(),
		PlayerID:    playerID,
		PlayerName:  playerName,
		CommunityID: communityID,
		Status:      StatusWaiting,
		Score:       ZeroAmount,
		Lifelines:   allLifelines(),
	}
}

// Apply runs one transition.
func (e *Engine) Apply(s Session, a Action) (Session, []Effect) {
	switch a.Type {
	case ActionStart:
		return e.start(s, a)
	case ActionAnswer:
		return e.answer(s, a.Option)
	case ActionUseLifeline:
		return e.useLifeline(s, a.Lifeline)
	case ActionWalkAway:
		return e.walkAway(s)
	case ActionContinue:
		return e.continueGame(s)
	case ActionTick:
		return e.tick(s)
	case ActionTimeout:
		return e.timeout(s)
	case ActionReset:
		return e.reset(s)
	default:
		return s, nil
	}
}

func (e *Engine) start(s Session, a Action) (Session, []Effect) {
	if s.Status != StatusWaiting && !s.Status.Terminal() {
		return s, nil
	}
	if len(a.Questions) == 0 {
		e.logger.Warn().Str("player_id", s.PlayerID).Msg("start with empty question set ignored")
		return s, nil
	}

	s.Questions = a.Questions
	s.CurrentIndex = 0
	s.Score = ZeroAmount
	s.Status = StatusPlaying
	s.Lifelines = allLifelines()
	s.HiddenOptions = nil
	s.ShowWalkAway = false
	s.Audience = nil
	s.Hint = nil
	s.Explanation = ""
	s.TimeRemaining = e.questionTime
	return s, []Effect{StartTimerEffect{}}
}

func (e *Engine) answer(s Session, option int) (Session, []Effect) {
	if s.Status != StatusPlaying || s.ShowWalkAway {
		return s, nil
	}
	q, ok := s.CurrentQuestion()
	if !ok || option < 0 || option >= len(q.Options) {
		return s, nil
	}
	for _, hidden := range s.HiddenOptions {
		if option == hidden {
			return s, nil
		}
	}

	s.Audience = nil
	s.Hint = nil

	if option != q.CorrectAnswer {
		return e.lose(s, q, fmt.Sprintf("The correct answer was %q.", q.Options[q.CorrectAnswer]))
	}

	rung := e.ladder[s.CurrentIndex]
	s.Score = rung.Amount

	if s.CurrentIndex == len(s.Questions)-1 {
		s.Status = StatusWon
		return s, []Effect{StopTimerEffect{}, RecordScoreEffect{Score: s.Score}}
	}
	if rung.Milestone {
		s.ShowWalkAway = true
		return s, []Effect{StopTimerEffect{}}
	}
	return e.advance(s)
}

// advance moves to the next question and resets per-question state.
func (e *Engine) advance(s Session) (Session, []Effect) {
	s.CurrentIndex++
	s.HiddenOptions = nil
	s.ShowWalkAway = false
	s.Audience = nil
	s.Hint = nil
	s.TimeRemaining = e.questionTime
	return s, []Effect{StartTimerEffect{}}
}

// lose ends the game, dropping the score back to the last milestone passed.
func (e *Engine) lose(s Session, q question.GameQuestion, explanation string) (Session, []Effect) {
	s.Status = StatusLost
	s.Score = e.safeAmount(s.CurrentIndex)
	s.Explanation = explanation
	if q.Explanation != "" {
		s.Explanation += " " + q.Explanation
	}
	return s, []Effect{StopTimerEffect{}, RecordScoreEffect{Score: s.Score}}
}

// safeAmount is the guaranteed prize after failing at question index i: the
// highest milestone rung already cleared, or nothing.
func (e *Engine) safeAmount(index int) Amount {
	amount := ZeroAmount
	for j := 0; j < index && j < len(e.ladder); j++ {
		if e.ladder[j].Milestone {
			amount = e.ladder[j].Amount
		}
	}
	return amount
}

func (e *Engine) useLifeline(s Session, kind Lifeline) (Session, []Effect) {
	if s.Status != StatusPlaying || s.ShowWalkAway {
		return s, nil
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return s, nil
	}

	switch kind {
	case LifelineFiftyFifty:
		if !s.Lifelines.FiftyFifty {
			return s, nil
		}
		s.Lifelines.FiftyFifty = false
		s.HiddenOptions = pickTwoWrong(q)
		s.Audience = nil
		s.Hint = nil
	case LifelineAskAudience:
		if !s.Lifelines.AskAudience {
			return s, nil
		}
		s.Lifelines.AskAudience = false
		results := askAudience(s.PlayerID, q)
		s.Audience = &results
		s.Hint = nil
	case LifelinePhoneFriend:
		if !s.Lifelines.PhoneFriend {
			return s, nil
		}
		s.Lifelines.PhoneFriend = false
		hint := phoneFriend(q)
		s.Hint = &hint
		s.Audience = nil
	default:
		return s, nil
	}
	return s, nil
}

func (e *Engine) walkAway(s Session) (Session, []Effect) {
	if s.Status != StatusPlaying || !s.ShowWalkAway {
		return s, nil
	}
	s.Status = StatusWalked
	s.ShowWalkAway = false
	return s, []Effect{StopTimerEffect{}, RecordScoreEffect{Score: s.Score}}
}

func (e *Engine) continueGame(s Session) (Session, []Effect) {
	if s.Status != StatusPlaying || !s.ShowWalkAway {
		return s, nil
	}
	return e.advance(s)
}

// tick decrements the countdown. Ticks arriving while an overlay or prompt
// is open are dropped, which is what pauses the clock.
func (e *Engine) tick(s Session) (Session, []Effect) {
	if s.Status != StatusPlaying || s.overlayShowing() {
		return s, nil
	}
	if s.TimeRemaining <= 0 {
		return s, nil
	}
	s.TimeRemaining--
	if s.TimeRemaining == 0 {
		return e.timeout(s)
	}
	return s, nil
}

func (e *Engine) timeout(s Session) (Session, []Effect) {
	if s.Status != StatusPlaying || s.overlayShowing() {
		return s, nil
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return s, nil
	}
	s.TimeRemaining = 0
	return e.lose(s, q, fmt.Sprintf("Time ran out. The correct answer was %q.", q.Options[q.CorrectAnswer]))
}

func (e *Engine) reset(s Session) (Session, []Effect) {
	s.Questions = nil
	s.CurrentIndex = 0
	s.Score = ZeroAmount
	s.Status = StatusWaiting
	s.Lifelines = allLifelines()
	s.HiddenOptions = nil
	s.ShowWalkAway = false
	s.Audience = nil
	s.Hint = nil
	s.Explanation = ""
	s.TimeRemaining = 0
	return s, []Effect{StopTimerEffect{}}
}
