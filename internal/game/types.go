package game

import (
	"github.com/google/uuid"

	"redditionaire/internal/question"
)

// Status lifecycle states for a session. Won, lost and walked are terminal.
type Status string

const (
	StatusWaiting Status = "waiting"
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
	StatusWalked  Status = "walked"
)

// Terminal reports whether no further play is possible without a reset.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost || s == StatusWalked
}

// Lifeline kinds.
type Lifeline string

const (
	LifelineFiftyFifty  Lifeline = "fiftyFifty"
	LifelineAskAudience Lifeline = "askAudience"
	LifelinePhoneFriend Lifeline = "phoneFriend"
)

// Lifelines tracks one-shot availability. Each flag flips true to false at
// most once per session and never resets mid-game.
type Lifelines struct {
	FiftyFifty  bool `json:"fiftyFifty"`
	AskAudience bool `json:"askAudience"`
	PhoneFriend bool `json:"phoneFriend"`
}

func allLifelines() Lifelines {
	return Lifelines{FiftyFifty: true, AskAudience: true, PhoneFriend: true}
}

// Amount is a banked prize: the ladder's display string plus the numeric
// value used for leaderboard ordering.
type Amount struct {
	Display string `json:"display"`
	Value   int64  `json:"value"`
}

// ZeroAmount is the pre-game score.
var ZeroAmount = Amount{Display: "$0", Value: 0}

// AudienceResults is the percentage split shown by the ask-audience lifeline.
// The four entries always sum to exactly 100.
type AudienceResults struct {
	Percentages [question.OptionCount]int `json:"percentages"`
}

// FriendHint is the phone-a-friend overlay payload.
type FriendHint struct {
	Friend string `json:"friend"`
	Line   string `json:"line"`
	Hint   string `json:"hint,omitempty"`
}

// Session is the complete state of one player's game, held as a single
// serializable value. Transitions never mutate a session in place; the
// engine returns the successor value.
type Session struct {
	ID          uuid.UUID `json:"id"`
	PlayerID    string    `json:"playerId"`
	PlayerName  string    `json:"playerName"`
	CommunityID string    `json:"communityId"`

	Questions     []question.GameQuestion `json:"questions"`
	CurrentIndex  int                     `json:"currentIndex"`
	Score         Amount                  `json:"score"`
	Status        Status                  `json:"status"`
	Lifelines     Lifelines               `json:"lifelines"`
	HiddenOptions []int                   `json:"hiddenOptions,omitempty"`
	ShowWalkAway  bool                    `json:"showWalkAway"`
	Audience      *AudienceResults        `json:"audienceResults,omitempty"`
	Hint          *FriendHint             `json:"hint,omitempty"`
	TimeRemaining int                     `json:"timeRemaining"`
	Explanation   string                  `json:"explanation,omitempty"`
}

// overlayShowing reports whether a blocking prompt or lifeline overlay is
// open; the countdown pauses while one is.
func (s Session) overlayShowing() bool {
	return s.ShowWalkAway || s.Audience != nil || s.Hint != nil
}

// CurrentQuestion returns the active question, if any.
func (s Session) CurrentQuestion() (question.GameQuestion, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return question.GameQuestion{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// ActionType enumerates the discrete events the renderer can send.
type ActionType string

const (
	ActionStart       ActionType = "start"
	ActionAnswer      ActionType = "answer"
	ActionUseLifeline ActionType = "useLifeline"
	ActionWalkAway    ActionType = "walkAway"
	ActionContinue    ActionType = "continueGame"
	ActionTimeout     ActionType = "timeout"
	ActionTick        ActionType = "tick"
	ActionReset       ActionType = "reset"
)

// Action is a discrete player or timer event. Questions is set only on
// start; the caller runs the selector and hands the result in so that
// transitions stay pure.
type Action struct {
	Type      ActionType
	Option    int
	Lifeline  Lifeline
	Questions []question.GameQuestion
}

// Effect asks the caller to perform I/O after a pure transition.
type Effect interface {
	isEffect()
}

// RecordScoreEffect requests a leaderboard append for a finished game.
type RecordScoreEffect struct {
	Score Amount
}

// StartTimerEffect requests the per-question countdown to (re)start.
type StartTimerEffect struct{}

// StopTimerEffect requests the countdown to stop.
type StopTimerEffect struct{}

func (RecordScoreEffect) isEffect() {}
func (StartTimerEffect) isEffect()  {}
func (StopTimerEffect) isEffect()   {}
