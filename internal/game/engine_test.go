package game

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"redditionaire/internal/question"
)

func testQuestions(n int) []question.GameQuestion {
	qs := make([]question.GameQuestion, n)
	for i := range qs {
		qs[i] = question.GameQuestion{
			ID:            i + 1,
			Prompt:        fmt.Sprintf("question %d", i+1),
			Options:       []string{"alpha", "beta", "gamma", "delta"},
			CorrectAnswer: i % 4,
			Difficulty:    question.DifficultyEasy,
		}
	}
	return qs
}

func newTestEngine() *Engine {
	return NewEngine(DefaultLadder(), 30, zerolog.Nop())
}

func startGame(e *Engine) Session {
	s := e.NewSession("p1", "alice", "general")
	s, _ = e.Apply(s, Action{Type: ActionStart, Questions: testQuestions(12)})
	return s
}

// answerCorrectly answers the current question right n times, continuing
// through any walk-away prompts along the way.
func answerCorrectly(e *Engine, s Session, n int) Session {
	for i := 0; i < n; i++ {
		q, _ := s.CurrentQuestion()
		s, _ = e.Apply(s, Action{Type: ActionAnswer, Option: q.CorrectAnswer})
		if s.ShowWalkAway {
			s, _ = e.Apply(s, Action{Type: ActionContinue})
		}
	}
	return s
}

func TestStartResetsSession(t *testing.T) {
	e := newTestEngine()
	s := e.NewSession("p1", "alice", "general")

	s, effects := e.Apply(s, Action{Type: ActionStart, Questions: testQuestions(12)})

	assert.Equal(t, StatusPlaying, s.Status)
	assert.Equal(t, 0, s.CurrentIndex)
	assert.Equal(t, ZeroAmount, s.Score)
	assert.Equal(t, allLifelines(), s.Lifelines)
	assert.Equal(t, 30, s.TimeRemaining)
	assert.Equal(t, []Effect{StartTimerEffect{}}, effects)
}

func TestStartIgnoredMidGame(t *testing.T) {
	e := newTestEngine()
	s := startGame(e)

	again, effects := e.Apply(s, Action{Type: ActionStart, Questions: testQuestions(12)})
	assert.Equal(t, s, again)
	assert.Empty(t, effects)
}

func TestStartWithNoQuestionsIgnored(t *testing.T) {
	e := newTestEngine()
	s := e.NewSession("p1", "alice", "general")

	again, effects := e.Apply(s, Action{Type: ActionStart})
	assert.Equal(t, StatusWaiting, again.Status)
	assert.Empty(t, effects)
}

func TestCorrectAnswerBanksAndAdvances(t *testing.T) {
	e := newTestEngine()
	s := startGame(e)
	q, _ := s.CurrentQuestion()

	s, effects := e.Apply(s, Action{Type: ActionAnswer, Option: q.CorrectAnswer})

	assert.Equal(t, StatusPlaying, s.Status)
	assert.Equal(t, 1, s.CurrentIndex)
	assert.Equal(t, int64(100_000), s.Score.Value)
	assert.Equal(t, 30, s.TimeRemaining)
	assert.Equal(t, []Effect{StartTimerEffect{}}, effects)
}

func TestScoreStrictlyIncreasesUpTheLadder(t *testing.T) {
	e := newTestEngine()
	s := startGame(e)

	prev := int64(0)
	for i := 0; i < 11; i++ {
		s = answerCorrectly(e, s, 1)
		assert.Greater(t, s.Score.Value, prev, "rung %d", i+1)
		prev = s.Score.Value
	}
}

func TestMilestonePromptAfterFourthAnswer(t *testing.T) {
	e := newTestEngine()
	s := answerCorrectly(e, startGame(e), 3)
	q, _ := s.CurrentQuestion()

	s, effects := e.Apply(s, Action{Type: ActionAnswer, Option: q.CorrectAnswer})

	assert.True(t, s.ShowWalkAway)
	assert.Equal(t, StatusPlaying, s.Status)
	assert.Equal(t, 3, s.CurrentIndex, "index must not advance until the decision is made")
	assert.Equal(t, int64(250_000), s.Score.Value)
	assert.Equal(t, []Effect{StopTimerEffect{}}, effects)
}

func TestWalkAwayPromptBlocksAnswersAndTicks(t *testing.T) {
	e := newTestEngine()
	s := answerCorrectly(e, startGame(e), 3)
	q, _ := s.CurrentQuestion()
	s, _ = e.Apply(s, Action{Type: ActionAnswer, Option: q.CorrectAnswer})

	blocked, effects := e.Apply(s, Action{Type: ActionAnswer, Option: 0})
	assert.Equal(t, s, blocked)
	assert.Empty(t, effects)

	blocked, _ = e.Apply(s, Action{Type: ActionTick})
	assert.Equal(t, s, blocked)

	blocked, _ = e.Apply(s, Action{Type: ActionTimeout})
	assert.Equal(t, s, blocked)
}

func TestWalkAwayKeepsBankedScore(t *testing.T) {
	e := newTestEngine()
	s := answerCorrectly(e, startGame(e), 3)
	q, _ := s.CurrentQuestion()
	s, _ = e.Apply(s, Action{Type: ActionAnswer, Option: q.CorrectAnswer})

	s, effects := e.Apply(s, Action{Type: ActionWalkAway})

	assert.Equal(t, StatusWalked, s.Status)
	assert.Equal(t, int64(250_000), s.Score.Value)
	assert.False(t, s.ShowWalkAway)
	assert.Contains(t, effects, RecordScoreEffect{Score: s.Score})
}

func TestContinueAdvancesPastMilestone(t *testing.T) {
	e := newTestEngine()
	s := answerCorrectly(e, startGame(e), 3)
	q, _ := s.CurrentQuestion()
	s, _ = e.Apply(s, Action{Type: ActionAnswer, Option: q.CorrectAnswer})

	s, effects := e.Apply(s, Action{Type: ActionContinue})

	assert.Equal(t, StatusPlaying, s.Status)
	assert.False(t, s.ShowWalkAway)
	assert.Equal(t, 4, s.CurrentIndex)
	assert.Equal(t, 30, s.TimeRemaining)
	assert.Equal(t, []Effect{StartTimerEffect{}}, effects)
}

func TestFinalAnswerWinsWithoutPrompt(t *testing.T) {
	e := newTestEngine()
	s := answerCorrectly(e, startGame(e), 11)
	q, _ := s.CurrentQuestion()

	s, effects := e.Apply(s, Action{Type: ActionAnswer, Option: q.CorrectAnswer})

	assert.Equal(t, StatusWon, s.Status)
	assert.False(t, s.ShowWalkAway, "final rung never prompts even though it is a milestone")
	assert.Equal(t, int64(1_000_000), s.Score.Value)
	assert.Contains(t, effects, RecordScoreEffect{Score: s.Score})
}

func TestWrongAnswerOnFirstQuestionLosesWithNothing(t *testing.T) {
	e := newTestEngine()
	s := startGame(e)
	q, _ := s.CurrentQuestion()
	wrong := (q.CorrectAnswer + 1) % 4

	s, effects := e.Apply(s, Action{Type: ActionAnswer, Option: wrong})

	assert.Equal(t, StatusLost, s.Status)
	assert.Equal(t, int64(0), s.Score.Value)
	assert.Contains(t, s.Explanation, q.Options[q.CorrectAnswer])
	assert.Contains(t, effects, RecordScoreEffect{Score: ZeroAmount})
}

func TestWrongAnswerFallsBackToLastMilestone(t *testing.T) {
	e := newTestEngine()
	s := answerCorrectly(e, startGame(e), 6)
	q, _ := s.CurrentQuestion()
	wrong := (q.CorrectAnswer + 1) % 4

	s, _ = e.Apply(s, Action{Type: ActionAnswer, Option: wrong})

	assert.Equal(t, StatusLost, s.Status)
	assert.Equal(t, int64(250_000), s.Score.Value)
}

func TestTimeoutEquivalentToWrongAnswer(t *testing.T) {
	e := newTestEngine()
	s := startGame(e)
	q, _ := s.CurrentQuestion()

	s, effects := e.Apply(s, Action{Type: ActionTimeout})

	assert.Equal(t, StatusLost, s.Status)
	assert.Equal(t, int64(0), s.Score.Value)
	assert.Contains(t, s.Explanation, q.Options[q.CorrectAnswer])
	assert.Contains(t, effects, StopTimerEffect{})
}

func TestTickCountsDownToTimeout(t *testing.T) {
	e := newTestEngine()
	s := startGame(e)

	for i := 0; i < 29; i++ {
		s, _ = e.Apply(s, Action{Type: ActionTick})
		assert.Equal(t, StatusPlaying, s.Status)
	}
	assert.Equal(t, 1, s.TimeRemaining)

	s, _ = e.Apply(s, Action{Type: ActionTick})
	assert.Equal(t, StatusLost, s.Status)
	assert.Equal(t, 0, s.TimeRemaining)
}

func TestTickPausedWhileOverlayShowing(t *testing.T) {
	e := newTestEngine()
	s := startGame(e)
	s, _ = e.Apply(s, Action{Type: ActionUseLifeline, Lifeline: LifelineAskAudience})
	assert.NotNil(t, s.Audience)

	remaining := s.TimeRemaining
	s, _ = e.Apply(s, Action{Type: ActionTick})
	assert.Equal(t, remaining, s.TimeRemaining)
}

func TestLifelinesAreSingleUse(t *testing.T) {
	e := newTestEngine()
	s := startGame(e)

	s, _ = e.Apply(s, Action{Type: ActionUseLifeline, Lifeline: LifelineFiftyFifty})
	assert.False(t, s.Lifelines.FiftyFifty)
	assert.Len(t, s.HiddenOptions, 2)

	before := s
	s, effects := e.Apply(s, Action{Type: ActionUseLifeline, Lifeline: LifelineFiftyFifty})
	assert.Equal(t, before, s)
	assert.Empty(t, effects)
}

func TestLifelinesSurviveUnusedAcrossQuestions(t *testing.T) {
	e := newTestEngine()
	s := startGame(e)
	s, _ = e.Apply(s, Action{Type: ActionUseLifeline, Lifeline: LifelineFiftyFifty})

	s = answerCorrectly(e, s, 1)
	assert.False(t, s.Lifelines.FiftyFifty, "consumed lifeline must not reset on advance")
	assert.True(t, s.Lifelines.AskAudience)
	assert.True(t, s.Lifelines.PhoneFriend)
	assert.Empty(t, s.HiddenOptions, "hidden options cleared on advance")
}

func TestOverlaysAreMutuallyExclusive(t *testing.T) {
	e := newTestEngine()
	s := startGame(e)

	s, _ = e.Apply(s, Action{Type: ActionUseLifeline, Lifeline: LifelineAskAudience})
	assert.NotNil(t, s.Audience)

	s, _ = e.Apply(s, Action{Type: ActionUseLifeline, Lifeline: LifelinePhoneFriend})
	assert.NotNil(t, s.Hint)
	assert.Nil(t, s.Audience)
}

func TestHiddenOptionCannotBeAnswered(t *testing.T) {
	e := newTestEngine()
	s := startGame(e)
	s, _ = e.Apply(s, Action{Type: ActionUseLifeline, Lifeline: LifelineFiftyFifty})

	hidden := s.HiddenOptions[0]
	before := s
	s, effects := e.Apply(s, Action{Type: ActionAnswer, Option: hidden})
	assert.Equal(t, before, s)
	assert.Empty(t, effects)
}

func TestFiftyFiftyNeverHidesCorrectOption(t *testing.T) {
	e := newTestEngine()
	for i := 0; i < 100; i++ {
		s := startGame(e)
		q, _ := s.CurrentQuestion()
		s, _ = e.Apply(s, Action{Type: ActionUseLifeline, Lifeline: LifelineFiftyFifty})

		assert.Len(t, s.HiddenOptions, 2)
		assert.NotEqual(t, s.HiddenOptions[0], s.HiddenOptions[1])
		for _, hidden := range s.HiddenOptions {
			assert.NotEqual(t, q.CorrectAnswer, hidden)
		}
	}
}

func TestInvalidTransitionsAreNoOps(t *testing.T) {
	e := newTestEngine()
	waiting := e.NewSession("p1", "alice", "general")

	for _, action := range []Action{
		{Type: ActionAnswer, Option: 0},
		{Type: ActionWalkAway},
		{Type: ActionContinue},
		{Type: ActionTimeout},
		{Type: ActionTick},
		{Type: ActionUseLifeline, Lifeline: LifelineFiftyFifty},
	} {
		got, effects := e.Apply(waiting, action)
		assert.Equal(t, waiting, got, "action %s", action.Type)
		assert.Empty(t, effects, "action %s", action.Type)
	}

	playing := startGame(e)
	got, effects := e.Apply(playing, Action{Type: ActionWalkAway})
	assert.Equal(t, playing, got, "walk away without a prompt")
	assert.Empty(t, effects)

	got, _ = e.Apply(playing, Action{Type: ActionAnswer, Option: 17})
	assert.Equal(t, playing, got, "out of range option")
}

func TestTerminalStatesOnlyAcceptStartAndReset(t *testing.T) {
	e := newTestEngine()
	s := startGame(e)
	s, _ = e.Apply(s, Action{Type: ActionTimeout})
	assert.Equal(t, StatusLost, s.Status)

	got, _ := e.Apply(s, Action{Type: ActionAnswer, Option: 0})
	assert.Equal(t, s, got)

	got, effects := e.Apply(s, Action{Type: ActionReset})
	assert.Equal(t, StatusWaiting, got.Status)
	assert.Equal(t, ZeroAmount, got.Score)
	assert.Empty(t, got.Questions)
	assert.Contains(t, effects, StopTimerEffect{})

	restarted, _ := e.Apply(s, Action{Type: ActionStart, Questions: testQuestions(12)})
	assert.Equal(t, StatusPlaying, restarted.Status)
}

func TestResetMidGameForfeits(t *testing.T) {
	e := newTestEngine()
	s := answerCorrectly(e, startGame(e), 5)

	s, effects := e.Apply(s, Action{Type: ActionReset})

	assert.Equal(t, StatusWaiting, s.Status)
	assert.Equal(t, ZeroAmount, s.Score)
	assert.Equal(t, allLifelines(), s.Lifelines)
	assert.Equal(t, []Effect{StopTimerEffect{}}, effects)
}
