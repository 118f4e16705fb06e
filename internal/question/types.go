package question

// Difficulty constants for readability.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// OptionCount is fixed by the game format: every question carries exactly
// four options.
const OptionCount = 4

// Question is an immutable source record from the pool.
type Question struct {
	ID            int      `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"explanation,omitempty"`
	Hint          string   `json:"hint,omitempty"`
}

// Valid reports whether the record satisfies the pool invariants.
func (q Question) Valid() bool {
	return len(q.Options) == OptionCount &&
		q.CorrectAnswer >= 0 && q.CorrectAnswer < OptionCount
}

// GameQuestion is a per-session derived copy of a Question with options
// permuted and CorrectAnswer remapped to the new position of the original
// correct option. Never mutated after creation.
type GameQuestion struct {
	ID            int      `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"-"` // server-side only
	Difficulty    string   `json:"difficulty"`
	Explanation   string   `json:"-"`
	Hint          string   `json:"-"`
}

// Rules guides selection for a new session.
type Rules struct {
	QuestionsPerGame int
	EasyCount        int
	MediumCount      int
	HardCount        int
	FallbackIDs      []int
}
