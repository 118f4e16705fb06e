package question

import (
	"github.com/rs/zerolog"
)

// Selector builds per-session question sets from a static pool: a seeded
// shuffle per difficulty tier, a fixed easy-medium-hard progression, and an
// independent option shuffle per selected question.
type Selector struct {
	logger zerolog.Logger
}

func NewSelector(logger zerolog.Logger) *Selector {
	return &Selector{logger: logger.With().Str("component", "question_selector").Logger()}
}

// Select returns rules.QuestionsPerGame questions ordered by increasing
// difficulty, with each question's options permuted and the correct-answer
// index remapped. A missing or malformed pool yields an empty slice; the
// caller is expected to fall back to the fallback-id list directly.
func (s *Selector) Select(seedMaterial string, pool []Question, rules Rules) []GameQuestion {
	if len(pool) == 0 || rules.QuestionsPerGame <= 0 {
		return nil
	}

	r := newRNG(seedMaterial)

	tiers := map[string][]Question{}
	for _, q := range pool {
		tiers[q.Difficulty] = append(tiers[q.Difficulty], q)
	}

	blocks := []struct {
		tier  string
		count int
	}{
		{DifficultyEasy, rules.EasyCount},
		{DifficultyMedium, rules.MediumCount},
		{DifficultyHard, rules.HardCount},
	}

	picked := make([]Question, 0, rules.QuestionsPerGame)
	for i, block := range blocks {
		remaining := rules.QuestionsPerGame - len(picked)
		if remaining <= 0 {
			break
		}

		tier := append([]Question(nil), tiers[block.tier]...)
		// Each tier gets its own derived seed so tier orders are decorrelated.
		tr := r.offset(uint32(i+1) * tierSeedOffset)
		tr.Shuffle(len(tier), func(a, b int) { tier[a], tier[b] = tier[b], tier[a] })

		n := block.count
		if n > remaining {
			n = remaining
		}
		if n > len(tier) {
			n = len(tier)
		}
		picked = append(picked, tier[:n]...)
	}

	if len(picked) < rules.QuestionsPerGame {
		picked = s.padWithFallback(picked, pool, rules)
	}

	out := make([]GameQuestion, 0, len(picked))
	for i, q := range picked {
		gq, ok := shuffleOptions(q, r.offset(uint32(i+1)*questionSeedOffset))
		if !ok {
			s.logger.Warn().
				Int("question_id", q.ID).
				Int("options", len(q.Options)).
				Msg("skipping question with malformed options")
			continue
		}
		out = append(out, gq)
	}
	return out
}

// padWithFallback tops the selection up from the designated fallback ids, in
// fallback order, until the target count is reached or the list is exhausted.
func (s *Selector) padWithFallback(picked []Question, pool []Question, rules Rules) []Question {
	byID := make(map[int]Question, len(pool))
	for _, q := range pool {
		byID[q.ID] = q
	}
	used := make(map[int]bool, len(picked))
	for _, q := range picked {
		used[q.ID] = true
	}

	for _, id := range rules.FallbackIDs {
		if len(picked) >= rules.QuestionsPerGame {
			break
		}
		q, ok := byID[id]
		if !ok || used[id] {
			continue
		}
		picked = append(picked, q)
		used[id] = true
	}

	if len(picked) < rules.QuestionsPerGame {
		s.logger.Warn().
			Int("selected", len(picked)).
			Int("target", rules.QuestionsPerGame).
			Msg("pool and fallback list exhausted before reaching target count")
	}
	return picked
}

// shuffleOptions builds the per-session copy: a Fisher-Yates permutation of
// the four option slots with the correct-answer index following its option.
func shuffleOptions(q Question, r *rng) (GameQuestion, bool) {
	if !q.Valid() {
		return GameQuestion{}, false
	}

	perm := make([]int, OptionCount)
	for i := range perm {
		perm[i] = i
	}
	r.Shuffle(len(perm), func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })

	options := make([]string, OptionCount)
	correct := 0
	for newIdx, oldIdx := range perm {
		options[newIdx] = q.Options[oldIdx]
		if oldIdx == q.CorrectAnswer {
			correct = newIdx
		}
	}

	return GameQuestion{
		ID:            q.ID,
		Prompt:        q.Prompt,
		Options:       options,
		CorrectAnswer: correct,
		Difficulty:    q.Difficulty,
		Explanation:   q.Explanation,
		Hint:          q.Hint,
	}, true
}

// Resolve maps fallback ids to unshuffled session questions. Used when the
// pool itself is unusable and selection returned nothing.
func Resolve(ids []int, pool []Question) []GameQuestion {
	byID := make(map[int]Question, len(pool))
	for _, q := range pool {
		byID[q.ID] = q
	}
	out := make([]GameQuestion, 0, len(ids))
	for _, id := range ids {
		q, ok := byID[id]
		if !ok || !q.Valid() {
			continue
		}
		out = append(out, GameQuestion{
			ID:            q.ID,
			Prompt:        q.Prompt,
			Options:       append([]string(nil), q.Options...),
			CorrectAnswer: q.CorrectAnswer,
			Difficulty:    q.Difficulty,
			Explanation:   q.Explanation,
			Hint:          q.Hint,
		})
	}
	return out
}
