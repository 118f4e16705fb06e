package game

import (
	"fmt"
	"hash/fnv"
	"math/rand"

	"redditionaire/internal/question"
)

// pickTwoWrong returns two of the three incorrect option indices, chosen at
// random, for the fifty-fifty lifeline.
func pickTwoWrong(q question.GameQuestion) []int {
	wrong := make([]int, 0, question.OptionCount-1)
	for i := range q.Options {
		if i != q.CorrectAnswer {
			wrong = append(wrong, i)
		}
	}
	rand.Shuffle(len(wrong), func(a, b int) { wrong[a], wrong[b] = wrong[b], wrong[a] })
	return wrong[:2]
}

// Per-difficulty bands for the correct option's audience share. Harder
// questions get a less confident crowd.
var audienceBands = map[string][2]int{
	question.DifficultyEasy:   {55, 80},
	question.DifficultyMedium: {40, 65},
	question.DifficultyHard:   {25, 50},
}

// askAudience derives the vote split from the player and question alone, so
// asking again about the same question gives the same numbers.
func askAudience(playerID string, q question.GameQuestion) AudienceResults {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s:%d", playerID, q.ID)
	r := rand.New(rand.NewSource(int64(h.Sum32())))

	band, ok := audienceBands[q.Difficulty]
	if !ok {
		band = audienceBands[question.DifficultyMedium]
	}
	correct := band[0] + r.Intn(band[1]-band[0]+1)

	// Split the remainder over the three wrong options, then give the
	// correct slot whatever rounding left over so the total is exactly 100.
	weights := make([]int, 0, question.OptionCount-1)
	total := 0
	for i := 0; i < question.OptionCount-1; i++ {
		w := 1 + r.Intn(100)
		weights = append(weights, w)
		total += w
	}

	var results AudienceResults
	remainder := 100 - correct
	assigned := 0
	wi := 0
	for i := 0; i < question.OptionCount; i++ {
		if i == q.CorrectAnswer {
			continue
		}
		share := remainder * weights[wi] / total
		results.Percentages[i] = share
		assigned += share
		wi++
	}
	results.Percentages[q.CorrectAnswer] = 100 - assigned
	return results
}

// friendRoster is the fixed set of phone-a-friend personas.
var friendRoster = []FriendHint{
	{Friend: "Uncle Ravi", Line: "Hmm, let me think... I read about this one recently."},
	{Friend: "Professor Chen", Line: "Ah, an interesting question. If I recall my lectures correctly..."},
	{Friend: "Your roommate Sam", Line: "Oh! Oh! We literally watched a documentary about this."},
	{Friend: "Grandma Rose", Line: "Back in my day everyone knew this, dear."},
	{Friend: "Dev from the pub quiz team", Line: "We lost a final on this exact question once."},
}

// phoneFriend picks a random persona and attaches the question's hint when
// one exists.
func phoneFriend(q question.GameQuestion) FriendHint {
	hint := friendRoster[rand.Intn(len(friendRoster))]
	if q.Hint != "" {
		hint.Hint = q.Hint
	} else {
		hint.Hint = "Honestly, I'm not sure on this one. Trust your gut."
	}
	return hint
}
