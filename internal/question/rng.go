package question

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Linear congruential generator constants (Numerical Recipes).
const (
	lcgMultiplier uint32 = 1664525
	lcgIncrement  uint32 = 1013904223
)

// Seed offsets used to decorrelate the derived shuffles from each other and
// from the whole-pool walk.
const (
	tierSeedOffset     uint32 = 0x9e3779b9
	questionSeedOffset uint32 = 104729
)

// rng is a small LCG seeded from a string hash. It backs every shuffle in the
// selector so a session's question order is a pure function of its seed
// material.
type rng struct {
	state uint32
}

func newRNG(seed string) *rng {
	return &rng{state: hashSeed(seed)}
}

// hashSeed folds the seed material into a 32-bit state.
func hashSeed(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h
}

// offset derives a decorrelated generator for tier and per-question shuffles.
func (r *rng) offset(delta uint32) *rng {
	return &rng{state: r.state + delta}
}

func (r *rng) next() uint32 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return r.state
}

// Intn returns a draw in [0, n). The low bits of an LCG cycle with a short
// period, so the draw comes from the high half of the state.
func (r *rng) Intn(n int) int {
	return int((r.next() >> 16) % uint32(n))
}

// Shuffle permutes n elements with an unbiased Fisher-Yates walk. A
// sort-with-random-comparator does not produce a uniform permutation and must
// not be substituted here.
func (r *rng) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i >= 1; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// NewSeedMaterial builds fresh seed material for a session: wall clock, a
// random draw and the community id. Two sessions never share a seed, unlike a
// date-only seed which would hand every player the same questions for a day.
func NewSeedMaterial(communityID string) string {
	return fmt.Sprintf("%d:%s:%s", time.Now().UnixNano(), uuid.NewString(), communityID)
}
