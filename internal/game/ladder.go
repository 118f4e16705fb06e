package game

// Rung is one step of the money ladder. Milestone rungs offer a walk-away
// decision once the question sitting on them is answered correctly.
type Rung struct {
	Level     int    `json:"level"`
	Amount    Amount `json:"amount"`
	Milestone bool   `json:"milestone"`
}

// DefaultLadder mirrors the 12-question show format with milestones at
// questions 4, 8 and 12.
func DefaultLadder() []Rung {
	return []Rung{
		{Level: 1, Amount: Amount{Display: "$100K", Value: 100_000}},
		{Level: 2, Amount: Amount{Display: "$150K", Value: 150_000}},
		{Level: 3, Amount: Amount{Display: "$200K", Value: 200_000}},
		{Level: 4, Amount: Amount{Display: "$250K", Value: 250_000}, Milestone: true},
		{Level: 5, Amount: Amount{Display: "$300K", Value: 300_000}},
		{Level: 6, Amount: Amount{Display: "$400K", Value: 400_000}},
		{Level: 7, Amount: Amount{Display: "$500K", Value: 500_000}},
		{Level: 8, Amount: Amount{Display: "$600K", Value: 600_000}, Milestone: true},
		{Level: 9, Amount: Amount{Display: "$700K", Value: 700_000}},
		{Level: 10, Amount: Amount{Display: "$800K", Value: 800_000}},
		{Level: 11, Amount: Amount{Display: "$850K", Value: 850_000}},
		{Level: 12, Amount: Amount{Display: "$1M", Value: 1_000_000}, Milestone: true},
	}
}
