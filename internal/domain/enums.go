package domain

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// StrategyTier limits the logic used when hinting.
type StrategyTier int

const (
	StrategyNakedSingle  StrategyTier = iota // cell down to one candidate
	StrategyHiddenSingle                     // digit with one home left in a unit
)
