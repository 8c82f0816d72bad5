package analysis

import "math"

// LiquidityAnalyzer finds clusters of near-equal pivot levels, the classic
// resting-liquidity read. The tolerance scales with average true range.
type LiquidityAnalyzer struct {
	multiplier float64
	maxLevels  int
}

func NewLiquidityAnalyzer(multiplier float64) *LiquidityAnalyzer {
	return &LiquidityAnalyzer{multiplier: multiplier, maxLevels: 5}
}

// Detect compares the last five pivots of each kind pairwise and flags the
// later bar of every pair sitting closer together than multiplier times the
// mean ATR. Equal lows feed the buy-side signal; equal highs are returned
// for callers that want the sell-side map, and the entry path ignores them.
func (a *LiquidityAnalyzer) Detect(pivotHighs, pivotLows []Pivot, atrMean float64, bars int) (equalLows, equalHighs []bool) {
	equalLows = make([]bool, bars)
	equalHighs = make([]bool, bars)
	threshold := a.multiplier * atrMean
	a.mark(recentPivots(pivotLows, a.maxLevels), threshold, equalLows)
	a.mark(recentPivots(pivotHighs, a.maxLevels), threshold, equalHighs)
	return equalLows, equalHighs
}

func (a *LiquidityAnalyzer) mark(pivots []Pivot, threshold float64, flags []bool) {
	for i := 0; i < len(pivots); i++ {
		for j := i + 1; j < len(pivots); j++ {
			if math.Abs(pivots[i].Value-pivots[j].Value) < threshold {
				if p := pivots[j].Position; p >= 0 && p < len(flags) {
					flags[p] = true
				}
			}
		}
	}
}
