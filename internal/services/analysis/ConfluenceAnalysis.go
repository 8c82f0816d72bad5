package analysis

import "math"

// ConfluenceAnalyzer thins structure signals down to bars whose candle
// shape agrees with a bullish read.
type ConfluenceAnalyzer struct{}

func NewConfluenceAnalyzer() *ConfluenceAnalyzer {
	return &ConfluenceAnalyzer{}
}

// Filter keeps only signals on bars whose upper wick is strictly longer than
// the lower wick. Signals are never added, and a signal on bar 0 is always
// dropped.
func (a *ConfluenceAnalyzer) Filter(signals []StructureSignal, opens, highs, lows, closes []float64) []StructureSignal {
	var kept []StructureSignal
	for _, s := range signals {
		if s.Position < 1 || s.Position >= len(closes) {
			continue
		}
		upper := highs[s.Position] - math.Max(closes[s.Position], opens[s.Position])
		lower := math.Min(closes[s.Position], opens[s.Position]) - lows[s.Position]
		if upper > lower {
			kept = append(kept, s)
		}
	}
	return kept
}
