package analysis

// OrderBlockAnalyzer flags bars that reclaim the most recent pivot low: the
// prior bar's low must have reached the level and the current close must be
// back above it.
type OrderBlockAnalyzer struct {
	startIndex int
}

func NewOrderBlockAnalyzer() *OrderBlockAnalyzer {
	return &OrderBlockAnalyzer{startIndex: 50}
}

// Detect returns per-bar flags. Scanning starts at bar 50; earlier bars are
// never flagged. The level in play is the value of the latest pivot low at
// or before the bar, drawn from the full pivot list.
func (a *OrderBlockAnalyzer) Detect(closes, lows []float64, pivotLows []Pivot) []bool {
	flags := make([]bool, len(closes))
	if len(lows) != len(closes) {
		return flags
	}
	next := 0
	lastLow := 0.0
	hasLow := false
	for i := range closes {
		for next < len(pivotLows) && pivotLows[next].Position <= i {
			lastLow = pivotLows[next].Value
			hasLow = true
			next++
		}
		if i < a.startIndex || !hasLow {
			continue
		}
		if closes[i] > lastLow && lows[i-1] <= lastLow {
			flags[i] = true
		}
	}
	return flags
}
