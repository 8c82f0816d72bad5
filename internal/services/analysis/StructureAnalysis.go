package analysis

// StructureAnalyzer classifies closes against recent pivot levels into
// structure breaks. It carries trend state across one pass, so use a fresh
// instance per series scan.
type StructureAnalyzer struct {
	maxRecent int

	trend    TrendState
	lastHigh float64
	lastLow  float64
	hasHigh  bool
	hasLow   bool
}

func NewStructureAnalyzer() *StructureAnalyzer {
	return &StructureAnalyzer{maxRecent: 10}
}

// Detect scans the close series against pivot highs and lows and returns the
// bullish structure breaks in bar order.
//
// Only the ten most recent pivots of each kind count as levels. A close above
// the highest relevant pivot high flips the trend bullish: from neutral that
// is a break of structure, from bearish a change of character, and while
// already bullish nothing further is emitted. A close below the lowest
// relevant pivot low flips the trend bearish without emitting; breakdowns are
// tracked only to arm the change-of-character case.
func (a *StructureAnalyzer) Detect(closes []float64, pivotHighs, pivotLows []Pivot) []StructureSignal {
	if len(pivotHighs) < 2 || len(pivotLows) < 2 {
		return nil
	}
	recentHighs := recentPivots(pivotHighs, a.maxRecent)
	recentLows := recentPivots(pivotLows, a.maxRecent)
	if len(recentHighs)+len(recentLows) < 3 {
		return nil
	}

	var signals []StructureSignal
	hi, li := 0, 0
	for i, c := range closes {
		for hi < len(recentHighs) && recentHighs[hi].Position <= i {
			if !a.hasHigh || recentHighs[hi].Value > a.lastHigh {
				a.lastHigh = recentHighs[hi].Value
				a.hasHigh = true
			}
			hi++
		}
		for li < len(recentLows) && recentLows[li].Position <= i {
			if !a.hasLow || recentLows[li].Value < a.lastLow {
				a.lastLow = recentLows[li].Value
				a.hasLow = true
			}
			li++
		}
		if !a.hasHigh {
			continue
		}
		switch {
		case c > a.lastHigh:
			switch a.trend {
			case TrendBearish:
				signals = append(signals, StructureSignal{Position: i, Kind: ChangeOfCharacter})
			case TrendNeutral:
				signals = append(signals, StructureSignal{Position: i, Kind: BreakOfStructure})
			}
			a.trend = TrendBullish
		case a.hasLow && c < a.lastLow:
			a.trend = TrendBearish
		}
	}
	return signals
}

// Trend reports the state after the last processed bar.
func (a *StructureAnalyzer) Trend() TrendState {
	return a.trend
}

func recentPivots(pivots []Pivot, n int) []Pivot {
	if len(pivots) <= n {
		return pivots
	}
	return pivots[len(pivots)-n:]
}
