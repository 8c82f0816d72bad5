package analysis

import (
	"SMCSignalEngine/internal/services/indicators"
)

// TrendAnalyzer gates entries on the fast EMA sitting above the slow EMA.
type TrendAnalyzer struct {
	fastPeriod int
	slowPeriod int
	ema        *indicators.EMAService
}

func NewTrendAnalyzer(fastPeriod, slowPeriod int) *TrendAnalyzer {
	return &TrendAnalyzer{
		fastPeriod: fastPeriod,
		slowPeriod: slowPeriod,
		ema:        indicators.NewEMAService(),
	}
}

// Permissive reports, per bar, whether the fast EMA is strictly above the
// slow EMA. Both averages read as zero while warming up, and a series too
// short for the slow average is never permissive.
func (a *TrendAnalyzer) Permissive(closes []float64) []bool {
	flags := make([]bool, len(closes))
	fast := a.ema.Calculate(closes, a.fastPeriod)
	slow := a.ema.Calculate(closes, a.slowPeriod)
	if fast == nil || slow == nil {
		return flags
	}
	for i := range flags {
		flags[i] = fast[i] > slow[i]
	}
	return flags
}
