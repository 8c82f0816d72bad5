package analysis

// PivotAnalyzer finds local extremes over centered windows.
//
// A position qualifies when its value matches the extreme of the window
// reaching half the length to each side, so a pivot is only confirmed once
// the right half of its window has printed. Ties mark every qualifying
// position.
type PivotAnalyzer struct{}

func NewPivotAnalyzer() *PivotAnalyzer {
	return &PivotAnalyzer{}
}

// FindHighs returns the pivot highs of the series, in position order.
func (a *PivotAnalyzer) FindHighs(series []float64, length int) []Pivot {
	return a.find(series, length, PivotHigh)
}

// FindLows returns the pivot lows of the series, in position order.
func (a *PivotAnalyzer) FindLows(series []float64, length int) []Pivot {
	return a.find(series, length, PivotLow)
}

func (a *PivotAnalyzer) find(series []float64, length int, kind PivotKind) []Pivot {
	window := length / 2
	if window < 1 || len(series) < 2*window+1 {
		return nil
	}
	var pivots []Pivot
	for i := window; i < len(series)-window; i++ {
		if a.isExtreme(series, i, window, kind) {
			pivots = append(pivots, Pivot{Position: i, Value: series[i], Kind: kind})
		}
	}
	return pivots
}

func (a *PivotAnalyzer) isExtreme(series []float64, i, window int, kind PivotKind) bool {
	for j := i - window; j <= i+window; j++ {
		if kind == PivotHigh && series[j] > series[i] {
			return false
		}
		if kind == PivotLow && series[j] < series[i] {
			return false
		}
	}
	return true
}
