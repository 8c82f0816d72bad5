package indicators

import (
	talib "github.com/markcheno/go-talib"
)

// ATRService provides Average True Range calculations
type ATRService struct{}

// NewATRService creates a new ATR service instance
func NewATRService() *ATRService {
	return &ATRService{}
}

// Calculate computes the Wilder-smoothed ATR over the series. The result is
// zero-filled before index period while the range estimate warms up.
func (s *ATRService) Calculate(highs, lows, closes []float64, period int) []float64 {
	if !s.validateInputs(highs, lows, closes, period) {
		return nil
	}
	return talib.Atr(highs, lows, closes, period)
}

// SeriesMean averages the ATR values past the zero-filled warmup region.
func (s *ATRService) SeriesMean(atr []float64, period int) float64 {
	if period < 0 || len(atr) <= period {
		return 0
	}
	sum := 0.0
	for _, v := range atr[period:] {
		sum += v
	}
	return sum / float64(len(atr)-period)
}

func (s *ATRService) validateInputs(highs, lows, closes []float64, period int) bool {
	if period <= 0 || len(closes) <= period {
		return false
	}
	if len(highs) != len(closes) || len(lows) != len(closes) {
		return false
	}
	return true
}
