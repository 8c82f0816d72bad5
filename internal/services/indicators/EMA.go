package indicators

import (
	talib "github.com/markcheno/go-talib"
)

// EMAService provides Exponential Moving Average calculations
type EMAService struct{}

// NewEMAService creates a new EMA service instance
func NewEMAService() *EMAService {
	return &EMAService{}
}

// Calculate computes EMA for the entire price series. The result is
// zero-filled before index period-1 while the average warms up.
func (s *EMAService) Calculate(prices []float64, period int) []float64 {
	if !s.validateInputs(prices, period) {
		return nil
	}
	return talib.Ema(prices, period)
}

func (s *EMAService) validateInputs(prices []float64, period int) bool {
	if len(prices) == 0 || period <= 0 || len(prices) < period {
		return false
	}
	return true
}
