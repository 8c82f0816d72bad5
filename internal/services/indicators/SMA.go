package indicators

import (
	talib "github.com/markcheno/go-talib"
)

// SMAService provides Simple Moving Average calculations
type SMAService struct{}

// NewSMAService creates a new SMA service instance
func NewSMAService() *SMAService {
	return &SMAService{}
}

// Calculate computes SMA for the series, zero-filled before index period-1.
func (s *SMAService) Calculate(values []float64, period int) []float64 {
	if len(values) == 0 || period <= 0 || len(values) < period {
		return nil
	}
	return talib.Sma(values, period)
}
