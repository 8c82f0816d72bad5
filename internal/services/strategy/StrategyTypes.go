package strategy

import "errors"

// ErrLengthMismatch flags input series of unequal length.
var ErrLengthMismatch = errors.New("input series lengths do not match")

// StrategyResult represents the output of a strategy evaluation
type StrategyResult struct {
	// Core fields
	Signal bool
	Reason string // if no signal, explains why

	// Price levels
	Price      float64
	StopLoss   float64
	TakeProfit float64

	// Context
	Volume float64
}

// Config holds the strategy thresholds.
type Config struct {
	Lookback          int
	MinVolume         float64
	TakeProfitPercent float64
	StopLossPercent   float64
	HistoryLimit      int
}

// DefaultConfig returns the thresholds the strategy was tuned with.
func DefaultConfig() Config {
	return Config{
		Lookback:          30,
		MinVolume:         100000,
		TakeProfitPercent: 5,
		StopLossPercent:   2,
		HistoryLimit:      5,
	}
}

// Helper function for no-signal results
func newNoSignalResult(reason string, price float64) *StrategyResult {
	return &StrategyResult{
		Signal: false,
		Reason: reason,
		Price:  price,
	}
}
