// backtest/types.go

package backtest

import (
	"time"
)

// Core trade record
type Trade struct {
	Symbol     string
	EntryTime  time.Time
	ExitTime   time.Time
	EntryPrice float64
	ExitPrice  float64
	Size       float64
	StopLoss   float64
	TakeProfit float64
	PnL        float64
	Reason     string // "take_profit", "stop_loss", "end_of_data"
}

// For tracking equity changes
type EquityPoint struct {
	Timestamp time.Time
	Balance   float64
}

// Final backtest results
type BacktestResults struct {
	// Trade metrics
	TotalTrades   int
	WinningTrades int
	LosingTrades  int
	WinRate       float64
	AveragePnL    float64

	// Performance metrics
	MaxDrawdown  float64
	FinalBalance float64
	SharpeRatio  float64

	// Detailed records
	Trades      []Trade
	EquityCurve []EquityPoint

	// Reporting extras
	AverageEntryByTimeframe map[string]float64
	AverageVolume           float64
}

// Defaults
const (
	InitialBalance = 10.0 // USDT
	PositionSize   = 1.0
	WarmupBars     = 100
	WindowBars     = 200
	VolumeSMABars  = 20
)

// Simulation config
type Config struct {
	// Initial conditions
	InitialBalance float64
	PositionSize   float64

	// Bars before the first evaluation, and the sliding window handed to
	// the strategy on each bar (0 means the whole history so far).
	WarmupBars int
	WindowBars int

	// Require the structure engine to agree before an entry counts.
	RequireStructure bool
}

// NewConfig creates default config
func NewConfig() Config {
	return Config{
		InitialBalance: InitialBalance,
		PositionSize:   PositionSize,
		WarmupBars:     WarmupBars,
		WindowBars:     WindowBars,
	}
}
