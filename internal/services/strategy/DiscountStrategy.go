package strategy

import (
	"fmt"
	"math"
	"time"

	"SMCSignalEngine/internal/models"
)

// DiscountStrategy looks for bullish engulfing entries in the lower half of
// the recent range, gated on traded volume. An instance keeps its own signal
// history and is not safe for concurrent evaluation.
type DiscountStrategy struct {
	// Core settings
	lookback  int     // bars of range context
	minVolume float64 // strict volume gate
	tpPercent float64
	slPercent float64

	history *SignalHistory
}

func NewDiscountStrategy(cfg Config) *DiscountStrategy {
	return &DiscountStrategy{
		lookback:  cfg.Lookback,
		minVolume: cfg.MinVolume,
		tpPercent: cfg.TakeProfitPercent,
		slPercent: cfg.StopLossPercent,
		history:   NewSignalHistory(cfg.HistoryLimit),
	}
}

// Evaluate runs the full entry check on the series and, when everything
// lines up, returns the trade levels and records the signal. Fewer than two
// bars yield a no-signal result; mismatched series lengths or non-finite
// values yield a typed error.
func (s *DiscountStrategy) Evaluate(highs, lows, opens, closes []float64, volume float64, at time.Time) (*StrategyResult, error) {
	if len(highs) != len(closes) || len(lows) != len(closes) || len(opens) != len(closes) {
		return nil, fmt.Errorf("highs %d, lows %d, opens %d, closes %d: %w",
			len(highs), len(lows), len(opens), len(closes), ErrLengthMismatch)
	}
	for _, in := range []struct {
		name   string
		series []float64
	}{{"highs", highs}, {"lows", lows}, {"opens", opens}, {"closes", closes}} {
		if err := validateValues(in.series); err != nil {
			return nil, fmt.Errorf("%s: %w", in.name, err)
		}
	}
	if math.IsNaN(volume) || math.IsInf(volume, 0) {
		return nil, fmt.Errorf("volume: %w", models.ErrInvalidValue)
	}

	price := 0.0
	if len(closes) > 0 {
		price = closes[len(closes)-1]
	}
	if len(closes) < 2 {
		return newNoSignalResult("insufficient bars", price), nil
	}

	highest := s.HighestHigh(highs)
	lowest := s.LowestLow(lows)
	if !s.InDiscountZone(price, highest, lowest) {
		return newNoSignalResult("not in discount zone", price), nil
	}
	if !s.IsBullishEngulfing(opens, closes) {
		return newNoSignalResult("no bullish engulfing", price), nil
	}
	if !s.HasSufficientVolume(volume) {
		return newNoSignalResult("volume below minimum", price), nil
	}

	takeProfit, stopLoss := s.TakeProfitStopLoss(price)
	s.history.Append(SignalRecord{Date: at, Price: price, Volume: volume})

	return &StrategyResult{
		Signal:     true,
		Price:      price,
		StopLoss:   stopLoss,
		TakeProfit: takeProfit,
		Volume:     volume,
	}, nil
}

// HighestHigh returns the highest high of the trailing lookback window. A
// shorter series is used whole; an empty one reads as 0.
func (s *DiscountStrategy) HighestHigh(highs []float64) float64 {
	window := s.rangeWindow(highs)
	if len(window) == 0 {
		return 0
	}
	highest := window[0]
	for _, v := range window[1:] {
		if v > highest {
			highest = v
		}
	}
	return highest
}

// LowestLow returns the lowest low of the trailing lookback window, with the
// same degradation as HighestHigh.
func (s *DiscountStrategy) LowestLow(lows []float64) float64 {
	window := s.rangeWindow(lows)
	if len(window) == 0 {
		return 0
	}
	lowest := window[0]
	for _, v := range window[1:] {
		if v < lowest {
			lowest = v
		}
	}
	return lowest
}

// InDiscountZone reports whether the close sits strictly below the midline
// of the given range. A close exactly on the midline is not a discount.
func (s *DiscountStrategy) InDiscountZone(close, highest, lowest float64) bool {
	midline := (highest + lowest) / 2
	return close < midline
}

// IsBullishEngulfing reports whether the last two bars form a strict bullish
// engulfing: a bearish bar followed by a bullish bar whose body contains the
// previous body on both ends.
func (s *DiscountStrategy) IsBullishEngulfing(opens, closes []float64) bool {
	if len(opens) < 2 || len(closes) < 2 {
		return false
	}
	prevOpen, prevClose := opens[len(opens)-2], closes[len(closes)-2]
	currOpen, currClose := opens[len(opens)-1], closes[len(closes)-1]

	prevBearish := prevClose < prevOpen
	currBullish := currClose > currOpen
	engulfs := currOpen < prevClose && currClose > prevOpen
	return prevBearish && currBullish && engulfs
}

// HasSufficientVolume applies the strict volume gate.
func (s *DiscountStrategy) HasSufficientVolume(volume float64) bool {
	return volume > s.minVolume
}

// TakeProfitStopLoss derives exit levels from an entry price.
func (s *DiscountStrategy) TakeProfitStopLoss(price float64) (takeProfit, stopLoss float64) {
	takeProfit = price * (1 + s.tpPercent/100)
	stopLoss = price * (1 - s.slPercent/100)
	return takeProfit, stopLoss
}

// History exposes the recorded signals, oldest first.
func (s *DiscountStrategy) History() *SignalHistory {
	return s.history
}

func (s *DiscountStrategy) rangeWindow(values []float64) []float64 {
	if len(values) >= s.lookback {
		return values[len(values)-s.lookback:]
	}
	return values
}

func validateValues(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("value at %d: %w", i, models.ErrInvalidValue)
		}
	}
	return nil
}
