package strategy_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"SMCSignalEngine/internal/models"
	"SMCSignalEngine/internal/services/strategy"
)

// engulfingFixture is a three bar discount setup: wide range, a bearish bar,
// then a bullish bar engulfing it at 105 while the midline sits at 110.
func engulfingFixture() (highs, lows, opens, closes []float64) {
	highs = []float64{110, 130, 106}
	lows = []float64{90, 95, 98}
	opens = []float64{105, 104, 99}
	closes = []float64{106, 100, 105}
	return highs, lows, opens, closes
}

func TestEvaluate_BuySignalWithLevels(t *testing.T) {
	s := strategy.NewDiscountStrategy(strategy.DefaultConfig())
	highs, lows, opens, closes := engulfingFixture()
	at := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

	result, err := s.Evaluate(highs, lows, opens, closes, 150000, at)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Signal {
		t.Fatalf("expected a buy signal, got %+v", result)
	}
	if result.Reason != "" {
		t.Fatalf("signal should carry no reason, got %q", result.Reason)
	}
	if result.Price != 105 {
		t.Fatalf("price = %v, want 105", result.Price)
	}
	if math.Abs(result.TakeProfit-110.25) > 1e-9 {
		t.Fatalf("take profit = %v, want 110.25", result.TakeProfit)
	}
	if math.Abs(result.StopLoss-102.9) > 1e-9 {
		t.Fatalf("stop loss = %v, want 102.9", result.StopLoss)
	}
	if result.Volume != 150000 {
		t.Fatalf("volume = %v, want 150000", result.Volume)
	}

	recent := s.History().Recent()
	if len(recent) != 1 {
		t.Fatalf("history length = %d, want 1", len(recent))
	}
	if !recent[0].Date.Equal(at) || recent[0].Price != 105 || recent[0].Volume != 150000 {
		t.Fatalf("recorded signal = %+v", recent[0])
	}
}

func TestEvaluate_VolumeGate(t *testing.T) {
	s := strategy.NewDiscountStrategy(strategy.DefaultConfig())
	highs, lows, opens, closes := engulfingFixture()

	result, err := s.Evaluate(highs, lows, opens, closes, 50000, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Signal {
		t.Fatal("thin volume must not signal")
	}
	if result.Reason != "volume below minimum" {
		t.Fatalf("reason = %q", result.Reason)
	}
	if s.History().Len() != 0 {
		t.Fatal("rejected setups must not be recorded")
	}

	// The gate is strict, so the threshold itself fails too.
	result, err = s.Evaluate(highs, lows, opens, closes, 100000, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Signal {
		t.Fatal("volume exactly at the minimum must not signal")
	}
}

func TestEvaluate_MidlineIsNotADiscount(t *testing.T) {
	s := strategy.NewDiscountStrategy(strategy.DefaultConfig())
	highs := []float64{104, 104, 104}
	lows := []float64{96, 96, 96}
	opens := []float64{100, 99, 99}
	closes := []float64{99, 98, 100} // close sits exactly on the 100 midline

	result, err := s.Evaluate(highs, lows, opens, closes, 150000, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Signal || result.Reason != "not in discount zone" {
		t.Fatalf("result = %+v, want discount rejection", result)
	}
}

func TestEvaluate_InsufficientBars(t *testing.T) {
	s := strategy.NewDiscountStrategy(strategy.DefaultConfig())

	result, err := s.Evaluate([]float64{106}, []float64{98}, []float64{99}, []float64{105}, 150000, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Signal || result.Reason != "insufficient bars" {
		t.Fatalf("result = %+v, want insufficient bars", result)
	}
	if result.Price != 105 {
		t.Fatalf("price = %v, want the lone close", result.Price)
	}

	result, err = s.Evaluate(nil, nil, nil, nil, 150000, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Signal || result.Price != 0 {
		t.Fatalf("result = %+v, want no signal at price 0", result)
	}
}

func TestEvaluate_InputErrors(t *testing.T) {
	s := strategy.NewDiscountStrategy(strategy.DefaultConfig())
	highs, lows, opens, closes := engulfingFixture()

	if _, err := s.Evaluate(highs[:2], lows, opens, closes, 150000, time.Now()); !errors.Is(err, strategy.ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}

	badCloses := append([]float64(nil), closes...)
	badCloses[1] = math.NaN()
	if _, err := s.Evaluate(highs, lows, opens, badCloses, 150000, time.Now()); !errors.Is(err, models.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for NaN close, got %v", err)
	}

	if _, err := s.Evaluate(highs, lows, opens, closes, math.Inf(1), time.Now()); !errors.Is(err, models.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue for infinite volume, got %v", err)
	}
}

func TestIsBullishEngulfing_StrictBoundaries(t *testing.T) {
	s := strategy.NewDiscountStrategy(strategy.DefaultConfig())
	cases := []struct {
		name   string
		opens  []float64
		closes []float64
		want   bool
	}{
		{"textbook engulfing", []float64{104, 99}, []float64{100, 105}, true},
		{"open equals previous close", []float64{104, 100}, []float64{100, 105}, false},
		{"close equals previous open", []float64{104, 99}, []float64{100, 104}, false},
		{"previous bar bullish", []float64{100, 99}, []float64{104, 105}, false},
		{"current bar flat", []float64{104, 99}, []float64{100, 99}, false},
		{"single bar", []float64{99}, []float64{105}, false},
	}
	for _, c := range cases {
		if got := s.IsBullishEngulfing(c.opens, c.closes); got != c.want {
			t.Fatalf("%s: got %v, want %v", c.name, got, c.want)
		}
	}
}

func TestRangeScan_TrailingWindowOnly(t *testing.T) {
	s := strategy.NewDiscountStrategy(strategy.DefaultConfig())

	highs := make([]float64, 40)
	lows := make([]float64, 40)
	for i := range highs {
		highs[i] = 100
		lows[i] = 100
	}
	highs[5] = 500 // outside the trailing 30 bars
	highs[35] = 200
	lows[5] = 1
	lows[38] = 50

	if got := s.HighestHigh(highs); got != 200 {
		t.Fatalf("HighestHigh = %v, want 200 from the trailing window", got)
	}
	if got := s.LowestLow(lows); got != 50 {
		t.Fatalf("LowestLow = %v, want 50 from the trailing window", got)
	}

	short := []float64{7, 3, 9}
	if got := s.HighestHigh(short); got != 9 {
		t.Fatalf("HighestHigh on short series = %v, want 9", got)
	}
	if got := s.LowestLow(short); got != 3 {
		t.Fatalf("LowestLow on short series = %v, want 3", got)
	}
	if got := s.HighestHigh(nil); got != 0 {
		t.Fatalf("HighestHigh on empty series = %v, want 0", got)
	}
}

func TestTakeProfitStopLoss(t *testing.T) {
	s := strategy.NewDiscountStrategy(strategy.DefaultConfig())
	tp, sl := s.TakeProfitStopLoss(200)
	if math.Abs(tp-210) > 1e-9 {
		t.Fatalf("take profit = %v, want 210", tp)
	}
	if math.Abs(sl-196) > 1e-9 {
		t.Fatalf("stop loss = %v, want 196", sl)
	}
}

func TestInDiscountZone_DegenerateRange(t *testing.T) {
	s := strategy.NewDiscountStrategy(strategy.DefaultConfig())
	if s.InDiscountZone(100, 100, 100) {
		t.Fatal("a flat range has no discount half")
	}
	if !s.InDiscountZone(99, 110, 90) {
		t.Fatal("a close below the midline is a discount")
	}
}
