package strategy_test

import (
	"testing"
	"time"

	"SMCSignalEngine/internal/services/strategy"
)

func TestSignalHistory_EvictsOldestBeyondLimit(t *testing.T) {
	h := strategy.NewSignalHistory(5)
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		h.Append(strategy.SignalRecord{
			Date:   t0.Add(time.Duration(i) * time.Hour),
			Price:  100 + float64(i),
			Volume: 1000,
		})
	}

	if h.Len() != 5 {
		t.Fatalf("length = %d, want 5", h.Len())
	}
	recent := h.Recent()
	if !recent[0].Date.Equal(t0.Add(time.Hour)) {
		t.Fatalf("oldest record = %+v, want the second appended", recent[0])
	}
	if !recent[4].Date.Equal(t0.Add(5 * time.Hour)) {
		t.Fatalf("newest record = %+v, want the last appended", recent[4])
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Date.Before(recent[i-1].Date) {
			t.Fatalf("records out of order at %d", i)
		}
	}
}

func TestSignalHistory_LimitClampedToOne(t *testing.T) {
	h := strategy.NewSignalHistory(0)
	h.Append(strategy.SignalRecord{Price: 1})
	h.Append(strategy.SignalRecord{Price: 2})

	if h.Len() != 1 {
		t.Fatalf("length = %d, want 1", h.Len())
	}
	if h.Recent()[0].Price != 2 {
		t.Fatalf("kept price = %v, want the newest", h.Recent()[0].Price)
	}
}

func TestSignalHistory_RecentReturnsACopy(t *testing.T) {
	h := strategy.NewSignalHistory(5)
	h.Append(strategy.SignalRecord{Price: 100})

	recent := h.Recent()
	recent[0].Price = 999
	if h.Recent()[0].Price != 100 {
		t.Fatal("mutating the returned slice leaked into the history")
	}
}

func TestEvaluate_HistoryKeepsLastFiveSignals(t *testing.T) {
	s := strategy.NewDiscountStrategy(strategy.DefaultConfig())
	highs, lows, opens, closes := engulfingFixture()
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 6; i++ {
		result, err := s.Evaluate(highs, lows, opens, closes, 150000, t0.Add(time.Duration(i)*time.Hour))
		if err != nil {
			t.Fatalf("evaluate %d: %v", i, err)
		}
		if !result.Signal {
			t.Fatalf("evaluate %d: expected a signal", i)
		}
	}

	recent := s.History().Recent()
	if len(recent) != 5 {
		t.Fatalf("history length = %d, want 5", len(recent))
	}
	if !recent[0].Date.Equal(t0.Add(time.Hour)) {
		t.Fatalf("oldest signal = %+v, want the second evaluation", recent[0])
	}
}
