package models_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"SMCSignalEngine/internal/models"
)

func bar(i int, o, h, l, c, v float64) models.PriceBar {
	t0 := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return models.PriceBar{
		Symbol:    "BTCUSDT",
		TimeFrame: models.BarTimeFrame1h,
		OpenTime:  t0.Add(time.Duration(i) * time.Hour),
		Open:      o, High: h, Low: l, Close: c, Volume: v,
	}
}

func TestValidateSeries_AcceptsOrderedBars(t *testing.T) {
	bars := []models.PriceBar{
		bar(0, 100, 110, 90, 105, 1000),
		bar(1, 105, 112, 95, 108, 1100),
		bar(2, 108, 115, 100, 101, 900),
	}
	if err := models.ValidateSeries(bars); err != nil {
		t.Fatalf("expected valid series, got %v", err)
	}
}

func TestValidateSeries_RejectsUnorderedBars(t *testing.T) {
	bars := []models.PriceBar{
		bar(1, 100, 110, 90, 105, 1000),
		bar(0, 105, 112, 95, 108, 1100),
	}
	err := models.ValidateSeries(bars)
	if !errors.Is(err, models.ErrUnorderedSeries) {
		t.Fatalf("expected ErrUnorderedSeries, got %v", err)
	}
}

func TestValidateSeries_RejectsDuplicateTimestamps(t *testing.T) {
	bars := []models.PriceBar{
		bar(0, 100, 110, 90, 105, 1000),
		bar(0, 105, 112, 95, 108, 1100),
	}
	err := models.ValidateSeries(bars)
	if !errors.Is(err, models.ErrDuplicateTimestamp) {
		t.Fatalf("expected ErrDuplicateTimestamp, got %v", err)
	}
}

func TestValidateSeries_RejectsNonFiniteValues(t *testing.T) {
	for name, mutate := range map[string]func(*models.PriceBar){
		"nan high":  func(b *models.PriceBar) { b.High = math.NaN() },
		"inf close": func(b *models.PriceBar) { b.Close = math.Inf(1) },
		"nan vol":   func(b *models.PriceBar) { b.Volume = math.NaN() },
	} {
		bars := []models.PriceBar{
			bar(0, 100, 110, 90, 105, 1000),
			bar(1, 105, 112, 95, 108, 1100),
		}
		mutate(&bars[1])
		if err := models.ValidateSeries(bars); !errors.Is(err, models.ErrInvalidValue) {
			t.Fatalf("%s: expected ErrInvalidValue, got %v", name, err)
		}
	}
}

func TestSortBars(t *testing.T) {
	bars := []models.PriceBar{
		bar(2, 1, 1, 1, 1, 1),
		bar(0, 2, 2, 2, 2, 2),
		bar(1, 3, 3, 3, 3, 3),
	}
	models.SortBars(bars)
	for i := 1; i < len(bars); i++ {
		if !bars[i-1].OpenTime.Before(bars[i].OpenTime) {
			t.Fatalf("bars not sorted at %d: %v >= %v", i, bars[i-1].OpenTime, bars[i].OpenTime)
		}
	}
	if bars[0].Open != 2 {
		t.Fatalf("expected earliest bar first, got open %.0f", bars[0].Open)
	}
}

func TestSeriesExtractors(t *testing.T) {
	bars := []models.PriceBar{
		bar(0, 1, 2, 0.5, 1.5, 100),
		bar(1, 1.5, 3, 1, 2.5, 200),
	}
	checks := []struct {
		name string
		got  []float64
		want []float64
	}{
		{"opens", models.Opens(bars), []float64{1, 1.5}},
		{"highs", models.Highs(bars), []float64{2, 3}},
		{"lows", models.Lows(bars), []float64{0.5, 1}},
		{"closes", models.Closes(bars), []float64{1.5, 2.5}},
		{"volumes", models.Volumes(bars), []float64{100, 200}},
	}
	for _, c := range checks {
		if len(c.got) != len(c.want) {
			t.Fatalf("%s: length %d, want %d", c.name, len(c.got), len(c.want))
		}
		for i := range c.want {
			if c.got[i] != c.want[i] {
				t.Fatalf("%s[%d] = %v, want %v", c.name, i, c.got[i], c.want[i])
			}
		}
	}
}
