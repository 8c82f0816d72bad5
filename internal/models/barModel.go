package models

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

// Validation failures for bar series input.
var (
	ErrUnorderedSeries    = errors.New("bar series is not in ascending time order")
	ErrDuplicateTimestamp = errors.New("bar series contains duplicate timestamps")
	ErrInvalidValue       = errors.New("value is not a finite number")
)

type PriceBar struct {
	Symbol     string
	TimeFrame  string
	OpenTime   time.Time
	CloseTime  time.Time
	Open       float64
	Close      float64
	High       float64
	Low        float64
	Volume     float64
	TradeCount int64
}

const (
	BarTimeFrame5m  = "5m"
	BarTimeFrame15m = "15m"
	BarTimeFrame1h  = "1h"
	BarTimeFrame4h  = "4h"
)

// SortBars orders bars by open time, oldest first.
func SortBars(bars []PriceBar) {
	sort.Slice(bars, func(i, j int) bool {
		return bars[i].OpenTime.Before(bars[j].OpenTime)
	})
}

// ValidateSeries checks that a bar series is usable for analysis:
// open times strictly ascending and every OHLCV value finite.
func ValidateSeries(bars []PriceBar) error {
	for i, bar := range bars {
		for _, v := range []float64{bar.Open, bar.High, bar.Low, bar.Close, bar.Volume} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("bar %d (%s): %w", i, bar.OpenTime.Format(time.RFC3339), ErrInvalidValue)
			}
		}
		if i == 0 {
			continue
		}
		if bar.OpenTime.Equal(bars[i-1].OpenTime) {
			return fmt.Errorf("bar %d (%s): %w", i, bar.OpenTime.Format(time.RFC3339), ErrDuplicateTimestamp)
		}
		if bar.OpenTime.Before(bars[i-1].OpenTime) {
			return fmt.Errorf("bar %d (%s): %w", i, bar.OpenTime.Format(time.RFC3339), ErrUnorderedSeries)
		}
	}
	return nil
}

// Series extractors for indicator and analyzer inputs.

func Opens(bars []PriceBar) []float64 {
	out := make([]float64, len(bars))
	for i, bar := range bars {
		out[i] = bar.Open
	}
	return out
}

func Highs(bars []PriceBar) []float64 {
	out := make([]float64, len(bars))
	for i, bar := range bars {
		out[i] = bar.High
	}
	return out
}

func Lows(bars []PriceBar) []float64 {
	out := make([]float64, len(bars))
	for i, bar := range bars {
		out[i] = bar.Low
	}
	return out
}

func Closes(bars []PriceBar) []float64 {
	out := make([]float64, len(bars))
	for i, bar := range bars {
		out[i] = bar.Close
	}
	return out
}

func Volumes(bars []PriceBar) []float64 {
	out := make([]float64, len(bars))
	for i, bar := range bars {
		out[i] = bar.Volume
	}
	return out
}
