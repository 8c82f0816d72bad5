package price

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"SMCSignalEngine/internal/models"
)

// LoadBarsCSV reads OHLCV bars for one symbol from a headered CSV file with
// columns open_time,open,high,low,close,volume (extra columns are ignored,
// "timestamp" is accepted for open_time). Open times are unix seconds or
// milliseconds. Bars come back sorted oldest first.
func LoadBarsCSV(path, symbol, timeframe string) ([]models.PriceBar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bars file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var bars []models.PriceBar
	for row := 2; ; row++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		bar, err := parseBar(rec, cols, symbol, timeframe)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		bars = append(bars, bar)
	}

	models.SortBars(bars)
	return bars, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(strings.TrimSpace(name), "﻿")
		idx[strings.ToLower(name)] = i
	}
	if _, ok := idx["open_time"]; !ok {
		if t, ok := idx["timestamp"]; ok {
			idx["open_time"] = t
		}
	}
	for _, required := range []string{"open_time", "open", "high", "low", "close", "volume"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("bars file missing %q column", required)
		}
	}
	return idx, nil
}

func parseBar(rec []string, cols map[string]int, symbol, timeframe string) (models.PriceBar, error) {
	values := make(map[string]string, len(cols))
	for name, i := range cols {
		if i >= len(rec) {
			return models.PriceBar{}, fmt.Errorf("missing %q field", name)
		}
		values[name] = strings.TrimSpace(rec[i])
	}

	ts, err := strconv.ParseInt(values["open_time"], 10, 64)
	if err != nil {
		return models.PriceBar{}, fmt.Errorf("open_time %q: %w", values["open_time"], err)
	}

	bar := models.PriceBar{
		Symbol:    symbol,
		TimeFrame: timeframe,
		OpenTime:  timeFromUnix(ts),
	}
	if bar.Open, err = parseField(values, "open"); err != nil {
		return models.PriceBar{}, err
	}
	if bar.High, err = parseField(values, "high"); err != nil {
		return models.PriceBar{}, err
	}
	if bar.Low, err = parseField(values, "low"); err != nil {
		return models.PriceBar{}, err
	}
	if bar.Close, err = parseField(values, "close"); err != nil {
		return models.PriceBar{}, err
	}
	if bar.Volume, err = parseField(values, "volume"); err != nil {
		return models.PriceBar{}, err
	}
	return bar, nil
}

func parseField(values map[string]string, name string) (float64, error) {
	v, err := strconv.ParseFloat(values[name], 64)
	if err != nil {
		return 0, fmt.Errorf("%s %q: %w", name, values[name], err)
	}
	return v, nil
}

// timeFromUnix accepts seconds or milliseconds, split on magnitude.
func timeFromUnix(ts int64) time.Time {
	if ts >= 1e12 {
		return time.Unix(ts/1000, 0)
	}
	return time.Unix(ts, 0)
}
