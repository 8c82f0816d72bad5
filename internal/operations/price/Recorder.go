package price

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"SMCSignalEngine/internal/models"
)

// SaveBarsCSV writes bars to path in the layout LoadBarsCSV reads, creating
// parent directories as needed. Open times are written as unix seconds and
// bars keep the order given.
func SaveBarsCSV(path string, bars []models.PriceBar) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create bars dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create bars file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"open_time", "open", "high", "low", "close", "volume"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, b := range bars {
		rec := []string{
			strconv.FormatInt(b.OpenTime.Unix(), 10),
			formatValue(b.Open),
			formatValue(b.High),
			formatValue(b.Low),
			formatValue(b.Close),
			formatValue(b.Volume),
		}
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("write bar %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush bars file: %w", err)
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
