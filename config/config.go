package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func Load() (*config, error) {
	if err := godotenv.Load(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	return &config{
		Data: DataConfig{
			Dir:       envOrDefault("DATA_DIR", "data"),
			TimeFrame: envOrDefault("DATA_TIMEFRAME", "1h"),
		},
		Analysis: AnalysisConfig{
			SwingLength:          intOrDefault("SWING_LENGTH", 50),
			InternalLength:       intOrDefault("INTERNAL_LENGTH", 5),
			ATRPeriod:            intOrDefault("ATR_PERIOD", 14),
			EqualLevelMultiplier: floatOrDefault("EQUAL_LEVEL_MULTIPLIER", 0.1),
			FastEMAPeriod:        intOrDefault("FAST_EMA", 20),
			SlowEMAPeriod:        intOrDefault("SLOW_EMA", 50),
			MinBars:              intOrDefault("MIN_BARS", 100),
		},
		Strategy: StrategyConfig{
			Lookback:          intOrDefault("LOOKBACK", 30),
			MinVolume:         floatOrDefault("MIN_VOLUME", 100000),
			TakeProfitPercent: floatOrDefault("TP_PERCENT", 5),
			StopLossPercent:   floatOrDefault("SL_PERCENT", 2),
			HistoryLimit:      intOrDefault("HISTORY_LIMIT", 5),
		},
		Backtest: BacktestConfig{
			Enabled:          boolEnv("BACKTEST_ENABLED"),
			InitialBalance:   floatOrDefault("INITIAL_BALANCE", 10),
			WindowBars:       intOrDefault("WINDOW_BARS", 200),
			RequireStructure: boolEnv("REQUIRE_STRUCTURE"),
		},
		Symbols: getSymbols(),
	}, nil
}

// helper env(string) to int
func EnvtoInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

func intOrDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return EnvtoInt(v)
}

func floatOrDefault(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolEnv(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

// helper to get symbols
func getSymbols() []string {
	symbols := os.Getenv("SYMBOLS")
	if symbols == "" {
		return []string{"BTCUSDT", "ETHUSDT"} // Default pairs if none specified
	}
	return strings.Split(symbols, ",")
}
