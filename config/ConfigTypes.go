package config

type config struct {
	Data     DataConfig
	Analysis AnalysisConfig
	Strategy StrategyConfig
	Backtest BacktestConfig
	Symbols  []string
}

type DataConfig struct {
	Dir       string
	TimeFrame string
}

type AnalysisConfig struct {
	SwingLength          int
	InternalLength       int
	ATRPeriod            int
	EqualLevelMultiplier float64
	FastEMAPeriod        int
	SlowEMAPeriod        int
	MinBars              int
}

type StrategyConfig struct {
	Lookback          int
	MinVolume         float64
	TakeProfitPercent float64
	StopLossPercent   float64
	HistoryLimit      int
}

type BacktestConfig struct {
	Enabled          bool
	InitialBalance   float64
	WindowBars       int
	RequireStructure bool
}
