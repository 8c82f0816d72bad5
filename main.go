package main

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"

	"SMCSignalEngine/config"
	"SMCSignalEngine/internal/models"
	"SMCSignalEngine/internal/operations/backtest"
	"SMCSignalEngine/internal/operations/price"
	"SMCSignalEngine/internal/services/analysis"
	"SMCSignalEngine/internal/services/strategy"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	analyzer := analysis.NewSmartMoneyAnalyzer(analysis.Config{
		SwingLength:          cfg.Analysis.SwingLength,
		InternalLength:       cfg.Analysis.InternalLength,
		ATRPeriod:            cfg.Analysis.ATRPeriod,
		EqualLevelMultiplier: cfg.Analysis.EqualLevelMultiplier,
		FastEMAPeriod:        cfg.Analysis.FastEMAPeriod,
		SlowEMAPeriod:        cfg.Analysis.SlowEMAPeriod,
		MinBars:              cfg.Analysis.MinBars,
	})
	discount := strategy.NewDiscountStrategy(strategyConfig(cfg.Strategy))

	for _, symbol := range cfg.Symbols {
		path := filepath.Join(cfg.Data.Dir, symbol+".csv")
		bars, err := price.LoadBarsCSV(path, symbol, cfg.Data.TimeFrame)
		if err != nil {
			log.Printf("Skipping %s: %v", symbol, err)
			continue
		}
		if len(bars) == 0 {
			log.Printf("Skipping %s: no bars in %s", symbol, path)
			continue
		}
		log.Printf("Loaded %d %s bars for %s", len(bars), cfg.Data.TimeFrame, symbol)

		scanSymbol(symbol, bars, analyzer, discount)

		if cfg.Backtest.Enabled {
			runBacktest(symbol, bars, cfg.Backtest, cfg.Strategy, analyzer)
		}
	}

	printSignalsTable(discount.History().Recent())
}

func scanSymbol(symbol string, bars []models.PriceBar, analyzer *analysis.SmartMoneyAnalyzer, discount *strategy.DiscountStrategy) {
	structureEntry, err := analyzer.Analyze(bars)
	if err != nil {
		log.Printf("%s: structure analysis failed: %v", symbol, err)
		return
	}
	if structureEntry {
		log.Printf("%s: structure break entry on latest bar", symbol)
	} else {
		log.Printf("%s: no structure entry", symbol)
	}

	last := bars[len(bars)-1]
	result, err := discount.Evaluate(
		models.Highs(bars),
		models.Lows(bars),
		models.Opens(bars),
		models.Closes(bars),
		last.Volume,
		last.OpenTime,
	)
	if err != nil {
		log.Printf("%s: discount evaluation failed: %v", symbol, err)
		return
	}
	if result.Signal {
		log.Printf("%s: BUY at %.4f (tp %.4f, sl %.4f)", symbol, result.Price, result.TakeProfit, result.StopLoss)
	} else {
		log.Printf("%s: no discount entry (%s)", symbol, result.Reason)
	}
}

func runBacktest(symbol string, bars []models.PriceBar, btCfg config.BacktestConfig, stratCfg config.StrategyConfig, analyzer *analysis.SmartMoneyAnalyzer) {
	// Fresh strategy so backtest entries stay out of the live signal history
	engine := backtest.NewEngine(
		strategy.NewDiscountStrategy(strategyConfig(stratCfg)),
		analyzer,
		backtest.Config{
			InitialBalance:   btCfg.InitialBalance,
			PositionSize:     backtest.PositionSize,
			WarmupBars:       backtest.WarmupBars,
			WindowBars:       btCfg.WindowBars,
			RequireStructure: btCfg.RequireStructure,
		},
	)

	results, err := engine.Run(bars)
	if err != nil {
		log.Printf("%s: backtest failed: %v", symbol, err)
		return
	}

	// Print results
	fmt.Printf("\n=== Backtest Results: %s ===\n", symbol)
	fmt.Printf("Total Trades: %d\n", results.TotalTrades)
	if results.TotalTrades > 0 {
		fmt.Printf("Winning Trades: %d (%.2f%%)\n", results.WinningTrades, results.WinRate*100)
	}
	fmt.Printf("Average PnL: $%.4f\n", results.AveragePnL)
	fmt.Printf("Max Drawdown: %.2f%%\n", results.MaxDrawdown*100)
	fmt.Printf("Final Balance: $%.4f\n", results.FinalBalance)
	fmt.Printf("Sharpe Ratio: %.2f\n", results.SharpeRatio)
	fmt.Printf("Average Volume (SMA%d): %.0f\n", backtest.VolumeSMABars, results.AverageVolume)

	timeframes := make([]string, 0, len(results.AverageEntryByTimeframe))
	for tf := range results.AverageEntryByTimeframe {
		timeframes = append(timeframes, tf)
	}
	sort.Strings(timeframes)
	for _, tf := range timeframes {
		fmt.Printf("Average Entry [%s]: %.4f\n", tf, results.AverageEntryByTimeframe[tf])
	}
}

func printSignalsTable(records []strategy.SignalRecord) {
	fmt.Println("\n=== Recent Buy Signals ===")
	if len(records) == 0 {
		fmt.Println("No signals recorded")
		return
	}
	fmt.Printf("%-20s %14s %14s\n", "Date", "Price", "Volume")
	for _, r := range records {
		fmt.Printf("%-20s %14.4f %14.0f\n", r.Date.Format("2006-01-02 15:04:05"), r.Price, r.Volume)
	}
}

func strategyConfig(cfg config.StrategyConfig) strategy.Config {
	return strategy.Config{
		Lookback:          cfg.Lookback,
		MinVolume:         cfg.MinVolume,
		TakeProfitPercent: cfg.TakeProfitPercent,
		StopLossPercent:   cfg.StopLossPercent,
		HistoryLimit:      cfg.HistoryLimit,
	}
}
