// Command backtest runs the signal generator and backtester over a CSV
// candle file and prints the performance report.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/evdnx/gobt/backtest"
	"github.com/evdnx/gobt/config"
	"github.com/evdnx/gobt/logger"
	"github.com/evdnx/gobt/strategy"
)

func main() {
	var (
		configPath = flag.String("config", "", "engine config file (yaml/toml/json); defaults apply when empty")
		csvPath    = flag.String("candles", "", "candle CSV file: time,open,high,low,close,volume")
		asJSON     = flag.Bool("json", false, "print the report as JSON")
	)
	flag.Parse()

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "missing -candles")
		flag.Usage()
		os.Exit(2)
	}

	log, err := logger.NewZapLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Error("config_load_failed", logger.String("path", *configPath), logger.Err(err))
			os.Exit(1)
		}
	}

	candles, err := loadCandlesCSV(*csvPath)
	if err != nil {
		log.Error("candles_load_failed", logger.String("path", *csvPath), logger.Err(err))
		os.Exit(1)
	}

	gen, err := strategy.NewGenerator(cfg, log)
	if err != nil {
		log.Error("generator_init_failed", logger.Err(err))
		os.Exit(1)
	}
	signals := gen.Generate(candles)

	result := backtest.New(cfg.InitialCapital, log).Compare(signals)

	if *asJSON {
		raw, err := sonic.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Error("report_encode_failed", logger.Err(err))
			os.Exit(1)
		}
		fmt.Println(string(raw))
		return
	}

	fmt.Printf("strategy:        %s\n", cfg.Strategy)
	fmt.Printf("candles:         %d\n", len(candles))
	fmt.Printf("signals:         %d\n", len(signals))
	fmt.Printf("trades:          %d (%d wins, %.1f%% win rate)\n",
		result.TotalTrades, result.WinningTrades, result.WinRate)
	fmt.Printf("final capital:   %.2f (%.2f%%)\n", result.FinalCapital, result.ProfitPercentage)
	fmt.Printf("max drawdown:    %.2f%%\n", result.MaxDrawdown)
	fmt.Printf("buy-and-hold:    %.2f (%.2f%%)\n", result.HoldFinalCapital, result.HoldProfitPercentage)
	if result.OutperformsHold {
		fmt.Println("verdict:         strategy beats buy-and-hold")
	} else {
		fmt.Println("verdict:         buy-and-hold wins")
	}
}
