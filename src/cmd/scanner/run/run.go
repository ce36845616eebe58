package run

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/eventpubsub"
	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/services"
	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/utils"
)

type RunArgs struct {
	GoEnv        string
	ConfigFile   string
	OutDir       string
	Tickers      []string
	Contracts    string
	MinNetCredit *float64
	Concurrency  int
}

type RunResult struct {
	Result           *models.ScanResult
	ExportedFilepath string
}

// Exec wires the scanner and runs a single scan: env, config file, flag
// overrides, progress subscribers, then the scan itself and an optional CSV
// export.
func Exec(ctx context.Context, args RunArgs) (RunResult, error) {
	projectsDir := os.Getenv("PROJECTS_DIR")
	if projectsDir == "" {
		log.Fatalf("missing PROJECTS_DIR environment variable")
	}

	if err := utils.InitEnvironmentVariables(projectsDir, args.GoEnv); err != nil {
		log.Fatalf("error loading environment variables: %v", err)
	}

	polygonApiKey := os.Getenv("POLYGON_API_KEY")
	if polygonApiKey == "" {
		log.Fatalf("missing POLYGON_API_KEY environment variable")
	}

	eventpubsub.Init()

	if err := subscribeProgressLogger(); err != nil {
		return RunResult{}, fmt.Errorf("Exec: failed to subscribe progress logger: %w", err)
	}

	cfg, err := loadScreeningConfig(args)
	if err != nil {
		return RunResult{}, fmt.Errorf("Exec: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return RunResult{}, fmt.Errorf("Exec: invalid configuration: %w", err)
	}

	scanner := services.NewScanner(services.NewPolygonQuoteSource(polygonApiKey))

	result, err := scanner.RunScan(ctx, cfg, time.Now())
	if err != nil {
		return RunResult{}, fmt.Errorf("Exec: scan failed: %w", err)
	}

	// let async progress subscribers drain before the report prints
	eventpubsub.WaitAsync()

	runResult := RunResult{Result: result}

	if args.OutDir != "" {
		exportedPath, err := services.ExportVerdictsCSV(args.OutDir, result)
		if err != nil {
			log.Errorf("Exec: csv export failed: %v", err)
		} else {
			runResult.ExportedFilepath = exportedPath
		}
	}

	return runResult, nil
}

func loadScreeningConfig(args RunArgs) (models.ScreeningConfig, error) {
	cfg := models.NewScreeningConfig()

	if args.ConfigFile != "" {
		data, err := os.ReadFile(args.ConfigFile)
		if err != nil {
			return models.ScreeningConfig{}, fmt.Errorf("loadScreeningConfig: failed to read %s: %w", args.ConfigFile, err)
		}

		var configYAML models.ScreenerConfigYAML
		if err := yaml.Unmarshal(data, &configYAML); err != nil {
			return models.ScreeningConfig{}, fmt.Errorf("loadScreeningConfig: failed to parse %s: %w", args.ConfigFile, err)
		}

		cfg, err = configYAML.ToScreeningConfig()
		if err != nil {
			return models.ScreeningConfig{}, fmt.Errorf("loadScreeningConfig: %w", err)
		}
	}

	if len(args.Tickers) > 0 {
		universe := make([]models.StockSymbol, 0, len(args.Tickers))
		for _, ticker := range args.Tickers {
			universe = append(universe, models.NewStockSymbol(ticker))
		}

		cfg.Universe = universe
	}

	if args.Contracts != "" {
		cfg.Contracts = models.ContractSelection(args.Contracts)
	}

	if args.MinNetCredit != nil {
		cfg.MinNetCredit = *args.MinNetCredit
	}

	if args.Concurrency > 0 {
		cfg.MaxConcurrentTickers = args.Concurrency
	}

	return cfg, nil
}

func subscribeProgressLogger() error {
	if err := eventpubsub.Subscribe(eventpubsub.ScanStartedEvent, func(event eventpubsub.ScanStarted) {
		log.Infof("Scanning %d tickers: near expiry %s, far expiry %s", len(event.Universe), event.Expiries.NearDate(), event.Expiries.FarDate())
	}); err != nil {
		return err
	}

	if err := eventpubsub.Subscribe(eventpubsub.TickerScanStartedEvent, func(event eventpubsub.TickerScanStarted) {
		log.Infof("Scanning %s %ss...", event.Ticker, event.OptionType)
	}); err != nil {
		return err
	}

	if err := eventpubsub.Subscribe(eventpubsub.TickerSkippedEvent, func(event eventpubsub.TickerSkipped) {
		log.Warnf("Skipped %s %ss: %s", event.Ticker, event.OptionType, event.Reason)
	}); err != nil {
		return err
	}

	if err := eventpubsub.Subscribe(eventpubsub.SpreadAcceptedEvent, func(verdict models.SpreadVerdict) {
		log.Infof("Found candidate: %s %s @ %.2f for a $%.2f credit", verdict.Spread.Ticker, verdict.Spread.OptionType, verdict.Spread.Strike, verdict.NetCredit)
	}); err != nil {
		return err
	}

	return nil
}
