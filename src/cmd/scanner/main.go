package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/cmd/scanner/run"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/scanner/main.go --tickers AAPL,TSLA --contracts calls",
	Short: "Scan for weekly ATM calendar spread opportunities",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			log.Fatalf("error getting config: %v", err)
		}

		outDir, err := cmd.Flags().GetString("outDir")
		if err != nil {
			log.Fatalf("error getting outDir: %v", err)
		}

		tickers, err := cmd.Flags().GetStringSlice("tickers")
		if err != nil {
			log.Fatalf("error getting tickers: %v", err)
		}

		contracts, err := cmd.Flags().GetString("contracts")
		if err != nil {
			log.Fatalf("error getting contracts: %v", err)
		}

		concurrency, err := cmd.Flags().GetInt("concurrency")
		if err != nil {
			log.Fatalf("error getting concurrency: %v", err)
		}

		runArgs := run.RunArgs{
			GoEnv:       goEnv,
			ConfigFile:  configFile,
			OutDir:      outDir,
			Tickers:     tickers,
			Contracts:   contracts,
			Concurrency: concurrency,
		}

		if cmd.Flags().Changed("min-net-credit") {
			minNetCredit, err := cmd.Flags().GetFloat64("min-net-credit")
			if err != nil {
				log.Fatalf("error getting min-net-credit: %v", err)
			}

			runArgs.MinNetCredit = &minNetCredit
		}

		result, err := run.Exec(context.Background(), runArgs)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		scan := result.Result

		if len(scan.Verdicts) == 0 {
			log.Infof("No calendar spread opportunities found: %d rejected, %d skipped", scan.Stats.RejectedCount, scan.Stats.SkippedCount)
			return
		}

		fmt.Println(scan.Verdicts.String())

		fmt.Printf("Passed: %d  Rejected: %d  Skipped: %d\n", scan.Stats.PassedCount, scan.Stats.RejectedCount, scan.Stats.SkippedCount)
		fmt.Printf("Net credit mean: $%.2f  median: $%.2f  max: $%.2f  stddev: %.4f\n", scan.Stats.MeanNetCredit, scan.Stats.MedianNetCredit, scan.Stats.MaxNetCredit, scan.Stats.StdDevNetCredit)
		fmt.Printf("Mean IV differential: %.2f%%\n", scan.Stats.MeanIVDifferential*100)

		if result.ExportedFilepath != "" {
			fmt.Printf("Exported to: %s\n", result.ExportedFilepath)
		}
	},
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("config", "", "Path to a screener config yaml file.")
	runCmd.PersistentFlags().String("outDir", "", "The directory to write the csv report to.")
	runCmd.PersistentFlags().StringSlice("tickers", []string{}, "Tickers to scan. Overrides the config file universe.")
	runCmd.PersistentFlags().String("contracts", "", "Which contracts to scan: calls, puts or both.")
	runCmd.PersistentFlags().Float64("min-net-credit", 0, "Minimum net credit a spread must collect.")
	runCmd.PersistentFlags().Int("concurrency", 0, "Number of tickers scanned in parallel.")

	runCmd.Execute()
}
