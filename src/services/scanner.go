package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/eventpubsub"
	"github.com/juanmackie/Options-Calendar-Spread-Screener/src/models"
)

type Scanner struct {
	Source QuoteSource
}

func NewScanner(source QuoteSource) *Scanner {
	return &Scanner{
		Source: source,
	}
}

// RunScan evaluates every (ticker, option type) pair in the universe against
// the next two weekly expirations. Tickers fan out across a bounded pool of
// workers; a ticker whose data cannot be fetched is recorded as skipped and
// never aborts the run. The final ranking is independent of worker order.
func (s *Scanner) RunScan(ctx context.Context, cfg models.ScreeningConfig, today time.Time) (*models.ScanResult, error) {
	tracer := otel.Tracer("RunScan")
	ctx, span := tracer.Start(ctx, "RunScan")
	defer span.End()

	scanID := uuid.New()
	startedAt := time.Now().UTC()

	logger := log.WithField("scan_id", scanID)

	result := &models.ScanResult{
		ScanID:    scanID,
		StartedAt: startedAt,
	}

	optionTypes := cfg.Contracts.OptionTypes()

	span.SetAttributes(
		attribute.String("scan_id", scanID.String()),
		attribute.Int("universe_size", len(cfg.Universe)),
	)

	expiries, err := NextTwoWeeklyExpiries(today)
	if err != nil {
		// Without a valid expiration pair no ticker can be evaluated. Record
		// every pair as skipped rather than failing the run.
		logger.Errorf("RunScan: failed to derive expirations: %v", err)

		for _, symbol := range cfg.Universe {
			for _, optionType := range optionTypes {
				result.Skipped = append(result.Skipped, models.SkippedTicker{
					Ticker:     symbol,
					OptionType: optionType,
					Reason:     err.Error(),
				})
			}
		}

		result.Stats = ComputeSummaryStats(result.Verdicts, result.Rejected, result.Skipped)
		result.FinishedAt = time.Now().UTC()
		return result, nil
	}

	result.Expiries = expiries

	logger.Infof("scanning %d tickers for calendar spreads: near expiry %s, far expiry %s", len(cfg.Universe), expiries.NearDate(), expiries.FarDate())

	eventpubsub.Publish(eventpubsub.ScanStartedEvent, eventpubsub.ScanStarted{
		ScanID:   scanID,
		Universe: cfg.Universe,
		Expiries: expiries,
	})

	var mu sync.Mutex
	var wg sync.WaitGroup

	sem := make(chan struct{}, cfg.MaxConcurrentTickers)

	for _, symbol := range cfg.Universe {
		for _, optionType := range optionTypes {
			wg.Add(1)

			go func(symbol models.StockSymbol, optionType models.OptionType) {
				defer wg.Done()

				sem <- struct{}{}
				defer func() { <-sem }()

				verdict, err := s.evaluateTicker(ctx, cfg, symbol, optionType, expiries)
				if err != nil {
					logger.Warnf("RunScan: skipping %s %s: %v", symbol, optionType, err)

					eventpubsub.Publish(eventpubsub.TickerSkippedEvent, eventpubsub.TickerSkipped{
						ScanID:     scanID,
						Ticker:     symbol,
						OptionType: optionType,
						Reason:     err.Error(),
					})

					mu.Lock()
					result.Skipped = append(result.Skipped, models.SkippedTicker{
						Ticker:     symbol,
						OptionType: optionType,
						Reason:     err.Error(),
					})
					mu.Unlock()
					return
				}

				mu.Lock()
				if verdict.Passed {
					result.Verdicts = append(result.Verdicts, verdict)
				} else {
					result.Rejected = append(result.Rejected, verdict)
				}
				mu.Unlock()
			}(symbol, optionType)
		}
	}

	wg.Wait()

	result.Verdicts = RankVerdicts(result.Verdicts)
	result.Rejected = RankVerdicts(result.Rejected)
	SortSkipped(result.Skipped)

	result.Stats = ComputeSummaryStats(result.Verdicts, result.Rejected, result.Skipped)
	result.FinishedAt = time.Now().UTC()

	span.SetAttributes(
		attribute.Int("passed", len(result.Verdicts)),
		attribute.Int("rejected", len(result.Rejected)),
		attribute.Int("skipped", len(result.Skipped)),
	)

	logger.Infof("scan complete: %d passed, %d rejected, %d skipped", len(result.Verdicts), len(result.Rejected), len(result.Skipped))

	eventpubsub.Publish(eventpubsub.ScanCompletedEvent, eventpubsub.ScanCompleted{
		ScanID:        scanID,
		PassedCount:   len(result.Verdicts),
		RejectedCount: len(result.Rejected),
		SkippedCount:  len(result.Skipped),
	})

	return result, nil
}

func (s *Scanner) evaluateTicker(ctx context.Context, cfg models.ScreeningConfig, symbol models.StockSymbol, optionType models.OptionType, expiries models.ExpiryPair) (models.SpreadVerdict, error) {
	tracer := otel.Tracer("evaluateTicker")
	ctx, span := tracer.Start(ctx, "evaluateTicker")
	defer span.End()

	span.SetAttributes(attribute.String("ticker", symbol.String()), attribute.String("option_type", string(optionType)))

	eventpubsub.Publish(eventpubsub.TickerScanStartedEvent, eventpubsub.TickerScanStarted{
		Ticker:     symbol,
		OptionType: optionType,
	})

	underlyingPrice, err := s.Source.GetUnderlyingPrice(ctx, symbol)
	if err != nil {
		return models.SpreadVerdict{}, fmt.Errorf("evaluateTicker: failed to fetch underlying price for %s: %w", symbol, err)
	}

	nearChain, err := s.Source.GetOptionChain(ctx, symbol, expiries.Near, optionType)
	if err != nil {
		return models.SpreadVerdict{}, fmt.Errorf("evaluateTicker: failed to fetch near chain for %s: %w", symbol, err)
	}

	farChain, err := s.Source.GetOptionChain(ctx, symbol, expiries.Far, optionType)
	if err != nil {
		return models.SpreadVerdict{}, fmt.Errorf("evaluateTicker: failed to fetch far chain for %s: %w", symbol, err)
	}

	strikes := CollectStrikes(nearChain, farChain)

	atmStrike, err := SelectATMStrike(underlyingPrice, strikes)
	if err != nil {
		return models.SpreadVerdict{}, fmt.Errorf("evaluateTicker: no ATM strike for %s: %w", symbol, err)
	}

	spread, err := BuildCalendarSpread(symbol, optionType, atmStrike, nearChain, farChain)
	if err != nil {
		return models.SpreadVerdict{}, fmt.Errorf("evaluateTicker: %w", err)
	}

	verdict := EvaluateSpread(cfg, spread)
	verdict.UnderlyingPrice = underlyingPrice

	if verdict.Passed {
		eventpubsub.Publish(eventpubsub.SpreadAcceptedEvent, verdict)
	} else {
		eventpubsub.Publish(eventpubsub.SpreadRejectedEvent, verdict)
	}

	return verdict, nil
}
