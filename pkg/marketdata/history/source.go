// Package history downloads historical candles and trades from a provider
// into local storage and derives candles from stored trades.
package history

import (
	"context"
	"io"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-data/internal/logger"
	"github.com/rxtech-lab/argo-data/internal/types"
	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/download"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/provider"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/storage"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options tunes a Source.
type Options struct {
	// Concurrency is the number of pairs processed in parallel.
	Concurrency int
	// NewPairsDays is how far back to start when neither the range nor the store gives a start.
	NewPairsDays int
	// Progress receives progress bars. Nil disables them.
	Progress io.Writer
}

// Source connects a provider to a store. It implements download.DataSource
// and download.Deriver.
type Source struct {
	provider provider.Provider
	store    storage.Store
	logger   *logger.Logger
	options  Options
	now      func() time.Time
}

func NewSource(p provider.Provider, store storage.Store, log *logger.Logger, options Options) *Source {
	if options.Concurrency < 1 {
		options.Concurrency = 1
	}

	if options.NewPairsDays < 1 {
		options.NewPairsDays = download.DefaultNewPairsDays
	}

	return &Source{
		provider: p,
		store:    store,
		logger:   log,
		options:  options,
		now:      time.Now,
	}
}

// SetClock replaces the clock used for open-ended ranges.
func (s *Source) SetClock(now func() time.Time) {
	s.now = now
}

func (s *Source) Name() string {
	return s.provider.Name()
}

func (s *Source) ValidatePair(ctx context.Context, pair string) error {
	return s.provider.ValidatePair(ctx, pair)
}

func (s *Source) ValidateTimeframe(timeframe marketdata.Timeframe) error {
	return s.provider.ValidateTimeframe(timeframe)
}

// FetchCandles downloads every timeframe of every pair. Pairs the provider
// does not list, or whose download fails at the provider, are returned as
// unavailable. Storage failures and cancellation abort the whole batch.
func (s *Source) FetchCandles(ctx context.Context, pairs []string, timeframes []marketdata.Timeframe, timeRange marketdata.TimeRange, erase bool) ([]string, error) {
	bar := newProgressBar(s.options.Progress, len(pairs)*len(timeframes), "Downloading candles")
	defer bar.Finish()

	return s.forEachPair(ctx, pairs, func(ctx context.Context, pair string) error {
		for _, timeframe := range timeframes {
			if err := s.downloadCandles(ctx, pair, timeframe, timeRange, erase); err != nil {
				return err
			}

			_ = bar.Add(1)
		}

		return nil
	})
}

// FetchTrades downloads the trades of every pair, with the same failure
// handling as FetchCandles.
func (s *Source) FetchTrades(ctx context.Context, pairs []string, timeRange marketdata.TimeRange, erase bool) ([]string, error) {
	bar := newProgressBar(s.options.Progress, len(pairs), "Downloading trades")
	defer bar.Finish()

	return s.forEachPair(ctx, pairs, func(ctx context.Context, pair string) error {
		if err := s.downloadTrades(ctx, pair, timeRange, erase); err != nil {
			return err
		}

		_ = bar.Add(1)

		return nil
	})
}

// Derive implements download.Deriver on the source's store.
func (s *Source) Derive(ctx context.Context, pairs []string, timeframes []marketdata.Timeframe, timeRange marketdata.TimeRange, erase bool) error {
	return ConvertTradesToCandles(ctx, s.store, s.logger, pairs, timeframes, timeRange, erase)
}

// forEachPair runs fn for every listed pair in parallel and collects the
// unavailable pairs in input order.
func (s *Source) forEachPair(ctx context.Context, pairs []string, fn func(ctx context.Context, pair string) error) ([]string, error) {
	available := make([]bool, len(pairs))
	done := make([]bool, len(pairs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.options.Concurrency)

	for i, pair := range pairs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			ok, err := s.runPair(gctx, pair, fn)
			if err != nil {
				if gctx.Err() != nil || !isPairFailure(err) {
					return err
				}

				s.logger.Error("Failed to download pair, marking it unavailable",
					zap.String("pair", pair), zap.Error(err))

				ok = false
			}

			available[i] = ok
			done[i] = true

			return nil
		})
	}

	err := g.Wait()

	unavailable := make([]string, 0)

	for i, pair := range pairs {
		if done[i] && !available[i] {
			unavailable = append(unavailable, pair)
		}
	}

	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}

	return unavailable, err
}

// runPair skips pairs the provider does not list and otherwise runs fn.
func (s *Source) runPair(ctx context.Context, pair string, fn func(ctx context.Context, pair string) error) (bool, error) {
	listed, err := s.provider.HasMarket(ctx, pair)
	if err != nil {
		return false, err
	}

	if !listed {
		s.logger.Info("Pair not available on source, skipping",
			zap.String("pair", pair), zap.String("source", s.provider.Name()))

		return false, nil
	}

	if err := fn(ctx, pair); err != nil {
		return false, err
	}

	return true, nil
}

func (s *Source) downloadCandles(ctx context.Context, pair string, timeframe marketdata.Timeframe, timeRange marketdata.TimeRange, erase bool) error {
	if erase {
		s.logger.Info("Deleting existing candles", zap.String("pair", pair), zap.String("timeframe", timeframe.String()))

		if err := s.store.EraseCandles(pair, timeframe); err != nil {
			return err
		}
	}

	last := optional.None[time.Time]()

	if !erase {
		var err error

		last, err = s.store.LastCandleTime(ctx, pair, timeframe)
		if err != nil {
			return err
		}
	}

	// The last stored candle may have been open when it was fetched, so
	// download it again; the store replaces candles by time.
	since, until := s.window(timeRange, last)
	if !since.Before(until) {
		s.logger.Debug("Candles are up to date", zap.String("pair", pair), zap.String("timeframe", timeframe.String()))

		return nil
	}

	s.logger.Debug("Downloading candles",
		zap.String("pair", pair),
		zap.String("timeframe", timeframe.String()),
		zap.Time("since", since),
		zap.Time("until", until))

	return s.provider.FetchCandles(ctx, pair, timeframe, since, until, func(candles []types.MarketData) error {
		return s.store.AppendCandles(ctx, pair, timeframe, candles)
	})
}

func (s *Source) downloadTrades(ctx context.Context, pair string, timeRange marketdata.TimeRange, erase bool) error {
	if erase {
		s.logger.Info("Deleting existing trades", zap.String("pair", pair))

		if err := s.store.EraseTrades(pair); err != nil {
			return err
		}
	}

	last := optional.None[time.Time]()

	if !erase {
		var err error

		last, err = s.store.LastTradeTime(ctx, pair)
		if err != nil {
			return err
		}
	}

	// Trades sharing the last stored timestamp may be missing, so resume at it; the store drops duplicates.
	since, until := s.window(timeRange, last)
	if !since.Before(until) {
		return nil
	}

	s.logger.Debug("Downloading trades", zap.String("pair", pair), zap.Time("since", since), zap.Time("until", until))

	return s.provider.FetchTrades(ctx, pair, since, until, func(trades []types.Trade) error {
		return s.store.AppendTrades(ctx, pair, trades)
	})
}

// window computes [since, until) for one download. Without a range start the
// download begins NewPairsDays ago. Stored data moves the start up to the last
// stored record.
func (s *Source) window(timeRange marketdata.TimeRange, last optional.Option[time.Time]) (time.Time, time.Time) {
	now := s.now().UTC()
	since := timeRange.StartOr(now.AddDate(0, 0, -s.options.NewPairsDays))
	until := timeRange.EndOr(now)

	if last.IsSome() && last.Unwrap().After(since) {
		since = last.Unwrap()
	}

	return since, until
}

// isPairFailure reports errors raised by the provider for a single pair.
func isPairFailure(err error) bool {
	return errors.HasCode(err, errors.ErrCodeMarketDataFetchFailed) ||
		errors.HasCode(err, errors.ErrCodeMarketDataParseFailed)
}

var (
	_ download.DataSource = (*Source)(nil)
	_ download.Deriver    = (*Source)(nil)
)
