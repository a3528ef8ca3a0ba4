// Package download orchestrates one historical data download run: it resolves
// the time window, validates the request against the data source, runs the
// candle or the trade strategy and reports the pairs the source could not serve.
package download

import (
	"context"

	"github.com/rxtech-lab/argo-data/pkg/marketdata"
)

// DataSource is the download side of a market data source.
type DataSource interface {
	// Name is used in reports, e.g. "Binance".
	Name() string
	// ValidatePair fails for pairs the source can never serve.
	ValidatePair(ctx context.Context, pair string) error
	// ValidateTimeframe fails for timeframes the source does not offer.
	ValidateTimeframe(timeframe marketdata.Timeframe) error
	// FetchCandles downloads candles for every pair and timeframe and returns
	// the pairs it could not serve, in the order they were found. The list is
	// returned together with any error.
	FetchCandles(ctx context.Context, pairs []string, timeframes []marketdata.Timeframe, timeRange marketdata.TimeRange, erase bool) ([]string, error)
	// FetchTrades downloads trades for every pair, with the same contract as FetchCandles.
	FetchTrades(ctx context.Context, pairs []string, timeRange marketdata.TimeRange, erase bool) ([]string, error)
}

// Deriver builds candles from locally stored trades.
type Deriver interface {
	// Derive converts stored trades into candles for every pair and timeframe.
	// Pairs without stored trades produce nothing and are not an error.
	Derive(ctx context.Context, pairs []string, timeframes []marketdata.Timeframe, timeRange marketdata.TimeRange, erase bool) error
}

// Request is a validated download request.
type Request struct {
	Pairs      []string
	Timeframes []marketdata.Timeframe
	TimeRange  marketdata.TimeRange
	Erase      bool
}
