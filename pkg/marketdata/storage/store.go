// Package storage persists downloaded candles and trades as one parquet file
// per pair and timeframe. DuckDB is used as the query engine over the files.
package storage

import (
	"context"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-data/internal/types"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
)

// Store is the local persistence used by the download pipeline.
type Store interface {
	// CandleFile returns the file that holds the candles of pair at timeframe.
	CandleFile(pair string, timeframe marketdata.Timeframe) string
	// TradeFile returns the file that holds the trades of pair.
	TradeFile(pair string) string

	// EraseCandles removes all stored candles of pair at timeframe. Missing files are not an error.
	EraseCandles(pair string, timeframe marketdata.Timeframe) error
	// AppendCandles merges candles into the stored series. A candle with the same
	// open time as a stored one replaces it.
	AppendCandles(ctx context.Context, pair string, timeframe marketdata.Timeframe, candles []types.MarketData) error
	// LoadCandles returns the stored candles whose open time falls in timeRange, oldest first.
	LoadCandles(ctx context.Context, pair string, timeframe marketdata.Timeframe, timeRange marketdata.TimeRange) ([]types.MarketData, error)
	// LastCandleTime returns the open time of the newest stored candle.
	LastCandleTime(ctx context.Context, pair string, timeframe marketdata.Timeframe) (optional.Option[time.Time], error)

	// EraseTrades removes all stored trades of pair. Missing files are not an error.
	EraseTrades(pair string) error
	// AppendTrades merges trades into the stored list, deduplicated by time and id.
	AppendTrades(ctx context.Context, pair string, trades []types.Trade) error
	// LoadTrades returns the stored trades executed in timeRange, oldest first.
	LoadTrades(ctx context.Context, pair string, timeRange marketdata.TimeRange) ([]types.Trade, error)
	// LastTradeTime returns the execution time of the newest stored trade.
	LastTradeTime(ctx context.Context, pair string) (optional.Option[time.Time], error)

	// ListDatasets describes every file in the data directory.
	ListDatasets(ctx context.Context) ([]Dataset, error)
	Close() error
}

type DatasetKind string

const (
	DatasetCandles DatasetKind = "candles"
	DatasetTrades  DatasetKind = "trades"
)

// Dataset summarises one stored file.
type Dataset struct {
	Pair      string
	Kind      DatasetKind
	Timeframe optional.Option[marketdata.Timeframe]
	Path      string
	Rows      int64
	Start     optional.Option[time.Time]
	End       optional.Option[time.Time]
}

// Name is the label used by the CLI, e.g. "BTC/USDT 5m" or "BTC/USDT trades".
func (d Dataset) Name() string {
	if d.Kind == DatasetTrades || d.Timeframe.IsNone() {
		return d.Pair + " trades"
	}

	return d.Pair + " " + d.Timeframe.Unwrap().String()
}
