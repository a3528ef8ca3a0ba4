package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/rxtech-lab/argo-data/internal/types"
	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
)

// ProviderType defines the type of market data provider.
type ProviderType string

const (
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

// OnCandles receives one page of candles, oldest first.
type OnCandles = func(candles []types.MarketData) error

// OnTrades receives one page of trades, oldest first.
type OnTrades = func(trades []types.Trade) error

type Provider interface {
	// Name returns a human readable name used in reports, e.g. "Binance".
	Name() string
	// Timeframes lists the candle timeframes the source can serve directly.
	Timeframes() []marketdata.Timeframe
	// ValidatePair rejects malformed pairs and pairs the source lists but does not trade.
	// Pairs the source does not know at all pass; HasMarket reports them during download.
	ValidatePair(ctx context.Context, pair string) error
	// ValidateTimeframe rejects timeframes not listed by Timeframes.
	ValidateTimeframe(timeframe marketdata.Timeframe) error
	// HasMarket reports whether the source lists the pair.
	HasMarket(ctx context.Context, pair string) (bool, error)
	// FetchCandles downloads candles with open time in [since, until) and hands
	// them to onBatch page by page. The context can be used to cancel the download.
	FetchCandles(ctx context.Context, pair string, timeframe marketdata.Timeframe, since time.Time, until time.Time, onBatch OnCandles) error
	// FetchTrades downloads trades executed in [since, until) and hands them to onBatch page by page.
	FetchTrades(ctx context.Context, pair string, since time.Time, until time.Time, onBatch OnTrades) error
}

// NewMarketDataProvider creates a new market data provider based on the provider type.
func NewMarketDataProvider(providerType ProviderType, config any) (Provider, error) {
	switch providerType {
	case ProviderBinance:
		return NewBinanceClient()
	case ProviderPolygon:
		apiKey, ok := config.(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeMissingParameter, "polygon provider requires API key string config")
		}

		return NewPolygonClient(apiKey)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported market data provider: %s", providerType)
	}
}

// validateTimeframe is shared by the providers: the timeframe must be known
// to the package and listed by the provider.
func validateTimeframe(p Provider, timeframe marketdata.Timeframe) error {
	if err := timeframe.Validate(); err != nil {
		return err
	}

	for _, supported := range p.Timeframes() {
		if supported == timeframe {
			return nil
		}
	}

	return errors.Newf(errors.ErrCodeInvalidTimeframe,
		"timeframe %s is not supported by %s, supported: %v",
		timeframe, p.Name(), marketdata.TimeframeStrings(p.Timeframes()))
}

func fetchError(source string, pair string, what string, err error) error {
	return errors.Wrap(errors.ErrCodeMarketDataFetchFailed, fmt.Sprintf("failed to fetch %s for %s from %s", what, pair, source), err)
}
