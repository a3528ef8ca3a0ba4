package history

import (
	"context"
	"sort"
	"time"

	"github.com/rxtech-lab/argo-data/internal/logger"
	"github.com/rxtech-lab/argo-data/internal/types"
	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/storage"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ConvertTradesToCandles builds candles from the trades stored for each pair
// and writes them for every timeframe. With erase the stored candles are
// replaced, otherwise merged. Failures of a single pair are logged and the
// next pair is processed; only cancellation stops the batch.
func ConvertTradesToCandles(ctx context.Context, store storage.Store, log *logger.Logger, pairs []string, timeframes []marketdata.Timeframe, timeRange marketdata.TimeRange, erase bool) error {
	for _, pair := range pairs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := convertPair(ctx, store, log, pair, timeframes, timeRange, erase); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			log.Error("Could not convert trades to candles", zap.String("pair", pair), zap.Error(err))
		}
	}

	return nil
}

func convertPair(ctx context.Context, store storage.Store, log *logger.Logger, pair string, timeframes []marketdata.Timeframe, timeRange marketdata.TimeRange, erase bool) error {
	trades, err := store.LoadTrades(ctx, pair, timeRange)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeDerivationFailed, err, "failed to load trades of %s", pair)
	}

	for _, timeframe := range timeframes {
		if erase {
			if err := store.EraseCandles(pair, timeframe); err != nil {
				return err
			}
		}

		if len(trades) == 0 {
			continue
		}

		candles := TradesToCandles(pair, trades, timeframe)
		if err := store.AppendCandles(ctx, pair, timeframe, candles); err != nil {
			return errors.Wrapf(errors.ErrCodeDerivationFailed, err, "failed to store %s candles of %s", timeframe, pair)
		}

		log.Info("Converted trades to candles",
			zap.String("pair", pair),
			zap.String("timeframe", timeframe.String()),
			zap.Int("trades", len(trades)),
			zap.Int("candles", len(candles)))
	}

	if len(trades) == 0 {
		log.Info("No stored trades, nothing to convert", zap.String("pair", pair))
	}

	return nil
}

// candleBuilder accumulates the trades of one bucket.
type candleBuilder struct {
	start  time.Time
	open   decimal.Decimal
	high   decimal.Decimal
	low    decimal.Decimal
	close  decimal.Decimal
	volume decimal.Decimal
}

func (b *candleBuilder) add(price, amount decimal.Decimal) {
	if price.GreaterThan(b.high) {
		b.high = price
	}

	if price.LessThan(b.low) {
		b.low = price
	}

	b.close = price
	b.volume = b.volume.Add(amount)
}

func (b *candleBuilder) candle(pair string) types.MarketData {
	return types.MarketData{
		Id:     "",
		Symbol: pair,
		Time:   b.start,
		Open:   b.open.InexactFloat64(),
		High:   b.high.InexactFloat64(),
		Low:    b.low.InexactFloat64(),
		Close:  b.close.InexactFloat64(),
		Volume: b.volume.InexactFloat64(),
	}
}

// TradesToCandles aggregates trades into candles of the given timeframe.
// Buckets without trades are not emitted. The result is ordered by time.
func TradesToCandles(pair string, trades []types.Trade, timeframe marketdata.Timeframe) []types.MarketData {
	if len(trades) == 0 {
		return []types.MarketData{}
	}

	sorted := append([]types.Trade(nil), trades...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time.Before(sorted[j].Time)
	})

	candles := make([]types.MarketData, 0)

	var current *candleBuilder

	for _, t := range sorted {
		start := timeframe.Truncate(t.Time)
		price := decimal.NewFromFloat(t.Price)
		amount := decimal.NewFromFloat(t.Amount)

		if current == nil || !current.start.Equal(start) {
			if current != nil {
				candles = append(candles, current.candle(pair))
			}

			current = &candleBuilder{
				start:  start,
				open:   price,
				high:   price,
				low:    price,
				close:  price,
				volume: decimal.Zero,
			}
		}

		current.add(price, amount)
	}

	candles = append(candles, current.candle(pair))

	return candles
}
