package provider

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	binance "github.com/adshao/go-binance/v2"
	"github.com/rxtech-lab/argo-data/internal/types"
	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
)

const (
	binanceKlinesLimit    = 1000
	binanceAggTradesLimit = 1000
	// aggTrades rejects start/end windows of one hour or more.
	binanceAggTradesWindow = time.Hour
	binanceStatusTrading   = "TRADING"
)

// BinanceKlinesService is the subset of binance.KlinesService used by the client.
type BinanceKlinesService interface {
	Symbol(symbol string) BinanceKlinesService
	Interval(interval string) BinanceKlinesService
	StartTime(startTime int64) BinanceKlinesService
	EndTime(endTime int64) BinanceKlinesService
	Limit(limit int) BinanceKlinesService
	Do(ctx context.Context) ([]*binance.Kline, error)
}

// BinanceAggTradesService is the subset of binance.AggTradesService used by the client.
type BinanceAggTradesService interface {
	Symbol(symbol string) BinanceAggTradesService
	StartTime(startTime int64) BinanceAggTradesService
	EndTime(endTime int64) BinanceAggTradesService
	FromID(fromID int64) BinanceAggTradesService
	Limit(limit int) BinanceAggTradesService
	Do(ctx context.Context) ([]*binance.AggTrade, error)
}

// BinanceAPIClient abstracts the go-binance client so it can be replaced in tests.
type BinanceAPIClient interface {
	NewKlinesService() BinanceKlinesService
	NewAggTradesService() BinanceAggTradesService
	ExchangeInfo(ctx context.Context) (*binance.ExchangeInfo, error)
}

type BinanceClient struct {
	apiClient BinanceAPIClient

	marketsMu sync.Mutex
	markets   map[string]binance.Symbol
}

func NewBinanceClient() (Provider, error) {
	return NewBinanceClientWithAPI(newBinanceAPIAdapter(binance.NewClient("", ""))), nil
}

// NewBinanceClientWithAPI builds a client on top of an arbitrary API implementation.
func NewBinanceClientWithAPI(apiClient BinanceAPIClient) *BinanceClient {
	return &BinanceClient{
		apiClient: apiClient,
		marketsMu: sync.Mutex{},
		markets:   nil,
	}
}

func (c *BinanceClient) Name() string {
	return "Binance"
}

func (c *BinanceClient) Timeframes() []marketdata.Timeframe {
	// Binance serves every interval the package knows.
	return marketdata.AllTimeframes
}

func (c *BinanceClient) ValidateTimeframe(timeframe marketdata.Timeframe) error {
	return validateTimeframe(c, timeframe)
}

// ValidatePair checks the BASE/QUOTE syntax and, when Binance lists the
// pair, that it is currently trading.
func (c *BinanceClient) ValidatePair(ctx context.Context, pair string) error {
	if _, _, err := marketdata.SplitPair(pair); err != nil {
		return err
	}

	markets, err := c.loadMarkets(ctx)
	if err != nil {
		return err
	}

	symbol, err := binanceSymbol(pair)
	if err != nil {
		return err
	}

	market, ok := markets[symbol]
	if ok && market.Status != binanceStatusTrading {
		return errors.Newf(errors.ErrCodeInvalidPair, "pair %s is not active on Binance (status %s)", pair, market.Status)
	}

	return nil
}

func (c *BinanceClient) HasMarket(ctx context.Context, pair string) (bool, error) {
	symbol, err := binanceSymbol(pair)
	if err != nil {
		return false, err
	}

	markets, err := c.loadMarkets(ctx)
	if err != nil {
		return false, err
	}

	_, ok := markets[symbol]

	return ok, nil
}

// FetchCandles pages through the klines endpoint. The next page starts one
// millisecond after the close time of the last kline received.
func (c *BinanceClient) FetchCandles(ctx context.Context, pair string, timeframe marketdata.Timeframe, since time.Time, until time.Time, onBatch OnCandles) error {
	symbol, err := binanceSymbol(pair)
	if err != nil {
		return err
	}

	currentStartTime := since.UnixMilli()
	endTimeMillis := until.UnixMilli() - 1

	for currentStartTime <= endTimeMillis {
		klines, err := c.apiClient.NewKlinesService().
			Symbol(symbol).
			Interval(string(timeframe)).
			StartTime(currentStartTime).
			EndTime(endTimeMillis).
			Limit(binanceKlinesLimit).
			Do(ctx)
		if err != nil {
			return fetchError(c.Name(), pair, "klines", err)
		}

		if len(klines) == 0 {
			break
		}

		candles, err := convertKlines(pair, klines)
		if err != nil {
			return err
		}

		if err := onBatch(candles); err != nil {
			return err
		}

		// Last page
		if len(klines) < binanceKlinesLimit {
			break
		}

		currentStartTime = klines[len(klines)-1].CloseTime + 1
	}

	return nil
}

// FetchTrades walks the range in one hour windows. A full page inside a
// window is continued by trade id until the window end is passed.
func (c *BinanceClient) FetchTrades(ctx context.Context, pair string, since time.Time, until time.Time, onBatch OnTrades) error {
	symbol, err := binanceSymbol(pair)
	if err != nil {
		return err
	}

	cursor := since.UnixMilli()
	end := until.UnixMilli()

	for cursor < end {
		windowEnd := min(cursor+binanceAggTradesWindow.Milliseconds(), end) - 1

		page, err := c.apiClient.NewAggTradesService().
			Symbol(symbol).
			StartTime(cursor).
			EndTime(windowEnd).
			Limit(binanceAggTradesLimit).
			Do(ctx)
		if err != nil {
			return fetchError(c.Name(), pair, "aggregate trades", err)
		}

		for len(page) > 0 {
			inWindow := page
			for i, t := range page {
				if t.Timestamp > windowEnd {
					inWindow = page[:i]

					break
				}
			}

			trades, err := convertAggTrades(pair, inWindow)
			if err != nil {
				return err
			}

			if len(trades) > 0 {
				if err := onBatch(trades); err != nil {
					return err
				}
			}

			if len(inWindow) < len(page) || len(page) < binanceAggTradesLimit {
				break
			}

			page, err = c.apiClient.NewAggTradesService().
				Symbol(symbol).
				FromID(page[len(page)-1].AggTradeID + 1).
				Limit(binanceAggTradesLimit).
				Do(ctx)
			if err != nil {
				return fetchError(c.Name(), pair, "aggregate trades", err)
			}
		}

		cursor = windowEnd + 1
	}

	return nil
}

func (c *BinanceClient) loadMarkets(ctx context.Context) (map[string]binance.Symbol, error) {
	c.marketsMu.Lock()
	defer c.marketsMu.Unlock()

	if c.markets != nil {
		return c.markets, nil
	}

	info, err := c.apiClient.ExchangeInfo(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to load Binance markets", err)
	}

	markets := make(map[string]binance.Symbol, len(info.Symbols))
	for _, s := range info.Symbols {
		markets[s.Symbol] = s
	}

	c.markets = markets

	return markets, nil
}

// binanceSymbol converts "ETH/USDT" into Binance's "ETHUSDT".
func binanceSymbol(pair string) (string, error) {
	base, quote, err := marketdata.SplitPair(pair)
	if err != nil {
		return "", err
	}

	return base + quote, nil
}

// convertKlines converts Binance kline data to our internal MarketData format.
func convertKlines(pair string, klines []*binance.Kline) ([]types.MarketData, error) {
	candles := make([]types.MarketData, 0, len(klines))

	for _, k := range klines {
		values, err := parseFloats(k.Open, k.High, k.Low, k.Close, k.Volume)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid kline for %s at %d", pair, k.OpenTime)
		}

		candles = append(candles, types.MarketData{
			Id:     "",
			Symbol: pair,
			Time:   time.UnixMilli(k.OpenTime).UTC(), // Using OpenTime as the timestamp for the bar
			Open:   values[0],
			High:   values[1],
			Low:    values[2],
			Close:  values[3],
			Volume: values[4],
		})
	}

	return candles, nil
}

func convertAggTrades(pair string, aggTrades []*binance.AggTrade) ([]types.Trade, error) {
	trades := make([]types.Trade, 0, len(aggTrades))

	for _, t := range aggTrades {
		values, err := parseFloats(t.Price, t.Quantity)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrCodeMarketDataParseFailed, err, "invalid trade %d for %s", t.AggTradeID, pair)
		}

		// The maker was the buyer, so the aggressor sold.
		side := types.TradeSideBuy
		if t.IsBuyerMaker {
			side = types.TradeSideSell
		}

		trades = append(trades, types.Trade{
			Id:     strconv.FormatInt(t.AggTradeID, 10),
			Symbol: pair,
			Time:   time.UnixMilli(t.Timestamp).UTC(),
			Price:  values[0],
			Amount: values[1],
			Side:   side,
		})
	}

	return trades, nil
}

func parseFloats(raw ...string) ([]float64, error) {
	values := make([]float64, len(raw))

	for i, r := range raw {
		v, err := strconv.ParseFloat(r, 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", r, err)
		}

		values[i] = v
	}

	return values, nil
}

// binanceAPIAdapter wraps *binance.Client to satisfy BinanceAPIClient.
type binanceAPIAdapter struct {
	client *binance.Client
}

func newBinanceAPIAdapter(client *binance.Client) *binanceAPIAdapter {
	return &binanceAPIAdapter{client: client}
}

func (a *binanceAPIAdapter) NewKlinesService() BinanceKlinesService {
	return &binanceKlinesServiceAdapter{service: a.client.NewKlinesService()}
}

func (a *binanceAPIAdapter) NewAggTradesService() BinanceAggTradesService {
	return &binanceAggTradesServiceAdapter{service: a.client.NewAggTradesService()}
}

func (a *binanceAPIAdapter) ExchangeInfo(ctx context.Context) (*binance.ExchangeInfo, error) {
	return a.client.NewExchangeInfoService().Do(ctx)
}

type binanceKlinesServiceAdapter struct {
	service *binance.KlinesService
}

func (s *binanceKlinesServiceAdapter) Symbol(symbol string) BinanceKlinesService {
	s.service = s.service.Symbol(symbol)

	return s
}

func (s *binanceKlinesServiceAdapter) Interval(interval string) BinanceKlinesService {
	s.service = s.service.Interval(interval)

	return s
}

func (s *binanceKlinesServiceAdapter) StartTime(startTime int64) BinanceKlinesService {
	s.service = s.service.StartTime(startTime)

	return s
}

func (s *binanceKlinesServiceAdapter) EndTime(endTime int64) BinanceKlinesService {
	s.service = s.service.EndTime(endTime)

	return s
}

func (s *binanceKlinesServiceAdapter) Limit(limit int) BinanceKlinesService {
	s.service = s.service.Limit(limit)

	return s
}

func (s *binanceKlinesServiceAdapter) Do(ctx context.Context) ([]*binance.Kline, error) {
	return s.service.Do(ctx)
}

type binanceAggTradesServiceAdapter struct {
	service *binance.AggTradesService
}

func (s *binanceAggTradesServiceAdapter) Symbol(symbol string) BinanceAggTradesService {
	s.service = s.service.Symbol(symbol)

	return s
}

func (s *binanceAggTradesServiceAdapter) StartTime(startTime int64) BinanceAggTradesService {
	s.service = s.service.StartTime(startTime)

	return s
}

func (s *binanceAggTradesServiceAdapter) EndTime(endTime int64) BinanceAggTradesService {
	s.service = s.service.EndTime(endTime)

	return s
}

func (s *binanceAggTradesServiceAdapter) FromID(fromID int64) BinanceAggTradesService {
	s.service = s.service.FromID(fromID)

	return s
}

func (s *binanceAggTradesServiceAdapter) Limit(limit int) BinanceAggTradesService {
	s.service = s.service.Limit(limit)

	return s
}

func (s *binanceAggTradesServiceAdapter) Do(ctx context.Context) ([]*binance.AggTrade, error) {
	return s.service.Do(ctx)
}

// Verify BinanceClient implements Provider interface.
var _ Provider = (*BinanceClient)(nil)
