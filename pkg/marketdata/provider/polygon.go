package provider

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	polygon "github.com/polygon-io/client-go/rest"
	"github.com/polygon-io/client-go/rest/models"
	"github.com/rxtech-lab/argo-data/internal/types"
	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
)

const (
	polygonPageLimit = 50000
	polygonBatchSize = 1000
)

// PolygonAggsIterator is the subset of the polygon iterator used for aggregates.
type PolygonAggsIterator interface {
	Next() bool
	Item() models.Agg
	Err() error
}

// PolygonTradesIterator is the subset of the polygon iterator used for trades.
type PolygonTradesIterator interface {
	Next() bool
	Item() models.Trade
	Err() error
}

// PolygonAPIClient abstracts the polygon REST client so it can be replaced in tests.
type PolygonAPIClient interface {
	ListAggs(ctx context.Context, params *models.ListAggsParams, options ...models.RequestOption) PolygonAggsIterator
	ListTrades(ctx context.Context, params *models.ListTradesParams, options ...models.RequestOption) PolygonTradesIterator
	GetTickerDetails(ctx context.Context, params *models.GetTickerDetailsParams, options ...models.RequestOption) (*models.GetTickerDetailsResponse, error)
}

type PolygonClient struct {
	apiClient PolygonAPIClient
}

func NewPolygonClient(apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrCodeMissingParameter, "apiKey is required")
	}

	return NewPolygonClientWithAPI(&polygonAPIAdapter{client: polygon.New(apiKey)}), nil
}

// NewPolygonClientWithAPI builds a client on top of an arbitrary API implementation.
func NewPolygonClientWithAPI(apiClient PolygonAPIClient) *PolygonClient {
	return &PolygonClient{
		apiClient: apiClient,
	}
}

func (c *PolygonClient) Name() string {
	return "Polygon.io"
}

func (c *PolygonClient) Timeframes() []marketdata.Timeframe {
	return marketdata.AllTimeframes
}

func (c *PolygonClient) ValidateTimeframe(timeframe marketdata.Timeframe) error {
	return validateTimeframe(c, timeframe)
}

// ValidatePair accepts plain tickers ("AAPL") and crypto pairs ("BTC/USD").
func (c *PolygonClient) ValidatePair(_ context.Context, pair string) error {
	if strings.ContainsAny(pair, " \t") || pair == "" {
		return errors.Newf(errors.ErrCodeInvalidPair, "invalid ticker %q", pair)
	}

	if strings.Contains(pair, "/") {
		_, _, err := marketdata.SplitPair(pair)

		return err
	}

	return nil
}

// HasMarket asks polygon for the ticker details. A 404 means the ticker is unknown.
func (c *PolygonClient) HasMarket(ctx context.Context, pair string) (bool, error) {
	//nolint:exhaustruct // third-party struct with many optional fields
	_, err := c.apiClient.GetTickerDetails(ctx, &models.GetTickerDetailsParams{
		Ticker: polygonTicker(pair),
	})
	if err == nil {
		return true, nil
	}

	var errResp *models.ErrorResponse
	if stderrors.As(err, &errResp) && errResp.StatusCode == http.StatusNotFound {
		return false, nil
	}

	return false, fetchError(c.Name(), pair, "ticker details", err)
}

func (c *PolygonClient) FetchCandles(ctx context.Context, pair string, timeframe marketdata.Timeframe, since time.Time, until time.Time, onBatch OnCandles) error {
	//nolint:exhaustruct // third-party struct with many optional fields
	params := models.ListAggsParams{
		Ticker:     polygonTicker(pair),
		Multiplier: timeframe.Multiplier(),
		Timespan:   timeframe.Timespan(),
		From:       models.Millis(since),
		To:         models.Millis(until.Add(-time.Millisecond)),
	}.WithLimit(polygonPageLimit)

	iter := c.apiClient.ListAggs(ctx, params)
	batch := make([]types.MarketData, 0, polygonBatchSize)

	for iter.Next() {
		agg := iter.Item()

		ts := time.Time(agg.Timestamp).UTC()
		if !ts.Before(until) {
			continue
		}

		batch = append(batch, types.MarketData{
			Id:     "",
			Symbol: pair,
			Time:   ts,
			Open:   agg.Open,
			High:   agg.High,
			Low:    agg.Low,
			Close:  agg.Close,
			Volume: agg.Volume,
		})

		if len(batch) == polygonBatchSize {
			if err := onBatch(batch); err != nil {
				return err
			}

			batch = make([]types.MarketData, 0, polygonBatchSize)
		}
	}

	if iter.Err() != nil {
		return fetchError(c.Name(), pair, "aggregates", iter.Err())
	}

	if len(batch) > 0 {
		return onBatch(batch)
	}

	return nil
}

func (c *PolygonClient) FetchTrades(ctx context.Context, pair string, since time.Time, until time.Time, onBatch OnTrades) error {
	gte := models.Nanos(since)
	lt := models.Nanos(until)
	limit := polygonPageLimit
	order := models.Asc

	//nolint:exhaustruct // third-party struct with many optional fields
	params := &models.ListTradesParams{
		Ticker:       polygonTicker(pair),
		TimestampGTE: &gte,
		TimestampLT:  &lt,
		Order:        &order,
		Limit:        &limit,
	}

	iter := c.apiClient.ListTrades(ctx, params)
	batch := make([]types.Trade, 0, polygonBatchSize)

	for iter.Next() {
		trade := iter.Item()

		batch = append(batch, types.Trade{
			Id:     trade.ID,
			Symbol: pair,
			Time:   time.Time(trade.SipTimestamp).UTC(),
			Price:  trade.Price,
			Amount: float64(trade.Size),
			Side:   types.TradeSideUnknown,
		})

		if len(batch) == polygonBatchSize {
			if err := onBatch(batch); err != nil {
				return err
			}

			batch = make([]types.Trade, 0, polygonBatchSize)
		}
	}

	if iter.Err() != nil {
		return fetchError(c.Name(), pair, "trades", iter.Err())
	}

	if len(batch) > 0 {
		return onBatch(batch)
	}

	return nil
}

// polygonTicker maps "BTC/USD" onto polygon's crypto ticker "X:BTCUSD".
// Anything else is passed through as a stock ticker.
func polygonTicker(pair string) string {
	base, quote, err := marketdata.SplitPair(pair)
	if err != nil {
		return pair
	}

	return "X:" + base + quote
}

// polygonAPIAdapter wraps *polygon.Client to satisfy PolygonAPIClient.
type polygonAPIAdapter struct {
	client *polygon.Client
}

func (a *polygonAPIAdapter) ListAggs(ctx context.Context, params *models.ListAggsParams, options ...models.RequestOption) PolygonAggsIterator {
	return a.client.ListAggs(ctx, params, options...)
}

func (a *polygonAPIAdapter) ListTrades(ctx context.Context, params *models.ListTradesParams, options ...models.RequestOption) PolygonTradesIterator {
	return a.client.ListTrades(ctx, params, options...)
}

func (a *polygonAPIAdapter) GetTickerDetails(ctx context.Context, params *models.GetTickerDetailsParams, options ...models.RequestOption) (*models.GetTickerDetailsResponse, error) {
	return a.client.GetTickerDetails(ctx, params, options...)
}

// Verify PolygonClient implements Provider interface.
var _ Provider = (*PolygonClient)(nil)
