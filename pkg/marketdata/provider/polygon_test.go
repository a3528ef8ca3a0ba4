package provider

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/polygon-io/client-go/rest/models"
	"github.com/rxtech-lab/argo-data/internal/types"
	argoErrors "github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
	"github.com/stretchr/testify/suite"
)

// mockPolygonAPIClient implements PolygonAPIClient for testing.
type mockPolygonAPIClient struct {
	aggs       *mockPolygonIterator[models.Agg]
	aggsParams *models.ListAggsParams

	trades       *mockPolygonIterator[models.Trade]
	tradesParams *models.ListTradesParams

	tickerErr     error
	tickerTickers []string
}

func (m *mockPolygonAPIClient) ListAggs(_ context.Context, params *models.ListAggsParams, _ ...models.RequestOption) PolygonAggsIterator {
	m.aggsParams = params

	return m.aggs
}

func (m *mockPolygonAPIClient) ListTrades(_ context.Context, params *models.ListTradesParams, _ ...models.RequestOption) PolygonTradesIterator {
	m.tradesParams = params

	return m.trades
}

func (m *mockPolygonAPIClient) GetTickerDetails(_ context.Context, params *models.GetTickerDetailsParams, _ ...models.RequestOption) (*models.GetTickerDetailsResponse, error) {
	m.tickerTickers = append(m.tickerTickers, params.Ticker)
	if m.tickerErr != nil {
		return nil, m.tickerErr
	}

	return &models.GetTickerDetailsResponse{}, nil
}

// mockPolygonIterator replays a fixed list of items and then reports err.
type mockPolygonIterator[T any] struct {
	items []T
	index int
	err   error
}

func (m *mockPolygonIterator[T]) Next() bool {
	if m.index < len(m.items) {
		m.index++
		return true
	}
	return false
}

func (m *mockPolygonIterator[T]) Item() T {
	if m.index > 0 && m.index <= len(m.items) {
		return m.items[m.index-1]
	}

	var zero T

	return zero
}

func (m *mockPolygonIterator[T]) Err() error {
	return m.err
}

type PolygonClientTestSuite struct {
	suite.Suite
}

func TestPolygonClientSuite(t *testing.T) {
	suite.Run(t, new(PolygonClientTestSuite))
}

func (suite *PolygonClientTestSuite) TestNewPolygonClient_ValidApiKey() {
	client, err := NewPolygonClient("test-api-key")
	suite.NoError(err)
	suite.NotNil(client)

	polygonClient, ok := client.(*PolygonClient)
	suite.True(ok)
	suite.NotNil(polygonClient.apiClient)
}

func (suite *PolygonClientTestSuite) TestNewPolygonClientWithAPI() {
	mockAPI := &mockPolygonAPIClient{}
	client := NewPolygonClientWithAPI(mockAPI)
	suite.NotNil(client)
	suite.Equal(mockAPI, client.apiClient)
	suite.Equal("Polygon.io", client.Name())
}

func (suite *PolygonClientTestSuite) TestNewPolygonClient_EmptyApiKey() {
	client, err := NewPolygonClient("")
	suite.Error(err)
	suite.Nil(client)
	suite.True(argoErrors.HasCode(err, argoErrors.ErrCodeMissingParameter))
}

func (suite *PolygonClientTestSuite) TestValidatePair() {
	client := NewPolygonClientWithAPI(&mockPolygonAPIClient{})

	suite.NoError(client.ValidatePair(context.Background(), "SPY"))
	suite.NoError(client.ValidatePair(context.Background(), "BTC/USD"))
	suite.Error(client.ValidatePair(context.Background(), ""))
	suite.Error(client.ValidatePair(context.Background(), "BRK B"))
	suite.Error(client.ValidatePair(context.Background(), "BTC/"))
}

func (suite *PolygonClientTestSuite) TestPolygonTicker() {
	suite.Equal("X:BTCUSD", polygonTicker("BTC/USD"))
	suite.Equal("AAPL", polygonTicker("AAPL"))
}

func (suite *PolygonClientTestSuite) TestHasMarket() {
	mockAPI := &mockPolygonAPIClient{}
	client := NewPolygonClientWithAPI(mockAPI)

	ok, err := client.HasMarket(context.Background(), "ETH/USD")
	suite.NoError(err)
	suite.True(ok)
	suite.Equal([]string{"X:ETHUSD"}, mockAPI.tickerTickers)
}

func (suite *PolygonClientTestSuite) TestHasMarket_NotFound() {
	//nolint:exhaustruct // only the status is relevant
	mockAPI := &mockPolygonAPIClient{tickerErr: &models.ErrorResponse{StatusCode: http.StatusNotFound}}
	client := NewPolygonClientWithAPI(mockAPI)

	ok, err := client.HasMarket(context.Background(), "NOPE")
	suite.NoError(err)
	suite.False(ok)
}

func (suite *PolygonClientTestSuite) TestHasMarket_OtherError() {
	mockAPI := &mockPolygonAPIClient{tickerErr: errors.New("timeout")}
	client := NewPolygonClientWithAPI(mockAPI)

	ok, err := client.HasMarket(context.Background(), "SPY")
	suite.Error(err)
	suite.False(ok)
	suite.True(argoErrors.HasCode(err, argoErrors.ErrCodeMarketDataFetchFailed))
}

func (suite *PolygonClientTestSuite) TestFetchCandles() {
	start := time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)
	aggs := []models.Agg{
		{
			Timestamp: models.Millis(start),
			Open:      100.0,
			High:      101.0,
			Low:       99.0,
			Close:     100.5,
			Volume:    1000000,
		},
		{
			Timestamp: models.Millis(start.Add(time.Minute)),
			Open:      100.5,
			High:      102.0,
			Low:       100.0,
			Close:     101.5,
			Volume:    1500000,
		},
		{
			// at the exclusive end, dropped
			Timestamp: models.Millis(start.Add(2 * time.Minute)),
			Open:      1,
			High:      1,
			Low:       1,
			Close:     1,
			Volume:    1,
		},
	}

	mockAPI := &mockPolygonAPIClient{aggs: &mockPolygonIterator[models.Agg]{items: aggs}}
	client := NewPolygonClientWithAPI(mockAPI)

	var received []types.MarketData
	err := client.FetchCandles(context.Background(), "SPY", marketdata.TimeframeOneMinute, start, start.Add(2*time.Minute),
		func(candles []types.MarketData) error {
			received = append(received, candles...)
			return nil
		})

	suite.NoError(err)
	suite.Require().Len(received, 2)
	suite.Equal("SPY", received[0].Symbol)
	suite.Equal(start, received[0].Time)
	suite.InDelta(100.0, received[0].Open, 0.01)
	suite.InDelta(101.0, received[0].High, 0.01)
	suite.InDelta(99.0, received[0].Low, 0.01)
	suite.InDelta(100.5, received[0].Close, 0.01)
	suite.InDelta(1000000, received[0].Volume, 0.01)

	suite.Require().NotNil(mockAPI.aggsParams)
	suite.Equal("SPY", mockAPI.aggsParams.Ticker)
	suite.Equal(1, mockAPI.aggsParams.Multiplier)
	suite.Equal(models.Minute, mockAPI.aggsParams.Timespan)
}

func (suite *PolygonClientTestSuite) TestFetchCandles_Batches() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	aggs := make([]models.Agg, 0, polygonBatchSize+5)
	for i := 0; i < polygonBatchSize+5; i++ {
		//nolint:exhaustruct // prices are irrelevant here
		aggs = append(aggs, models.Agg{Timestamp: models.Millis(start.Add(time.Duration(i) * time.Minute))})
	}

	mockAPI := &mockPolygonAPIClient{aggs: &mockPolygonIterator[models.Agg]{items: aggs}}
	client := NewPolygonClientWithAPI(mockAPI)

	var sizes []int
	err := client.FetchCandles(context.Background(), "BTC/USD", marketdata.TimeframeOneMinute, start, start.Add(48*time.Hour),
		func(candles []types.MarketData) error {
			sizes = append(sizes, len(candles))
			return nil
		})

	suite.NoError(err)
	suite.Equal([]int{polygonBatchSize, 5}, sizes)
	suite.Equal("X:BTCUSD", mockAPI.aggsParams.Ticker)
}

func (suite *PolygonClientTestSuite) TestFetchCandles_IteratorError() {
	mockAPI := &mockPolygonAPIClient{aggs: &mockPolygonIterator[models.Agg]{err: errors.New("api failure")}}
	client := NewPolygonClientWithAPI(mockAPI)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	err := client.FetchCandles(context.Background(), "SPY", marketdata.TimeframeOneDay, start, start.AddDate(0, 0, 5),
		func(_ []types.MarketData) error { return nil })

	suite.Error(err)
	suite.True(argoErrors.HasCode(err, argoErrors.ErrCodeMarketDataFetchFailed))
	suite.Contains(err.Error(), "api failure")
}

func (suite *PolygonClientTestSuite) TestFetchCandles_CallbackError() {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	//nolint:exhaustruct // prices are irrelevant here
	aggs := []models.Agg{{Timestamp: models.Millis(start)}}

	mockAPI := &mockPolygonAPIClient{aggs: &mockPolygonIterator[models.Agg]{items: aggs}}
	client := NewPolygonClientWithAPI(mockAPI)

	err := client.FetchCandles(context.Background(), "SPY", marketdata.TimeframeOneMinute, start, start.Add(time.Hour),
		func(_ []types.MarketData) error { return errors.New("write failed") })

	suite.Error(err)
	suite.Contains(err.Error(), "write failed")
}

func (suite *PolygonClientTestSuite) TestFetchTrades() {
	start := time.Date(2024, 1, 1, 14, 0, 0, 0, time.UTC)
	//nolint:exhaustruct // only the fields we map
	trades := []models.Trade{
		{ID: "t1", Price: 187.5, Size: 100, SipTimestamp: models.Nanos(start.Add(time.Second))},
		{ID: "t2", Price: 187.6, Size: 5, SipTimestamp: models.Nanos(start.Add(2 * time.Second))},
	}

	mockAPI := &mockPolygonAPIClient{trades: &mockPolygonIterator[models.Trade]{items: trades}}
	client := NewPolygonClientWithAPI(mockAPI)

	var received []types.Trade
	err := client.FetchTrades(context.Background(), "AAPL", start, start.Add(time.Hour),
		func(batch []types.Trade) error {
			received = append(received, batch...)
			return nil
		})

	suite.NoError(err)
	suite.Require().Len(received, 2)
	suite.Equal("t1", received[0].Id)
	suite.Equal("AAPL", received[0].Symbol)
	suite.InDelta(187.5, received[0].Price, 0.0001)
	suite.InDelta(100, received[0].Amount, 0.0001)
	suite.Equal(types.TradeSideUnknown, received[0].Side)
	suite.Equal(start.Add(2*time.Second), received[1].Time)

	params := mockAPI.tradesParams
	suite.Require().NotNil(params)
	suite.Equal("AAPL", params.Ticker)
	suite.Require().NotNil(params.TimestampGTE)
	suite.Equal(start, time.Time(*params.TimestampGTE))
	suite.Require().NotNil(params.TimestampLT)
	suite.Equal(start.Add(time.Hour), time.Time(*params.TimestampLT))
	suite.Require().NotNil(params.Order)
	suite.Equal(models.Asc, *params.Order)
}

func (suite *PolygonClientTestSuite) TestFetchTrades_IteratorError() {
	mockAPI := &mockPolygonAPIClient{trades: &mockPolygonIterator[models.Trade]{err: errors.New("forbidden")}}
	client := NewPolygonClientWithAPI(mockAPI)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	err := client.FetchTrades(context.Background(), "AAPL", start, start.Add(time.Hour),
		func(_ []types.Trade) error { return nil })

	suite.Error(err)
	suite.True(argoErrors.HasCode(err, argoErrors.ErrCodeMarketDataFetchFailed))
}
