package download

import (
	"context"
	"testing"

	"github.com/rxtech-lab/argo-data/mocks"
	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func request(pairs ...string) Request {
	return Request{
		Pairs:      pairs,
		Timeframes: []marketdata.Timeframe{marketdata.TimeframeOneMinute, marketdata.TimeframeFiveMinutes},
		TimeRange:  marketdata.UnboundedTimeRange(),
		Erase:      false,
	}
}

func TestDispatch_CandleModeNeverTouchesTrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockDataSource(ctrl)
	deriver := mocks.NewMockDeriver(ctrl)

	src.EXPECT().FetchCandles(gomock.Any(), []string{"BTC/USDT"}, gomock.Any(), gomock.Any(), false).Return(nil, nil)
	src.EXPECT().FetchTrades(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	deriver.EXPECT().Derive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	unavailable, err := Dispatch(context.Background(), ModeCandles, src, deriver, request("BTC/USDT"))
	require.NoError(t, err)
	assert.Equal(t, 0, unavailable.Len())
}

func TestDispatch_CandleModeWithoutDeriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockDataSource(ctrl)

	src.EXPECT().FetchCandles(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{"LUNA/USDT"}, nil)

	unavailable, err := Dispatch(context.Background(), ModeCandles, src, nil, request("BTC/USDT", "LUNA/USDT"))
	require.NoError(t, err)
	assert.Equal(t, []string{"LUNA/USDT"}, unavailable.List())
}

func TestDispatch_TradeModeRequiresDeriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockDataSource(ctrl)

	_, err := Dispatch(context.Background(), ModeTrades, src, nil, request("BTC/USDT"))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func TestDispatch_TradeFetchFailureSkipsDerivation(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockDataSource(ctrl)
	deriver := mocks.NewMockDeriver(ctrl)

	src.EXPECT().Name().Return("Binance").AnyTimes()
	src.EXPECT().FetchTrades(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]string{"XRP/USDT"}, errors.New(errors.ErrCodeMarketDataWriteFailed, "failed to write trades"))
	deriver.EXPECT().Derive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	unavailable, err := Dispatch(context.Background(), ModeTrades, src, deriver, request("BTC/USDT", "XRP/USDT"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeAcquisitionFailed))
	assert.Contains(t, err.Error(), "trades download from Binance failed")
	assert.Equal(t, []string{"XRP/USDT"}, unavailable.List())
}

func TestDispatch_DerivationFailureKeepsUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockDataSource(ctrl)
	deriver := mocks.NewMockDeriver(ctrl)

	src.EXPECT().Name().Return("Binance").AnyTimes()
	src.EXPECT().FetchTrades(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{"XRP/USDT"}, nil)
	deriver.EXPECT().Derive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New(errors.ErrCodeDerivationFailed, "failed to convert trades"))

	unavailable, err := Dispatch(context.Background(), ModeTrades, src, deriver, request("BTC/USDT", "XRP/USDT"))
	assert.True(t, errors.HasCode(err, errors.ErrCodeAcquisitionFailed))
	assert.Equal(t, []string{"XRP/USDT"}, unavailable.List())
}

func TestDispatch_CancelledReturnsContextError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockDataSource(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	src.EXPECT().FetchCandles(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ []string, _ []marketdata.Timeframe, _ marketdata.TimeRange, _ bool) ([]string, error) {
			cancel()

			return []string{"XRP/USDT", "XRP/USDT"}, errors.Wrap(errors.ErrCodeMarketDataFetchFailed, "failed to fetch klines", ctx.Err())
		})

	unavailable, err := Dispatch(ctx, ModeCandles, src, nil, request("XRP/USDT"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, errors.HasCode(err, errors.ErrCodeAcquisitionFailed))
	assert.Equal(t, []string{"XRP/USDT"}, unavailable.List())
}

func TestValidateRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockDataSource(ctrl)

	gomock.InOrder(
		src.EXPECT().ValidatePair(gomock.Any(), "BTC/USDT").Return(nil),
		src.EXPECT().ValidatePair(gomock.Any(), "ETH/USDT").Return(nil),
		src.EXPECT().ValidateTimeframe(marketdata.TimeframeOneMinute).Return(nil),
		src.EXPECT().ValidateTimeframe(marketdata.TimeframeOneDay).Return(nil),
	)

	err := ValidateRequest(context.Background(), src, []string{"BTC/USDT", "ETH/USDT"},
		[]marketdata.Timeframe{marketdata.TimeframeOneMinute, marketdata.TimeframeOneDay})
	assert.NoError(t, err)
}

func TestValidateRequest_NoPairs(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockDataSource(ctrl)

	err := ValidateRequest(context.Background(), src, nil, marketdata.DefaultTimeframes)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func TestRequirePairs(t *testing.T) {
	assert.NoError(t, RequirePairs([]string{"BTC/USDT"}))
	assert.True(t, errors.HasCode(RequirePairs(nil), errors.ErrCodeInvalidConfiguration))
	assert.True(t, errors.HasCode(RequirePairs([]string{}), errors.ErrCodeInvalidConfiguration))
}

func TestMode(t *testing.T) {
	assert.Equal(t, ModeCandles, ModeFor(false))
	assert.Equal(t, ModeTrades, ModeFor(true))
	assert.Equal(t, "candles", ModeCandles.String())
	assert.Equal(t, "trades", ModeTrades.String())
	assert.Equal(t, "unknown", Mode(9).String())
}
