package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TradeTestSuite struct {
	suite.Suite
}

func TestTradeSuite(t *testing.T) {
	suite.Run(t, new(TradeTestSuite))
}

func (suite *TradeTestSuite) TestTradeStruct() {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	trade := Trade{
		Id:     "12345",
		Symbol: "BTC/USDT",
		Time:   now,
		Price:  42000.5,
		Amount: 0.25,
		Side:   TradeSideBuy,
	}

	suite.Equal("12345", trade.Id)
	suite.Equal("BTC/USDT", trade.Symbol)
	suite.Equal(now, trade.Time)
	suite.Equal(TradeSideBuy, trade.Side)
}

func (suite *TradeTestSuite) TestCost() {
	trade := Trade{Price: 200, Amount: 1.5}
	suite.InDelta(300.0, trade.Cost(), 1e-9)

	suite.Equal(0.0, Trade{}.Cost())
}
