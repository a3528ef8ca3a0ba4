package mocks

import (
	"testing"
	"time"

	"github.com/rxtech-lab/argo-data/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataGenerator_GenerateCandles(t *testing.T) {
	gen := NewDataGenerator(42)
	config := DefaultConfig()
	config.Count = 100

	data := gen.GenerateCandles(config)
	require.Len(t, data, 100)

	for i, d := range data {
		assert.Equal(t, "BTC/USDT", d.Symbol)
		assert.Equal(t, config.StartTime.Add(time.Duration(i)*time.Minute), d.Time)
		assert.GreaterOrEqual(t, d.High, d.Open)
		assert.GreaterOrEqual(t, d.High, d.Close)
		assert.LessOrEqual(t, d.Low, d.Open)
		assert.LessOrEqual(t, d.Low, d.Close)
		assert.Greater(t, d.Low, 0.0)
		assert.Greater(t, d.Volume, 0.0)
	}
}

func TestDataGenerator_GenerateTrades(t *testing.T) {
	gen := NewDataGenerator(7)
	config := DefaultConfig()
	config.Count = 500
	config.Interval = time.Second

	trades := gen.GenerateTrades(config)
	require.Len(t, trades, 500)

	assert.Equal(t, config.StartTime, trades[0].Time)
	assert.Equal(t, "1", trades[0].Id)

	for i := 1; i < len(trades); i++ {
		assert.True(t, trades[i].Time.After(trades[i-1].Time), "trade %d is not after its predecessor", i)
		assert.Contains(t, []types.TradeSide{types.TradeSideBuy, types.TradeSideSell}, trades[i].Side)
		assert.Greater(t, trades[i].Price, 0.0)
	}
}

func TestDataGenerator_Reproducibility(t *testing.T) {
	config := DefaultConfig()
	config.Count = 50

	assert.Equal(t, NewDataGenerator(123).GenerateCandles(config), NewDataGenerator(123).GenerateCandles(config))
	assert.Equal(t, NewDataGenerator(123).GenerateTrades(config), NewDataGenerator(123).GenerateTrades(config))
}

func TestDataGenerator_DifferentSeeds(t *testing.T) {
	config := DefaultConfig()
	config.Count = 10

	first := NewDataGenerator(1).GenerateTrades(config)
	second := NewDataGenerator(2).GenerateTrades(config)

	assert.NotEqual(t, first, second)
}
