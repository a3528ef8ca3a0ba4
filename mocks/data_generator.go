package mocks

import (
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/rxtech-lab/argo-data/internal/types"
)

// DataGenerator generates realistic candles and trades for tests.
type DataGenerator struct {
	rng *rand.Rand
}

// NewDataGenerator creates a new DataGenerator with the given seed.
// Use a fixed seed for reproducible results in tests.
func NewDataGenerator(seed int64) *DataGenerator {
	return &DataGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// GeneratorConfig configures how data is generated.
type GeneratorConfig struct {
	// Pair is the pair stamped on every record (e.g., "BTC/USDT")
	Pair string
	// StartTime is the time of the first record
	StartTime time.Time
	// Interval is the candle width, or the mean gap between trades
	Interval time.Duration
	// Count is the number of records to generate
	Count int
	// InitialPrice is the starting price
	InitialPrice float64
	// Volatility controls price movement per step (0.001 = 0.1%)
	Volatility float64
	// VolumeBase is the average candle volume or trade amount
	VolumeBase float64
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Pair:         "BTC/USDT",
		StartTime:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Interval:     time.Minute,
		Count:        1000,
		InitialPrice: 42000.0,
		Volatility:   0.001,
		VolumeBase:   2.5,
	}
}

// GenerateCandles creates candles following a geometric Brownian motion.
func (g *DataGenerator) GenerateCandles(config GeneratorConfig) []types.MarketData {
	data := make([]types.MarketData, config.Count)
	price := config.InitialPrice

	for i := 0; i < config.Count; i++ {
		open := price
		close := g.step(open, config.Volatility)

		high := math.Max(open, close) * (1 + g.rng.Float64()*config.Volatility*0.5)
		low := math.Min(open, close) * (1 - g.rng.Float64()*config.Volatility*0.5)

		data[i] = types.MarketData{
			Id:     "",
			Symbol: config.Pair,
			Time:   config.StartTime.Add(time.Duration(i) * config.Interval),
			Open:   roundToDecimals(open, 4),
			High:   roundToDecimals(high, 4),
			Low:    roundToDecimals(low, 4),
			Close:  roundToDecimals(close, 4),
			Volume: roundToDecimals(config.VolumeBase*(0.5+g.rng.Float64()), 4),
		}

		price = close
	}

	return data
}

// GenerateTrades creates trades with exponentially distributed gaps, so the
// mean distance between two trades is config.Interval. Ids are sequential.
func (g *DataGenerator) GenerateTrades(config GeneratorConfig) []types.Trade {
	trades := make([]types.Trade, config.Count)
	price := config.InitialPrice
	ts := config.StartTime

	for i := 0; i < config.Count; i++ {
		side := types.TradeSideBuy
		if g.rng.Intn(2) == 0 {
			side = types.TradeSideSell
		}

		trades[i] = types.Trade{
			Id:     strconv.Itoa(i + 1),
			Symbol: config.Pair,
			Time:   ts,
			Price:  roundToDecimals(price, 4),
			Amount: roundToDecimals(config.VolumeBase*g.rng.ExpFloat64(), 6),
			Side:   side,
		}

		price = g.step(price, config.Volatility)
		// Millisecond resolution like exchange timestamps; never two trades in the same instant.
		gap := time.Duration(g.rng.ExpFloat64() * float64(config.Interval)).Truncate(time.Millisecond)
		ts = ts.Add(max(gap, time.Millisecond))
	}

	return trades
}

// step moves price by one normally distributed increment.
func (g *DataGenerator) step(price float64, volatility float64) float64 {
	next := price * (1 + volatility*g.rng.NormFloat64())
	if next <= 0 {
		return price * 0.99
	}

	return next
}

// roundToDecimals rounds a float64 to the specified number of decimal places.
func roundToDecimals(val float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(val*pow) / pow
}
