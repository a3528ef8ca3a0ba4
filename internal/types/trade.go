package types

import "time"

type TradeSide string

const (
	TradeSideBuy     TradeSide = "buy"
	TradeSideSell    TradeSide = "sell"
	TradeSideUnknown TradeSide = ""
)

// Trade is a single executed transaction reported by a data source.
type Trade struct {
	// Id is the source's trade identifier. Sources without one leave it empty
	// and storage assigns a uuid.
	Id     string    `csv:"id"`
	Symbol string    `csv:"symbol"`
	Time   time.Time `csv:"time"`
	Price  float64   `csv:"price"`
	// Amount is the traded quantity of the base asset.
	Amount float64   `csv:"amount"`
	Side   TradeSide `csv:"side"`
}

// Cost returns price times amount in quote currency.
func (t Trade) Cost() float64 {
	return t.Price * t.Amount
}
