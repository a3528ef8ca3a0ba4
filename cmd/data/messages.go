package main

import (
	"github.com/rxtech-lab/argo-data/internal/types"
	"github.com/rxtech-lab/argo-data/pkg/marketdata/storage"
)

// DatasetsLoadedMsg carries the datasets found in the data directory.
type DatasetsLoadedMsg struct {
	Datasets []storage.Dataset
}

// RecordsLoadedMsg carries the stored rows of one dataset. Only one of
// Candles and Trades is set, depending on the dataset kind.
type RecordsLoadedMsg struct {
	Dataset storage.Dataset
	Candles []types.MarketData
	Trades  []types.Trade
}

// LoadErrorMsg indicates that reading the store failed.
type LoadErrorMsg struct {
	Err error
}
