package download

// Mode selects how candles are obtained.
type Mode int

const (
	// ModeCandles downloads candles directly from the source.
	ModeCandles Mode = iota
	// ModeTrades downloads raw trades and derives candles from them.
	ModeTrades
)

// ModeFor returns the mode for the download-trades setting.
func ModeFor(downloadTrades bool) Mode {
	if downloadTrades {
		return ModeTrades
	}

	return ModeCandles
}

func (m Mode) String() string {
	switch m {
	case ModeCandles:
		return "candles"
	case ModeTrades:
		return "trades"
	default:
		return "unknown"
	}
}
