package download

import (
	"context"
	"fmt"

	"github.com/rxtech-lab/argo-data/pkg/errors"
)

// strategy is one way of filling local storage for a request.
type strategy interface {
	run(ctx context.Context, req Request) ([]string, error)
}

type candleStrategy struct {
	src DataSource
}

func (s candleStrategy) run(ctx context.Context, req Request) ([]string, error) {
	return s.src.FetchCandles(ctx, req.Pairs, req.Timeframes, req.TimeRange, req.Erase)
}

// tradeStrategy fetches trades and then derives candles for every requested
// pair, including those just reported unavailable, since trades from an
// earlier run may already be stored.
type tradeStrategy struct {
	src     DataSource
	deriver Deriver
}

func (s tradeStrategy) run(ctx context.Context, req Request) ([]string, error) {
	unavailable, err := s.src.FetchTrades(ctx, req.Pairs, req.TimeRange, req.Erase)
	if err != nil {
		return unavailable, err
	}

	if err := s.deriver.Derive(ctx, req.Pairs, req.Timeframes, req.TimeRange, req.Erase); err != nil {
		return unavailable, err
	}

	return unavailable, nil
}

func strategyFor(mode Mode, src DataSource, deriver Deriver) (strategy, error) {
	switch mode {
	case ModeCandles:
		return candleStrategy{src: src}, nil
	case ModeTrades:
		if deriver == nil {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration, "trade mode requires a deriver")
		}

		return tradeStrategy{src: src, deriver: deriver}, nil
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidConfiguration, "unknown download mode %d", mode)
	}
}

// Dispatch runs exactly one strategy, chosen by mode, and returns the pairs it
// could not serve. The list is returned on failure too. Failures are wrapped
// as ErrCodeAcquisitionFailed unless ctx was cancelled, in which case the
// context error is returned as is.
func Dispatch(ctx context.Context, mode Mode, src DataSource, deriver Deriver, req Request) (UnavailablePairs, error) {
	s, err := strategyFor(mode, src, deriver)
	if err != nil {
		return UnavailablePairs{}, err
	}

	pairs, err := s.run(ctx, req)
	unavailable := NewUnavailablePairs(pairs...)

	if err != nil {
		if ctx.Err() != nil {
			return unavailable, ctx.Err()
		}

		return unavailable, errors.Wrap(errors.ErrCodeAcquisitionFailed,
			fmt.Sprintf("%s download from %s failed", mode, src.Name()), err)
	}

	return unavailable, nil
}
