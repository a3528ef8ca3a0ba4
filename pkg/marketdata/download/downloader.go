package download

import (
	"context"
	"fmt"
	"time"

	"github.com/rxtech-lab/argo-data/internal/logger"
	"github.com/rxtech-lab/argo-data/pkg/errors"
	"github.com/rxtech-lab/argo-data/pkg/marketdata"
	"go.uber.org/zap"
)

// Downloader runs download requests against one data source.
type Downloader struct {
	src     DataSource
	deriver Deriver
	logger  *logger.Logger
	now     func() time.Time
}

// NewDownloader creates a downloader. deriver may be nil when trades are never downloaded.
func NewDownloader(src DataSource, deriver Deriver, log *logger.Logger) *Downloader {
	return &Downloader{
		src:     src,
		deriver: deriver,
		logger:  log,
		now:     time.Now,
	}
}

// SetClock replaces the clock used to resolve relative time ranges.
func (d *Downloader) SetClock(now func() time.Time) {
	d.now = now
}

// Run executes one download. The pairs the source could not serve are
// reported once when Run returns, whatever the outcome. A cancelled ctx
// makes Run return an ErrCodeInterrupted error.
func (d *Downloader) Run(ctx context.Context, cfg Config) (err error) {
	var unavailable UnavailablePairs

	defer func() {
		d.report(unavailable)

		if err != nil && ctx.Err() != nil && !errors.IsInterrupted(err) {
			err = errors.Wrap(errors.ErrCodeInterrupted, "download interrupted", err)
		}
	}()

	unavailable, err = d.run(ctx, cfg)

	return err
}

func (d *Downloader) run(ctx context.Context, cfg Config) (UnavailablePairs, error) {
	if err := cfg.Validate(); err != nil {
		return UnavailablePairs{}, err
	}

	timeRange, err := d.resolveTimeRange(cfg)
	if err != nil {
		return UnavailablePairs{}, err
	}

	pairs := cfg.PairList()
	timeframes := cfg.TimeframeList()

	d.logger.Info(fmt.Sprintf("About to download pairs: %v, intervals: %v to %s",
		pairs, marketdata.TimeframeStrings(timeframes), cfg.DataDir),
		zap.String("timerange", timeRange.String()),
		zap.Bool("erase", cfg.Erase),
		zap.Stringer("mode", ModeFor(cfg.DownloadTrades)),
	)

	if err := ValidateRequest(ctx, d.src, pairs, timeframes); err != nil {
		return UnavailablePairs{}, err
	}

	return Dispatch(ctx, ModeFor(cfg.DownloadTrades), d.src, d.deriver, Request{
		Pairs:      pairs,
		Timeframes: timeframes,
		TimeRange:  timeRange,
		Erase:      cfg.Erase,
	})
}

// resolveTimeRange gives Days precedence over an explicit range string.
func (d *Downloader) resolveTimeRange(cfg Config) (marketdata.TimeRange, error) {
	if cfg.Days != nil {
		return marketdata.ResolveTimeRange(d.now(), cfg.DaysOption())
	}

	if cfg.TimeRange != "" {
		return marketdata.ParseTimeRange(cfg.TimeRange)
	}

	return marketdata.UnboundedTimeRange(), nil
}

func (d *Downloader) report(unavailable UnavailablePairs) {
	if unavailable.Len() == 0 {
		return
	}

	d.logger.Info(fmt.Sprintf("Pairs %s not available on %s.", unavailable, d.src.Name()),
		zap.Strings("pairs", unavailable.List()),
		zap.String("source", d.src.Name()),
	)
}
