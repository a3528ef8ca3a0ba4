package marketdata

import (
	"strings"
	"time"

	"github.com/polygon-io/client-go/rest/models"
	"github.com/rxtech-lab/argo-data/pkg/errors"
)

// Timeframe is the width of a candle bucket, written the way exchanges do ("1m", "4h", "1d").
type Timeframe string

const (
	TimeframeOneSecond      Timeframe = "1s"
	TimeframeOneMinute      Timeframe = "1m"
	TimeframeThreeMinutes   Timeframe = "3m"
	TimeframeFiveMinutes    Timeframe = "5m"
	TimeframeFifteenMinutes Timeframe = "15m"
	TimeframeThirtyMinutes  Timeframe = "30m"
	TimeframeOneHour        Timeframe = "1h"
	TimeframeTwoHours       Timeframe = "2h"
	TimeframeFourHours      Timeframe = "4h"
	TimeframeSixHours       Timeframe = "6h"
	TimeframeEightHours     Timeframe = "8h"
	TimeframeTwelveHours    Timeframe = "12h"
	TimeframeOneDay         Timeframe = "1d"
	TimeframeThreeDays      Timeframe = "3d"
	TimeframeOneWeek        Timeframe = "1w"
	TimeframeOneMonth       Timeframe = "1M"
)

// DefaultTimeframes is used when a request names no timeframe.
var DefaultTimeframes = []Timeframe{TimeframeOneMinute, TimeframeFiveMinutes}

// AllTimeframes lists every timeframe known to the package, shortest first.
var AllTimeframes = []Timeframe{
	TimeframeOneSecond,
	TimeframeOneMinute,
	TimeframeThreeMinutes,
	TimeframeFiveMinutes,
	TimeframeFifteenMinutes,
	TimeframeThirtyMinutes,
	TimeframeOneHour,
	TimeframeTwoHours,
	TimeframeFourHours,
	TimeframeSixHours,
	TimeframeEightHours,
	TimeframeTwelveHours,
	TimeframeOneDay,
	TimeframeThreeDays,
	TimeframeOneWeek,
	TimeframeOneMonth,
}

func (t Timeframe) String() string {
	return string(t)
}

// Validate checks that the timeframe is one of AllTimeframes.
func (t Timeframe) Validate() error {
	for _, known := range AllTimeframes {
		if t == known {
			return nil
		}
	}

	return errors.Newf(errors.ErrCodeInvalidTimeframe, "unknown timeframe %q", string(t))
}

func (t Timeframe) Multiplier() int {
	switch t {
	case TimeframeOneSecond, TimeframeOneMinute, TimeframeOneHour, TimeframeOneDay, TimeframeOneWeek, TimeframeOneMonth:
		return 1
	case TimeframeThreeMinutes, TimeframeThreeDays:
		return 3
	case TimeframeFiveMinutes:
		return 5
	case TimeframeFifteenMinutes:
		return 15
	case TimeframeThirtyMinutes:
		return 30
	case TimeframeTwoHours:
		return 2
	case TimeframeFourHours:
		return 4
	case TimeframeSixHours:
		return 6
	case TimeframeEightHours:
		return 8
	case TimeframeTwelveHours:
		return 12
	default:
		return 1
	}
}

// Timespan maps the timeframe unit onto polygon's aggregate timespan.
func (t Timeframe) Timespan() models.Timespan {
	switch t {
	case TimeframeOneSecond:
		return models.Second
	case TimeframeOneMinute, TimeframeThreeMinutes, TimeframeFiveMinutes, TimeframeFifteenMinutes, TimeframeThirtyMinutes:
		return models.Minute
	case TimeframeOneHour, TimeframeTwoHours, TimeframeFourHours, TimeframeSixHours, TimeframeEightHours, TimeframeTwelveHours:
		return models.Hour
	case TimeframeOneDay, TimeframeThreeDays:
		return models.Day
	case TimeframeOneWeek:
		return models.Week
	case TimeframeOneMonth:
		return models.Month
	default:
		return models.Day
	}
}

// Duration returns the bucket width. A month is approximated as 30 days;
// use Truncate for calendar-correct month buckets.
func (t Timeframe) Duration() time.Duration {
	switch t.Timespan() {
	case models.Second:
		return time.Duration(t.Multiplier()) * time.Second
	case models.Minute:
		return time.Duration(t.Multiplier()) * time.Minute
	case models.Hour:
		return time.Duration(t.Multiplier()) * time.Hour
	case models.Day:
		return time.Duration(t.Multiplier()) * 24 * time.Hour
	case models.Week:
		return 7 * 24 * time.Hour
	case models.Month:
		return 30 * 24 * time.Hour
	default:
		return time.Minute
	}
}

// Truncate returns the open time of the bucket containing ts, in UTC.
// Weeks start on Monday and months on the first day of the month. Other
// buckets are aligned to the Unix epoch, as exchanges align them.
func (t Timeframe) Truncate(ts time.Time) time.Time {
	ts = ts.UTC()

	switch t {
	case TimeframeOneMonth:
		return time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, time.UTC)
	case TimeframeOneWeek:
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		offset := (int(day.Weekday()) + 6) % 7

		return day.AddDate(0, 0, -offset)
	default:
		step := int64(t.Duration() / time.Second)
		secs := ts.Unix()

		offset := secs % step
		if offset < 0 {
			offset += step
		}

		return time.Unix(secs-offset, 0).UTC()
	}
}

// NormalizeTimeframes trims entries, drops empty ones and duplicates while
// keeping the order of first occurrence. Unknown timeframes are kept so the
// data source can reject them during validation.
func NormalizeTimeframes(raw []string) []Timeframe {
	seen := make(map[Timeframe]struct{}, len(raw))
	result := make([]Timeframe, 0, len(raw))

	for _, r := range raw {
		tf := Timeframe(strings.TrimSpace(r))
		if tf == "" {
			continue
		}

		if _, ok := seen[tf]; ok {
			continue
		}

		seen[tf] = struct{}{}
		result = append(result, tf)
	}

	return result
}

// TimeframeStrings converts timeframes back to plain strings, mostly for logging.
func TimeframeStrings(timeframes []Timeframe) []string {
	result := make([]string, len(timeframes))
	for i, tf := range timeframes {
		result[i] = string(tf)
	}

	return result
}
