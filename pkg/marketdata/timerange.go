package marketdata

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-data/pkg/errors"
)

const timeRangeDateLayout = "20060102"

// TimeRange is a window of time where either bound may be open.
// Start is inclusive, End is exclusive.
type TimeRange struct {
	Start optional.Option[time.Time]
	End   optional.Option[time.Time]
}

// NewTimeRange builds a range and rejects a start that lies after the end.
func NewTimeRange(start, end optional.Option[time.Time]) (TimeRange, error) {
	if start.IsSome() && end.IsSome() && start.Unwrap().After(end.Unwrap()) {
		return TimeRange{}, errors.Newf(errors.ErrCodeInvalidTimeRange,
			"time range start %s is after end %s",
			start.Unwrap().Format(time.RFC3339), end.Unwrap().Format(time.RFC3339))
	}

	return TimeRange{Start: start, End: end}, nil
}

// UnboundedTimeRange means "everything the source has".
func UnboundedTimeRange() TimeRange {
	return TimeRange{
		Start: optional.None[time.Time](),
		End:   optional.None[time.Time](),
	}
}

// ResolveTimeRange turns a lookback in days into a range starting at UTC
// midnight of now minus that many days and open at the end. No lookback
// gives the unbounded range.
func ResolveTimeRange(now time.Time, days optional.Option[int]) (TimeRange, error) {
	if days.IsNone() {
		return UnboundedTimeRange(), nil
	}

	d := days.Unwrap()
	if d < 1 {
		return TimeRange{}, errors.Newf(errors.ErrCodeInvalidConfiguration, "days must be a positive number, got %d", d)
	}

	since := now.UTC().AddDate(0, 0, -d)
	start := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, time.UTC)

	return TimeRange{
		Start: optional.Some(start),
		End:   optional.None[time.Time](),
	}, nil
}

// ParseTimeRange parses "START-END" where either side may be empty and each
// side is a date (YYYYMMDD), unix seconds (10 digits) or unix milliseconds
// (13 digits). Examples: "20240101-", "-20240201", "20240101-20240201".
func ParseTimeRange(value string) (TimeRange, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return UnboundedTimeRange(), nil
	}

	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return TimeRange{}, errors.Newf(errors.ErrCodeInvalidTimeRange, "incorrect syntax for time range %q", value)
	}

	start, err := parseTimeRangeBound(parts[0])
	if err != nil {
		return TimeRange{}, errors.Wrapf(errors.ErrCodeInvalidTimeRange, err, "invalid start in time range %q", value)
	}

	end, err := parseTimeRangeBound(parts[1])
	if err != nil {
		return TimeRange{}, errors.Wrapf(errors.ErrCodeInvalidTimeRange, err, "invalid end in time range %q", value)
	}

	if start.IsNone() && end.IsNone() {
		return TimeRange{}, errors.Newf(errors.ErrCodeInvalidTimeRange, "time range %q has no bounds", value)
	}

	return NewTimeRange(start, end)
}

func parseTimeRangeBound(raw string) (optional.Option[time.Time], error) {
	if raw == "" {
		return optional.None[time.Time](), nil
	}

	switch len(raw) {
	case 8:
		t, err := time.ParseInLocation(timeRangeDateLayout, raw, time.UTC)
		if err != nil {
			return optional.None[time.Time](), err
		}

		return optional.Some(t), nil
	case 10, 13:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return optional.None[time.Time](), err
		}

		if len(raw) == 13 {
			return optional.Some(time.UnixMilli(n).UTC()), nil
		}

		return optional.Some(time.Unix(n, 0).UTC()), nil
	default:
		return optional.None[time.Time](), fmt.Errorf("unsupported bound %q", raw)
	}
}

// StartOr returns the start bound or fallback when the range is open at the start.
func (r TimeRange) StartOr(fallback time.Time) time.Time {
	return r.Start.TakeOr(fallback)
}

// EndOr returns the end bound or fallback when the range is open at the end.
func (r TimeRange) EndOr(fallback time.Time) time.Time {
	return r.End.TakeOr(fallback)
}

// String renders the range in the same syntax ParseTimeRange accepts.
func (r TimeRange) String() string {
	var b strings.Builder

	if r.Start.IsSome() {
		b.WriteString(r.Start.Unwrap().UTC().Format(timeRangeDateLayout))
	}

	b.WriteString("-")

	if r.End.IsSome() {
		b.WriteString(r.End.Unwrap().UTC().Format(timeRangeDateLayout))
	}

	return b.String()
}
