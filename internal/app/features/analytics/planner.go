// internal/app/features/analytics/planner.go
package analytics

import (
	"time"

	"github.com/hirelens/hirelens/internal/app/system/httperr"
)

// Interval labels for the trend series.
const (
	IntervalDay   = "day"
	IntervalWeek  = "week"
	IntervalMonth = "month"
)

// rangeDays is the closed set of recognized range keys. Unknown keys are
// rejected; there is no silent default.
var rangeDays = map[string]int{
	"7d":   7,
	"30d":  30,
	"90d":  90,
	"180d": 180,
	"365d": 365,
}

// Window is a resolved [Start, End) query window with its bucket interval.
type Window struct {
	RangeKey string
	Days     int
	Start    time.Time
	End      time.Time
	Interval string
}

// PlanWindow maps a symbolic range key to a concrete UTC window.
//
// End is "now"; Start is now minus the range's day count, truncated to a
// UTC day boundary so bucket edges are stable within a day. The interval
// widens with the span to keep the trend series bounded (~30 points):
// spans up to 30 days bucket by day, up to 180 by week, beyond by month.
func PlanWindow(rangeKey string, now time.Time) (Window, error) {
	days, ok := rangeDays[rangeKey]
	if !ok {
		return Window{}, httperr.New(httperr.InvalidArgument,
			"unknown range %q (want 7d, 30d, 90d, 180d, or 365d)", rangeKey)
	}

	now = now.UTC()
	start := now.AddDate(0, 0, -days)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	interval := IntervalDay
	switch {
	case days > 180:
		interval = IntervalMonth
	case days > 30:
		interval = IntervalWeek
	}

	return Window{
		RangeKey: rangeKey,
		Days:     days,
		Start:    start,
		End:      now,
		Interval: interval,
	}, nil
}

// bucketStarts returns the start of every bucket covering [w.Start, w.End),
// aligned to w.Start: contiguous, non-overlapping, ascending. Day and week
// buckets step by fixed durations; month buckets step by calendar month so
// a "month" means the same thing on the 31st as on the 1st.
func (w Window) bucketStarts() []time.Time {
	var starts []time.Time
	for t := w.Start; t.Before(w.End); t = w.nextBucket(t) {
		starts = append(starts, t)
	}
	return starts
}

func (w Window) nextBucket(t time.Time) time.Time {
	switch w.Interval {
	case IntervalWeek:
		return t.AddDate(0, 0, 7)
	case IntervalMonth:
		return t.AddDate(0, 1, 0)
	default:
		return t.AddDate(0, 0, 1)
	}
}
