package analytics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/hirelens/hirelens/internal/app/features/analytics"
	"github.com/hirelens/hirelens/internal/app/system/httperr"
)

// Pinned clock: mid-day so the current partial day still gets a bucket.
var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestPlanWindow_RangeTable(t *testing.T) {
	tests := []struct {
		rangeKey string
		days     int
		interval string
		buckets  int
	}{
		{"7d", 7, analytics.IntervalDay, 8},
		{"30d", 30, analytics.IntervalDay, 31},
		{"90d", 90, analytics.IntervalWeek, 13},
		{"180d", 180, analytics.IntervalWeek, 26},
		{"365d", 365, analytics.IntervalMonth, 13},
	}

	for _, tc := range tests {
		t.Run(tc.rangeKey, func(t *testing.T) {
			w, err := analytics.PlanWindow(tc.rangeKey, testNow)
			if err != nil {
				t.Fatalf("PlanWindow(%q): %v", tc.rangeKey, err)
			}
			if w.Days != tc.days {
				t.Errorf("days: got %d, want %d", w.Days, tc.days)
			}
			if w.Interval != tc.interval {
				t.Errorf("interval: got %q, want %q", w.Interval, tc.interval)
			}

			trend := analytics.ZeroMetrics(w).Trend
			if len(trend) != tc.buckets {
				t.Errorf("bucket count: got %d, want %d", len(trend), tc.buckets)
			}
		})
	}
}

func TestPlanWindow_StartIsDayAligned(t *testing.T) {
	w, err := analytics.PlanWindow("7d", testNow)
	if err != nil {
		t.Fatalf("PlanWindow: %v", err)
	}

	want := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	if !w.Start.Equal(want) {
		t.Errorf("start: got %v, want %v", w.Start, want)
	}
	if !w.End.Equal(testNow) {
		t.Errorf("end: got %v, want %v", w.End, testNow)
	}
}

func TestPlanWindow_TrendAlignedToStart(t *testing.T) {
	w, err := analytics.PlanWindow("90d", testNow)
	if err != nil {
		t.Fatalf("PlanWindow: %v", err)
	}

	trend := analytics.ZeroMetrics(w).Trend
	if len(trend) == 0 {
		t.Fatal("expected at least one trend bucket")
	}
	if trend[0].Date != w.Start.Format("2006-01-02") {
		t.Errorf("first bucket label: got %q, want %q", trend[0].Date, w.Start.Format("2006-01-02"))
	}

	// Week buckets step by exactly seven days.
	second, err := time.Parse("2006-01-02", trend[1].Date)
	if err != nil {
		t.Fatalf("parse second bucket label: %v", err)
	}
	if got := second.Sub(w.Start); got != 7*24*time.Hour {
		t.Errorf("bucket step: got %v, want 168h", got)
	}
}

func TestPlanWindow_MonthBucketsAreCalendarMonths(t *testing.T) {
	// 365 days back from 2025-01-31 crosses a leap year, landing on
	// 2024-02-01; month buckets then step first-of-month to first-of-month.
	now := time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)
	w, err := analytics.PlanWindow("365d", now)
	if err != nil {
		t.Fatalf("PlanWindow: %v", err)
	}

	trend := analytics.ZeroMetrics(w).Trend
	if trend[0].Date != "2024-02-01" {
		t.Errorf("first bucket: got %q, want 2024-02-01", trend[0].Date)
	}
	if trend[1].Date != "2024-03-01" {
		t.Errorf("second bucket: got %q, want 2024-03-01", trend[1].Date)
	}
	if len(trend) != 12 {
		t.Errorf("bucket count: got %d, want 12", len(trend))
	}
}

func TestPlanWindow_UnknownRange(t *testing.T) {
	for _, key := range []string{"", "14d", "1y", "seven"} {
		_, err := analytics.PlanWindow(key, testNow)
		if err == nil {
			t.Errorf("PlanWindow(%q): expected error", key)
			continue
		}
		var he *httperr.Error
		if !errors.As(err, &he) || he.Kind != httperr.InvalidArgument {
			t.Errorf("PlanWindow(%q): kind = %v, want InvalidArgument", key, httperr.KindOf(err))
		}
	}
}
