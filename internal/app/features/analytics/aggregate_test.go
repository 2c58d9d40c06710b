package analytics_test

import (
	"testing"
	"time"

	"github.com/hirelens/hirelens/internal/app/features/analytics"
	"github.com/hirelens/hirelens/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(n int) *int { return &n }

func mustWindow(t *testing.T, rangeKey string, now time.Time) analytics.Window {
	t.Helper()
	w, err := analytics.PlanWindow(rangeKey, now)
	if err != nil {
		t.Fatalf("PlanWindow(%q): %v", rangeKey, err)
	}
	return w
}

func reviewAt(ts time.Time, rating *int, responded bool) models.Review {
	return models.Review{
		ID:                 primitive.NewObjectID(),
		CompanyID:          primitive.NewObjectID(),
		AuthorID:           primitive.NewObjectID(),
		OverallRating:      rating,
		RecruiterResponded: responded,
		CreatedAt:          ts,
	}
}

func TestBuildMetrics_Totals(t *testing.T) {
	w := mustWindow(t, "7d", testNow)
	day := testNow.Add(-24 * time.Hour)

	reviews := []models.Review{
		reviewAt(day, intPtr(5), true),
		reviewAt(day, intPtr(5), false),
		reviewAt(day, intPtr(4), true),
		reviewAt(day, intPtr(3), false),
		reviewAt(day, intPtr(5), false),
	}

	m := analytics.BuildMetrics(reviews, w, 5)

	if m.TotalReviews != 5 {
		t.Errorf("totalReviews: got %d, want 5", m.TotalReviews)
	}
	if m.AvgRating == nil || *m.AvgRating != 4.4 {
		t.Errorf("avgRating: got %v, want 4.4", m.AvgRating)
	}
	if m.ReviewsWithResponse != 2 {
		t.Errorf("reviewsWithResponse: got %d, want 2", m.ReviewsWithResponse)
	}
	if m.ResponseRate != 40 {
		t.Errorf("responseRate: got %d, want 40", m.ResponseRate)
	}

	wantDist := map[int]int{1: 0, 2: 0, 3: 1, 4: 1, 5: 3}
	for r, want := range wantDist {
		if got := m.RatingDistribution[r]; got != want {
			t.Errorf("distribution[%d]: got %d, want %d", r, got, want)
		}
	}
	if len(m.RatingDistribution) != 5 {
		t.Errorf("distribution keys: got %d, want 5", len(m.RatingDistribution))
	}
}

func TestBuildMetrics_NoReviews(t *testing.T) {
	w := mustWindow(t, "30d", testNow)
	m := analytics.BuildMetrics(nil, w, 5)

	if m.TotalReviews != 0 {
		t.Errorf("totalReviews: got %d, want 0", m.TotalReviews)
	}
	if m.AvgRating != nil {
		t.Errorf("avgRating: got %v, want nil", *m.AvgRating)
	}
	if m.ResponseRate != 0 {
		t.Errorf("responseRate: got %d, want 0", m.ResponseRate)
	}
	if len(m.Trend) != 31 {
		t.Errorf("trend length: got %d, want 31", len(m.Trend))
	}
	for i, p := range m.Trend {
		if p.Count != 0 || p.AvgRating != nil {
			t.Errorf("trend[%d]: got count=%d avg=%v, want empty bucket", i, p.Count, p.AvgRating)
		}
	}
	if m.Recent == nil || len(m.Recent) != 0 {
		t.Errorf("recent: got %v, want empty slice", m.Recent)
	}
}

func TestBuildMetrics_UnratedReviewsCountTowardTotalsOnly(t *testing.T) {
	w := mustWindow(t, "7d", testNow)
	day := testNow.Add(-24 * time.Hour)

	reviews := []models.Review{
		reviewAt(day, intPtr(4), false),
		reviewAt(day, nil, true),
		reviewAt(day, nil, false),
	}

	m := analytics.BuildMetrics(reviews, w, 5)

	if m.TotalReviews != 3 {
		t.Errorf("totalReviews: got %d, want 3", m.TotalReviews)
	}
	if m.AvgRating == nil || *m.AvgRating != 4.0 {
		t.Errorf("avgRating: got %v, want 4.0", m.AvgRating)
	}
	// 1 of 3 responded; integer percentage rounds to 33.
	if m.ResponseRate != 33 {
		t.Errorf("responseRate: got %d, want 33", m.ResponseRate)
	}

	var histTotal int
	for _, n := range m.RatingDistribution {
		histTotal += n
	}
	if histTotal != 1 {
		t.Errorf("distribution total: got %d, want 1", histTotal)
	}
}

func TestBuildMetrics_AllUnratedMeansNullAverage(t *testing.T) {
	w := mustWindow(t, "7d", testNow)
	day := testNow.Add(-24 * time.Hour)

	m := analytics.BuildMetrics([]models.Review{
		reviewAt(day, nil, false),
		reviewAt(day, nil, true),
	}, w, 5)

	if m.TotalReviews != 2 {
		t.Errorf("totalReviews: got %d, want 2", m.TotalReviews)
	}
	if m.AvgRating != nil {
		t.Errorf("avgRating: got %v, want nil", *m.AvgRating)
	}
}

func TestBuildMetrics_TrendBucketPlacement(t *testing.T) {
	w := mustWindow(t, "7d", testNow)

	// Start is 2025-06-08; drop two reviews in the 2025-06-10 bucket and
	// one in the 2025-06-13 bucket, leaving the rest empty.
	jun10 := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	jun13 := time.Date(2025, 6, 13, 23, 59, 0, 0, time.UTC)

	m := analytics.BuildMetrics([]models.Review{
		reviewAt(jun10, intPtr(5), false),
		reviewAt(jun10, intPtr(2), false),
		reviewAt(jun13, intPtr(4), true),
	}, w, 5)

	if len(m.Trend) != 8 {
		t.Fatalf("trend length: got %d, want 8", len(m.Trend))
	}

	byDate := make(map[string]analytics.TrendPoint, len(m.Trend))
	for _, p := range m.Trend {
		byDate[p.Date] = p
	}

	p := byDate["2025-06-10"]
	if p.Count != 2 {
		t.Errorf("2025-06-10 count: got %d, want 2", p.Count)
	}
	if p.AvgRating == nil || *p.AvgRating != 3.5 {
		t.Errorf("2025-06-10 avg: got %v, want 3.5", p.AvgRating)
	}

	p = byDate["2025-06-13"]
	if p.Count != 1 {
		t.Errorf("2025-06-13 count: got %d, want 1", p.Count)
	}

	p = byDate["2025-06-11"]
	if p.Count != 0 || p.AvgRating != nil {
		t.Errorf("2025-06-11: got count=%d avg=%v, want empty bucket", p.Count, p.AvgRating)
	}
}

func TestBuildMetrics_RecentIsCappedNewestFirst(t *testing.T) {
	w := mustWindow(t, "30d", testNow)

	var reviews []models.Review
	for i := 0; i < 8; i++ {
		reviews = append(reviews, reviewAt(testNow.Add(-time.Duration(i+1)*24*time.Hour), intPtr(3), false))
	}

	m := analytics.BuildMetrics(reviews, w, 5)

	if len(m.Recent) != 5 {
		t.Fatalf("recent length: got %d, want 5", len(m.Recent))
	}
	for i := 1; i < len(m.Recent); i++ {
		if m.Recent[i].CreatedAt.After(m.Recent[i-1].CreatedAt) {
			t.Errorf("recent[%d] is newer than recent[%d]", i, i-1)
		}
	}
	// Newest review is the one from a day ago.
	if !m.Recent[0].CreatedAt.Equal(testNow.Add(-24 * time.Hour)) {
		t.Errorf("recent[0].createdAt: got %v", m.Recent[0].CreatedAt)
	}
}

func TestZeroMetrics_MatchesEmptyComputation(t *testing.T) {
	w := mustWindow(t, "90d", testNow)

	zero := analytics.ZeroMetrics(w)
	built := analytics.BuildMetrics(nil, w, 5)

	if len(zero.Trend) != len(built.Trend) {
		t.Fatalf("trend length: zero=%d built=%d", len(zero.Trend), len(built.Trend))
	}
	for i := range zero.Trend {
		if zero.Trend[i] != built.Trend[i] {
			t.Errorf("trend[%d]: zero=%+v built=%+v", i, zero.Trend[i], built.Trend[i])
		}
	}
	if zero.TotalReviews != 0 || zero.AvgRating != nil || zero.ResponseRate != 0 {
		t.Errorf("zero metrics not zero: %+v", zero)
	}
}
