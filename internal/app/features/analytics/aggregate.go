// internal/app/features/analytics/aggregate.go
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/hirelens/hirelens/internal/domain/models"
)

// ratingMin/ratingMax bound the histogram domain. The five keys are
// always present in the distribution; ratings outside this band (or
// absent ones) still count toward totals but never toward the histogram
// or any average.
const (
	ratingMin = 1
	ratingMax = 5
)

// BuildMetrics computes the full aggregation shape for one resolved
// window. The review slice is everything in [w.Start, w.End) for the
// scoped company; all math happens here, in one pass plus a sort for the
// recent slice, so the output is deterministic for a fixed input set.
func BuildMetrics(reviews []models.Review, w Window, recentLimit int) Metrics {
	m := Metrics{
		RatingDistribution: emptyDistribution(),
		Trend:              emptyTrend(w),
		Recent:             []RecentItem{},
	}

	starts := w.bucketStarts()
	bucketSum := make([]int, len(starts))
	bucketRated := make([]int, len(starts))

	var ratedSum, ratedCount int
	for _, rv := range reviews {
		m.TotalReviews++
		if rv.RecruiterResponded {
			m.ReviewsWithResponse++
		}

		bi := bucketIndex(starts, w.End, rv.CreatedAt)
		if bi >= 0 {
			m.Trend[bi].Count++
		}

		if rv.OverallRating == nil {
			continue
		}
		rating := *rv.OverallRating
		if rating < ratingMin || rating > ratingMax {
			continue
		}
		m.RatingDistribution[rating]++
		ratedSum += rating
		ratedCount++
		if bi >= 0 {
			bucketSum[bi] += rating
			bucketRated[bi]++
		}
	}

	if ratedCount > 0 {
		avg := round1(float64(ratedSum) / float64(ratedCount))
		m.AvgRating = &avg
	}
	if m.TotalReviews > 0 {
		m.ResponseRate = int(math.Round(float64(m.ReviewsWithResponse) / float64(m.TotalReviews) * 100))
	}
	for i := range m.Trend {
		if bucketRated[i] > 0 {
			avg := round1(float64(bucketSum[i]) / float64(bucketRated[i]))
			m.Trend[i].AvgRating = &avg
		}
	}

	m.Recent = recentSlice(reviews, recentLimit)
	return m
}

// ZeroMetrics is the empty-scope result: the same shape as a real
// computation over a company with no reviews, including the full-length
// zero trend so the dashboard's x-axis stays intact.
func ZeroMetrics(w Window) Metrics {
	return Metrics{
		RatingDistribution: emptyDistribution(),
		Trend:              emptyTrend(w),
		Recent:             []RecentItem{},
	}
}

func emptyDistribution() map[int]int {
	dist := make(map[int]int, ratingMax)
	for r := ratingMin; r <= ratingMax; r++ {
		dist[r] = 0
	}
	return dist
}

// emptyTrend materializes every bucket of the window up front. Empty
// periods must appear: the trend consumer relies on equal x-axis spacing.
func emptyTrend(w Window) []TrendPoint {
	starts := w.bucketStarts()
	trend := make([]TrendPoint, len(starts))
	for i, t := range starts {
		trend[i] = TrendPoint{Date: t.Format("2006-01-02")}
	}
	return trend
}

// bucketIndex locates the bucket whose [start, next-start) interval holds
// ts, or -1 when ts falls outside the window.
func bucketIndex(starts []time.Time, end time.Time, ts time.Time) int {
	if len(starts) == 0 || ts.Before(starts[0]) || !ts.Before(end) {
		return -1
	}
	// First bucket starting after ts; ts belongs to the one before it.
	i := sort.Search(len(starts), func(i int) bool { return starts[i].After(ts) })
	return i - 1
}

// recentSlice returns the newest reviews, capped. The input is already
// newest-first from the store, but we re-sort with an ID tiebreak so
// equal timestamps cannot make the slice order depend on fetch order.
func recentSlice(reviews []models.Review, limit int) []RecentItem {
	if limit <= 0 {
		return []RecentItem{}
	}

	sorted := make([]models.Review, len(reviews))
	copy(sorted, reviews)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
		}
		return sorted[i].ID.Hex() > sorted[j].ID.Hex()
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]RecentItem, len(sorted))
	for i, rv := range sorted {
		out[i] = RecentItem{
			ID:                 rv.ID.Hex(),
			OverallRating:      rv.OverallRating,
			CreatedAt:          rv.CreatedAt,
			RecruiterResponded: rv.RecruiterResponded,
		}
	}
	return out
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
