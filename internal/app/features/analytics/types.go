// internal/app/features/analytics/types.go
package analytics

import "time"

// Meta echoes the resolved query back to the caller so the dashboard can
// label what it is showing.
type Meta struct {
	CompanyID   string    `json:"companyId"`
	Range       string    `json:"range"`
	Interval    string    `json:"interval"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// TrendPoint is one bucket of the trend series. Date is the bucket-start
// label (YYYY-MM-DD). AvgRating is nil for buckets with no rated reviews.
type TrendPoint struct {
	Date      string   `json:"date"`
	Count     int      `json:"count"`
	AvgRating *float64 `json:"avgRating"`
}

// RecentItem is one row of the capped most-recent slice.
type RecentItem struct {
	ID                 string    `json:"id"`
	OverallRating      *int      `json:"overallRating"`
	CreatedAt          time.Time `json:"createdAt"`
	RecruiterResponded bool      `json:"recruiterResponded"`
}

// Metrics is the fixed aggregation shape.
//
// AvgRating is a pointer so "no rated reviews" serializes as null rather
// than a fabricated zero; ResponseRate is a plain int because a rate of
// zero is well-defined even over an empty window.
type Metrics struct {
	TotalReviews        int          `json:"totalReviews"`
	AvgRating           *float64     `json:"avgRating"`
	ReviewsWithResponse int          `json:"reviewsWithResponse"`
	ResponseRate        int          `json:"responseRate"`
	RatingDistribution  map[int]int  `json:"ratingDistribution"`
	Trend               []TrendPoint `json:"trend"`
	Recent              []RecentItem `json:"recent"`
}

// Result is the full success payload for GET /analytics/recruiter.
type Result struct {
	Success bool    `json:"success"`
	Meta    Meta    `json:"meta"`
	Metrics Metrics `json:"metrics"`
}
