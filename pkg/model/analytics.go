package model

// AnalyticsEvent is append-only: events are never updated or deleted and are
// the sole input to the analytics summary. Timestamp is RFC3339 UTC, stored
// as a string so range filters compare lexicographically.
type AnalyticsEvent struct {
	ID        string `json:"id" bson:"id"`
	Page      string `json:"page" bson:"page" validate:"required"`
	Section   string `json:"section,omitempty" bson:"section,omitempty"`
	VisitorID string `json:"visitor_id" bson:"visitor_id" validate:"required"`
	Timestamp string `json:"timestamp" bson:"timestamp"`
}

type SectionViews struct {
	Section string `json:"section"`
	Views   int64  `json:"views"`
}

type DailyViews struct {
	Date  string `json:"date"`
	Views int64  `json:"views"`
}

type AnalyticsSummary struct {
	TotalViews      int64          `json:"total_views"`
	TodayViews      int64          `json:"today_views"`
	WeekViews       int64          `json:"week_views"`
	MonthViews      int64          `json:"month_views"`
	UniqueVisitors  int64          `json:"unique_visitors"`
	PopularSections []SectionViews `json:"popular_sections"`
	DailyViews      []DailyViews   `json:"daily_views"`
}
