// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers go straight to the database with raw SQL and return read models
// shaped for the admin dashboard.
package queries

import "time"

// Dashboard period selectors. Any other value falls back to the monthly
// window.
const (
	PeriodWeekly = "weekly"
	PeriodYearly = "yearly"
)

// periodCutoff returns the inclusive lower bound for period-filtered
// aggregation: 7 days back for weekly, 365 for yearly, 30 for anything else.
func periodCutoff(now time.Time, period string) time.Time {
	switch period {
	case PeriodWeekly:
		return now.AddDate(0, 0, -7)
	case PeriodYearly:
		return now.AddDate(0, 0, -365)
	default:
		return now.AddDate(0, 0, -30)
	}
}

// periodLabelFormat returns the Postgres to_char format used to bucket the
// revenue series: calendar date for weekly, year for yearly, year-month
// otherwise.
func periodLabelFormat(period string) string {
	switch period {
	case PeriodWeekly:
		return "YYYY-MM-DD"
	case PeriodYearly:
		return "YYYY"
	default:
		return "YYYY-MM"
	}
}
