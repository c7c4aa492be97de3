// Package summary contains the reporting and aggregation use cases.
package summary

import (
	"time"

	domainerror "github.com/hexapixel/backend/internal/domain/error"
)

// PeriodType is a token selecting a relative time window.
//
// Two families are in use: total summaries and top-item rankings accept
// today/7days/30days, count summaries accept 3days/7days/30days. Callers
// validate against their own family before computing a window.
type PeriodType string

const (
	PeriodToday  PeriodType = "today"
	Period3Days  PeriodType = "3days"
	Period7Days  PeriodType = "7days"
	Period30Days PeriodType = "30days"
)

// RangeDays returns the number of calendar days the current window spans.
func (p PeriodType) RangeDays() int {
	switch p {
	case PeriodToday:
		return 1
	case Period3Days:
		return 3
	case Period7Days:
		return 7
	case Period30Days:
		return 30
	default:
		return 0
	}
}

// PeriodWindow holds the current and previous window boundaries of a period.
// Bounds are inclusive on both ends.
type PeriodWindow struct {
	CurrentFrom  time.Time
	CurrentTo    time.Time
	PreviousFrom time.Time
	PreviousTo   time.Time
}

// ComputeWindow computes the window boundaries for a period type relative to
// now, using now's location for calendar day boundaries.
//
// For multi-day periods the previous window is the same span immediately
// preceding the current one, ending one second before CurrentFrom. For
// "today" the previous window is exactly one day earlier with the same
// wall-clock span (so PreviousTo is the end of yesterday, not
// CurrentFrom-1s). That asymmetry is part of the contract.
func ComputeWindow(periodType PeriodType, now time.Time) (PeriodWindow, error) {
	switch periodType {
	case PeriodToday:
		currentFrom := startOfDay(now)
		currentTo := endOfDay(now)
		return PeriodWindow{
			CurrentFrom:  currentFrom,
			CurrentTo:    currentTo,
			PreviousFrom: currentFrom.AddDate(0, 0, -1),
			PreviousTo:   currentTo.AddDate(0, 0, -1),
		}, nil
	case Period3Days, Period7Days, Period30Days:
		days := periodType.RangeDays()
		currentFrom := startOfDay(now.AddDate(0, 0, -(days - 1)))
		return PeriodWindow{
			CurrentFrom:  currentFrom,
			CurrentTo:    endOfDay(now),
			PreviousFrom: currentFrom.AddDate(0, 0, -days),
			PreviousTo:   currentFrom.Add(-time.Second),
		}, nil
	default:
		return PeriodWindow{}, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidPeriodType,
			"unsupported period type: "+string(periodType),
			domainerror.ErrInvalidPeriodType,
		)
	}
}

// startOfDay returns midnight of t's calendar day in t's location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns the last instant of t's calendar day in t's location.
func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
