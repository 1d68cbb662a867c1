// Package report contains the financial, cash-flow, and tax reporting use cases.
package report

import (
	"fmt"
	"time"
)

// Granularity represents the bucket size used for time-series reports.
type Granularity string

const (
	GranularityDaily   Granularity = "daily"
	GranularityWeekly  Granularity = "weekly"
	GranularityMonthly Granularity = "monthly"
)

// ValidGranularity returns true for a supported granularity value.
func ValidGranularity(g Granularity) bool {
	return g == GranularityDaily || g == GranularityWeekly || g == GranularityMonthly
}

// PeriodInfo holds the bounds and label of a single time bucket.
type PeriodInfo struct {
	Date        time.Time
	PeriodStart time.Time
	PeriodEnd   time.Time
	PeriodLabel string
}

// PeriodLabel generates a human-readable label for the period containing date.
// Formats: daily "2006-01-02", weekly "W{iso-week} {year}", monthly "Jan 2006".
func PeriodLabel(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityDaily:
		return date.Format("2006-01-02")
	case GranularityWeekly:
		year, week := date.ISOWeek()
		return fmt.Sprintf("W%02d %d", week, year)
	case GranularityMonthly:
		return date.Format("Jan 2006")
	default:
		return date.Format("2006-01-02")
	}
}

// PeriodSeries generates every period between start and end for the given
// granularity. The series is continuous: periods with no activity still
// appear, so charts render without gaps.
func PeriodSeries(start, end time.Time, granularity Granularity) []PeriodInfo {
	var periods []PeriodInfo
	loc := start.Location()

	switch granularity {
	case GranularityDaily:
		current := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
		for !current.After(end) {
			periods = append(periods, PeriodInfo{
				Date:        current,
				PeriodStart: current,
				PeriodEnd:   current,
				PeriodLabel: PeriodLabel(current, GranularityDaily),
			})
			current = current.AddDate(0, 0, 1)
		}

	case GranularityWeekly:
		// Start from the Monday of the week containing start
		current := weekStart(start)
		for !current.After(end) {
			weekEnd := current.AddDate(0, 0, 6)
			if weekEnd.After(end) {
				weekEnd = end
			}
			periods = append(periods, PeriodInfo{
				Date:        current,
				PeriodStart: current,
				PeriodEnd:   weekEnd,
				PeriodLabel: PeriodLabel(current, GranularityWeekly),
			})
			current = current.AddDate(0, 0, 7)
		}

	case GranularityMonthly:
		current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, loc)
		for !current.After(end) {
			monthEnd := current.AddDate(0, 1, -1)
			periods = append(periods, PeriodInfo{
				Date:        current,
				PeriodStart: current,
				PeriodEnd:   monthEnd,
				PeriodLabel: PeriodLabel(current, GranularityMonthly),
			})
			current = current.AddDate(0, 1, 0)
		}
	}

	return periods
}

// PeriodKey returns a unique key for the period containing date. Records are
// assigned to buckets by matching this key against the series.
func PeriodKey(date time.Time, granularity Granularity) string {
	switch granularity {
	case GranularityDaily:
		return date.Format("2006-01-02")
	case GranularityWeekly:
		return weekStart(date).Format("2006-01-02")
	case GranularityMonthly:
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location()).Format("2006-01-02")
	default:
		return date.Format("2006-01-02")
	}
}

// weekStart returns the Monday of the week containing date.
func weekStart(date time.Time) time.Time {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday is 7
	}
	return time.Date(date.Year(), date.Month(), date.Day()-(weekday-1), 0, 0, 0, 0, date.Location())
}

// inWindow reports whether date falls within [start, end], inclusive on both
// ends. Zero dates never match, which drops records with no usable date.
func inWindow(date, start, end time.Time) bool {
	if date.IsZero() {
		return false
	}
	return !date.Before(start) && !date.After(end)
}
