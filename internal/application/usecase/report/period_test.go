package report

import (
	"testing"
	"time"
)

func TestPeriodSeries_MonthlyContinuous(t *testing.T) {
	series := PeriodSeries(date(2025, time.January, 15), date(2025, time.April, 10), GranularityMonthly)

	if len(series) != 4 {
		t.Fatalf("expected 4 monthly periods, got %d", len(series))
	}
	expected := []string{"Jan 2025", "Feb 2025", "Mar 2025", "Apr 2025"}
	for i, label := range expected {
		if series[i].PeriodLabel != label {
			t.Errorf("period %d: expected label %q, got %q", i, label, series[i].PeriodLabel)
		}
	}
	if !series[0].PeriodStart.Equal(date(2025, time.January, 1)) {
		t.Errorf("expected first period to start at month boundary, got %s", series[0].PeriodStart)
	}
}

func TestPeriodSeries_DailyCount(t *testing.T) {
	series := PeriodSeries(date(2025, time.March, 1), date(2025, time.March, 7), GranularityDaily)

	if len(series) != 7 {
		t.Fatalf("expected 7 daily periods, got %d", len(series))
	}
	if series[0].PeriodLabel != "2025-03-01" {
		t.Errorf("unexpected first label %q", series[0].PeriodLabel)
	}
}

func TestPeriodSeries_WeeklyStartsMonday(t *testing.T) {
	// 2025-03-05 is a Wednesday; its week starts Monday 2025-03-03.
	series := PeriodSeries(date(2025, time.March, 5), date(2025, time.March, 20), GranularityWeekly)

	if len(series) != 3 {
		t.Fatalf("expected 3 weekly periods, got %d", len(series))
	}
	if series[0].PeriodStart.Weekday() != time.Monday {
		t.Errorf("expected week to start on Monday, got %s", series[0].PeriodStart.Weekday())
	}
	if !series[0].PeriodStart.Equal(date(2025, time.March, 3)) {
		t.Errorf("expected week start 2025-03-03, got %s", series[0].PeriodStart)
	}
}

func TestPeriodKey(t *testing.T) {
	tests := []struct {
		name        string
		granularity Granularity
		input       time.Time
		expected    string
	}{
		{name: "daily is the date itself", granularity: GranularityDaily, input: date(2025, time.March, 5), expected: "2025-03-05"},
		{name: "weekly snaps to Monday", granularity: GranularityWeekly, input: date(2025, time.March, 5), expected: "2025-03-03"},
		{name: "weekly Sunday snaps back", granularity: GranularityWeekly, input: date(2025, time.March, 9), expected: "2025-03-03"},
		{name: "monthly snaps to first", granularity: GranularityMonthly, input: date(2025, time.March, 31), expected: "2025-03-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeriodKey(tt.input, tt.granularity); got != tt.expected {
				t.Errorf("PeriodKey(%s, %s) = %q, expected %q", tt.input.Format("2006-01-02"), tt.granularity, got, tt.expected)
			}
		})
	}
}

func TestValidGranularity(t *testing.T) {
	for _, g := range []Granularity{GranularityDaily, GranularityWeekly, GranularityMonthly} {
		if !ValidGranularity(g) {
			t.Errorf("expected %s to be valid", g)
		}
	}
	if ValidGranularity("quarterly") {
		t.Error("expected quarterly to be invalid")
	}
}

func TestInWindow(t *testing.T) {
	start := date(2025, time.January, 1)
	end := date(2025, time.January, 31)

	tests := []struct {
		name     string
		input    time.Time
		expected bool
	}{
		{name: "start boundary included", input: start, expected: true},
		{name: "end boundary included", input: end, expected: true},
		{name: "inside", input: date(2025, time.January, 15), expected: true},
		{name: "before", input: date(2024, time.December, 31), expected: false},
		{name: "after", input: date(2025, time.February, 1), expected: false},
		{name: "zero date excluded", input: time.Time{}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inWindow(tt.input, start, end); got != tt.expected {
				t.Errorf("inWindow(%v) = %v, expected %v", tt.input, got, tt.expected)
			}
		})
	}
}
