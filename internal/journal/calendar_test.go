package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tradescope/internal/models"
)

func TestDaysIn(t *testing.T) {
	cases := []struct {
		month time.Month
		year  int
		want  int
	}{
		{time.February, 2026, 28},
		{time.February, 2024, 29},
		{time.January, 2026, 31},
		{time.April, 2026, 30},
		{time.December, 2026, 31},
	}
	for _, tc := range cases {
		if got := DaysIn(tc.month, tc.year); got != tc.want {
			t.Fatalf("DaysIn(%v %d)=%d want %d", tc.month, tc.year, got, tc.want)
		}
	}
}

func TestMondayFirstOffset(t *testing.T) {
	// Feb 1 2026 is a Sunday: six blanks before it under a Monday-first header.
	if got := mondayFirstOffset(time.February, 2026); got != 6 {
		t.Fatalf("feb 2026 offset=%d want 6", got)
	}
	// Jun 1 2026 is a Monday.
	if got := mondayFirstOffset(time.June, 2026); got != 0 {
		t.Fatalf("jun 2026 offset=%d want 0", got)
	}
	// Jan 1 2026 is a Thursday.
	if got := mondayFirstOffset(time.January, 2026); got != 3 {
		t.Fatalf("jan 2026 offset=%d want 3", got)
	}
}

func TestBuildGrid(t *testing.T) {
	trades := []models.Trade{
		trade(d(2026, time.February, 2), "101.26"),
		trade(d(2026, time.February, 3), "-526.88"),
		trade(d(2026, time.February, 3), "20.00"),
		trade(d(2026, time.February, 10), "75.00"),
	}
	g := BuildGrid(trades, time.February, 2026)

	if g.Offset != 6 {
		t.Fatalf("offset=%d want 6", g.Offset)
	}
	if len(g.Cells) != 6+28 {
		t.Fatalf("cells=%d want 34", len(g.Cells))
	}
	for i := 0; i < 6; i++ {
		if g.Cells[i] != nil {
			t.Fatalf("cell %d not blank", i)
		}
	}
	if g.Cells[6] == nil || g.Cells[6].Day != 1 {
		t.Fatalf("first day cell misplaced")
	}

	if g.TradingDays != 3 || g.GreenDays != 2 || g.RedDays != 1 {
		t.Fatalf("days trading=%d green=%d red=%d", g.TradingDays, g.GreenDays, g.RedDays)
	}
	if !g.MonthPnL.Equal(decimal.RequireFromString("-330.62")) {
		t.Fatalf("monthPnL=%s want -330.62", g.MonthPnL)
	}

	day3 := g.Cells[6+2]
	if day3.Bucket == nil || day3.Bucket.Count != 2 {
		t.Fatalf("day 3 bucket=%+v", day3.Bucket)
	}
	day4 := g.Cells[6+3]
	if day4.Bucket != nil {
		t.Fatalf("day 4 should be empty")
	}
}

func TestMonthNavigation(t *testing.T) {
	if m, y := PrevMonth(time.January, 2026); m != time.December || y != 2025 {
		t.Fatalf("prev jan=%v %d", m, y)
	}
	if m, y := NextMonth(time.December, 2025); m != time.January || y != 2026 {
		t.Fatalf("next dec=%v %d", m, y)
	}
	if m, y := NextMonth(time.May, 2026); m != time.June || y != 2026 {
		t.Fatalf("next may=%v %d", m, y)
	}
}
