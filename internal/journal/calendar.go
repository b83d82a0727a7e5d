package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"tradescope/internal/models"
)

// DayCell is one non-empty position of the calendar grid. Bucket is nil for
// days without trades.
type DayCell struct {
	Day    int        `json:"day"`
	Bucket *DayBucket `json:"bucket,omitempty"`
}

// Grid is a 7-column Monday-first month view. Cells holds Offset leading
// nils (the blanks aligning day 1 under its weekday) followed by one cell
// per day of the month.
type Grid struct {
	Year   int        `json:"year"`
	Month  time.Month `json:"month"`
	Offset int        `json:"offset"`
	Cells  []*DayCell `json:"cells"`

	TradingDays int             `json:"trading_days"`
	GreenDays   int             `json:"green_days"`
	RedDays     int             `json:"red_days"`
	MonthPnL    decimal.Decimal `json:"month_pnl"`
}

// DaysIn returns the Gregorian length of (month, year), leap years included.
func DaysIn(month time.Month, year int) int {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
}

// mondayFirstOffset converts Go's Sunday-based weekday of the month's first
// day into the number of leading blanks under a Monday-first header.
func mondayFirstOffset(month time.Month, year int) int {
	wd := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	if wd == time.Sunday {
		return 6
	}
	return int(wd) - 1
}

// BuildGrid lays the month's day buckets into the calendar grid.
func BuildGrid(trades []models.Trade, month time.Month, year int) Grid {
	g := Grid{
		Year:   year,
		Month:  month,
		Offset: mondayFirstOffset(month, year),
	}
	buckets := BucketByDay(trades, month, year)

	g.Cells = make([]*DayCell, 0, g.Offset+DaysIn(month, year))
	for i := 0; i < g.Offset; i++ {
		g.Cells = append(g.Cells, nil)
	}
	for d := 1; d <= DaysIn(month, year); d++ {
		cell := &DayCell{Day: d}
		if b, ok := buckets[d]; ok {
			bucket := b
			cell.Bucket = &bucket
			g.TradingDays++
			if b.PnL.IsPositive() {
				g.GreenDays++
			} else if b.PnL.IsNegative() {
				g.RedDays++
			}
			g.MonthPnL = g.MonthPnL.Add(b.PnL)
		}
		g.Cells = append(g.Cells, cell)
	}
	return g
}

// PrevMonth steps the displayed month back one, wrapping the year at
// January. Pure navigation: callers keep the loaded trade set.
func PrevMonth(month time.Month, year int) (time.Month, int) {
	if month == time.January {
		return time.December, year - 1
	}
	return month - 1, year
}

// NextMonth steps the displayed month forward one, wrapping at December.
func NextMonth(month time.Month, year int) (time.Month, int) {
	if month == time.December {
		return time.January, year + 1
	}
	return month + 1, year
}
