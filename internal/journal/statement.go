package journal

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tradescope/internal/models"
)

// Params are the statement targets, expressed as percentages of the month's
// starting capital. They arrive from user input unvalidated; zero or
// negative values flow through the arithmetic and produce correspondingly
// implausible (but well-defined) output. MaxLossPct is informational only.
type Params struct {
	MaxLossPct decimal.Decimal `json:"max_loss_pct"`
	ObjWeekPct decimal.Decimal `json:"obj_week_pct"`
	ObjDayPct  decimal.Decimal `json:"obj_day_pct"`
}

// DayRow is one weekday line of a statement sheet.
type DayRow struct {
	Day           int             `json:"day"`
	CapitalBefore decimal.Decimal `json:"capital_before"`
	CapitalAfter  decimal.Decimal `json:"capital_after"`
	PnL           decimal.Decimal `json:"pnl"`
	// PnL over CapitalBefore, as a percentage. 0 when capital is not positive.
	Pct float64 `json:"pct"`
}

// Week is a Monday-to-Friday group of day rows. Pct is the week's pnl over
// the month's fixed starting capital — not the running capital at week
// start; the stable denominator keeps weekly targets comparable within a
// month. AnchorOffset is the row within the group (middle row) that carries
// the merged week label and advance/delay cell in tabular renderings.
type Week struct {
	Index        int             `json:"index"`
	Days         []DayRow        `json:"days"`
	PnL          decimal.Decimal `json:"pnl"`
	Pct          float64         `json:"pct"`
	AnchorOffset int             `json:"anchor_offset"`
}

// Sheet is the computed statement for one account-month.
type Sheet struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`

	// BaseCapital plus every prior month's net pnl.
	StartCapital decimal.Decimal `json:"start_capital"`
	// StartCapital plus this month's pnl.
	EndCapital decimal.Decimal `json:"end_capital"`
	// Constant daily target: StartCapital * ObjDayPct / 100.
	ObjPerDay decimal.Decimal `json:"obj_per_day"`

	Params Params `json:"params"`
	Weeks  []Week `json:"weeks"`

	MonthPnL decimal.Decimal `json:"month_pnl"`
	// MonthPnL over StartCapital, as a percentage.
	MonthPct float64 `json:"month_pct"`

	// Total day rows across all weeks, and the middle row index among them
	// where the merged monthly-profit cell anchors.
	DayCount  int `json:"day_count"`
	AnchorRow int `json:"anchor_row"`
}

var oneHundred = decimal.NewFromInt(100)

// BuildSheets computes one statement sheet per month of trading history.
// Trades must be the account's non-payout rows; order does not matter. An
// account with no trades still yields a single zeroed sheet for now's month
// so an export is never empty.
func BuildSheets(account models.Account, trades []models.Trade, params Params, now time.Time) []Sheet {
	type monthKey struct {
		year  int
		month time.Month
	}
	byMonth := make(map[monthKey][]models.Trade)
	for _, t := range trades {
		k := monthKey{t.Date.Year(), t.Date.Month()}
		byMonth[k] = append(byMonth[k], t)
	}
	if len(byMonth) == 0 {
		byMonth[monthKey{now.Year(), now.Month()}] = nil
	}

	keys := make([]monthKey, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	sheets := make([]Sheet, 0, len(keys))
	for _, k := range keys {
		sheets = append(sheets, buildSheet(account, trades, byMonth[k], k.month, k.year, params))
	}
	return sheets
}

func buildSheet(account models.Account, allTrades, monthTrades []models.Trade, month time.Month, year int, params Params) Sheet {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	startCapital := account.BaseCapital
	for _, t := range allTrades {
		if t.Date.Before(monthStart) {
			startCapital = startCapital.Add(t.PnL)
		}
	}

	sheet := Sheet{
		Year:         year,
		Month:        month,
		StartCapital: startCapital,
		ObjPerDay:    startCapital.Mul(params.ObjDayPct).Div(oneHundred),
		Params:       params,
	}

	dayPnL := make(map[int]decimal.Decimal)
	for _, t := range monthTrades {
		d := t.Date.Day()
		dayPnL[d] = dayPnL[d].Add(t.PnL)
	}

	running := startCapital
	for wIdx, days := range weekdayGroups(month, year) {
		week := Week{
			Index:        wIdx + 1,
			Days:         make([]DayRow, 0, len(days)),
			AnchorOffset: len(days) / 2,
		}
		for _, d := range days {
			pnl := dayPnL[d]
			row := DayRow{
				Day:           d,
				CapitalBefore: running,
				CapitalAfter:  running.Add(pnl),
				PnL:           pnl,
				Pct:           pctOf(pnl, running),
			}
			running = row.CapitalAfter
			week.PnL = week.PnL.Add(pnl)
			sheet.MonthPnL = sheet.MonthPnL.Add(pnl)
			week.Days = append(week.Days, row)
			sheet.DayCount++
		}
		week.Pct = pctOf(week.PnL, startCapital)
		sheet.Weeks = append(sheet.Weeks, week)
	}

	sheet.EndCapital = startCapital.Add(sheet.MonthPnL)
	sheet.MonthPct = pctOf(sheet.MonthPnL, startCapital)
	if sheet.DayCount > 0 {
		sheet.AnchorRow = (sheet.DayCount - 1) / 2
	}
	return sheet
}

// weekdayGroups partitions the month's Monday-to-Friday days into week
// groups. A new group opens on each Monday; weekends contribute no entry at
// all, so the first and last group may hold fewer than five days.
func weekdayGroups(month time.Month, year int) [][]int {
	var groups [][]int
	var current []int
	for d := 1; d <= DaysIn(month, year); d++ {
		wd := time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Weekday()
		if wd == time.Monday && len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
		if wd >= time.Monday && wd <= time.Friday {
			current = append(current, d)
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// pctOf returns part/whole as a percentage, 0 when whole is not positive.
func pctOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	f, _ := part.Div(whole).Mul(oneHundred).Float64()
	return f
}
