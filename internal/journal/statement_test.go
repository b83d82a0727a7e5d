package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tradescope/internal/models"
)

func statementParams() Params {
	return Params{
		MaxLossPct: decimal.NewFromFloat(1.0),
		ObjWeekPct: decimal.NewFromFloat(4.0),
		ObjDayPct:  decimal.NewFromFloat(2.0),
	}
}

func testAccount(base string) models.Account {
	return models.Account{
		ID:          "acc-1",
		UserID:      "user-1",
		Name:        "FTMO 50k",
		BaseCapital: decimal.RequireFromString(base),
	}
}

func TestWeekdayGroupsFullWeeks(t *testing.T) {
	// Feb 2026 starts on a Sunday: four clean Monday-to-Friday groups.
	groups := weekdayGroups(time.February, 2026)
	want := [][]int{
		{2, 3, 4, 5, 6},
		{9, 10, 11, 12, 13},
		{16, 17, 18, 19, 20},
		{23, 24, 25, 26, 27},
	}
	if len(groups) != len(want) {
		t.Fatalf("groups=%d want %d", len(groups), len(want))
	}
	for i := range want {
		if len(groups[i]) != len(want[i]) {
			t.Fatalf("group %d len=%d want %d", i, len(groups[i]), len(want[i]))
		}
		for j := range want[i] {
			if groups[i][j] != want[i][j] {
				t.Fatalf("group %d = %v want %v", i, groups[i], want[i])
			}
		}
	}
}

func TestWeekdayGroupsPartialFirstWeek(t *testing.T) {
	// Jan 2026 starts on a Thursday: the first group holds only Thu+Fri.
	groups := weekdayGroups(time.January, 2026)
	if len(groups) != 5 {
		t.Fatalf("groups=%d want 5", len(groups))
	}
	if len(groups[0]) != 2 || groups[0][0] != 1 || groups[0][1] != 2 {
		t.Fatalf("first group=%v want [1 2]", groups[0])
	}
	if len(groups[4]) != 5 || groups[4][0] != 26 || groups[4][4] != 30 {
		t.Fatalf("last group=%v want [26..30]", groups[4])
	}
}

func TestBuildSheetsRunningCapital(t *testing.T) {
	account := testAccount("50000")
	trades := []models.Trade{
		trade(d(2026, time.February, 2), "101.26"),
		trade(d(2026, time.February, 3), "-526.88"),
	}
	sheets := BuildSheets(account, trades, statementParams(), d(2026, time.February, 25))
	if len(sheets) != 1 {
		t.Fatalf("sheets=%d want 1", len(sheets))
	}
	sheet := sheets[0]
	if sheet.Month != time.February || sheet.Year != 2026 {
		t.Fatalf("sheet month=%v %d", sheet.Month, sheet.Year)
	}
	if !sheet.StartCapital.Equal(decimal.RequireFromString("50000")) {
		t.Fatalf("startCapital=%s", sheet.StartCapital)
	}
	// Constant daily objective from starting capital.
	if !sheet.ObjPerDay.Equal(decimal.RequireFromString("1000")) {
		t.Fatalf("objPerDay=%s want 1000", sheet.ObjPerDay)
	}

	week1 := sheet.Weeks[0]
	mon := week1.Days[0]
	if mon.Day != 2 || !mon.CapitalBefore.Equal(decimal.RequireFromString("50000")) {
		t.Fatalf("monday row=%+v", mon)
	}
	if !mon.CapitalAfter.Equal(decimal.RequireFromString("50101.26")) {
		t.Fatalf("monday capitalAfter=%s want 50101.26", mon.CapitalAfter)
	}
	tue := week1.Days[1]
	if !tue.CapitalBefore.Equal(decimal.RequireFromString("50101.26")) {
		t.Fatalf("tuesday capitalBefore=%s", tue.CapitalBefore)
	}
	if !tue.CapitalAfter.Equal(decimal.RequireFromString("49574.38")) {
		t.Fatalf("tuesday capitalAfter=%s want 49574.38", tue.CapitalAfter)
	}
	// Day pct over that day's running capital, not the month start.
	wantPct := -526.88 / 50101.26 * 100
	if diff := tue.Pct - wantPct; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("tuesday pct=%v want %v", tue.Pct, wantPct)
	}

	if !sheet.MonthPnL.Equal(decimal.RequireFromString("-425.62")) {
		t.Fatalf("monthPnL=%s", sheet.MonthPnL)
	}
	if !sheet.EndCapital.Equal(decimal.RequireFromString("49574.38")) {
		t.Fatalf("endCapital=%s", sheet.EndCapital)
	}
	if sheet.DayCount != 20 {
		t.Fatalf("dayCount=%d want 20", sheet.DayCount)
	}
	if sheet.AnchorRow != 9 {
		t.Fatalf("anchorRow=%d want 9", sheet.AnchorRow)
	}
	if week1.AnchorOffset != 2 {
		t.Fatalf("anchorOffset=%d want 2", week1.AnchorOffset)
	}
}

func TestBuildSheetsWeekPctUsesStartCapital(t *testing.T) {
	account := testAccount("10000")
	trades := []models.Trade{
		trade(d(2026, time.February, 2), "5000"),
		trade(d(2026, time.February, 9), "300"),
	}
	sheets := BuildSheets(account, trades, statementParams(), d(2026, time.February, 25))
	sheet := sheets[0]

	// Week 2 gained 300; the denominator stays the month's starting
	// capital even though week 1 already grew the account.
	week2 := sheet.Weeks[1]
	if got, want := week2.Pct, 3.0; got != want {
		t.Fatalf("week2 pct=%v want %v", got, want)
	}
}

func TestBuildSheetsPriorMonthsFeedStartCapital(t *testing.T) {
	account := testAccount("50000")
	trades := []models.Trade{
		trade(d(2026, time.January, 15), "1500"),
		trade(d(2026, time.February, 2), "-200"),
	}
	sheets := BuildSheets(account, trades, statementParams(), d(2026, time.February, 25))
	if len(sheets) != 2 {
		t.Fatalf("sheets=%d want 2", len(sheets))
	}
	if sheets[0].Month != time.January || sheets[1].Month != time.February {
		t.Fatalf("sheet order %v %v", sheets[0].Month, sheets[1].Month)
	}
	feb := sheets[1]
	if !feb.StartCapital.Equal(decimal.RequireFromString("51500")) {
		t.Fatalf("feb startCapital=%s want 51500", feb.StartCapital)
	}
	if !feb.EndCapital.Equal(decimal.RequireFromString("51300")) {
		t.Fatalf("feb endCapital=%s want 51300", feb.EndCapital)
	}
}

func TestBuildSheetsEmptyHistory(t *testing.T) {
	account := testAccount("25000")
	sheets := BuildSheets(account, nil, statementParams(), d(2026, time.August, 31))
	if len(sheets) != 1 {
		t.Fatalf("sheets=%d want 1", len(sheets))
	}
	sheet := sheets[0]
	if sheet.Month != time.August || sheet.Year != 2026 {
		t.Fatalf("sheet=%v %d want August 2026", sheet.Month, sheet.Year)
	}
	if !sheet.MonthPnL.IsZero() {
		t.Fatalf("monthPnL=%s want 0", sheet.MonthPnL)
	}
	if !sheet.StartCapital.Equal(account.BaseCapital) {
		t.Fatalf("startCapital=%s", sheet.StartCapital)
	}
	if sheet.DayCount == 0 {
		t.Fatalf("expected weekday rows for the synthesized month")
	}
}

func TestBuildSheetsWeekSumsMatchMonth(t *testing.T) {
	account := testAccount("50000")
	trades := []models.Trade{
		trade(d(2026, time.February, 2), "120"),
		trade(d(2026, time.February, 6), "-45.50"),
		trade(d(2026, time.February, 11), "310.10"),
		trade(d(2026, time.February, 20), "-12.34"),
		trade(d(2026, time.February, 27), "99"),
	}
	sheet := BuildSheets(account, trades, statementParams(), d(2026, time.February, 28))[0]

	sum := decimal.Zero
	for _, week := range sheet.Weeks {
		daySum := decimal.Zero
		for _, day := range week.Days {
			daySum = daySum.Add(day.PnL)
		}
		if !daySum.Equal(week.PnL) {
			t.Fatalf("week %d pnl=%s days=%s", week.Index, week.PnL, daySum)
		}
		sum = sum.Add(week.PnL)
	}
	if !sum.Equal(sheet.MonthPnL) {
		t.Fatalf("weeks sum=%s month=%s", sum, sheet.MonthPnL)
	}
	last := sheet.Weeks[len(sheet.Weeks)-1]
	if !last.Days[len(last.Days)-1].CapitalAfter.Equal(sheet.EndCapital) {
		t.Fatalf("final running capital diverges from end capital")
	}
}

func TestPctOfNonPositiveWhole(t *testing.T) {
	if got := pctOf(decimal.NewFromInt(50), decimal.Zero); got != 0 {
		t.Fatalf("pct over zero=%v want 0", got)
	}
	if got := pctOf(decimal.NewFromInt(50), decimal.NewFromInt(-100)); got != 0 {
		t.Fatalf("pct over negative=%v want 0", got)
	}
}
