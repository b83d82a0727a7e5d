package journal

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tradescope/internal/models"
)

// Summary is the headline card row of an account dashboard. Capital always
// includes payout rows (a withdrawal reduces equity); every trading
// statistic always excludes them. The two rules are applied uniformly across
// all views.
type Summary struct {
	Capital          decimal.Decimal  `json:"capital"`
	CapitalChangePct float64          `json:"capital_change_pct"`
	TotalPnL         decimal.Decimal  `json:"total_pnl"`
	TradeCount       int              `json:"trade_count"`
	Wins             int              `json:"wins"`
	Losses           int              `json:"losses"`
	WinRate          float64          `json:"win_rate"`
	MonthlyPnL       decimal.Decimal  `json:"monthly_pnl"`
	MonthlyTrades    int              `json:"monthly_trades"`
	AvgRR            *decimal.Decimal `json:"avg_rr"`
	RRTrades         int              `json:"rr_trades"`
	PayoutTotal      decimal.Decimal  `json:"payout_total"`
}

// Summarize reduces an account's full trade history (payouts included) into
// the dashboard summary. now fixes the wall-clock month for MonthlyPnL.
func Summarize(account models.Account, trades []models.Trade, now time.Time) Summary {
	s := Summary{Capital: account.BaseCapital.Add(SumPnL(trades))}

	if account.BaseCapital.IsPositive() {
		s.CapitalChangePct = pctOf(s.Capital.Sub(account.BaseCapital), account.BaseCapital)
	}

	stats := ExcludePayouts(trades)
	r := ComputeRatios(stats)
	s.TotalPnL = r.TotalPnL
	s.TradeCount = r.Total
	s.Wins = r.Wins
	s.Losses = r.Losses
	s.WinRate = r.WinRate
	s.AvgRR = r.AvgRR
	s.RRTrades = r.RRCount

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for _, t := range stats {
		if !t.Date.Before(monthStart) {
			s.MonthlyPnL = s.MonthlyPnL.Add(t.PnL)
			s.MonthlyTrades++
		}
	}

	for _, p := range Payouts(trades) {
		s.PayoutTotal = s.PayoutTotal.Add(p.PnL.Abs())
	}
	return s
}

// WeekdayPnL is the Monday-first day-of-week performance bar.
type WeekdayPnL struct {
	Weekday time.Weekday    `json:"weekday"`
	PnL     decimal.Decimal `json:"pnl"`
	Trades  int             `json:"trades"`
}

func PnLByWeekday(trades []models.Trade) []WeekdayPnL {
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	out := make([]WeekdayPnL, len(order))
	idx := make(map[time.Weekday]int, len(order))
	for i, wd := range order {
		out[i] = WeekdayPnL{Weekday: wd}
		idx[wd] = i
	}
	for _, t := range trades {
		i := idx[t.Date.Weekday()]
		out[i].PnL = out[i].PnL.Add(t.PnL)
		out[i].Trades++
	}
	return out
}

// SideSplit compares LONG against SHORT performance.
type SideSplit struct {
	Side    string          `json:"side"`
	Trades  int             `json:"trades"`
	PnL     decimal.Decimal `json:"pnl"`
	WinRate float64         `json:"win_rate"`
}

func LongShortSplit(trades []models.Trade) (long, short SideSplit) {
	long.Side = models.TradeTypeLong
	short.Side = models.TradeTypeShort
	longWins, shortWins := 0, 0
	for _, t := range trades {
		if t.Type == nil {
			continue
		}
		switch *t.Type {
		case models.TradeTypeLong:
			long.Trades++
			long.PnL = long.PnL.Add(t.PnL)
			if t.PnL.IsPositive() {
				longWins++
			}
		case models.TradeTypeShort:
			short.Trades++
			short.PnL = short.PnL.Add(t.PnL)
			if t.PnL.IsPositive() {
				shortWins++
			}
		}
	}
	if long.Trades > 0 {
		long.WinRate = float64(longWins) / float64(long.Trades) * 100
	}
	if short.Trades > 0 {
		short.WinRate = float64(shortWins) / float64(short.Trades) * 100
	}
	return long, short
}

// StrategySplit reports how often the trader followed their playbook and
// what each half of the ledger earned.
type StrategySplit struct {
	Followed      int             `json:"followed"`
	Total         int             `json:"total"`
	FollowedPct   float64         `json:"followed_pct"`
	FollowedPnL   decimal.Decimal `json:"followed_pnl"`
	UnfollowedPnL decimal.Decimal `json:"unfollowed_pnl"`
}

func SplitByStrategy(trades []models.Trade) StrategySplit {
	var s StrategySplit
	for _, t := range trades {
		s.Total++
		if t.FollowedStrategy {
			s.Followed++
			s.FollowedPnL = s.FollowedPnL.Add(t.PnL)
		} else {
			s.UnfollowedPnL = s.UnfollowedPnL.Add(t.PnL)
		}
	}
	if s.Total > 0 {
		s.FollowedPct = float64(s.Followed) / float64(s.Total) * 100
	}
	return s
}

// RRStats summarizes reward ratios over the trades that carry one.
type RRStats struct {
	Avg   *decimal.Decimal `json:"avg"`
	Best  *decimal.Decimal `json:"best"`
	Worst *decimal.Decimal `json:"worst"`
	Count int              `json:"count"`
}

func ComputeRRStats(trades []models.Trade) RRStats {
	var s RRStats
	sum := decimal.Zero
	for _, t := range trades {
		if t.RR == nil {
			continue
		}
		rr := *t.RR
		sum = sum.Add(rr)
		s.Count++
		if s.Best == nil || rr.GreaterThan(*s.Best) {
			v := rr
			s.Best = &v
		}
		if s.Worst == nil || rr.LessThan(*s.Worst) {
			v := rr
			s.Worst = &v
		}
	}
	if s.Count > 0 {
		avg := sum.Div(decimal.NewFromInt(int64(s.Count)))
		s.Avg = &avg
	}
	return s
}

// InstrumentPnL ranks instruments by net pnl.
type InstrumentPnL struct {
	Instrument string          `json:"instrument"`
	PnL        decimal.Decimal `json:"pnl"`
	Trades     int             `json:"trades"`
}

func TopInstruments(trades []models.Trade, limit int) []InstrumentPnL {
	agg := make(map[string]InstrumentPnL)
	for _, t := range trades {
		if t.Instrument == nil || *t.Instrument == "" {
			continue
		}
		row := agg[*t.Instrument]
		row.Instrument = *t.Instrument
		row.PnL = row.PnL.Add(t.PnL)
		row.Trades++
		agg[*t.Instrument] = row
	}
	out := make([]InstrumentPnL, 0, len(agg))
	for _, row := range agg {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PnL.GreaterThan(out[j].PnL)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// EquityPoint is one step of the account equity curve. Index 0 is the base
// capital before any trade.
type EquityPoint struct {
	Index  int             `json:"index"`
	Date   *time.Time      `json:"date,omitempty"`
	Equity decimal.Decimal `json:"equity"`
}

func EquityCurve(baseCapital decimal.Decimal, trades []models.Trade) []EquityPoint {
	sorted := sortByDate(trades)
	points := make([]EquityPoint, 0, len(sorted)+1)
	points = append(points, EquityPoint{Index: 0, Equity: baseCapital})
	equity := baseCapital
	for i, t := range sorted {
		equity = equity.Add(t.PnL)
		d := t.Date
		points = append(points, EquityPoint{Index: i + 1, Date: &d, Equity: equity})
	}
	return points
}

// RollingWinRate computes the win rate over a sliding window of the last
// `window` trades at each point of the date-ordered history.
func RollingWinRate(trades []models.Trade, window int) []float64 {
	if window <= 0 {
		window = 10
	}
	sorted := sortByDate(trades)
	out := make([]float64, 0, len(sorted))
	for i := range sorted {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		wins := 0
		for _, t := range sorted[lo : i+1] {
			if t.PnL.IsPositive() {
				wins++
			}
		}
		out = append(out, float64(wins)/float64(i+1-lo)*100)
	}
	return out
}

// AccountStats is one row of the cross-account comparison table.
type AccountStats struct {
	Account models.Account  `json:"account"`
	Capital decimal.Decimal `json:"capital"`
	PnL     decimal.Decimal `json:"pnl"`
	Trades  int             `json:"trades"`
	WinRate float64         `json:"win_rate"`
}

// CompareAccounts builds per-account rows from the user's full trade set,
// sorted by trading pnl descending. Capital includes payouts, PnL and
// WinRate do not.
func CompareAccounts(accounts []models.Account, trades []models.Trade) []AccountStats {
	byAccount := make(map[string][]models.Trade)
	for _, t := range trades {
		byAccount[t.AccountID] = append(byAccount[t.AccountID], t)
	}
	out := make([]AccountStats, 0, len(accounts))
	for _, a := range accounts {
		at := byAccount[a.ID]
		r := ComputeRatios(ExcludePayouts(at))
		out = append(out, AccountStats{
			Account: a,
			Capital: a.BaseCapital.Add(SumPnL(at)),
			PnL:     r.TotalPnL,
			Trades:  r.Total,
			WinRate: r.WinRate,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PnL.GreaterThan(out[j].PnL)
	})
	return out
}

func sortByDate(trades []models.Trade) []models.Trade {
	sorted := make([]models.Trade, len(trades))
	copy(sorted, trades)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
