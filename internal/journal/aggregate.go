// Package journal holds the aggregation core: day/week/month bucketing of
// trade rows, calendar grid construction, monthly statement layout, and the
// dashboard metric reductions. Everything in this package is a pure function
// over an already-fetched trade slice; degenerate input (no trades, zero
// capital, nil ratios) yields zeroed output, never an error.
package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"tradescope/internal/models"
)

// DayBucket is one calendar day's aggregate within a month.
type DayBucket struct {
	PnL    decimal.Decimal
	Count  int
	Trades []models.Trade
}

// BucketByDay groups trades falling inside (month, year) by day-of-month.
// Trades outside the month are ignored. Original trade rows are retained per
// bucket for drill-down panels.
func BucketByDay(trades []models.Trade, month time.Month, year int) map[int]DayBucket {
	buckets := make(map[int]DayBucket)
	for _, t := range trades {
		if t.Date.Month() != month || t.Date.Year() != year {
			continue
		}
		day := t.Date.Day()
		b := buckets[day]
		b.PnL = b.PnL.Add(t.PnL)
		b.Count++
		b.Trades = append(b.Trades, t)
		buckets[day] = b
	}
	return buckets
}

// Ratios is the win/loss reduction over a trade slice. AvgRR is nil when no
// trade carries a reward ratio; WinRate is 0 (not NaN) for an empty slice.
type Ratios struct {
	Total    int
	Wins     int
	Losses   int
	WinRate  float64
	TotalPnL decimal.Decimal
	AvgRR    *decimal.Decimal
	RRCount  int
}

func ComputeRatios(trades []models.Trade) Ratios {
	var r Ratios
	rrSum := decimal.Zero
	for _, t := range trades {
		r.Total++
		r.TotalPnL = r.TotalPnL.Add(t.PnL)
		switch {
		case t.PnL.IsPositive():
			r.Wins++
		case t.PnL.IsNegative():
			r.Losses++
		}
		if t.RR != nil {
			rrSum = rrSum.Add(*t.RR)
			r.RRCount++
		}
	}
	if r.Total > 0 {
		r.WinRate = float64(r.Wins) / float64(r.Total) * 100
	}
	if r.RRCount > 0 {
		avg := rrSum.Div(decimal.NewFromInt(int64(r.RRCount)))
		r.AvgRR = &avg
	}
	return r
}

// ExcludePayouts returns the trades that count toward trading statistics.
// Payout rows stay in capital math only.
func ExcludePayouts(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, 0, len(trades))
	for _, t := range trades {
		if t.IsPayout {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Payouts returns only the withdrawal rows.
func Payouts(trades []models.Trade) []models.Trade {
	out := make([]models.Trade, 0)
	for _, t := range trades {
		if t.IsPayout {
			out = append(out, t)
		}
	}
	return out
}

// SumPnL adds up the pnl column as stored.
func SumPnL(trades []models.Trade) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range trades {
		sum = sum.Add(t.PnL)
	}
	return sum
}
