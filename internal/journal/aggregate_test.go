package journal

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"tradescope/internal/models"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func trade(date time.Time, pnl string) models.Trade {
	return models.Trade{Date: date, PnL: decimal.RequireFromString(pnl)}
}

func tradeRR(date time.Time, pnl, rr string) models.Trade {
	t := trade(date, pnl)
	v := decimal.RequireFromString(rr)
	t.RR = &v
	return t
}

func payout(date time.Time, amount string) models.Trade {
	t := trade(date, amount)
	t.IsPayout = true
	return t
}

func TestBucketByDay(t *testing.T) {
	trades := []models.Trade{
		trade(d(2026, time.February, 2), "101.26"),
		trade(d(2026, time.February, 2), "-50.00"),
		trade(d(2026, time.February, 3), "-526.88"),
		trade(d(2026, time.January, 30), "999"),
		trade(d(2025, time.February, 2), "999"),
	}
	buckets := BucketByDay(trades, time.February, 2026)
	if len(buckets) != 2 {
		t.Fatalf("buckets=%d want 2", len(buckets))
	}
	day2 := buckets[2]
	if !day2.PnL.Equal(decimal.RequireFromString("51.26")) {
		t.Fatalf("day2 pnl=%s want 51.26", day2.PnL)
	}
	if day2.Count != 2 || len(day2.Trades) != 2 {
		t.Fatalf("day2 count=%d trades=%d want 2/2", day2.Count, len(day2.Trades))
	}
	if !buckets[3].PnL.Equal(decimal.RequireFromString("-526.88")) {
		t.Fatalf("day3 pnl=%s", buckets[3].PnL)
	}
}

func TestComputeRatios(t *testing.T) {
	trades := []models.Trade{
		tradeRR(d(2026, time.March, 2), "250", "2.5"),
		tradeRR(d(2026, time.March, 3), "-120", "1.2"),
		tradeRR(d(2026, time.March, 4), "243", "2.43"),
		trade(d(2026, time.March, 5), "0"),
	}
	r := ComputeRatios(trades)
	if r.Total != 4 || r.Wins != 2 || r.Losses != 1 {
		t.Fatalf("total=%d wins=%d losses=%d", r.Total, r.Wins, r.Losses)
	}
	if r.WinRate != 50 {
		t.Fatalf("winRate=%v want 50", r.WinRate)
	}
	if !r.TotalPnL.Equal(decimal.RequireFromString("373")) {
		t.Fatalf("totalPnL=%s want 373", r.TotalPnL)
	}
	if r.RRCount != 3 || r.AvgRR == nil {
		t.Fatalf("rrCount=%d avg=%v", r.RRCount, r.AvgRR)
	}
	// (2.5 + 1.2 + 2.43) / 3 = 2.0433..., displayed as 2.04
	if got := r.AvgRR.Round(2); !got.Equal(decimal.RequireFromString("2.04")) {
		t.Fatalf("avgRR=%s want 2.04", got)
	}
}

func TestComputeRatiosEmpty(t *testing.T) {
	r := ComputeRatios(nil)
	if r.WinRate != 0 {
		t.Fatalf("winRate=%v want 0", r.WinRate)
	}
	if r.AvgRR != nil {
		t.Fatalf("avgRR=%v want nil", r.AvgRR)
	}
	if !r.TotalPnL.IsZero() {
		t.Fatalf("totalPnL=%s want 0", r.TotalPnL)
	}
}

func TestPayoutFilters(t *testing.T) {
	trades := []models.Trade{
		trade(d(2026, time.April, 1), "100"),
		payout(d(2026, time.April, 15), "-500"),
		trade(d(2026, time.April, 20), "-30"),
	}
	stats := ExcludePayouts(trades)
	if len(stats) != 2 {
		t.Fatalf("stats=%d want 2", len(stats))
	}
	outs := Payouts(trades)
	if len(outs) != 1 || !outs[0].IsPayout {
		t.Fatalf("payouts=%d", len(outs))
	}
	if !SumPnL(trades).Equal(decimal.RequireFromString("-430")) {
		t.Fatalf("sum=%s want -430", SumPnL(trades))
	}
	if !SumPnL(stats).Equal(decimal.RequireFromString("70")) {
		t.Fatalf("stats sum=%s want 70", SumPnL(stats))
	}
}
