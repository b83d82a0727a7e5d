package service

import (
	"context"
	"time"

	"tradescope/internal/journal"
	"tradescope/internal/models"
	"tradescope/internal/plan"
	"tradescope/internal/repository"
)

type StatsService struct {
	Repo     repository.Repository
	Profiles *ProfileService
}

// Dashboard is everything the account overview page needs in one
// response: headline numbers, the month calendar and recent trades.
type Dashboard struct {
	Account  models.Account        `json:"account"`
	Summary  journal.Summary       `json:"summary"`
	Calendar journal.Grid          `json:"calendar"`
	Equity   []journal.EquityPoint `json:"equity"`
	Recent   []models.Trade        `json:"recent_trades"`
}

func (s *StatsService) Dashboard(ctx context.Context, userID, accountID string, month time.Month, year int, now time.Time) (*Dashboard, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	account, err := s.Repo.GetAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}

	trades, err := s.accountTrades(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if month == 0 || year == 0 {
		month, year = now.Month(), now.Year()
	}

	nonPayout := journal.ExcludePayouts(trades)
	recent := recentTrades(trades, 10)

	return &Dashboard{
		Account:  *account,
		Summary:  journal.Summarize(*account, trades, now),
		Calendar: journal.BuildGrid(nonPayout, month, year),
		Equity:   journal.EquityCurve(account.BaseCapital, trades),
		Recent:   recent,
	}, nil
}

// Statistics is the per-account analytics page payload. All splits are
// over non-payout trades.
type Statistics struct {
	Account     models.Account          `json:"account"`
	Ratios      journal.Ratios          `json:"ratios"`
	Weekdays    []journal.WeekdayPnL    `json:"weekdays"`
	Long        journal.SideSplit       `json:"long"`
	Short       journal.SideSplit       `json:"short"`
	Strategy    journal.StrategySplit   `json:"strategy"`
	RR          journal.RRStats         `json:"rr"`
	Instruments []journal.InstrumentPnL `json:"instruments"`
	RollingWin  []float64               `json:"rolling_win_rate"`
}

func (s *StatsService) Statistics(ctx context.Context, userID, accountID string) (*Statistics, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	account, err := s.Repo.GetAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}

	trades, err := s.accountTrades(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	nonPayout := journal.ExcludePayouts(trades)

	long, short := journal.LongShortSplit(nonPayout)
	return &Statistics{
		Account:     *account,
		Ratios:      journal.ComputeRatios(nonPayout),
		Weekdays:    journal.PnLByWeekday(nonPayout),
		Long:        long,
		Short:       short,
		Strategy:    journal.SplitByStrategy(nonPayout),
		RR:          journal.ComputeRRStats(nonPayout),
		Instruments: journal.TopInstruments(nonPayout, 10),
		RollingWin:  journal.RollingWinRate(nonPayout, 10),
	}, nil
}

// GlobalStatistics aggregates across every account the user owns. Plan
// gated: only plans carrying the global-stats feature may call it.
type GlobalStatistics struct {
	Accounts []journal.AccountStats `json:"accounts"`
	Ratios   journal.Ratios         `json:"ratios"`
	Weekdays []journal.WeekdayPnL   `json:"weekdays"`
	RR       journal.RRStats        `json:"rr"`
}

func (s *StatsService) Global(ctx context.Context, userID string) (*GlobalStatistics, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	if err := s.Profiles.RequireFeature(ctx, userID, plan.FeatureGlobalStats); err != nil {
		return nil, err
	}

	accounts, err := s.Repo.ListAccounts(ctx, repository.ListAccountsParams{UserID: userID})
	if err != nil {
		return nil, err
	}
	trades, err := s.accountTrades(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	nonPayout := journal.ExcludePayouts(trades)

	return &GlobalStatistics{
		Accounts: journal.CompareAccounts(accounts, trades),
		Ratios:   journal.ComputeRatios(nonPayout),
		Weekdays: journal.PnLByWeekday(nonPayout),
		RR:       journal.ComputeRRStats(nonPayout),
	}, nil
}

// Calendar builds one month's grid for an account, for month navigation
// without refetching the whole dashboard.
func (s *StatsService) Calendar(ctx context.Context, userID, accountID string, month time.Month, year int) (*journal.Grid, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	account, err := s.Repo.GetAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}
	trades, err := s.accountTrades(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	grid := journal.BuildGrid(journal.ExcludePayouts(trades), month, year)
	return &grid, nil
}

// EquityHistory returns the cron-written daily capital snapshots, the
// durable counterpart of the derived equity curve.
func (s *StatsService) EquityHistory(ctx context.Context, userID, accountID string, since *time.Time, limit int) ([]models.EquitySnapshot, error) {
	if s == nil || s.Repo == nil {
		return nil, nil
	}
	account, err := s.Repo.GetAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrNotFound
	}
	return s.Repo.ListEquitySnapshots(ctx, repository.ListEquitySnapshotsParams{
		UserID:    userID,
		AccountID: &accountID,
		Since:     since,
		Limit:     limit,
	})
}

func (s *StatsService) accountTrades(ctx context.Context, userID, accountID string) ([]models.Trade, error) {
	params := repository.ListTradesParams{UserID: userID}
	if accountID != "" {
		params.AccountID = &accountID
	}
	asc := true
	params.OrderBy = "date"
	params.Asc = &asc
	return s.Repo.ListTrades(ctx, params)
}

func recentTrades(trades []models.Trade, limit int) []models.Trade {
	if len(trades) == 0 {
		return nil
	}
	out := make([]models.Trade, len(trades))
	copy(out, trades)
	// Most recent first; creation order breaks same-day ties.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
