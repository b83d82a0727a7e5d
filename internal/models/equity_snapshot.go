package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquitySnapshot records one account's derived capital once per day, written
// by the snapshot cron. It is rebuildable from trades and exists so capital
// history survives trade deletion.
type EquitySnapshot struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	UserID    string `gorm:"type:varchar(36);not null;index"`
	AccountID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_snapshot_account_date,priority:1"`

	Date time.Time `gorm:"type:date;not null;uniqueIndex:idx_snapshot_account_date,priority:2"`

	Capital decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	NetPnL  decimal.Decimal `gorm:"column:net_pnl;type:numeric(20,2);not null;default:0"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
}

func (EquitySnapshot) TableName() string {
	return "equity_snapshots"
}
