package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trade is one recorded transaction, or a capital withdrawal when IsPayout
// is set. Payout rows always store PnL as a negative magnitude and carry no
// instrument/type. Rows are immutable after creation except for deletion.
type Trade struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	UserID    string `gorm:"type:varchar(36);not null;index"`
	AccountID string `gorm:"type:varchar(36);not null;index"`

	// Day-level precision; only the calendar date is meaningful.
	Date time.Time `gorm:"type:date;not null;index"`

	Instrument *string `gorm:"type:varchar(50)"`
	Type       *string `gorm:"type:varchar(10)"`

	PnL        decimal.Decimal  `gorm:"column:pnl;type:numeric(20,2);not null"`
	Risk       *decimal.Decimal `gorm:"type:numeric(20,2)"`
	RR         *decimal.Decimal `gorm:"column:rr;type:numeric(10,4)"`
	PnLPercent *decimal.Decimal `gorm:"column:pnl_percent;type:numeric(10,4)"`
	Size       *decimal.Decimal `gorm:"type:numeric(20,4)"`

	TradingViewLink  *string `gorm:"type:text"`
	FollowedStrategy bool    `gorm:"not null;default:false"`
	Notes            *string `gorm:"type:text"`
	IsPayout         bool    `gorm:"not null;default:false;index"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index"`
}

func (Trade) TableName() string {
	return "trades"
}

const (
	TradeTypeLong  = "LONG"
	TradeTypeShort = "SHORT"
)
