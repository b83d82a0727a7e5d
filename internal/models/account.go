package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a single trading account owned by one user. Current capital is
// always derived as base_capital plus the sum of every trade row's pnl
// (payouts included); it is never stored.
type Account struct {
	ID     string `gorm:"primaryKey;type:varchar(36)"`
	UserID string `gorm:"type:varchar(36);not null;index"`

	Name        string          `gorm:"type:varchar(100);not null"`
	PropFirm    string          `gorm:"type:varchar(100)"`
	BaseCapital decimal.Decimal `gorm:"type:numeric(20,2);not null;default:0"`
	IsBurned    bool            `gorm:"not null;default:false;index"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime;index"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Account) TableName() string {
	return "trading_accounts"
}
