package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile mirrors the identity provider's user record with the plan state
// the journal needs for feature gating. The Features column is a snapshot
// of the plan's feature switches at the time the plan last changed.
type Profile struct {
	ID    string `gorm:"primaryKey;type:varchar(36)"`
	Email string `gorm:"type:varchar(255);index"`

	Plan               string         `gorm:"type:varchar(20);not null;default:'starter'"`
	SubscriptionStatus string         `gorm:"type:varchar(20);index"`
	Features           datatypes.JSON `gorm:"type:jsonb"`

	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
