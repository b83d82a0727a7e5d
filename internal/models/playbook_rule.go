package models

import "time"

type PlaybookRule struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"type:varchar(36);not null;index"`
	Text      string    `gorm:"type:text;not null"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
}

func (PlaybookRule) TableName() string {
	return "playbook_rules"
}
