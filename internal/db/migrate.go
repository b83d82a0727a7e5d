package db

import (
	"tradescope/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.Profile{},
		&models.Account{},
		&models.Trade{},
		&models.PlaybookRule{},
		&models.EquitySnapshot{},
	)
}
