package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/freightdesk/fleetadmin/internal/domain"
)

func AutoMigrateAll(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(types.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
