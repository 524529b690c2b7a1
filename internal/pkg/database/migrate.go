package database

import (
	"Warbler/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate 建表
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}
	return nil
}
