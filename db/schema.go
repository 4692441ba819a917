// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/danielhkuo/habit-tracker/models"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - AutoMigrate only adds what is missing.
func CreateSchema(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(&models.Habit{}); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
