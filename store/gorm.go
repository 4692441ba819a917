// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/danielhkuo/habit-tracker/models"
)

// GormStore is the HabitStore backed by a gorm connection pool.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

var _ HabitStore = (*GormStore)(nil)

func (s *GormStore) List(ctx context.Context) ([]models.Habit, error) {
	habits := []models.Habit{}
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&habits).Error; err != nil {
		return nil, failure("list habits", err)
	}
	return habits, nil
}

func (s *GormStore) Get(ctx context.Context, id int64) (*models.Habit, error) {
	var habit models.Habit
	err := s.db.WithContext(ctx).First(&habit, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, failure("get habit", err)
	}
	return &habit, nil
}

func (s *GormStore) Create(ctx context.Context, name, description string) (*models.Habit, error) {
	habit := models.Habit{
		Name:          name,
		Description:   description,
		CompletedDays: 0,
	}
	if err := s.db.WithContext(ctx).Create(&habit).Error; err != nil {
		return nil, failure("create habit", err)
	}
	return &habit, nil
}

// Update writes name and description, and completed_days only when the patch
// carries it. Concurrent updates are not coordinated; the last write wins.
func (s *GormStore) Update(ctx context.Context, id int64, patch models.HabitPatch) (*models.Habit, error) {
	updates := map[string]any{
		"name":        patch.Name,
		"description": patch.Description,
	}
	if patch.CompletedDays.Set {
		updates["completed_days"] = patch.CompletedDays.Value
	}

	var habit models.Habit
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Write first so the transaction takes the write lock up front
		res := tx.Model(&models.Habit{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.First(&habit, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, failure("update habit", err)
	}
	return &habit, nil
}

func (s *GormStore) Delete(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&models.Habit{}, id)
	if res.Error != nil {
		return failure("delete habit", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return failure("ping", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return failure("ping", err)
	}
	return nil
}
