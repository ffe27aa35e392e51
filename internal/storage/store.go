package storage

import (
	"context"
	"errors"

	"github.com/insure-planner/go-api-server/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot names. Each slot holds one full collection serialized as a single
// JSON blob, mirroring the localStorage layout of the mobile/web client.
const (
	SlotCustomers = "insure_planner_crm_data"
	SlotNotices   = "insure_planner_notices"
	SlotProfile   = "insure_planner_user_profile"
)

// Store is the key-value persistence collaborator. Malformed or absent
// content on read is the caller's signal to fall back to seed data; the
// store itself never interprets values.
type Store interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes or replaces the value for key.
	Set(ctx context.Context, key, value string) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// SlotStore implements Store on top of the kv_entries table.
type SlotStore struct {
	db *gorm.DB
}

func NewSlotStore(db *gorm.DB) *SlotStore {
	return &SlotStore{db: db}
}

func (s *SlotStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry model.KVEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *SlotStore) Set(ctx context.Context, key, value string) error {
	entry := model.KVEntry{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *SlotStore) Remove(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&model.KVEntry{}).Error
}
