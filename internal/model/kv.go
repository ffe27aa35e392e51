package model

import "time"

// KVEntry backs the slot store: one row per named slot, the value holding the
// full collection serialized as a single JSON blob.
type KVEntry struct {
	Key       string    `gorm:"column:key;primaryKey;type:VARCHAR(255)"`
	Value     string    `gorm:"column:value;type:TEXT;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName specifies the table name for KVEntry
func (*KVEntry) TableName() string {
	return "kv_entries"
}
