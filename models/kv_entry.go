package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one durable key/value pair; Value holds the JSON encoding.
type KVEntry struct {
	Key       string         `gorm:"column:storage_key;primaryKey;size:100"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
