package models

import (
	"time"
)

// SnapshotRecord represents one persisted schedule snapshot in the
// 'schedule_snapshots' table, used by the database snapshot backend.
// The full schedule document is stored serialized; the cache never needs to
// query inside it.
type SnapshotRecord struct {
	Identity    string    `gorm:"column:identity;primaryKey;size:64"`
	Kind        string    `gorm:"column:kind;size:16"`
	Document    []byte    `gorm:"column:document"`
	RetrievedAt time.Time `gorm:"column:retrieved_at"`
}

// TableName overrides the table name used by GORM.
func (SnapshotRecord) TableName() string {
	return "schedule_snapshots"
}
