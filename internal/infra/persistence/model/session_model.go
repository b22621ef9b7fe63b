// Package model contains the GORM persistence models, kept separate from the
// domain entities they map to.
package model

import "time"

// SessionRecord is the keyed row holding the serialized session. One row per
// key; the console uses a single fixed key.
type SessionRecord struct {
	Key       string    `gorm:"primaryKey;size:64"`
	Payload   []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName overrides GORM's pluralization.
func (SessionRecord) TableName() string {
	return "session_records"
}
