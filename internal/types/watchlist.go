package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WatchlistItem is a tracked NEO for one user. Snapshot holds the flat
// normalized object captured at add time so the dashboard can render the
// watchlist without a lookup round-trip.
type WatchlistItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID      `gorm:"uniqueIndex:idx_user_neo,priority:1;not null;column:user_id" json:"user_id"`
	NeoID        string         `gorm:"uniqueIndex:idx_user_neo,priority:2;not null;size:64;column:neo_id" json:"neo_id"`
	NeoName      string         `gorm:"not null;column:neo_name" json:"neo_name"`
	Snapshot     datatypes.JSON `gorm:"column:snapshot" json:"snapshot,omitempty"`
	AlertEnabled bool           `gorm:"not null;default:false;column:alert_enabled" json:"alert_enabled"`
	AddedAt      time.Time      `gorm:"not null;column:added_at" json:"added_at"`
}

func (WatchlistItem) TableName() string {
	return "user_watchlist"
}
