package types

import (
	"time"

	"github.com/google/uuid"
)

// UserAlertState persists only the per-user overlay for a generated
// alert. Absence of a row means unread and not deleted.
type UserAlertState struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_user_alert,priority:1;not null;column:user_id" json:"user_id"`
	AlertID   string    `gorm:"uniqueIndex:idx_user_alert,priority:2;not null;size:40;column:alert_id" json:"alert_id"`
	IsRead    bool      `gorm:"not null;default:false;column:is_read" json:"is_read"`
	IsDeleted bool      `gorm:"not null;default:false;column:is_deleted" json:"is_deleted"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at" json:"updated_at"`
}

func (UserAlertState) TableName() string {
	return "user_alert_states"
}
