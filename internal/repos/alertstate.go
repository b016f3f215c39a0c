package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/neowatch-backend/internal/logger"
	"github.com/yungbote/neowatch-backend/internal/types"
)

type AlertStateRepo interface {
	GetByAlertIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, alertIDs []string) (map[string]*types.UserAlertState, error)
	UpsertStates(ctx context.Context, tx *gorm.DB, states []*types.UserAlertState) error
}

type alertStateRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAlertStateRepo(db *gorm.DB, baseLog *logger.Logger) AlertStateRepo {
	repoLog := baseLog.With("repo", "AlertStateRepo")
	return &alertStateRepo{db: db, log: repoLog}
}

// GetByAlertIDs loads the user's state rows for a batch of alert IDs in a
// single query and returns them keyed by alert ID. Missing IDs simply have
// no entry.
func (asr *alertStateRepo) GetByAlertIDs(ctx context.Context, tx *gorm.DB, userID uuid.UUID, alertIDs []string) (map[string]*types.UserAlertState, error) {
	transaction := tx
	if transaction == nil {
		transaction = asr.db
	}

	byAlertID := make(map[string]*types.UserAlertState, len(alertIDs))
	if len(alertIDs) == 0 {
		return byAlertID, nil
	}

	var results []*types.UserAlertState
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND alert_id IN ?", userID, alertIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}

	for _, state := range results {
		byAlertID[state.AlertID] = state
	}

	return byAlertID, nil
}

// UpsertStates inserts or updates on the (user_id, alert_id) pair, so
// repeated mark-read or delete calls stay idempotent.
func (asr *alertStateRepo) UpsertStates(ctx context.Context, tx *gorm.DB, states []*types.UserAlertState) error {
	transaction := tx
	if transaction == nil {
		transaction = asr.db
	}

	if len(states) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for _, state := range states {
		state.UpdatedAt = now
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "alert_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_read", "is_deleted", "updated_at"}),
		}).
		Create(&states).Error; err != nil {
		return err
	}

	return nil
}
