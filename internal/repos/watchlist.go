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

type WatchlistRepo interface {
	ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WatchlistItem, error)
	GetByNeoID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, neoID string) (*types.WatchlistItem, error)
	Upsert(ctx context.Context, tx *gorm.DB, item *types.WatchlistItem) (*types.WatchlistItem, error)
	DeleteByNeoID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, neoID string) (int64, error)
	SetAlertEnabled(ctx context.Context, tx *gorm.DB, userID uuid.UUID, neoID string, enabled bool) (int64, error)
}

type watchlistRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewWatchlistRepo(db *gorm.DB, baseLog *logger.Logger) WatchlistRepo {
	repoLog := baseLog.With("repo", "WatchlistRepo")
	return &watchlistRepo{db: db, log: repoLog}
}

func (wr *watchlistRepo) ListByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.WatchlistItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	results := make([]*types.WatchlistItem, 0)
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}

	return results, nil
}

func (wr *watchlistRepo) GetByNeoID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, neoID string) (*types.WatchlistItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	var result types.WatchlistItem
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND neo_id = ?", userID, neoID).
		First(&result).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

// Upsert keys on the (user_id, neo_id) pair: re-adding an already tracked
// NEO refreshes its name and snapshot instead of creating a duplicate.
func (wr *watchlistRepo) Upsert(ctx context.Context, tx *gorm.DB, item *types.WatchlistItem) (*types.WatchlistItem, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now().UTC()
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "neo_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"neo_name", "snapshot", "alert_enabled"}),
		}).
		Create(item).Error; err != nil {
		return nil, err
	}

	return wr.GetByNeoID(ctx, transaction, item.UserID, item.NeoID)
}

func (wr *watchlistRepo) DeleteByNeoID(ctx context.Context, tx *gorm.DB, userID uuid.UUID, neoID string) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	result := transaction.WithContext(ctx).
		Where("user_id = ? AND neo_id = ?", userID, neoID).
		Delete(&types.WatchlistItem{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (wr *watchlistRepo) SetAlertEnabled(ctx context.Context, tx *gorm.DB, userID uuid.UUID, neoID string, enabled bool) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = wr.db
	}

	result := transaction.WithContext(ctx).
		Model(&types.WatchlistItem{}).
		Where("user_id = ? AND neo_id = ?", userID, neoID).
		Update("alert_enabled", enabled)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
