package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/neowatch-backend/internal/apierr"
	"github.com/yungbote/neowatch-backend/internal/logger"
	"github.com/yungbote/neowatch-backend/internal/neo"
	"github.com/yungbote/neowatch-backend/internal/repos"
	"github.com/yungbote/neowatch-backend/internal/requestdata"
	"github.com/yungbote/neowatch-backend/internal/types"
)

type WatchlistService interface {
	List(ctx context.Context) ([]*types.WatchlistItem, error)
	Add(ctx context.Context, neoID, neoName string, alertEnabled bool) (*types.WatchlistItem, error)
	Remove(ctx context.Context, neoID string) error
	ToggleAlert(ctx context.Context, neoID string, enabled *bool) (*types.WatchlistItem, error)
}

type watchlistService struct {
	db            *gorm.DB
	log           *logger.Logger
	source        NeoSource
	watchlistRepo repos.WatchlistRepo
	weights       neo.RiskWeights
}

func NewWatchlistService(db *gorm.DB, log *logger.Logger, source NeoSource, watchlistRepo repos.WatchlistRepo, weights neo.RiskWeights) WatchlistService {
	serviceLog := log.With("service", "WatchlistService")
	return &watchlistService{
		db:            db,
		log:           serviceLog,
		source:        source,
		watchlistRepo: watchlistRepo,
		weights:       weights,
	}
}

func (ws *watchlistService) List(ctx context.Context) ([]*types.WatchlistItem, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	items, listErr := ws.watchlistRepo.ListByUser(ctx, nil, userID)
	if listErr != nil {
		return nil, apierr.FromDB(listErr)
	}
	return items, nil
}

// Add tracks a NEO. The name and a flat snapshot of the object come from
// a NeoWs lookup so entries stay renderable offline; a lookup failure
// only drops the snapshot when the caller supplied a name.
func (ws *watchlistService) Add(ctx context.Context, neoID, neoName string, alertEnabled bool) (*types.WatchlistItem, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	neoID = strings.TrimSpace(neoID)
	if neoID == "" {
		return nil, apierr.Validation("neo_id is required")
	}

	var snapshot datatypes.JSON
	record, _, lookupErr := ws.source.Lookup(ctx, neoID)
	if lookupErr != nil {
		if neoName == "" {
			return nil, lookupErr
		}
		ws.log.Warn("Lookup failed while adding to watchlist, storing without snapshot", "neo_id", neoID, "error", lookupErr.Error())
	} else {
		if neoName == "" {
			neoName = record.Name
		}
		flat := neo.Normalize(record, ws.weights)
		if raw, marshalErr := json.Marshal(flat); marshalErr == nil {
			snapshot = datatypes.JSON(raw)
		}
	}

	item, upsertErr := ws.watchlistRepo.Upsert(ctx, nil, &types.WatchlistItem{
		ID:           uuid.New(),
		UserID:       userID,
		NeoID:        neoID,
		NeoName:      neoName,
		Snapshot:     snapshot,
		AlertEnabled: alertEnabled,
	})
	if upsertErr != nil {
		return nil, apierr.FromDB(upsertErr)
	}
	return item, nil
}

// Remove is idempotent: removing an untracked NEO succeeds silently.
func (ws *watchlistService) Remove(ctx context.Context, neoID string) error {
	userID, err := requireUser(ctx)
	if err != nil {
		return err
	}
	neoID = strings.TrimSpace(neoID)
	if neoID == "" {
		return apierr.Validation("neo_id is required")
	}

	if _, delErr := ws.watchlistRepo.DeleteByNeoID(ctx, nil, userID, neoID); delErr != nil {
		return apierr.FromDB(delErr)
	}
	return nil
}

// ToggleAlert flips the stored flag when the caller sends no explicit
// value; an explicit enabled acts as an override.
func (ws *watchlistService) ToggleAlert(ctx context.Context, neoID string, enabled *bool) (*types.WatchlistItem, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	neoID = strings.TrimSpace(neoID)
	if neoID == "" {
		return nil, apierr.Validation("neo_id is required")
	}

	var next bool
	if enabled != nil {
		next = *enabled
	} else {
		existing, getErr := ws.watchlistRepo.GetByNeoID(ctx, nil, userID, neoID)
		if getErr != nil {
			if errors.Is(getErr, gorm.ErrRecordNotFound) {
				return nil, apierr.Validation("NEO is not in your watchlist")
			}
			return nil, apierr.FromDB(getErr)
		}
		next = !existing.AlertEnabled
	}

	affected, toggleErr := ws.watchlistRepo.SetAlertEnabled(ctx, nil, userID, neoID, next)
	if toggleErr != nil {
		return nil, apierr.FromDB(toggleErr)
	}
	if affected == 0 {
		return nil, apierr.Validation("NEO is not in your watchlist")
	}

	item, getErr := ws.watchlistRepo.GetByNeoID(ctx, nil, userID, neoID)
	if getErr != nil {
		if errors.Is(getErr, gorm.ErrRecordNotFound) {
			return nil, apierr.Validation("NEO is not in your watchlist")
		}
		return nil, apierr.FromDB(getErr)
	}
	return item, nil
}

func requireUser(ctx context.Context) (uuid.UUID, error) {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return uuid.Nil, apierr.Unauthorized("authentication required")
	}
	return userID, nil
}
