package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/neowatch-backend/internal/apierr"
	"github.com/yungbote/neowatch-backend/internal/logger"
	"github.com/yungbote/neowatch-backend/internal/neo"
	"github.com/yungbote/neowatch-backend/internal/repos"
	"github.com/yungbote/neowatch-backend/internal/requestdata"
	"github.com/yungbote/neowatch-backend/internal/types"
)

type AlertsResult struct {
	Range       DateRange   `json:"range"`
	Total       int         `json:"total"`
	Alerts      []neo.Alert `json:"alerts"`
	UnreadCount int         `json:"unread_count"`
	Cached      bool        `json:"cached"`
}

type AlertService interface {
	GetAlerts(ctx context.Context, startDate, endDate string) (*AlertsResult, error)
	MarkRead(ctx context.Context, alertID string) error
	MarkAllRead(ctx context.Context, alertIDs []string) (int, error)
	DeleteAlert(ctx context.Context, alertID string) error
}

type alertService struct {
	db             *gorm.DB
	log            *logger.Logger
	source         NeoSource
	alertStateRepo repos.AlertStateRepo
}

func NewAlertService(db *gorm.DB, log *logger.Logger, source NeoSource, alertStateRepo repos.AlertStateRepo) AlertService {
	serviceLog := log.With("service", "AlertService")
	return &alertService{
		db:             db,
		log:            serviceLog,
		source:         source,
		alertStateRepo: alertStateRepo,
	}
}

// GetAlerts regenerates alerts for the window and, for an authenticated
// caller, overlays the persisted read/deleted flags. A state-store failure
// degrades to the unmerged list rather than failing the request.
func (as *alertService) GetAlerts(ctx context.Context, startDate, endDate string) (*AlertsResult, error) {
	startDate, endDate, err := resolveWindow(startDate, endDate)
	if err != nil {
		return nil, err
	}

	payload, cached, err := as.source.Feed(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	alerts := neo.GenerateAlerts(payload.Flatten())

	userID := requestdata.UserID(ctx)
	if userID != uuid.Nil && len(alerts) > 0 {
		alerts = as.mergeStates(ctx, userID, alerts)
	}

	unread := 0
	for i := range alerts {
		if !alerts[i].Read {
			unread++
		}
	}

	return &AlertsResult{
		Range:       DateRange{StartDate: startDate, EndDate: endDate},
		Total:       len(alerts),
		Alerts:      alerts,
		UnreadCount: unread,
		Cached:      cached,
	}, nil
}

func (as *alertService) mergeStates(ctx context.Context, userID uuid.UUID, alerts []neo.Alert) []neo.Alert {
	alertIDs := make([]string, 0, len(alerts))
	for i := range alerts {
		alertIDs = append(alertIDs, alerts[i].ID)
	}

	states, err := as.alertStateRepo.GetByAlertIDs(ctx, nil, userID, alertIDs)
	if err != nil {
		as.log.Error("Failed to load alert states, serving unmerged alerts", "user_id", userID.String(), "error", err.Error())
		return alerts
	}

	merged := make([]neo.Alert, 0, len(alerts))
	for i := range alerts {
		alert := alerts[i]
		if state, ok := states[alert.ID]; ok {
			if state.IsDeleted {
				continue
			}
			alert.Read = state.IsRead
		}
		merged = append(merged, alert)
	}
	return merged
}

func (as *alertService) MarkRead(ctx context.Context, alertID string) error {
	return as.writeStates(ctx, []string{alertID}, func(state *types.UserAlertState) {
		state.IsRead = true
	})
}

// MarkAllRead returns the number of distinct ids written.
func (as *alertService) MarkAllRead(ctx context.Context, alertIDs []string) (int, error) {
	normalized := normalizeAlertIDs(alertIDs)
	if len(normalized) == 0 {
		return 0, apierr.Validation("alert_ids must contain at least one id")
	}
	if err := as.writeStates(ctx, normalized, func(state *types.UserAlertState) {
		state.IsRead = true
	}); err != nil {
		return 0, err
	}
	return len(normalized), nil
}

// DeleteAlert marks deleted and read together so a deleted alert never
// counts toward the unread total.
func (as *alertService) DeleteAlert(ctx context.Context, alertID string) error {
	return as.writeStates(ctx, []string{alertID}, func(state *types.UserAlertState) {
		state.IsRead = true
		state.IsDeleted = true
	})
}

// writeStates loads any existing rows first so an update to one flag
// carries the other forward through the upsert.
func (as *alertService) writeStates(ctx context.Context, alertIDs []string, apply func(*types.UserAlertState)) error {
	userID := requestdata.UserID(ctx)
	if userID == uuid.Nil {
		return apierr.Unauthorized("authentication required")
	}
	for _, id := range alertIDs {
		if strings.TrimSpace(id) == "" {
			return apierr.Validation("alert id is required")
		}
	}

	existing, err := as.alertStateRepo.GetByAlertIDs(ctx, nil, userID, alertIDs)
	if err != nil {
		return apierr.FromDB(err)
	}

	states := make([]*types.UserAlertState, 0, len(alertIDs))
	for _, id := range alertIDs {
		state, ok := existing[id]
		if !ok {
			state = &types.UserAlertState{
				ID:      uuid.New(),
				UserID:  userID,
				AlertID: id,
			}
		}
		apply(state)
		states = append(states, state)
	}

	if err := as.alertStateRepo.UpsertStates(ctx, nil, states); err != nil {
		return apierr.FromDB(err)
	}
	return nil
}

func normalizeAlertIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
