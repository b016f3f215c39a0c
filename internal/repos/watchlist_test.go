package repos

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/yungbote/neowatch-backend/internal/types"
)

func TestWatchlistUpsertPreventsDuplicates(t *testing.T) {
	db := openTestDB(t)
	repo := NewWatchlistRepo(db, testLogger(t))
	ctx := context.Background()

	userID := uuid.New()

	first, err := repo.Upsert(ctx, nil, &types.WatchlistItem{
		ID:       uuid.New(),
		UserID:   userID,
		NeoID:    "3542519",
		NeoName:  "(2010 PK9)",
		Snapshot: datatypes.JSON([]byte(`{"id":"3542519"}`)),
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if first.NeoName != "(2010 PK9)" {
		t.Fatalf("unexpected name: %q", first.NeoName)
	}

	second, err := repo.Upsert(ctx, nil, &types.WatchlistItem{
		ID:      uuid.New(),
		UserID:  userID,
		NeoID:   "3542519",
		NeoName: "(2010 PK9) v2",
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if second.NeoName != "(2010 PK9) v2" {
		t.Fatalf("re-add should refresh name, got %q", second.NeoName)
	}

	items, err := repo.ListByUser(ctx, nil, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one row after re-add, got %d", len(items))
	}
}

func TestWatchlistListOrdersByAddedAtDesc(t *testing.T) {
	db := openTestDB(t)
	repo := NewWatchlistRepo(db, testLogger(t))
	ctx := context.Background()

	userID := uuid.New()
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	for i, neoID := range []string{"111", "222", "333"} {
		_, err := repo.Upsert(ctx, nil, &types.WatchlistItem{
			ID:      uuid.New(),
			UserID:  userID,
			NeoID:   neoID,
			NeoName: "NEO " + neoID,
			AddedAt: base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatalf("upsert %s: %v", neoID, err)
		}
	}

	items, err := repo.ListByUser(ctx, nil, userID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(items))
	}
	if items[0].NeoID != "333" || items[2].NeoID != "111" {
		t.Fatalf("expected newest first, got %s,%s,%s", items[0].NeoID, items[1].NeoID, items[2].NeoID)
	}
}

func TestWatchlistDeleteAndToggle(t *testing.T) {
	db := openTestDB(t)
	repo := NewWatchlistRepo(db, testLogger(t))
	ctx := context.Background()

	userID := uuid.New()
	if _, err := repo.Upsert(ctx, nil, &types.WatchlistItem{
		ID:      uuid.New(),
		UserID:  userID,
		NeoID:   "2465633",
		NeoName: "2465633 (2009 JR5)",
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	affected, err := repo.SetAlertEnabled(ctx, nil, userID, "2465633", true)
	if err != nil {
		t.Fatalf("SetAlertEnabled: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row toggled, got %d", affected)
	}
	item, err := repo.GetByNeoID(ctx, nil, userID, "2465633")
	if err != nil {
		t.Fatalf("GetByNeoID: %v", err)
	}
	if !item.AlertEnabled {
		t.Fatalf("alert_enabled should be true after toggle")
	}

	// Toggling an untracked NEO affects nothing; the service layer turns
	// that into a validation error.
	affected, err = repo.SetAlertEnabled(ctx, nil, userID, "missing", true)
	if err != nil {
		t.Fatalf("SetAlertEnabled missing: %v", err)
	}
	if affected != 0 {
		t.Fatalf("expected 0 rows for untracked NEO, got %d", affected)
	}

	affected, err = repo.DeleteByNeoID(ctx, nil, userID, "2465633")
	if err != nil {
		t.Fatalf("DeleteByNeoID: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 row deleted, got %d", affected)
	}
	affected, err = repo.DeleteByNeoID(ctx, nil, userID, "2465633")
	if err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if affected != 0 {
		t.Fatalf("second delete should affect nothing, got %d", affected)
	}
}
