package neo

import "testing"

func TestBuildAlertID(t *testing.T) {
	cases := []struct {
		alertType string
		neoID     string
		date      string
		want      string
	}{
		{AlertTypeHazardous, "NEO123", "2024-01-01", "961e3fb48b704d7ddbf9"},
		{AlertTypeCloseApproach, "2465633", "2025-01-02", "0c113bb434cf4465f024"},
		{AlertTypeHazardous, "3542519", "2025-01-01", "770f69fcb007c31a21b2"},
		{AlertTypeCloseApproach, "3542519", "2025-01-01", "acb9e0f1780a87574446"},
	}
	for _, tc := range cases {
		got := BuildAlertID(tc.alertType, tc.neoID, tc.date)
		if got != tc.want {
			t.Fatalf("BuildAlertID(%s, %s, %s) = %s, want %s", tc.alertType, tc.neoID, tc.date, got, tc.want)
		}
		if len(got) != 20 {
			t.Fatalf("alert IDs are 20 hex chars, got %d", len(got))
		}
	}

	// A missing date still yields a stable ID.
	if BuildAlertID(AlertTypeHazardous, "X", "") != BuildAlertID(AlertTypeHazardous, "X", "") {
		t.Fatalf("empty-date IDs must be deterministic")
	}
	if BuildAlertID(AlertTypeHazardous, "X", "") == BuildAlertID(AlertTypeHazardous, "X", "2025-01-01") {
		t.Fatalf("empty date must not collide with a real date")
	}
}

func TestGenerateAlerts(t *testing.T) {
	records := []RawNeoRecord{
		{
			// Hazardous with a sub-2 LD approach: two alerts, both high.
			ID:                     "3542519",
			Name:                   "(2010 PK9)",
			IsPotentiallyHazardous: true,
			CloseApproachData: []RawApproach{{
				CloseApproachDate:     "2025-01-01",
				CloseApproachDateFull: "2025-Jan-01 14:58",
				MissDistance:          RawMissDistance{Lunar: "1.5"},
			}},
		},
		{
			// Non-hazardous at 3.2 LD: one medium close-approach alert.
			ID:   "2465633",
			Name: "2465633 (2009 JR5)",
			CloseApproachData: []RawApproach{{
				CloseApproachDate:     "2025-01-02",
				CloseApproachDateFull: "2025-Jan-02 03:11",
				MissDistance:          RawMissDistance{Lunar: "3.2"},
			}},
		},
		{
			// 10 LD and not hazardous: no alerts at all.
			ID:   "9999999",
			Name: "quiet",
			CloseApproachData: []RawApproach{{
				CloseApproachDate: "2025-01-02",
				MissDistance:      RawMissDistance{Lunar: "10"},
			}},
		},
	}

	alerts := GenerateAlerts(records)
	if len(alerts) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(alerts))
	}

	// High before medium; the two highs keep input order.
	if alerts[0].Priority != PriorityHigh || alerts[1].Priority != PriorityHigh || alerts[2].Priority != PriorityMedium {
		t.Fatalf("bad priority order: %s, %s, %s", alerts[0].Priority, alerts[1].Priority, alerts[2].Priority)
	}

	closeApproach := alerts[0]
	if closeApproach.Type != AlertTypeCloseApproach {
		t.Fatalf("first alert type = %s", closeApproach.Type)
	}
	if closeApproach.ID != "acb9e0f1780a87574446" {
		t.Fatalf("close approach ID = %s", closeApproach.ID)
	}
	if closeApproach.Title != "Close Approach Alert" {
		t.Fatalf("title = %q", closeApproach.Title)
	}
	if closeApproach.Message != "Asteroid (2010 PK9) will pass within 1.50 LD of Earth" {
		t.Fatalf("message = %q", closeApproach.Message)
	}
	if closeApproach.Time != "14:58 UTC" {
		t.Fatalf("time = %q", closeApproach.Time)
	}
	if closeApproach.Date == nil || *closeApproach.Date != "2025-01-01" {
		t.Fatalf("date = %v", closeApproach.Date)
	}

	hazardous := alerts[1]
	if hazardous.Type != AlertTypeHazardous || hazardous.ID != "770f69fcb007c31a21b2" {
		t.Fatalf("hazardous alert = %+v", hazardous)
	}
	if hazardous.Message != "Potentially hazardous asteroid (2010 PK9) detected" {
		t.Fatalf("message = %q", hazardous.Message)
	}

	medium := alerts[2]
	if medium.ID != "0c113bb434cf4465f024" || medium.NeoID != "2465633" {
		t.Fatalf("medium alert = %+v", medium)
	}
	for _, a := range alerts {
		if a.Read {
			t.Fatalf("generated alerts start unread")
		}
	}
}

func TestGenerateAlertsNoApproachData(t *testing.T) {
	records := []RawNeoRecord{{
		ID:                     "777",
		Name:                   "floaty",
		IsPotentiallyHazardous: true,
	}}

	alerts := GenerateAlerts(records)
	if len(alerts) != 1 {
		t.Fatalf("hazardous flag alone still alerts, got %d", len(alerts))
	}
	a := alerts[0]
	if a.Type != AlertTypeHazardous {
		t.Fatalf("type = %s", a.Type)
	}
	if a.Date != nil {
		t.Fatalf("date should be nil without approach data")
	}
	if a.Time != "Unknown" {
		t.Fatalf("time = %q", a.Time)
	}
	if a.ID != BuildAlertID(AlertTypeHazardous, "777", "") {
		t.Fatalf("ID should use the unknown-date form")
	}
}

func TestGenerateAlertsEmptyInput(t *testing.T) {
	if alerts := GenerateAlerts(nil); len(alerts) != 0 {
		t.Fatalf("expected empty slice, got %d", len(alerts))
	}
}
