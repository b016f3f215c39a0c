package neo

import (
	"fmt"
	"testing"
)

// buildItems makes n dashboard objects; every third one is hazardous and
// each has one approach with lunar distance n-i and velocity i km/s.
func buildItems(n int) []DashboardNeo {
	items := make([]DashboardNeo, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, DashboardNeo{
			ID:                     fmt.Sprintf("%d", i+1),
			Name:                   fmt.Sprintf("NEO %d", i+1),
			IsPotentiallyHazardous: i%3 == 0,
			CloseApproachData: []ApproachEvent{{
				RelativeVelocity: VelocitySummary{KmPerSec: float64(i)},
				MissDistance:     MissSummary{Lunar: float64(n - i)},
			}},
		})
	}
	return items
}

func TestPaginateSlicing(t *testing.T) {
	items := buildItems(45)

	page := Paginate(items, 3, 20)
	if page.TotalPages != 3 {
		t.Fatalf("total_pages = %d, want 3", page.TotalPages)
	}
	if len(page.Items) != 5 {
		t.Fatalf("page 3 of 45/20 holds 5 items, got %d", len(page.Items))
	}
	if page.Items[0].ID != "41" {
		t.Fatalf("page 3 starts at item 41, got %s", page.Items[0].ID)
	}
	if page.HasNext || !page.HasPrev {
		t.Fatalf("flags: %+v", page)
	}

	first := Paginate(items, 1, 20)
	if !first.HasNext || first.HasPrev {
		t.Fatalf("first page flags: %+v", first)
	}
}

func TestPaginateStatsIndependentOfPage(t *testing.T) {
	items := buildItems(45)

	a := Paginate(items, 1, 10).Stats
	b := Paginate(items, 4, 10).Stats

	if a.Total != 45 || b.Total != 45 {
		t.Fatalf("totals: %d, %d", a.Total, b.Total)
	}
	if a.Hazardous != b.Hazardous {
		t.Fatalf("hazardous differs across pages: %d vs %d", a.Hazardous, b.Hazardous)
	}
	if a.Hazardous != 15 {
		t.Fatalf("hazardous = %d, want 15", a.Hazardous)
	}
	// The closest object is the last one (lunar distance 1).
	if a.ClosestLunar == nil || *a.ClosestLunar != 1 {
		t.Fatalf("closest_lunar = %v", a.ClosestLunar)
	}
	if a.ClosestNeoName == nil || *a.ClosestNeoName != "NEO 45" {
		t.Fatalf("closest_neo_name = %v", a.ClosestNeoName)
	}
	if a.AvgVelocityKmS != b.AvgVelocityKmS {
		t.Fatalf("avg velocity differs across pages")
	}
}

func TestPaginateClamps(t *testing.T) {
	items := buildItems(5)

	page := Paginate(items, 0, 0)
	if page.Page != 1 || page.Limit != 1 {
		t.Fatalf("page/limit should clamp up: %+v", page)
	}

	page = Paginate(items, 1, 500)
	if page.Limit != 100 {
		t.Fatalf("limit should clamp to 100, got %d", page.Limit)
	}
	if len(page.Items) != 5 {
		t.Fatalf("all items fit on one page, got %d", len(page.Items))
	}

	// Past the end: empty page, stats intact.
	page = Paginate(items, 99, 20)
	if len(page.Items) != 0 {
		t.Fatalf("page past end should be empty")
	}
	if page.Stats.Total != 5 {
		t.Fatalf("stats survive an out-of-range page")
	}
	if page.HasNext {
		t.Fatalf("no next page past the end")
	}
}

func TestPaginateEmptyList(t *testing.T) {
	page := Paginate(nil, 1, 20)
	if page.TotalPages != 0 || len(page.Items) != 0 {
		t.Fatalf("empty input: %+v", page)
	}
	if page.Stats.ClosestLunar != nil || page.Stats.ClosestNeoName != nil {
		t.Fatalf("closest fields must be nil with no data")
	}
	if page.Stats.AvgVelocityKmS != 0 {
		t.Fatalf("avg velocity = %v", page.Stats.AvgVelocityKmS)
	}
	if page.HasNext || page.HasPrev {
		t.Fatalf("flags on empty input: %+v", page)
	}
}

func TestPaginateObjectsWithoutApproaches(t *testing.T) {
	items := []DashboardNeo{
		{ID: "1", Name: "silent"},
		{ID: "2", Name: "mover", CloseApproachData: []ApproachEvent{{
			RelativeVelocity: VelocitySummary{KmPerSec: 10},
			MissDistance:     MissSummary{Lunar: 4},
		}}},
	}

	stats := Paginate(items, 1, 20).Stats
	if stats.ClosestNeoName == nil || *stats.ClosestNeoName != "mover" {
		t.Fatalf("approach-less objects never win closest: %v", stats.ClosestNeoName)
	}
	// Average divides by the full count, approaches or not.
	if stats.AvgVelocityKmS != 5 {
		t.Fatalf("avg velocity = %v, want 5", stats.AvgVelocityKmS)
	}
}
