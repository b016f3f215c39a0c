package neo

import "math"

const (
	DefaultPageLimit = 20
	maxPageLimit     = 100
)

// FeedStats aggregates the full date window, never a page slice.
type FeedStats struct {
	Total          int      `json:"total"`
	Hazardous      int      `json:"hazardous"`
	ClosestLunar   *float64 `json:"closest_lunar"`
	ClosestNeoName *string  `json:"closest_neo_name"`
	AvgVelocityKmS float64  `json:"avg_velocity_km_s"`
}

type FeedPage struct {
	Page       int
	Limit      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
	Items      []DashboardNeo
	Stats      FeedStats
}

// Paginate computes stats over the complete normalized list and then
// slices out the requested page, so changing the page never changes the
// stats. Limit clamps to [1,100], page to >=1; a page past the end comes
// back empty with stats intact.
func Paginate(items []DashboardNeo, page, limit int) FeedPage {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	stats := FeedStats{Total: len(items)}
	closest := math.Inf(1)
	velocitySum := 0.0
	for i := range items {
		item := &items[i]
		if item.IsPotentiallyHazardous {
			stats.Hazardous++
		}
		// First-approach distance; no approach data means the object never
		// competes for "closest".
		if len(item.CloseApproachData) > 0 {
			first := &item.CloseApproachData[0]
			if first.MissDistance.Lunar < closest {
				closest = first.MissDistance.Lunar
				name := item.Name
				stats.ClosestNeoName = &name
			}
			velocitySum += first.RelativeVelocity.KmPerSec
		}
	}
	if !math.IsInf(closest, 1) {
		rounded := round2(closest)
		stats.ClosestLunar = &rounded
	}
	if stats.Total > 0 {
		// Absent velocities still dilute the mean: divide by total count.
		stats.AvgVelocityKmS = round2(velocitySum / float64(stats.Total))
	}

	totalPages := 0
	if len(items) > 0 {
		totalPages = (len(items) + limit - 1) / limit
	}
	start := (page - 1) * limit
	end := start + limit
	var slice []DashboardNeo
	if start < len(items) {
		if end > len(items) {
			end = len(items)
		}
		slice = items[start:end]
	} else {
		slice = []DashboardNeo{}
	}

	return FeedPage{
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
		Items:      slice,
		Stats:      stats,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
