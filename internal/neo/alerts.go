package neo

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

const (
	AlertTypeCloseApproach = "close_approach"
	AlertTypeHazardous     = "hazardous"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Close-approach thresholds in lunar distances.
const (
	closeApproachLD = 5
	highPriorityLD  = 2
)

// Alert is regenerated from the feed on every request; only per-user
// read/deleted flags are persisted, keyed by the deterministic ID.
type Alert struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Title    string  `json:"title"`
	Message  string  `json:"message"`
	Date     *string `json:"date"`
	Time     string  `json:"time"`
	Read     bool    `json:"read"`
	Priority string  `json:"priority"`
	NeoID    string  `json:"neo_id"`
}

// BuildAlertID derives the stable alert identifier: SHA-1 of
// "type:neoID:date" truncated to 20 hex chars. The hash choice is a
// compatibility contract with existing persisted state rows; do not
// change it.
func BuildAlertID(alertType, neoID, approachDate string) string {
	if approachDate == "" {
		approachDate = "unknown"
	}
	sum := sha1.Sum([]byte(alertType + ":" + neoID + ":" + approachDate))
	return hex.EncodeToString(sum[:])[:20]
}

// GenerateAlerts derives alerts from raw feed records. A record can emit
// a close-approach alert, a hazardous alert, both, or neither. Output is
// sorted by priority tier; order within a tier follows the input.
func GenerateAlerts(records []RawNeoRecord) []Alert {
	alerts := make([]Alert, 0)
	for i := range records {
		rec := &records[i]
		approach := rec.FirstApproach()

		var date *string
		if approach != nil && approach.CloseApproachDate != "" {
			d := approach.CloseApproachDate
			date = &d
		}
		approachTime := "Unknown"
		if approach != nil && approach.CloseApproachDateFull != "" {
			parts := strings.Fields(approach.CloseApproachDateFull)
			approachTime = parts[len(parts)-1] + " UTC"
		}

		if ld, ok := approach.Lunar(); ok && ld < closeApproachLD {
			priority := PriorityMedium
			if ld < highPriorityLD {
				priority = PriorityHigh
			}
			alerts = append(alerts, Alert{
				ID:       BuildAlertID(AlertTypeCloseApproach, rec.ID, deref(date)),
				Type:     AlertTypeCloseApproach,
				Title:    "Close Approach Alert",
				Message:  fmt.Sprintf("Asteroid %s will pass within %.2f LD of Earth", rec.Name, ld),
				Date:     date,
				Time:     approachTime,
				Priority: priority,
				NeoID:    rec.ID,
			})
		}

		if rec.IsPotentiallyHazardous {
			alerts = append(alerts, Alert{
				ID:       BuildAlertID(AlertTypeHazardous, rec.ID, deref(date)),
				Type:     AlertTypeHazardous,
				Title:    "Hazardous Object Detected",
				Message:  fmt.Sprintf("Potentially hazardous asteroid %s detected", rec.Name),
				Date:     date,
				Time:     approachTime,
				Priority: PriorityHigh,
				NeoID:    rec.ID,
			})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return priorityRank(alerts[i].Priority) < priorityRank(alerts[j].Priority)
	})
	return alerts
}

func priorityRank(p string) int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
