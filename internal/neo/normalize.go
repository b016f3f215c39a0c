package neo

import "fmt"

// FlatNeo is the single-object projection used by lookup and summary
// responses: one row per object, minimum miss distance across every
// approach event rather than just the first.
type FlatNeo struct {
	ID                     string    `json:"id"`
	Name                   string    `json:"name"`
	AbsoluteMagnitudeH     float64   `json:"absolute_magnitude_h"`
	IsPotentiallyHazardous bool      `json:"is_potentially_hazardous"`
	DiameterM              float64   `json:"diameter_m"`
	CloseApproachDate      *string   `json:"close_approach_date"`
	MissDistanceKm         *float64  `json:"miss_distance_km"`
	RelativeVelocityKmS    *float64  `json:"relative_velocity_km_s"`
	OrbitingBody           *string   `json:"orbiting_body"`
	Risk                   RiskScore `json:"risk"`
}

// DashboardNeo preserves the full nested approach history for the feed.
type DashboardNeo struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	NasaJplURL             string          `json:"nasa_jpl_url"`
	AbsoluteMagnitudeH     float64         `json:"absolute_magnitude_h"`
	IsPotentiallyHazardous bool            `json:"is_potentially_hazardous"`
	IsSentryObject         bool            `json:"is_sentry_object"`
	EstimatedDiameter      DiameterSummary `json:"estimated_diameter"`
	CloseApproachData      []ApproachEvent `json:"close_approach_data"`
	Risk                   RiskScore       `json:"risk"`
}

type DiameterSummary struct {
	MinKm float64 `json:"min_km"`
	MaxKm float64 `json:"max_km"`
	MinM  float64 `json:"min_m"`
	MaxM  float64 `json:"max_m"`
}

type ApproachEvent struct {
	CloseApproachDate      string          `json:"close_approach_date"`
	CloseApproachDateFull  string          `json:"close_approach_date_full"`
	EpochDateCloseApproach int64           `json:"epoch_date_close_approach"`
	RelativeVelocity       VelocitySummary `json:"relative_velocity"`
	MissDistance           MissSummary     `json:"miss_distance"`
	OrbitingBody           string          `json:"orbiting_body"`
}

type VelocitySummary struct {
	KmPerSec  float64 `json:"km_per_sec"`
	KmPerHour float64 `json:"km_per_hour"`
}

type MissSummary struct {
	Astronomical float64 `json:"astronomical"`
	Lunar        float64 `json:"lunar"`
	Kilometers   float64 `json:"kilometers"`
}

// Normalize builds the flat projection. Total: absent approach fields
// come back as nulls, never an error.
func Normalize(raw *RawNeoRecord, w RiskWeights) FlatNeo {
	flat := FlatNeo{
		ID:                     raw.ID,
		Name:                   raw.Name,
		AbsoluteMagnitudeH:     raw.AbsoluteMagnitudeH,
		IsPotentiallyHazardous: raw.IsPotentiallyHazardous,
		DiameterM:              raw.MinDiameterMeters(),
		Risk:                   ComputeRiskScore(w, raw),
	}
	if km, ok := raw.MinMissDistanceKm(); ok {
		flat.MissDistanceKm = &km
	}
	if approach := raw.FirstApproach(); approach != nil {
		if approach.CloseApproachDate != "" {
			date := approach.CloseApproachDate
			flat.CloseApproachDate = &date
		}
		if v, ok := approach.VelocityKmS(); ok {
			flat.RelativeVelocityKmS = &v
		}
		if approach.OrbitingBody != "" {
			body := approach.OrbitingBody
			flat.OrbitingBody = &body
		}
	}
	return flat
}

// NormalizeForDashboard builds the nested projection. The output approach
// array always has exactly as many entries as the input, in input order.
func NormalizeForDashboard(raw *RawNeoRecord, w RiskWeights) DashboardNeo {
	out := DashboardNeo{
		ID:                     raw.ID,
		Name:                   raw.Name,
		NasaJplURL:             raw.NasaJplURL,
		AbsoluteMagnitudeH:     raw.AbsoluteMagnitudeH,
		IsPotentiallyHazardous: raw.IsPotentiallyHazardous,
		IsSentryObject:         raw.IsSentryObject,
		EstimatedDiameter: DiameterSummary{
			MinKm: raw.EstimatedDiameter.Kilometers.Min,
			MaxKm: raw.EstimatedDiameter.Kilometers.Max,
			MinM:  raw.EstimatedDiameter.Meters.Min,
			MaxM:  raw.EstimatedDiameter.Meters.Max,
		},
		CloseApproachData: make([]ApproachEvent, 0, len(raw.CloseApproachData)),
		Risk:              ComputeRiskScore(w, raw),
	}
	if out.NasaJplURL == "" {
		out.NasaJplURL = fmt.Sprintf("https://ssd.jpl.nasa.gov/tools/sbdb_lookup.html#/?sstr=%s", raw.ID)
	}
	for i := range raw.CloseApproachData {
		ca := &raw.CloseApproachData[i]
		ev := ApproachEvent{
			CloseApproachDate:      ca.CloseApproachDate,
			CloseApproachDateFull:  ca.CloseApproachDateFull,
			EpochDateCloseApproach: ca.EpochDateCloseApproach,
			OrbitingBody:           ca.OrbitingBody,
		}
		if ev.OrbitingBody == "" {
			ev.OrbitingBody = "Earth"
		}
		ev.RelativeVelocity.KmPerSec, _ = parseNum(ca.RelativeVelocity.KilometersPerSecond)
		ev.RelativeVelocity.KmPerHour, _ = parseNum(ca.RelativeVelocity.KilometersPerHour)
		ev.MissDistance.Astronomical, _ = parseNum(ca.MissDistance.Astronomical)
		ev.MissDistance.Lunar, _ = parseNum(ca.MissDistance.Lunar)
		ev.MissDistance.Kilometers, _ = parseNum(ca.MissDistance.Kilometers)
		out.CloseApproachData = append(out.CloseApproachData, ev)
	}
	return out
}
