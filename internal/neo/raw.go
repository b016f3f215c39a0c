package neo

import (
	"sort"
	"strconv"
)

// RawNeoRecord is the upstream NeoWs object shape. NeoWs encodes most
// numeric approach fields as strings; every coercion lives in this file
// so the rest of the package can assume well-formed values.
type RawNeoRecord struct {
	ID                     string        `json:"id"`
	NeoReferenceID         string        `json:"neo_reference_id"`
	Name                   string        `json:"name"`
	NasaJplURL             string        `json:"nasa_jpl_url"`
	AbsoluteMagnitudeH     float64       `json:"absolute_magnitude_h"`
	EstimatedDiameter      RawDiameter   `json:"estimated_diameter"`
	IsPotentiallyHazardous bool          `json:"is_potentially_hazardous_asteroid"`
	IsSentryObject         bool          `json:"is_sentry_object"`
	CloseApproachData      []RawApproach `json:"close_approach_data"`
}

type RawDiameter struct {
	Kilometers RawDiameterRange `json:"kilometers"`
	Meters     RawDiameterRange `json:"meters"`
}

type RawDiameterRange struct {
	Min float64 `json:"estimated_diameter_min"`
	Max float64 `json:"estimated_diameter_max"`
}

type RawApproach struct {
	CloseApproachDate      string          `json:"close_approach_date"`
	CloseApproachDateFull  string          `json:"close_approach_date_full"`
	EpochDateCloseApproach int64           `json:"epoch_date_close_approach"`
	RelativeVelocity       RawVelocity     `json:"relative_velocity"`
	MissDistance           RawMissDistance `json:"miss_distance"`
	OrbitingBody           string          `json:"orbiting_body"`
}

type RawVelocity struct {
	KilometersPerSecond string `json:"kilometers_per_second"`
	KilometersPerHour   string `json:"kilometers_per_hour"`
}

type RawMissDistance struct {
	Astronomical string `json:"astronomical"`
	Lunar        string `json:"lunar"`
	Kilometers   string `json:"kilometers"`
}

// FeedPayload is the NeoWs /feed response: objects grouped by date.
type FeedPayload struct {
	ElementCount     int                       `json:"element_count"`
	NearEarthObjects map[string][]RawNeoRecord `json:"near_earth_objects"`
}

// Flatten returns the feed's records in ascending date-key order. The
// upstream groups by a JSON object whose key order Go does not preserve,
// so sorting keeps pagination and alert order stable across requests.
func (p *FeedPayload) Flatten() []RawNeoRecord {
	if p == nil || len(p.NearEarthObjects) == 0 {
		return nil
	}
	dates := make([]string, 0, len(p.NearEarthObjects))
	for d := range p.NearEarthObjects {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	var out []RawNeoRecord
	for _, d := range dates {
		out = append(out, p.NearEarthObjects[d]...)
	}
	return out
}

// parseNum coerces a NeoWs numeric string. Unparseable or empty input
// reports ok=false so callers can pick their own default.
func parseNum(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FirstApproach returns the first close-approach event by upstream
// ordering, or nil. Upstream order is not guaranteed chronological.
func (r *RawNeoRecord) FirstApproach() *RawApproach {
	if len(r.CloseApproachData) == 0 {
		return nil
	}
	return &r.CloseApproachData[0]
}

// Lunar reports the approach miss distance in lunar distances.
func (a *RawApproach) Lunar() (float64, bool) {
	if a == nil {
		return 0, false
	}
	return parseNum(a.MissDistance.Lunar)
}

// VelocityKmS reports the approach relative velocity in km/s.
func (a *RawApproach) VelocityKmS() (float64, bool) {
	if a == nil {
		return 0, false
	}
	return parseNum(a.RelativeVelocity.KilometersPerSecond)
}

// MinMissDistanceKm scans every approach event, not just the first, and
// returns the smallest kilometer miss distance.
func (r *RawNeoRecord) MinMissDistanceKm() (float64, bool) {
	best := 0.0
	found := false
	for i := range r.CloseApproachData {
		km, ok := parseNum(r.CloseApproachData[i].MissDistance.Kilometers)
		if !ok {
			continue
		}
		if !found || km < best {
			best = km
			found = true
		}
	}
	return best, found
}

// MinMissDistanceLunar is MinMissDistanceKm in lunar distances.
func (r *RawNeoRecord) MinMissDistanceLunar() (float64, bool) {
	best := 0.0
	found := false
	for i := range r.CloseApproachData {
		ld, ok := parseNum(r.CloseApproachData[i].MissDistance.Lunar)
		if !ok {
			continue
		}
		if !found || ld < best {
			best = ld
			found = true
		}
	}
	return best, found
}

// MinDiameterMeters returns the lower estimated diameter bound in meters.
func (r *RawNeoRecord) MinDiameterMeters() float64 {
	return r.EstimatedDiameter.Meters.Min
}

// MeanDiameterMeters averages the estimated diameter bounds in meters.
func (r *RawNeoRecord) MeanDiameterMeters() float64 {
	d := r.EstimatedDiameter.Meters
	if d.Min <= 0 && d.Max <= 0 {
		return 0
	}
	return (d.Min + d.Max) / 2
}
