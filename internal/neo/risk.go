package neo

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	LabelLow    = "Low"
	LabelMedium = "Medium"
	LabelHigh   = "High"
)

// Label thresholds. The same constants bucket the summary risk_breakdown,
// so per-record labels and aggregate counts can never disagree.
const (
	mediumThreshold = 40
	highThreshold   = 70
)

type RiskScore struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// RiskWeights tunes the scoring curve. Scores stay monotonic in danger
// for any positive weight values: closer, bigger and faster objects never
// score lower, and the hazardous flag never lowers a score.
type RiskWeights struct {
	DistanceMax       float64 `yaml:"distance_max"`
	DistanceHorizonLD float64 `yaml:"distance_horizon_ld"`
	DiameterMax       float64 `yaml:"diameter_max"`
	DiameterSatM      float64 `yaml:"diameter_saturation_m"`
	VelocityMax       float64 `yaml:"velocity_max"`
	VelocitySatKmS    float64 `yaml:"velocity_saturation_km_s"`
	HazardBonus       float64 `yaml:"hazard_bonus"`
	HazardFloor       float64 `yaml:"hazard_floor"`
}

func DefaultRiskWeights() RiskWeights {
	return RiskWeights{
		DistanceMax:       45,
		DistanceHorizonLD: 20,
		DiameterMax:       30,
		DiameterSatM:      1000,
		VelocityMax:       10,
		VelocitySatKmS:    30,
		HazardBonus:       15,
		HazardFloor:       40,
	}
}

// LoadRiskWeights overlays defaults with a YAML file. A missing path
// returns the defaults unchanged.
func LoadRiskWeights(path string) (RiskWeights, error) {
	w := DefaultRiskWeights()
	if path == "" {
		return w, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("read risk weights: %w", err)
	}
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return w, fmt.Errorf("parse risk weights: %w", err)
	}
	return w, nil
}

// ComputeRiskScore maps a raw record to a 0-100 score and label. Total
// over its input: missing approach data or zero diameters contribute
// nothing rather than failing. Deterministic: no clock, no randomness.
func ComputeRiskScore(w RiskWeights, raw *RawNeoRecord) RiskScore {
	score := 0.0

	// Distance term: linear from DistanceMax at 0 LD down to zero at the
	// horizon. An object with no measurable approach scores as distant.
	if ld, ok := raw.MinMissDistanceLunar(); ok && w.DistanceHorizonLD > 0 {
		score += clamp(w.DistanceMax*(1-ld/w.DistanceHorizonLD), 0, w.DistanceMax)
	}

	if w.DiameterSatM > 0 {
		d := raw.MeanDiameterMeters()
		score += clamp(w.DiameterMax*(d/w.DiameterSatM), 0, w.DiameterMax)
	}

	if v, ok := raw.FirstApproach().VelocityKmS(); ok && w.VelocitySatKmS > 0 {
		score += clamp(w.VelocityMax*(v/w.VelocitySatKmS), 0, w.VelocityMax)
	}

	if raw.IsPotentiallyHazardous {
		score += w.HazardBonus
		if score < w.HazardFloor {
			score = w.HazardFloor
		}
	}

	final := int(math.Round(clamp(score, 0, 100)))
	return RiskScore{Score: final, Label: labelFor(final)}
}

func labelFor(score int) string {
	switch {
	case score >= highThreshold:
		return LabelHigh
	case score >= mediumThreshold:
		return LabelMedium
	default:
		return LabelLow
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
