// Package metrics derives accuracy and mode-readiness signals from the
// asset index and the correction log. Nothing here is stored: every value
// is recomputed from live status counts on each request, so a later edit
// to an already-approved asset moves the accuracy rate.
package metrics

import (
	"github.com/freassets/curator/internal/taxonomy"
)

// Readiness thresholds over the reviewed population.
const (
	minReviewedSample    = 100
	confidenceBasedFloor = 80
	autonomousFloor      = 90
)

// AccuracyRate computes the percentage of reviewed assets the model got
// right without correction. Rejected and pending assets are excluded.
// Returns 0 when nothing has been reviewed.
func AccuracyRate(approved, corrected int) float64 {
	reviewed := approved + corrected
	if reviewed == 0 {
		return 0
	}
	return float64(approved) / float64(reviewed) * 100
}

// Readiness describes which operating modes the current accuracy record
// supports. Eligibility requires a minimum reviewed sample so a handful of
// early approvals never unlocks autonomous routing.
type Readiness struct {
	Reviewed                 int                    `json:"reviewed"`
	AccuracyRate             float64                `json:"accuracy_rate"`
	ConfidenceBasedEligible  bool                   `json:"confidence_based_eligible"`
	AutonomousEligible       bool                   `json:"autonomous_eligible"`
	RecommendedOperatingMode taxonomy.OperatingMode `json:"recommended_operating_mode"`
}

// Evaluate derives readiness from live approved/corrected status counts.
func Evaluate(approved, corrected int) Readiness {
	reviewed := approved + corrected
	rate := AccuracyRate(approved, corrected)

	r := Readiness{
		Reviewed:                 reviewed,
		AccuracyRate:             rate,
		RecommendedOperatingMode: taxonomy.ModeCalibration,
	}

	if reviewed < minReviewedSample {
		return r
	}

	if rate >= confidenceBasedFloor {
		r.ConfidenceBasedEligible = true
		r.RecommendedOperatingMode = taxonomy.ModeConfidenceBased
	}
	if rate >= autonomousFloor {
		r.AutonomousEligible = true
		r.RecommendedOperatingMode = taxonomy.ModeAutonomous
	}

	return r
}
