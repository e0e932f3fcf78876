// Package review implements the confidence router and the human review
// decision logic. Both are pure: persistence lives with the asset domain.
package review

import (
	"github.com/freassets/curator/internal/taxonomy"
)

// Thresholds carries the minimum confidence required for auto-approval per
// operating mode. Calibration has no threshold: every asset is reviewed.
type Thresholds struct {
	ConfidenceBased float64 `json:"confidence_based"`
	Autonomous      float64 `json:"autonomous"`
}

// DefaultThresholds returns the stock auto-approval thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ConfidenceBased: 85,
		Autonomous:      70,
	}
}

// ForMode returns the auto-approval threshold for a mode. The second return
// is false when the mode never auto-approves.
func (t Thresholds) ForMode(mode taxonomy.OperatingMode) (float64, bool) {
	switch mode {
	case taxonomy.ModeConfidenceBased:
		return t.ConfidenceBased, true
	case taxonomy.ModeAutonomous:
		return t.Autonomous, true
	default:
		return 0, false
	}
}

// RouteStatus computes the initial review status for a classification at the
// given confidence under the given operating mode. The threshold boundary is
// inclusive: confidence equal to the threshold auto-approves.
func RouteStatus(confidence float64, mode taxonomy.OperatingMode, t Thresholds) taxonomy.ReviewStatus {
	threshold, ok := t.ForMode(mode)
	if !ok {
		return taxonomy.StatusPendingReview
	}
	if confidence >= threshold {
		return taxonomy.StatusAutoApproved
	}
	return taxonomy.StatusPendingReview
}
