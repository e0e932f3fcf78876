// Package settings manages the operator-tunable configuration that drives
// classification routing: operating mode, confidence thresholds, and the
// correction patterns fed back into the model prompt. Values persist as
// key/value rows so individual keys update independently.
package settings

import (
	"github.com/freassets/curator/internal/review"
	"github.com/freassets/curator/internal/taxonomy"
)

// Setting keys as stored.
const (
	KeyOperatingMode       = "operating_mode"
	KeyAutoThreshold       = "auto_threshold"
	KeyAutonomousThreshold = "autonomous_threshold"
	// KeyReviewThreshold is presentation-only: clients use it to band
	// confidence scores for display. No routing or metrics logic reads it.
	KeyReviewThreshold    = "review_threshold"
	KeyCorrectionPatterns = "correction_patterns"
)

// Settings is the typed view over the stored key/value rows.
type Settings struct {
	OperatingMode       taxonomy.OperatingMode `json:"operating_mode"`
	AutoThreshold       float64                `json:"auto_threshold"`
	AutonomousThreshold float64                `json:"autonomous_threshold"`
	ReviewThreshold     float64                `json:"review_threshold"`
	CorrectionPatterns  string                 `json:"correction_patterns"`
}

// Defaults returns the stock settings: calibration mode with standard thresholds.
func Defaults() Settings {
	t := review.DefaultThresholds()
	return Settings{
		OperatingMode:       taxonomy.ModeCalibration,
		AutoThreshold:       t.ConfidenceBased,
		AutonomousThreshold: t.Autonomous,
		ReviewThreshold:     60,
		CorrectionPatterns:  "",
	}
}

// Thresholds converts the stored threshold values to the routing policy form.
func (s Settings) Thresholds() review.Thresholds {
	return review.Thresholds{
		ConfidenceBased: s.AutoThreshold,
		Autonomous:      s.AutonomousThreshold,
	}
}

// Patch carries a partial settings update. Nil fields are left unchanged.
type Patch struct {
	OperatingMode       *taxonomy.OperatingMode `json:"operating_mode,omitempty"`
	AutoThreshold       *float64                `json:"auto_threshold,omitempty"`
	AutonomousThreshold *float64                `json:"autonomous_threshold,omitempty"`
	ReviewThreshold     *float64                `json:"review_threshold,omitempty"`
	CorrectionPatterns  *string                 `json:"correction_patterns,omitempty"`
}

// Empty reports whether the patch carries no fields.
func (p Patch) Empty() bool {
	return p.OperatingMode == nil &&
		p.AutoThreshold == nil &&
		p.AutonomousThreshold == nil &&
		p.ReviewThreshold == nil &&
		p.CorrectionPatterns == nil
}

// Validate checks threshold ranges on the present fields.
func (p Patch) Validate() error {
	for _, threshold := range []*float64{p.AutoThreshold, p.AutonomousThreshold, p.ReviewThreshold} {
		if threshold != nil && (*threshold < 0 || *threshold > 100) {
			return ErrInvalidThreshold
		}
	}
	return nil
}
