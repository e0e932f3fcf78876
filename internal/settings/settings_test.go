package settings_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/freassets/curator/internal/settings"
	"github.com/freassets/curator/internal/taxonomy"
)

func fptr(f float64) *float64 { return &f }

func TestDefaults(t *testing.T) {
	s := settings.Defaults()

	if s.OperatingMode != taxonomy.ModeCalibration {
		t.Errorf("OperatingMode = %v, want Calibration", s.OperatingMode)
	}
	if s.AutoThreshold != 85 {
		t.Errorf("AutoThreshold = %v, want 85", s.AutoThreshold)
	}
	if s.AutonomousThreshold != 70 {
		t.Errorf("AutonomousThreshold = %v, want 70", s.AutonomousThreshold)
	}
	if s.ReviewThreshold != 60 {
		t.Errorf("ReviewThreshold = %v, want 60", s.ReviewThreshold)
	}
	if s.CorrectionPatterns != "" {
		t.Errorf("CorrectionPatterns = %q, want empty", s.CorrectionPatterns)
	}
}

func TestThresholds(t *testing.T) {
	s := settings.Settings{AutoThreshold: 90, AutonomousThreshold: 75}

	th := s.Thresholds()

	if th.ConfidenceBased != 90 {
		t.Errorf("ConfidenceBased = %v, want 90", th.ConfidenceBased)
	}
	if th.Autonomous != 75 {
		t.Errorf("Autonomous = %v, want 75", th.Autonomous)
	}
}

func TestPatchEmpty(t *testing.T) {
	if !(settings.Patch{}).Empty() {
		t.Error("zero patch should be empty")
	}

	mode := taxonomy.ModeAutonomous
	if (settings.Patch{OperatingMode: &mode}).Empty() {
		t.Error("patch with operating mode should not be empty")
	}

	if (settings.Patch{AutoThreshold: fptr(85)}).Empty() {
		t.Error("patch with threshold should not be empty")
	}
}

func TestPatchValidate(t *testing.T) {
	tests := []struct {
		name    string
		patch   settings.Patch
		wantErr bool
	}{
		{"empty patch valid", settings.Patch{}, false},
		{"threshold in range", settings.Patch{AutoThreshold: fptr(85)}, false},
		{"threshold at zero", settings.Patch{ReviewThreshold: fptr(0)}, false},
		{"threshold at hundred", settings.Patch{AutonomousThreshold: fptr(100)}, false},
		{"threshold below range", settings.Patch{AutoThreshold: fptr(-1)}, true},
		{"threshold above range", settings.Patch{AutonomousThreshold: fptr(101)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, settings.ErrInvalidThreshold) {
				t.Errorf("error = %v, want ErrInvalidThreshold", err)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid threshold", settings.ErrInvalidThreshold, http.StatusBadRequest},
		{"empty patch", settings.ErrEmptyPatch, http.StatusBadRequest},
		{"invalid operating mode", taxonomy.ErrInvalidOperatingMode, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := settings.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
