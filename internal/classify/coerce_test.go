package classify

import (
	"slices"
	"testing"

	"github.com/freassets/curator/internal/taxonomy"
)

func strptr(s string) *string { return &s }

func TestCoerce(t *testing.T) {
	raw := response{
		AssetType:        "Photo",
		ProductLine:      []string{"FRE Core", "Imaginary Line"},
		Flavor:           []string{"Mint", "Mango Ice"},
		NicotineStrength: []string{"6mg"},
		PackFormat:       "20ct Can",
		ContentTheme:     []string{"Lifestyle"},
		Setting:          []string{"Outdoor"},
		Campaign:         strptr("Summer Push"),
		UsageRights:      "Approved External",
		Description:      "  Athlete outdoors  ",
		Confidence:       88,
	}

	p := coerce(raw)

	if p.Tags.AssetType != taxonomy.AssetPhoto {
		t.Errorf("AssetType = %v, want Photo", p.Tags.AssetType)
	}
	if !slices.Equal(p.Tags.ProductLine, []string{"FRE Core"}) {
		t.Errorf("ProductLine = %v, want unknown member dropped", p.Tags.ProductLine)
	}
	if !slices.Equal(p.Tags.Flavor, []string{"Mint"}) {
		t.Errorf("Flavor = %v, want unknown member dropped", p.Tags.Flavor)
	}
	if p.Tags.Campaign == nil || *p.Tags.Campaign != "Summer Push" {
		t.Errorf("Campaign = %v, want Summer Push", p.Tags.Campaign)
	}
	if p.Tags.Description != "Athlete outdoors" {
		t.Errorf("Description = %q, want trimmed", p.Tags.Description)
	}
	if p.Confidence != 88 {
		t.Errorf("Confidence = %v, want 88", p.Confidence)
	}
	if p.Fallback {
		t.Error("coerced proposal should not be marked fallback")
	}
}

func TestCoerceUnknownValues(t *testing.T) {
	raw := response{
		AssetType:   "Hologram",
		ProductLine: []string{"Nothing Known"},
		Flavor:      []string{},
		PackFormat:  "Gallon Jug",
		UsageRights: "Whatever",
		Campaign:    strptr("null"),
		Confidence:  150,
	}

	p := coerce(raw)

	if p.Tags.AssetType != taxonomy.AssetOther {
		t.Errorf("AssetType = %v, want Other", p.Tags.AssetType)
	}
	if !slices.Equal(p.Tags.ProductLine, []string{"Non-Branded"}) {
		t.Errorf("ProductLine = %v, want [Non-Branded] fallback", p.Tags.ProductLine)
	}
	if !slices.Equal(p.Tags.Flavor, []string{"N/A"}) {
		t.Errorf("Flavor = %v, want [N/A] fallback", p.Tags.Flavor)
	}
	if len(p.Tags.ContentTheme) != 0 {
		t.Errorf("ContentTheme = %v, want empty (no fallback)", p.Tags.ContentTheme)
	}
	if p.Tags.PackFormat != taxonomy.PackNotApplicable {
		t.Errorf("PackFormat = %v, want N/A", p.Tags.PackFormat)
	}
	if p.Tags.UsageRights != taxonomy.RightsUnlimitedInternal {
		t.Errorf("UsageRights = %v, want Unlimited Internal", p.Tags.UsageRights)
	}
	if p.Tags.Campaign != nil {
		t.Errorf("Campaign = %v, want nil for literal null", *p.Tags.Campaign)
	}
	if p.Confidence != 100 {
		t.Errorf("Confidence = %v, want clamped to 100", p.Confidence)
	}
}

func TestClampConfidence(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-5, 0},
		{0, 0},
		{55.5, 55.5},
		{100, 100},
		{240, 100},
	}

	for _, tt := range tests {
		if got := clampConfidence(tt.in); got != tt.want {
			t.Errorf("clampConfidence(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
