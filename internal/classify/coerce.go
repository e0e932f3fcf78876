package classify

import (
	"slices"
	"strings"

	"github.com/freassets/curator/internal/taxonomy"
)

// coerce validates a raw model response against the closed taxonomy. Unknown
// enum values collapse to conservative defaults and unknown set members are
// dropped rather than propagated. Confidence clamps to [0, 100].
func coerce(raw response) Proposal {
	tags := taxonomy.TagSet{
		AssetType:        coerceAssetType(raw.AssetType),
		ProductLine:      coerceSet(raw.ProductLine, taxonomy.ProductLines, "Non-Branded"),
		Flavor:           coerceSet(raw.Flavor, taxonomy.Flavors, "N/A"),
		NicotineStrength: coerceSet(raw.NicotineStrength, taxonomy.NicotineStrengths, "N/A"),
		PackFormat:       coercePackFormat(raw.PackFormat),
		ContentTheme:     coerceSet(raw.ContentTheme, taxonomy.ContentThemes, ""),
		Setting:          coerceSet(raw.Setting, taxonomy.Settings, "N/A"),
		Campaign:         coerceCampaign(raw.Campaign),
		UsageRights:      coerceUsageRights(raw.UsageRights),
		Description:      strings.TrimSpace(raw.Description),
	}

	return Proposal{
		Tags:       tags.Normalize(),
		Confidence: clampConfidence(raw.Confidence),
	}
}

func coerceAssetType(s string) taxonomy.AssetType {
	if v, err := taxonomy.ParseAssetType(strings.TrimSpace(s)); err == nil {
		return v
	}
	return taxonomy.AssetOther
}

func coercePackFormat(s string) taxonomy.PackFormat {
	if v, err := taxonomy.ParsePackFormat(strings.TrimSpace(s)); err == nil {
		return v
	}
	return taxonomy.PackNotApplicable
}

func coerceUsageRights(s string) taxonomy.UsageRights {
	if v, err := taxonomy.ParseUsageRights(strings.TrimSpace(s)); err == nil {
		return v
	}
	return taxonomy.RightsUnlimitedInternal
}

// coerceSet keeps only vocabulary members. When nothing survives, fallback
// fills the set; an empty fallback leaves the set empty.
func coerceSet(values, vocabulary []string, fallback string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if slices.Contains(vocabulary, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	if len(out) == 0 && fallback != "" {
		out = append(out, fallback)
	}
	return out
}

func coerceCampaign(campaign *string) *string {
	if campaign == nil {
		return nil
	}
	v := strings.TrimSpace(*campaign)
	if v == "" || strings.EqualFold(v, "null") {
		return nil
	}
	return &v
}

func clampConfidence(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
