package taxonomy

import (
	"fmt"
	"slices"
	"strings"
)

// TagSet is a complete classification for one asset. Multi-valued fields
// carry set semantics: duplicates collapse and order never matters.
type TagSet struct {
	AssetType        AssetType   `json:"asset_type"`
	ProductLine      []string    `json:"product_line"`
	Flavor           []string    `json:"flavor"`
	NicotineStrength []string    `json:"nicotine_strength"`
	PackFormat       PackFormat  `json:"pack_format"`
	ContentTheme     []string    `json:"content_theme"`
	Setting          []string    `json:"setting"`
	Campaign         *string     `json:"campaign"`
	UsageRights      UsageRights `json:"usage_rights"`
	Description      string      `json:"description"`
}

// TagPatch carries a partial tag edit. Nil fields are absent and leave the
// target value unchanged. An empty Campaign string clears the campaign.
type TagPatch struct {
	AssetType        *AssetType   `json:"asset_type,omitempty"`
	ProductLine      []string     `json:"product_line,omitempty"`
	Flavor           []string     `json:"flavor,omitempty"`
	NicotineStrength []string     `json:"nicotine_strength,omitempty"`
	PackFormat       *PackFormat  `json:"pack_format,omitempty"`
	ContentTheme     []string     `json:"content_theme,omitempty"`
	Setting          []string     `json:"setting,omitempty"`
	Campaign         *string      `json:"campaign,omitempty"`
	UsageRights      *UsageRights `json:"usage_rights,omitempty"`
	Description      *string      `json:"description,omitempty"`
}

// Empty reports whether the patch carries no fields.
func (p TagPatch) Empty() bool {
	return p.AssetType == nil &&
		p.ProductLine == nil &&
		p.Flavor == nil &&
		p.NicotineStrength == nil &&
		p.PackFormat == nil &&
		p.ContentTheme == nil &&
		p.Setting == nil &&
		p.Campaign == nil &&
		p.UsageRights == nil &&
		p.Description == nil
}

// Validate checks every present multi-valued field against its vocabulary.
// Single-valued fields validate at JSON decode time; the slice fields carry
// raw strings and must be checked before an edit is applied.
func (p TagPatch) Validate() error {
	checks := []struct {
		field      string
		values     []string
		vocabulary []string
	}{
		{"product_line", p.ProductLine, ProductLines},
		{"flavor", p.Flavor, Flavors},
		{"nicotine_strength", p.NicotineStrength, NicotineStrengths},
		{"content_theme", p.ContentTheme, ContentThemes},
		{"setting", p.Setting, Settings},
	}

	for _, c := range checks {
		for _, v := range NormalizeSet(c.values) {
			if !slices.Contains(c.vocabulary, v) {
				return fmt.Errorf("%w: %s %q", ErrInvalidTagValue, c.field, v)
			}
		}
	}

	return nil
}

// Apply returns a copy of the tag set with the patch's present fields applied.
func (t TagSet) Apply(p TagPatch) TagSet {
	out := t.Normalize()

	if p.AssetType != nil {
		out.AssetType = *p.AssetType
	}
	if p.ProductLine != nil {
		out.ProductLine = NormalizeSet(p.ProductLine)
	}
	if p.Flavor != nil {
		out.Flavor = NormalizeSet(p.Flavor)
	}
	if p.NicotineStrength != nil {
		out.NicotineStrength = NormalizeSet(p.NicotineStrength)
	}
	if p.PackFormat != nil {
		out.PackFormat = *p.PackFormat
	}
	if p.ContentTheme != nil {
		out.ContentTheme = NormalizeSet(p.ContentTheme)
	}
	if p.Setting != nil {
		out.Setting = NormalizeSet(p.Setting)
	}
	if p.Campaign != nil {
		if *p.Campaign == "" {
			out.Campaign = nil
		} else {
			campaign := *p.Campaign
			out.Campaign = &campaign
		}
	}
	if p.UsageRights != nil {
		out.UsageRights = *p.UsageRights
	}
	if p.Description != nil {
		out.Description = *p.Description
	}

	return out
}

// Normalize returns a copy with every multi-valued field deduplicated and sorted.
func (t TagSet) Normalize() TagSet {
	out := t
	out.ProductLine = NormalizeSet(t.ProductLine)
	out.Flavor = NormalizeSet(t.Flavor)
	out.NicotineStrength = NormalizeSet(t.NicotineStrength)
	out.ContentTheme = NormalizeSet(t.ContentTheme)
	out.Setting = NormalizeSet(t.Setting)
	if t.Campaign != nil {
		campaign := *t.Campaign
		out.Campaign = &campaign
	}
	return out
}

// Diff returns the JSON field names whose values differ between the two tag
// sets. Multi-valued fields compare as sets.
func (t TagSet) Diff(other TagSet) []string {
	var fields []string

	if t.AssetType != other.AssetType {
		fields = append(fields, "asset_type")
	}
	if !EqualSets(t.ProductLine, other.ProductLine) {
		fields = append(fields, "product_line")
	}
	if !EqualSets(t.Flavor, other.Flavor) {
		fields = append(fields, "flavor")
	}
	if !EqualSets(t.NicotineStrength, other.NicotineStrength) {
		fields = append(fields, "nicotine_strength")
	}
	if t.PackFormat != other.PackFormat {
		fields = append(fields, "pack_format")
	}
	if !EqualSets(t.ContentTheme, other.ContentTheme) {
		fields = append(fields, "content_theme")
	}
	if !EqualSets(t.Setting, other.Setting) {
		fields = append(fields, "setting")
	}
	if !equalCampaign(t.Campaign, other.Campaign) {
		fields = append(fields, "campaign")
	}
	if t.UsageRights != other.UsageRights {
		fields = append(fields, "usage_rights")
	}
	if strings.TrimSpace(t.Description) != strings.TrimSpace(other.Description) {
		fields = append(fields, "description")
	}

	return fields
}

// NormalizeSet deduplicates and sorts a multi-valued tag field.
// Returns an empty slice for nil input.
func NormalizeSet(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// EqualSets reports whether two multi-valued tag fields hold the same set of values.
func EqualSets(a, b []string) bool {
	return slices.Equal(NormalizeSet(a), NormalizeSet(b))
}

func equalCampaign(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
