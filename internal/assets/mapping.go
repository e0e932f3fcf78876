package assets

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/freassets/curator/internal/taxonomy"
	"github.com/freassets/curator/pkg/query"
	"github.com/freassets/curator/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "assets", "a").
	Project("id", "ID").
	Project("file_name", "FileName").
	Project("file_format", "FileFormat").
	Project("file_size_kb", "FileSizeKB").
	Project("dimensions", "Dimensions").
	Project("page_count", "PageCount").
	Project("origin_path", "OriginPath").
	Project("origin_link", "OriginLink").
	Project("storage_key", "StorageKey").
	Project("uploaded_by", "UploadedBy").
	Project("date_indexed", "DateIndexed").
	Project("asset_type", "AssetType").
	Project("product_line", "ProductLine").
	Project("flavor", "Flavor").
	Project("nicotine_strength", "NicotineStrength").
	Project("pack_format", "PackFormat").
	Project("content_theme", "ContentTheme").
	Project("setting", "Setting").
	Project("campaign", "Campaign").
	Project("usage_rights", "UsageRights").
	Project("description", "Description").
	Project("tagging_method", "TaggingMethod").
	Project("confidence_score", "ConfidenceScore").
	Project("review_status", "ReviewStatus").
	Project("reviewed_by", "ReviewedBy").
	Project("reviewed_at", "ReviewedAt").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field:      "DateIndexed",
	Descending: true,
}

// Filters contains optional filtering criteria for asset queries.
// Nil fields are ignored. FileName uses case-insensitive contains matching.
type Filters struct {
	ReviewStatus  *string `json:"review_status,omitempty"`
	AssetType     *string `json:"asset_type,omitempty"`
	TaggingMethod *string `json:"tagging_method,omitempty"`
	UploadedBy    *string `json:"uploaded_by,omitempty"`
	FileName      *string `json:"file_name,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("ReviewStatus", f.ReviewStatus).
		WhereEquals("AssetType", f.AssetType).
		WhereEquals("TaggingMethod", f.TaggingMethod).
		WhereEquals("UploadedBy", f.UploadedBy).
		WhereContains("FileName", f.FileName)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if s := values.Get("status"); s != "" {
		f.ReviewStatus = &s
	}

	if at := values.Get("asset_type"); at != "" {
		f.AssetType = &at
	}

	if tm := values.Get("tagging_method"); tm != "" {
		f.TaggingMethod = &tm
	}

	if ub := values.Get("uploaded_by"); ub != "" {
		f.UploadedBy = &ub
	}

	if fn := values.Get("file_name"); fn != "" {
		f.FileName = &fn
	}

	return f
}

func scanAsset(s repository.Scanner) (Asset, error) {
	var (
		a                Asset
		productLine      []byte
		flavor           []byte
		nicotineStrength []byte
		contentTheme     []byte
		setting          []byte
	)

	err := s.Scan(
		&a.ID,
		&a.FileName,
		&a.FileFormat,
		&a.FileSizeKB,
		&a.Dimensions,
		&a.PageCount,
		&a.OriginPath,
		&a.OriginLink,
		&a.StorageKey,
		&a.UploadedBy,
		&a.DateIndexed,
		&a.Tags.AssetType,
		&productLine,
		&flavor,
		&nicotineStrength,
		&a.Tags.PackFormat,
		&contentTheme,
		&setting,
		&a.Tags.Campaign,
		&a.Tags.UsageRights,
		&a.Tags.Description,
		&a.TaggingMethod,
		&a.ConfidenceScore,
		&a.ReviewStatus,
		&a.ReviewedBy,
		&a.ReviewedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return a, err
	}

	sets := []struct {
		column string
		raw    []byte
		target *[]string
	}{
		{"product_line", productLine, &a.Tags.ProductLine},
		{"flavor", flavor, &a.Tags.Flavor},
		{"nicotine_strength", nicotineStrength, &a.Tags.NicotineStrength},
		{"content_theme", contentTheme, &a.Tags.ContentTheme},
		{"setting", setting, &a.Tags.Setting},
	}

	for _, set := range sets {
		if err := json.Unmarshal(set.raw, set.target); err != nil {
			return a, fmt.Errorf("unmarshal %s: %w", set.column, err)
		}
	}

	return a, nil
}

// tagArgs marshals a tag set's columns in insert/update order:
// asset_type, product_line, flavor, nicotine_strength, pack_format,
// content_theme, setting, campaign, usage_rights, description.
func tagArgs(t taxonomy.TagSet) ([]any, error) {
	t = t.Normalize()

	productLine, err := json.Marshal(t.ProductLine)
	if err != nil {
		return nil, fmt.Errorf("marshal product_line: %w", err)
	}
	flavor, err := json.Marshal(t.Flavor)
	if err != nil {
		return nil, fmt.Errorf("marshal flavor: %w", err)
	}
	nicotineStrength, err := json.Marshal(t.NicotineStrength)
	if err != nil {
		return nil, fmt.Errorf("marshal nicotine_strength: %w", err)
	}
	contentTheme, err := json.Marshal(t.ContentTheme)
	if err != nil {
		return nil, fmt.Errorf("marshal content_theme: %w", err)
	}
	setting, err := json.Marshal(t.Setting)
	if err != nil {
		return nil, fmt.Errorf("marshal setting: %w", err)
	}

	return []any{
		string(t.AssetType),
		productLine,
		flavor,
		nicotineStrength,
		string(t.PackFormat),
		contentTheme,
		setting,
		t.Campaign,
		string(t.UsageRights),
		t.Description,
	}, nil
}
