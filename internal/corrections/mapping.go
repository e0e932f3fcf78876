package corrections

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/google/uuid"

	"github.com/freassets/curator/pkg/query"
	"github.com/freassets/curator/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "corrections", "c").
	Project("id", "ID").
	Project("asset_id", "AssetID").
	Project("review_action", "ReviewAction").
	Project("reviewed_by", "ReviewedBy").
	Project("original_tags", "OriginalTags").
	Project("final_tags", "FinalTags").
	Project("corrected_fields", "CorrectedFields").
	Project("correction_note", "CorrectionNote").
	Project("confidence_score", "ConfidenceScore").
	Project("file_name", "FileName").
	Project("folder_path", "FolderPath").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{
	Field:      "CreatedAt",
	Descending: true,
}

// Filters contains optional filtering criteria for correction queries.
// Nil fields are ignored.
type Filters struct {
	AssetID      *uuid.UUID `json:"asset_id,omitempty"`
	ReviewAction *string    `json:"review_action,omitempty"`
	ReviewedBy   *string    `json:"reviewed_by,omitempty"`
	FileName     *string    `json:"file_name,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("AssetID", f.AssetID).
		WhereEquals("ReviewAction", f.ReviewAction).
		WhereEquals("ReviewedBy", f.ReviewedBy).
		WhereContains("FileName", f.FileName)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if raw := values.Get("asset_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			f.AssetID = &id
		}
	}

	if a := values.Get("review_action"); a != "" {
		f.ReviewAction = &a
	}

	if rb := values.Get("reviewed_by"); rb != "" {
		f.ReviewedBy = &rb
	}

	if fn := values.Get("file_name"); fn != "" {
		f.FileName = &fn
	}

	return f
}

func scanCorrection(s repository.Scanner) (Correction, error) {
	var (
		c              Correction
		originalTags   []byte
		finalTags      []byte
		correctedField []byte
	)

	err := s.Scan(
		&c.ID,
		&c.AssetID,
		&c.ReviewAction,
		&c.ReviewedBy,
		&originalTags,
		&finalTags,
		&correctedField,
		&c.CorrectionNote,
		&c.ConfidenceScore,
		&c.FileName,
		&c.FolderPath,
		&c.CreatedAt,
	)
	if err != nil {
		return c, err
	}

	if err := json.Unmarshal(originalTags, &c.OriginalTags); err != nil {
		return c, fmt.Errorf("unmarshal original tags: %w", err)
	}
	if err := json.Unmarshal(finalTags, &c.FinalTags); err != nil {
		return c, fmt.Errorf("unmarshal final tags: %w", err)
	}
	if err := json.Unmarshal(correctedField, &c.CorrectedFields); err != nil {
		return c, fmt.Errorf("unmarshal corrected fields: %w", err)
	}

	return c, nil
}
