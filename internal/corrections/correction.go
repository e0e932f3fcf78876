// Package corrections exposes the append-only audit log of review decisions.
// Records are inserted inside the asset review transaction and never updated
// or deleted: the log is the ground truth behind the accuracy metrics.
package corrections

import (
	"time"

	"github.com/google/uuid"

	"github.com/freassets/curator/internal/review"
	"github.com/freassets/curator/internal/taxonomy"
)

// Correction is one immutable audit entry for a human review decision.
type Correction struct {
	ID              uuid.UUID       `json:"id"`
	AssetID         uuid.UUID       `json:"asset_id"`
	ReviewAction    review.Action   `json:"review_action"`
	ReviewedBy      string          `json:"reviewed_by"`
	OriginalTags    taxonomy.TagSet `json:"original_tags"`
	FinalTags       taxonomy.TagSet `json:"final_tags"`
	CorrectedFields []string        `json:"corrected_fields"`
	CorrectionNote  *string         `json:"correction_note"`
	ConfidenceScore *float64        `json:"confidence_score"`
	FileName        string          `json:"file_name"`
	FolderPath      *string         `json:"folder_path"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Record carries the data for one new audit entry.
type Record struct {
	AssetID         uuid.UUID
	Action          review.Action
	ReviewedBy      string
	OriginalTags    taxonomy.TagSet
	FinalTags       taxonomy.TagSet
	CorrectedFields []string
	Note            *string
	ConfidenceScore *float64
	FileName        string
	FolderPath      *string
}
