// Package assets implements the media asset index: the searchable record of
// every classified file, the review endpoint that drives the correction log,
// and the commands the ingestion pipeline uses to create and re-classify
// records.
package assets

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/freassets/curator/internal/classify"
	"github.com/freassets/curator/internal/corrections"
	"github.com/freassets/curator/internal/taxonomy"
)

// Asset represents one indexed media file with its classification tags and
// review state.
type Asset struct {
	ID              uuid.UUID              `json:"id"`
	FileName        string                 `json:"file_name"`
	FileFormat      string                 `json:"file_format"`
	FileSizeKB      *int64                 `json:"file_size_kb"`
	Dimensions      *string                `json:"dimensions"`
	PageCount       *int                   `json:"page_count"`
	OriginPath      *string                `json:"origin_path"`
	OriginLink      *string                `json:"origin_link"`
	StorageKey      *string                `json:"storage_key"`
	UploadedBy      string                 `json:"uploaded_by"`
	DateIndexed     time.Time              `json:"date_indexed"`
	Tags            taxonomy.TagSet        `json:"tags"`
	TaggingMethod   taxonomy.TaggingMethod `json:"tagging_method"`
	ConfidenceScore *float64               `json:"confidence_score"`
	ReviewStatus    taxonomy.ReviewStatus  `json:"review_status"`
	ReviewedBy      *string                `json:"reviewed_by"`
	ReviewedAt      *time.Time             `json:"reviewed_at"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
}

// CreateCommand carries a fully classified file ready for indexing.
type CreateCommand struct {
	FileName        string
	FileFormat      string
	FileSizeKB      *int64
	Dimensions      *string
	PageCount       *int
	OriginPath      *string
	OriginLink      *string
	StorageKey      *string
	UploadedBy      string
	Tags            taxonomy.TagSet
	ConfidenceScore float64
	TaggingMethod   taxonomy.TaggingMethod
	ReviewStatus    taxonomy.ReviewStatus
}

// Candidate is one file discovered by a folder sync or upload, before
// classification. Path is the origin path used for deduplication; it is
// empty for direct uploads.
type Candidate struct {
	FileName   string
	Path       string
	SizeBytes  int64
	OriginLink *string
	StorageKey *string
	PageCount  *int
	UploadedBy string
	Source     classify.Source
}

// UploadCommand carries a directly uploaded file with its raw bytes. The
// pipeline persists the blob, classifies the metadata, and indexes the asset.
type UploadCommand struct {
	Data        []byte
	FileName    string
	ContentType string
	PageCount   *int
	UploadedBy  string
}

// IngestError reports one file that failed during a batch.
type IngestError struct {
	FileName string `json:"file_name"`
	Error    string `json:"error"`
}

// IngestReport summarizes one ingestion batch. Skipped lists origin paths
// that already existed in the index.
type IngestReport struct {
	Created []Asset       `json:"created"`
	Skipped []string      `json:"skipped"`
	Errors  []IngestError `json:"errors"`
}

// Ingestor runs the classification pipeline. Implemented by the ingest
// package; consumed here and by the folder sync.
type Ingestor interface {
	// Ingest classifies and indexes a batch of candidates. Per-file failures
	// are collected in the report, never raised.
	Ingest(ctx context.Context, candidates []Candidate) (*IngestReport, error)
	// Upload persists an uploaded file to blob storage, then classifies and
	// indexes it.
	Upload(ctx context.Context, cmd UploadCommand) (*Asset, error)
	// Reclassify re-runs classification for an existing asset and resets its
	// review state. Classification errors are surfaced, not absorbed.
	Reclassify(ctx context.Context, id uuid.UUID) (*Asset, error)
}

// ReviewResult is the outcome of a review decision. Skip decisions set
// Skipped and leave Correction nil.
type ReviewResult struct {
	Asset      *Asset                  `json:"asset"`
	Correction *corrections.Correction `json:"correction,omitempty"`
	Skipped    bool                    `json:"skipped"`
}

// StatusCounts aggregates the index by review status for the metrics summary.
type StatusCounts struct {
	Total         int      `json:"total"`
	PendingReview int      `json:"pending_review"`
	Approved      int      `json:"approved"`
	Corrected     int      `json:"corrected"`
	Rejected      int      `json:"rejected"`
	AutoApproved  int      `json:"auto_approved"`
	AvgConfidence *float64 `json:"avg_confidence"`
}
