package assets

import (
	"context"

	"github.com/google/uuid"

	"github.com/freassets/curator/internal/classify"
	"github.com/freassets/curator/internal/review"
	"github.com/freassets/curator/internal/taxonomy"
	"github.com/freassets/curator/pkg/pagination"
)

// System defines the public contract for asset domain operations.
type System interface {
	Handler(maxUploadSize int64, ingestor Ingestor) *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Asset], error)

	Find(ctx context.Context, id uuid.UUID) (*Asset, error)

	// PathExists reports whether an asset with the given origin path is
	// already indexed. Ingestion dedupes on this before classifying.
	PathExists(ctx context.Context, path string) (bool, error)

	Create(ctx context.Context, cmd CreateCommand) (*Asset, error)

	// UpdateTags applies a manual tag edit outside the review workflow,
	// stamping the tagging method as Manual. No correction record is emitted.
	UpdateTags(ctx context.Context, id uuid.UUID, patch taxonomy.TagPatch) (*Asset, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// Review applies a human review decision. The asset mutation and the
	// correction record commit in one transaction. Skip mutates nothing.
	Review(ctx context.Context, id uuid.UUID, cmd review.Command) (*ReviewResult, error)

	// ApplyClassification overwrites an asset's tags with a fresh proposal
	// and resets its review state to the routed status.
	ApplyClassification(
		ctx context.Context,
		id uuid.UUID,
		proposal classify.Proposal,
		status taxonomy.ReviewStatus,
	) (*Asset, error)

	StatusCounts(ctx context.Context) (StatusCounts, error)
}
