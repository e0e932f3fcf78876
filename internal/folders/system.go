package folders

import (
	"context"

	"github.com/google/uuid"

	"github.com/freassets/curator/pkg/pagination"
)

// System defines the public contract for folder domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Folder], error)

	Find(ctx context.Context, id uuid.UUID) (*Folder, error)
	Create(ctx context.Context, cmd CreateCommand) (*Folder, error)
	Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Folder, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*Folder, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*Folder, error)

	// Sync lists every active folder's blobs and runs the supported files
	// through the ingestion pipeline. Per-folder failures are collected in
	// the report, never raised.
	Sync(ctx context.Context) (*SyncReport, error)
	// SyncOne syncs a single folder regardless of its active flag.
	SyncOne(ctx context.Context, id uuid.UUID) (*SyncResult, error)
}
