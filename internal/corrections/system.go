package corrections

import (
	"context"

	"github.com/google/uuid"

	"github.com/freassets/curator/pkg/pagination"
)

// System defines the public read contract over the correction log.
// Writes happen only through Insert, inside the asset review transaction.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Correction], error)

	Find(ctx context.Context, id uuid.UUID) (*Correction, error)
	ListByAsset(ctx context.Context, assetID uuid.UUID) ([]Correction, error)
	Recent(ctx context.Context, limit int) ([]Correction, error)
}
