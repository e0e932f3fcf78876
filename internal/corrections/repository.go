package corrections

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/freassets/curator/pkg/pagination"
	"github.com/freassets/curator/pkg/query"
	"github.com/freassets/curator/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a correction log repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "corrections"),
		pagination: pagination,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Correction], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "FileName", "ReviewedBy")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count corrections: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanCorrection)
	if err != nil {
		return nil, fmt.Errorf("query corrections: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Correction, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	c, err := repository.QueryOne(ctx, r.db, q, args, scanCorrection)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &c, nil
}

func (r *repo) ListByAsset(ctx context.Context, assetID uuid.UUID) ([]Correction, error) {
	qb := query.NewBuilder(projection, defaultSort)
	qb.WhereEquals("AssetID", assetID)

	q, args := qb.Build()
	items, err := repository.QueryMany(ctx, r.db, q, args, scanCorrection)
	if err != nil {
		return nil, fmt.Errorf("query corrections for asset %s: %w", assetID, err)
	}
	return items, nil
}

func (r *repo) Recent(ctx context.Context, limit int) ([]Correction, error) {
	if limit < 1 {
		limit = 10
	}

	q, args := query.NewBuilder(projection, defaultSort).BuildPage(1, limit)
	items, err := repository.QueryMany(ctx, r.db, q, args, scanCorrection)
	if err != nil {
		return nil, fmt.Errorf("query recent corrections: %w", err)
	}
	return items, nil
}

// Insert appends one audit entry. It runs on the caller's transaction so the
// asset mutation and its audit record commit together.
func Insert(ctx context.Context, q repository.Querier, rec Record) (Correction, error) {
	originalTags, err := json.Marshal(rec.OriginalTags.Normalize())
	if err != nil {
		return Correction{}, fmt.Errorf("marshal original tags: %w", err)
	}

	finalTags, err := json.Marshal(rec.FinalTags.Normalize())
	if err != nil {
		return Correction{}, fmt.Errorf("marshal final tags: %w", err)
	}

	correctedFields := rec.CorrectedFields
	if correctedFields == nil {
		correctedFields = []string{}
	}
	fields, err := json.Marshal(correctedFields)
	if err != nil {
		return Correction{}, fmt.Errorf("marshal corrected fields: %w", err)
	}

	insert := `
		INSERT INTO corrections(
			id, asset_id, review_action, reviewed_by, original_tags,
			final_tags, corrected_fields, correction_note, confidence_score,
			file_name, folder_path
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, asset_id, review_action, reviewed_by, original_tags,
			final_tags, corrected_fields, correction_note, confidence_score,
			file_name, folder_path, created_at`

	args := []any{
		uuid.New(),
		rec.AssetID,
		string(rec.Action),
		rec.ReviewedBy,
		originalTags,
		finalTags,
		fields,
		rec.Note,
		rec.ConfidenceScore,
		rec.FileName,
		rec.FolderPath,
	}

	return repository.QueryOne(ctx, q, insert, args, scanCorrection)
}
