package assets

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/freassets/curator/internal/classify"
	"github.com/freassets/curator/internal/corrections"
	"github.com/freassets/curator/internal/review"
	"github.com/freassets/curator/internal/taxonomy"
	"github.com/freassets/curator/pkg/pagination"
	"github.com/freassets/curator/pkg/query"
	"github.com/freassets/curator/pkg/repository"
	"github.com/freassets/curator/pkg/storage"
)

const returning = `id, file_name, file_format, file_size_kb, dimensions, page_count,
		origin_path, origin_link, storage_key, uploaded_by, date_indexed,
		asset_type, product_line, flavor, nicotine_strength, pack_format,
		content_theme, setting, campaign, usage_rights, description,
		tagging_method, confidence_score, review_status, reviewed_by, reviewed_at,
		created_at, updated_at`

type repo struct {
	db         *sql.DB
	storage    storage.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an asset repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		logger:     logger.With("system", "assets"),
		pagination: pagination,
	}
}

func (r *repo) Handler(maxUploadSize int64, ingestor Ingestor) *Handler {
	return NewHandler(r, ingestor, r.logger, r.pagination, maxUploadSize)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Asset], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "FileName", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count assets: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanAsset)
	if err != nil {
		return nil, fmt.Errorf("query assets: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Asset, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAsset)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &a, nil
}

func (r *repo) PathExists(ctx context.Context, path string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(
		ctx,
		"SELECT EXISTS(SELECT 1 FROM assets WHERE origin_path = $1)",
		path,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check origin path %q: %w", path, err)
	}
	return exists, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Asset, error) {
	tags, err := tagArgs(cmd.Tags)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		INSERT INTO assets(
			id, file_name, file_format, file_size_kb, dimensions, page_count,
			origin_path, origin_link, storage_key, uploaded_by,
			asset_type, product_line, flavor, nicotine_strength, pack_format,
			content_theme, setting, campaign, usage_rights, description,
			tagging_method, confidence_score, review_status
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23)
		RETURNING %s`, returning)

	args := []any{
		uuid.New(),
		cmd.FileName,
		cmd.FileFormat,
		cmd.FileSizeKB,
		cmd.Dimensions,
		cmd.PageCount,
		cmd.OriginPath,
		cmd.OriginLink,
		cmd.StorageKey,
		cmd.UploadedBy,
	}
	args = append(args, tags...)
	args = append(args, string(cmd.TaggingMethod), cmd.ConfidenceScore, string(cmd.ReviewStatus))

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAsset)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"asset indexed",
		"id", a.ID,
		"file", a.FileName,
		"status", a.ReviewStatus,
		"confidence", a.ConfidenceScore,
	)
	return &a, nil
}

func (r *repo) UpdateTags(ctx context.Context, id uuid.UUID, patch taxonomy.TagPatch) (*Asset, error) {
	if patch.Empty() {
		return nil, ErrInvalidFile
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	tags, err := tagArgs(current.Tags.Apply(patch))
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		UPDATE assets SET
			asset_type = $1, product_line = $2, flavor = $3,
			nicotine_strength = $4, pack_format = $5, content_theme = $6,
			setting = $7, campaign = $8, usage_rights = $9, description = $10,
			tagging_method = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING %s`, returning)

	args := append(tags, string(taxonomy.MethodManual), id)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAsset)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("asset tags updated", "id", id)
	return &a, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	asset, err := r.Find(ctx, id)
	if err != nil {
		return err
	}

	if err := repository.ExecExpectOne(
		ctx, r.db,
		"DELETE FROM assets WHERE id = $1",
		id,
	); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if asset.StorageKey != nil {
		if delErr := r.storage.Delete(ctx, *asset.StorageKey); delErr != nil {
			r.logger.Warn(
				"blob delete failed after DB delete",
				"key", *asset.StorageKey,
				"error", delErr,
			)
		}
	}

	r.logger.Info("asset deleted", "id", id)
	return nil
}

func (r *repo) Review(ctx context.Context, id uuid.UUID, cmd review.Command) (*ReviewResult, error) {
	asset, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	outcome, err := review.Decide(
		review.Input{Tags: asset.Tags, Method: asset.TaggingMethod},
		cmd,
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	if outcome.Skipped {
		return &ReviewResult{Asset: asset, Skipped: true}, nil
	}

	result, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (ReviewResult, error) {
		tags, err := tagArgs(outcome.Final)
		if err != nil {
			return ReviewResult{}, err
		}

		q := fmt.Sprintf(`
			UPDATE assets SET
				asset_type = $1, product_line = $2, flavor = $3,
				nicotine_strength = $4, pack_format = $5, content_theme = $6,
				setting = $7, campaign = $8, usage_rights = $9, description = $10,
				tagging_method = $11, review_status = $12,
				reviewed_by = $13, reviewed_at = $14, updated_at = NOW()
			WHERE id = $15
			RETURNING %s`, returning)

		args := append(tags,
			string(outcome.Method),
			string(outcome.Status),
			outcome.ReviewedBy,
			outcome.ReviewedAt,
			id,
		)

		updated, err := repository.QueryOne(ctx, tx, q, args, scanAsset)
		if err != nil {
			return ReviewResult{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}

		var note *string
		if outcome.Note != "" {
			note = &outcome.Note
		}

		correction, err := corrections.Insert(ctx, tx, corrections.Record{
			AssetID:         id,
			Action:          outcome.Action,
			ReviewedBy:      outcome.ReviewedBy,
			OriginalTags:    asset.Tags,
			FinalTags:       outcome.Final,
			CorrectedFields: outcome.CorrectedFields,
			Note:            note,
			ConfidenceScore: asset.ConfidenceScore,
			FileName:        asset.FileName,
			FolderPath:      asset.OriginPath,
		})
		if err != nil {
			return ReviewResult{}, fmt.Errorf("record correction: %w", err)
		}

		return ReviewResult{Asset: &updated, Correction: &correction}, nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info(
		"asset reviewed",
		"id", id,
		"action", outcome.Action,
		"status", outcome.Status,
		"reviewer", outcome.ReviewedBy,
	)
	return &result, nil
}

func (r *repo) ApplyClassification(
	ctx context.Context,
	id uuid.UUID,
	proposal classify.Proposal,
	status taxonomy.ReviewStatus,
) (*Asset, error) {
	tags, err := tagArgs(proposal.Tags)
	if err != nil {
		return nil, err
	}

	q := fmt.Sprintf(`
		UPDATE assets SET
			asset_type = $1, product_line = $2, flavor = $3,
			nicotine_strength = $4, pack_format = $5, content_theme = $6,
			setting = $7, campaign = $8, usage_rights = $9, description = $10,
			tagging_method = $11, confidence_score = $12, review_status = $13,
			reviewed_by = NULL, reviewed_at = NULL, updated_at = NOW()
		WHERE id = $14
		RETURNING %s`, returning)

	args := append(tags,
		string(taxonomy.MethodAISuggested),
		proposal.Confidence,
		string(status),
		id,
	)

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAsset)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info(
		"asset reclassified",
		"id", id,
		"status", status,
		"confidence", proposal.Confidence,
	)
	return &a, nil
}

func (r *repo) StatusCounts(ctx context.Context) (StatusCounts, error) {
	q := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE review_status = 'Pending Review'),
			COUNT(*) FILTER (WHERE review_status = 'Approved'),
			COUNT(*) FILTER (WHERE review_status = 'Corrected'),
			COUNT(*) FILTER (WHERE review_status = 'Rejected'),
			COUNT(*) FILTER (WHERE review_status = 'Auto-Approved'),
			AVG(confidence_score)
		FROM assets`

	var counts StatusCounts
	err := r.db.QueryRowContext(ctx, q).Scan(
		&counts.Total,
		&counts.PendingReview,
		&counts.Approved,
		&counts.Corrected,
		&counts.Rejected,
		&counts.AutoApproved,
		&counts.AvgConfidence,
	)
	if err != nil {
		return StatusCounts{}, fmt.Errorf("count asset statuses: %w", err)
	}

	return counts, nil
}
