package folders

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/freassets/curator/internal/assets"
	"github.com/freassets/curator/internal/classify"
	"github.com/freassets/curator/internal/taxonomy"
	"github.com/freassets/curator/pkg/pagination"
	"github.com/freassets/curator/pkg/query"
	"github.com/freassets/curator/pkg/repository"
	"github.com/freassets/curator/pkg/storage"
)

const returning = `id, path, display_name, active, last_sync_at,
		total_files_synced, created_at, updated_at`

type repo struct {
	db         *sql.DB
	storage    storage.System
	ingestor   assets.Ingestor
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a folder repository implementing the System interface.
func New(
	db *sql.DB,
	store storage.System,
	ingestor assets.Ingestor,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    store,
		ingestor:   ingestor,
		logger:     logger.With("system", "folders"),
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
) (*pagination.PageResult[Folder], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Path", "DisplayName")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count folders: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanFolder)
	if err != nil {
		return nil, fmt.Errorf("query folders: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Folder, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	f, err := repository.QueryOne(ctx, r.db, q, args, scanFolder)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &f, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Folder, error) {
	cmd.Path = normalizePath(cmd.Path)
	if cmd.Path == "" {
		return nil, ErrInvalidPath
	}
	if cmd.DisplayName == "" {
		cmd.DisplayName = path.Base(cmd.Path)
	}

	q := fmt.Sprintf(`
		INSERT INTO folders(id, path, display_name)
		VALUES ($1, $2, $3)
		RETURNING %s`, returning)

	f, err := repository.QueryOne(ctx, r.db, q, []any{uuid.New(), cmd.Path, cmd.DisplayName}, scanFolder)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("folder registered", "id", f.ID, "path", f.Path)
	return &f, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Folder, error) {
	if cmd.DisplayName == nil {
		return r.Find(ctx, id)
	}

	q := fmt.Sprintf(`
		UPDATE folders SET display_name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s`, returning)

	f, err := repository.QueryOne(ctx, r.db, q, []any{*cmd.DisplayName, id}, scanFolder)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &f, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repository.ExecExpectOne(
		ctx, r.db,
		"DELETE FROM folders WHERE id = $1",
		id,
	); err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("folder removed", "id", id)
	return nil
}

func (r *repo) Activate(ctx context.Context, id uuid.UUID) (*Folder, error) {
	return r.setActive(ctx, id, true)
}

func (r *repo) Deactivate(ctx context.Context, id uuid.UUID) (*Folder, error) {
	return r.setActive(ctx, id, false)
}

func (r *repo) setActive(ctx context.Context, id uuid.UUID, active bool) (*Folder, error) {
	q := fmt.Sprintf(`
		UPDATE folders SET active = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s`, returning)

	f, err := repository.QueryOne(ctx, r.db, q, []any{active, id}, scanFolder)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("folder active flag set", "id", id, "active", active)
	return &f, nil
}

func (r *repo) Sync(ctx context.Context) (*SyncReport, error) {
	active := true
	qb := query.NewBuilder(projection, defaultSort)
	Filters{Active: &active}.Apply(qb)

	q, args := qb.Build()
	folders, err := repository.QueryMany(ctx, r.db, q, args, scanFolder)
	if err != nil {
		return nil, fmt.Errorf("query active folders: %w", err)
	}

	report := &SyncReport{Folders: make([]SyncResult, 0, len(folders))}
	for _, folder := range folders {
		result := r.syncFolder(ctx, folder)
		report.Folders = append(report.Folders, result)
	}

	return report, nil
}

func (r *repo) SyncOne(ctx context.Context, id uuid.UUID) (*SyncResult, error) {
	folder, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	result := r.syncFolder(ctx, *folder)
	return &result, nil
}

// syncFolder lists the folder's blobs, filters to supported extensions, and
// runs the batch through the ingestion pipeline. Errors are reported in the
// result so one bad folder never aborts a full sync.
func (r *repo) syncFolder(ctx context.Context, folder Folder) SyncResult {
	result := SyncResult{FolderID: folder.ID, Path: folder.Path}

	candidates, err := r.collectCandidates(ctx, folder)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	ingested, err := r.ingestor.Ingest(ctx, candidates)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Report = ingested

	if err := r.recordSync(ctx, folder.ID, len(ingested.Created)); err != nil {
		r.logger.Warn("record folder sync failed", "id", folder.ID, "error", err)
	}

	r.logger.Info(
		"folder synced",
		"path", folder.Path,
		"created", len(ingested.Created),
		"skipped", len(ingested.Skipped),
		"errors", len(ingested.Errors),
	)
	return result
}

func (r *repo) collectCandidates(ctx context.Context, folder Folder) ([]assets.Candidate, error) {
	var candidates []assets.Candidate

	marker := ""
	for {
		page, err := r.storage.List(ctx, folder.Path, marker)
		if err != nil {
			return nil, fmt.Errorf("list folder %q: %w", folder.Path, err)
		}

		for _, obj := range page.Objects {
			name := path.Base(obj.Key)
			if !taxonomy.SupportedExtension(strings.TrimPrefix(path.Ext(name), ".")) {
				continue
			}

			link := r.storage.URL(obj.Key)
			key := obj.Key
			candidates = append(candidates, assets.Candidate{
				FileName:   name,
				Path:       obj.Key,
				SizeBytes:  obj.Size,
				OriginLink: &link,
				StorageKey: &key,
				UploadedBy: "system",
				Source:     classify.SourceSync,
			})
		}

		if page.NextMarker == "" {
			break
		}
		marker = page.NextMarker
	}

	return candidates, nil
}

func (r *repo) recordSync(ctx context.Context, id uuid.UUID, created int) error {
	return repository.ExecExpectOne(
		ctx, r.db,
		`UPDATE folders SET
			last_sync_at = NOW(),
			total_files_synced = total_files_synced + $1,
			updated_at = NOW()
		WHERE id = $2`,
		created, id,
	)
}

func normalizePath(p string) string {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	return strings.Trim(p, "/")
}
