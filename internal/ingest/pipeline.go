// Package ingest runs candidate files through classification and into the
// asset index. Classification failures are absorbed by the deterministic
// fallback so one bad file never aborts a batch; persistence failures are
// collected per file and reported, not raised.
package ingest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/freassets/curator/internal/assets"
	"github.com/freassets/curator/internal/classify"
	"github.com/freassets/curator/internal/review"
	"github.com/freassets/curator/internal/settings"
	"github.com/freassets/curator/internal/taxonomy"
	"github.com/freassets/curator/pkg/storage"
)

const defaultConcurrency = 4

// Pipeline implements assets.Ingestor.
type Pipeline struct {
	assets      assets.System
	classifier  classify.Classifier
	settings    settings.System
	storage     storage.System
	logger      *slog.Logger
	concurrency int
}

// New creates an ingestion pipeline. Concurrency bounds the number of
// classification calls in flight per batch; values below 1 take the default.
func New(
	sys assets.System,
	classifier classify.Classifier,
	settingsSys settings.System,
	store storage.System,
	logger *slog.Logger,
	concurrency int,
) *Pipeline {
	if concurrency < 1 {
		concurrency = defaultConcurrency
	}
	return &Pipeline{
		assets:      sys,
		classifier:  classifier,
		settings:    settingsSys,
		storage:     store,
		logger:      logger.With("system", "ingest"),
		concurrency: concurrency,
	}
}

// Ingest classifies and indexes a batch of candidates. Settings are read
// once at the start of the batch so every file routes under the same policy.
func (p *Pipeline) Ingest(ctx context.Context, candidates []assets.Candidate) (*assets.IngestReport, error) {
	snapshot, err := p.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	report := &assets.IngestReport{
		Created: []assets.Asset{},
		Skipped: []string{},
		Errors:  []assets.IngestError{},
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for _, candidate := range candidates {
		g.Go(func() error {
			if candidate.Path != "" {
				exists, err := p.assets.PathExists(gctx, candidate.Path)
				if err != nil {
					mu.Lock()
					report.Errors = append(report.Errors, assets.IngestError{
						FileName: candidate.FileName,
						Error:    err.Error(),
					})
					mu.Unlock()
					return nil
				}
				if exists {
					mu.Lock()
					report.Skipped = append(report.Skipped, candidate.Path)
					mu.Unlock()
					return nil
				}
			}

			asset, err := p.ingestOne(gctx, snapshot, candidate)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Errors = append(report.Errors, assets.IngestError{
					FileName: candidate.FileName,
					Error:    err.Error(),
				})
				return nil
			}
			report.Created = append(report.Created, *asset)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	p.logger.Info(
		"batch ingested",
		"candidates", len(candidates),
		"created", len(report.Created),
		"skipped", len(report.Skipped),
		"errors", len(report.Errors),
	)
	return report, nil
}

// Upload persists an uploaded file to blob storage, then classifies and
// indexes it under the current operating mode.
func (p *Pipeline) Upload(ctx context.Context, cmd assets.UploadCommand) (*assets.Asset, error) {
	snapshot, err := p.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	key := buildStorageKey(uuid.New(), sanitizeFilename(cmd.FileName))
	if err := p.storage.Upload(ctx, key, bytes.NewReader(cmd.Data), cmd.ContentType); err != nil {
		return nil, fmt.Errorf("upload asset blob: %w", err)
	}

	link := p.storage.URL(key)
	uploadedBy := cmd.UploadedBy
	if uploadedBy == "" {
		uploadedBy = "system"
	}

	asset, err := p.ingestOne(ctx, snapshot, assets.Candidate{
		FileName:   cmd.FileName,
		SizeBytes:  int64(len(cmd.Data)),
		OriginLink: &link,
		StorageKey: &key,
		PageCount:  cmd.PageCount,
		UploadedBy: uploadedBy,
		Source:     classify.SourceUpload,
	})
	if err != nil {
		if delErr := p.storage.Delete(ctx, key); delErr != nil {
			p.logger.Warn("compensating blob delete failed", "key", key, "error", delErr)
		}
		return nil, err
	}

	return asset, nil
}

// Reclassify re-runs classification for an existing asset and resets its
// review state to the routed status. Failures surface: an explicit
// re-classification request gets the real error, never the fallback.
func (p *Pipeline) Reclassify(ctx context.Context, id uuid.UUID) (*assets.Asset, error) {
	asset, err := p.assets.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot, err := p.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	meta := deriveMetadata(candidateFromAsset(asset))

	proposal, err := p.classifier.Classify(ctx, meta, snapshot.CorrectionPatterns)
	if err != nil {
		return nil, err
	}

	status := review.RouteStatus(proposal.Confidence, snapshot.OperatingMode, snapshot.Thresholds())
	return p.assets.ApplyClassification(ctx, id, proposal, status)
}

// ingestOne classifies a single candidate and creates its asset record.
// Classification failures fall back; only persistence failures return error.
func (p *Pipeline) ingestOne(
	ctx context.Context,
	snapshot settings.Settings,
	candidate assets.Candidate,
) (*assets.Asset, error) {
	meta := deriveMetadata(candidate)

	proposal, err := p.classifier.Classify(ctx, meta, snapshot.CorrectionPatterns)
	if err != nil {
		p.logger.Warn(
			"classification failed, using fallback",
			"file", candidate.FileName,
			"error", err,
		)
		proposal = classify.Fallback(meta, candidate.Source)
	}

	status := taxonomy.StatusPendingReview
	if !proposal.Fallback {
		status = review.RouteStatus(proposal.Confidence, snapshot.OperatingMode, snapshot.Thresholds())
	}

	uploadedBy := candidate.UploadedBy
	if uploadedBy == "" {
		uploadedBy = "system"
	}

	cmd := assets.CreateCommand{
		FileName:        candidate.FileName,
		FileFormat:      extensionOf(candidate.FileName),
		FileSizeKB:      meta.FileSizeKB,
		Dimensions:      meta.Dimensions,
		PageCount:       candidate.PageCount,
		OriginLink:      candidate.OriginLink,
		StorageKey:      candidate.StorageKey,
		UploadedBy:      uploadedBy,
		Tags:            proposal.Tags,
		ConfidenceScore: proposal.Confidence,
		TaggingMethod:   taxonomy.MethodAISuggested,
		ReviewStatus:    status,
	}
	if candidate.Path != "" {
		path := candidate.Path
		cmd.OriginPath = &path
	}

	return p.assets.Create(ctx, cmd)
}

func candidateFromAsset(a *assets.Asset) assets.Candidate {
	c := assets.Candidate{
		FileName:   a.FileName,
		UploadedBy: a.UploadedBy,
	}
	if a.OriginPath != nil {
		c.Path = *a.OriginPath
	}
	if a.FileSizeKB != nil {
		c.SizeBytes = *a.FileSizeKB * 1024
	}
	return c
}

func buildStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("uploads/%s/%s", id, filename)
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == "" {
		name = "asset"
	}
	return url.PathEscape(name)
}
