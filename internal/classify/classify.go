// Package classify produces tag proposals for media files. The primary path
// sends file metadata to a language model agent; a deterministic fallback
// covers every failure so ingestion never loses a file to a bad inference.
package classify

import (
	"context"
	"fmt"

	"github.com/freassets/curator/internal/taxonomy"
)

// Metadata is the file evidence handed to the classifier. Inference works
// from names and paths only: file content is never transmitted.
type Metadata struct {
	FileName         string  `json:"file_name"`
	FilePath         string  `json:"file_path"`
	FileExtension    string  `json:"file_extension"`
	FileSizeKB       *int64  `json:"file_size_kb"`
	Dimensions       *string `json:"dimensions"`
	FolderName       string  `json:"folder_name"`
	ParentFolderName string  `json:"parent_folder_name"`
}

// Proposal is a classification before routing and human review.
// Fallback marks proposals produced without a model inference; the ingestion
// pipeline forces these to Pending Review regardless of operating mode.
type Proposal struct {
	Tags       taxonomy.TagSet `json:"tags"`
	Confidence float64         `json:"confidence"`
	Fallback   bool            `json:"fallback"`
}

// Classifier produces a tag proposal for one file. The patterns argument is
// operator-authored correction guidance appended to the model prompt.
type Classifier interface {
	Classify(ctx context.Context, meta Metadata, patterns string) (Proposal, error)
}

// Source distinguishes how a file reached the pipeline, for fallback defaults.
type Source string

// Ingestion sources.
const (
	SourceSync   Source = "sync"
	SourceUpload Source = "upload"
)

// Fallback confidence levels per source. Both sit below every auto-approval
// threshold so a fallback proposal always lands in review.
const (
	fallbackSyncConfidence   = 20
	fallbackUploadConfidence = 30
)

// Fallback builds the deterministic proposal used when classification fails.
// Asset type derives from the extension family; everything else takes the
// conservative brand defaults.
func Fallback(meta Metadata, source Source) Proposal {
	assetType := taxonomy.AssetOther
	if family, ok := taxonomy.ExtensionFamily(meta.FileExtension); ok {
		switch family {
		case taxonomy.FamilyImage:
			assetType = taxonomy.AssetPhoto
		case taxonomy.FamilyVideo:
			assetType = taxonomy.AssetVideo
		case taxonomy.FamilyDocument:
			assetType = taxonomy.AssetDocument
		}
	}

	confidence := float64(fallbackSyncConfidence)
	description := fmt.Sprintf("Synced from monitored folder: %s", meta.FileName)
	if source == SourceUpload {
		confidence = fallbackUploadConfidence
		description = fmt.Sprintf("Uploaded file: %s", meta.FileName)
	}

	return Proposal{
		Tags: taxonomy.TagSet{
			AssetType:        assetType,
			ProductLine:      []string{"FRE Core"},
			Flavor:           []string{"N/A"},
			NicotineStrength: []string{"N/A"},
			PackFormat:       taxonomy.PackNotApplicable,
			ContentTheme:     []string{"Product Shot"},
			Setting:          []string{"N/A"},
			Campaign:         nil,
			UsageRights:      taxonomy.RightsUnlimitedInternal,
			Description:      description,
		},
		Confidence: confidence,
		Fallback:   true,
	}
}
