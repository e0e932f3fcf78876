// Package folders manages the registry of monitored blob storage folders and
// the sync operation that feeds their contents through the ingestion
// pipeline.
package folders

import (
	"time"

	"github.com/google/uuid"

	"github.com/freassets/curator/internal/assets"
)

// Folder is one monitored storage prefix.
type Folder struct {
	ID               uuid.UUID  `json:"id"`
	Path             string     `json:"path"`
	DisplayName      string     `json:"display_name"`
	Active           bool       `json:"active"`
	LastSyncAt       *time.Time `json:"last_sync_at"`
	TotalFilesSynced int        `json:"total_files_synced"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CreateCommand carries the data needed to register a monitored folder.
type CreateCommand struct {
	Path        string `json:"path"`
	DisplayName string `json:"display_name"`
}

// UpdateCommand carries a partial folder update. Nil fields are unchanged.
type UpdateCommand struct {
	DisplayName *string `json:"display_name,omitempty"`
}

// SyncResult reports the outcome of syncing one folder.
type SyncResult struct {
	FolderID uuid.UUID            `json:"folder_id"`
	Path     string               `json:"path"`
	Report   *assets.IngestReport `json:"report,omitempty"`
	Error    string               `json:"error,omitempty"`
}

// SyncReport summarizes a sync run across monitored folders.
type SyncReport struct {
	Folders []SyncResult `json:"folders"`
}
