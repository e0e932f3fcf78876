package folders

import (
	"net/url"
	"strconv"

	"github.com/freassets/curator/pkg/query"
	"github.com/freassets/curator/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "folders", "f").
	Project("id", "ID").
	Project("path", "Path").
	Project("display_name", "DisplayName").
	Project("active", "Active").
	Project("last_sync_at", "LastSyncAt").
	Project("total_files_synced", "TotalFilesSynced").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{
	Field: "Path",
}

// Filters contains optional filtering criteria for folder queries.
type Filters struct {
	Active *bool   `json:"active,omitempty"`
	Path   *string `json:"path,omitempty"`
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereEquals("Active", f.Active).
		WhereContains("Path", f.Path)
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if raw := values.Get("active"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			f.Active = &v
		}
	}

	if p := values.Get("path"); p != "" {
		f.Path = &p
	}

	return f
}

func scanFolder(s repository.Scanner) (Folder, error) {
	var f Folder
	err := s.Scan(
		&f.ID,
		&f.Path,
		&f.DisplayName,
		&f.Active,
		&f.LastSyncAt,
		&f.TotalFilesSynced,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	return f, err
}
