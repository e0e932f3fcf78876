package corrections_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"github.com/freassets/curator/internal/corrections"
)

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", corrections.ErrNotFound, http.StatusNotFound},
		{"duplicate", corrections.ErrDuplicate, http.StatusConflict},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := corrections.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	t.Run("all params present", func(t *testing.T) {
		id := uuid.New()
		values := url.Values{
			"asset_id":      {id.String()},
			"review_action": {"edited"},
			"reviewed_by":   {"alex"},
			"file_name":     {"mint"},
		}

		f := corrections.FiltersFromQuery(values)

		if f.AssetID == nil || *f.AssetID != id {
			t.Errorf("AssetID = %v, want %v", f.AssetID, id)
		}
		if f.ReviewAction == nil || *f.ReviewAction != "edited" {
			t.Errorf("ReviewAction = %v, want edited", f.ReviewAction)
		}
		if f.ReviewedBy == nil || *f.ReviewedBy != "alex" {
			t.Errorf("ReviewedBy = %v, want alex", f.ReviewedBy)
		}
		if f.FileName == nil || *f.FileName != "mint" {
			t.Errorf("FileName = %v, want mint", f.FileName)
		}
	})

	t.Run("malformed asset id ignored", func(t *testing.T) {
		values := url.Values{"asset_id": {"not-a-uuid"}}

		f := corrections.FiltersFromQuery(values)

		if f.AssetID != nil {
			t.Errorf("AssetID = %v, want nil for malformed input", f.AssetID)
		}
	})

	t.Run("empty params stay nil", func(t *testing.T) {
		f := corrections.FiltersFromQuery(url.Values{})

		if f.AssetID != nil || f.ReviewAction != nil || f.ReviewedBy != nil || f.FileName != nil {
			t.Errorf("Filters = %+v, want all nil", f)
		}
	})
}
