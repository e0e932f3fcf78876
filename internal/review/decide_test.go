package review_test

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/freassets/curator/internal/review"
	"github.com/freassets/curator/internal/taxonomy"
)

func ptr[T any](v T) *T { return &v }

func reviewInput() review.Input {
	return review.Input{
		Tags: taxonomy.TagSet{
			AssetType:        taxonomy.AssetPhoto,
			ProductLine:      []string{"FRE Core"},
			Flavor:           []string{"Sweet"},
			NicotineStrength: []string{"6mg"},
			PackFormat:       taxonomy.Pack20ctCan,
			ContentTheme:     []string{"Lifestyle"},
			Setting:          []string{"Outdoor"},
			UsageRights:      taxonomy.RightsUnlimitedInternal,
			Description:      "Athlete holding a can outdoors",
		},
		Method: taxonomy.MethodAISuggested,
	}
}

func TestDecideApprove(t *testing.T) {
	now := time.Now().UTC()

	out, err := review.Decide(reviewInput(), review.Command{
		Action:     review.ActionApprove,
		ReviewedBy: "alex",
	}, now)
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	if out.Skipped {
		t.Error("approve should not skip")
	}
	if out.Status != taxonomy.StatusApproved {
		t.Errorf("Status = %v, want Approved", out.Status)
	}
	if out.Method != taxonomy.MethodHumanReviewed {
		t.Errorf("Method = %v, want Human-Reviewed", out.Method)
	}
	if len(out.CorrectedFields) != 0 {
		t.Errorf("CorrectedFields = %v, want empty", out.CorrectedFields)
	}
	if out.ReviewedBy != "alex" {
		t.Errorf("ReviewedBy = %q, want alex", out.ReviewedBy)
	}
	if !out.ReviewedAt.Equal(now) {
		t.Errorf("ReviewedAt = %v, want %v", out.ReviewedAt, now)
	}
}

func TestDecideEdit(t *testing.T) {
	out, err := review.Decide(reviewInput(), review.Command{
		Action: review.ActionEdit,
		Patch:  taxonomy.TagPatch{Flavor: []string{"Mint"}},
	}, time.Now().UTC())
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	if out.Status != taxonomy.StatusCorrected {
		t.Errorf("Status = %v, want Corrected", out.Status)
	}
	if out.Method != taxonomy.MethodHumanCorrected {
		t.Errorf("Method = %v, want Human-Corrected", out.Method)
	}
	if !slices.Contains(out.CorrectedFields, "flavor") {
		t.Errorf("CorrectedFields = %v, want flavor included", out.CorrectedFields)
	}
	if !slices.Equal(out.Final.Flavor, []string{"Mint"}) {
		t.Errorf("Final.Flavor = %v, want [Mint]", out.Final.Flavor)
	}
	if !slices.Equal(out.Final.ProductLine, []string{"FRE Core"}) {
		t.Errorf("unpatched ProductLine changed: %v", out.Final.ProductLine)
	}
}

func TestDecideEditUsageRights(t *testing.T) {
	out, err := review.Decide(reviewInput(), review.Command{
		Action: review.ActionEdit,
		Patch:  taxonomy.TagPatch{UsageRights: ptr(taxonomy.RightsRestricted)},
		Note:   "stock photo",
	}, time.Now().UTC())
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	if !slices.Equal(out.CorrectedFields, []string{"usage_rights"}) {
		t.Errorf("CorrectedFields = %v, want [usage_rights]", out.CorrectedFields)
	}
	if out.Note != "stock photo" {
		t.Errorf("Note = %q, want stock photo", out.Note)
	}
	if out.Status != taxonomy.StatusCorrected {
		t.Errorf("Status = %v, want Corrected", out.Status)
	}
}

func TestDecideEditNoChanges(t *testing.T) {
	out, err := review.Decide(reviewInput(), review.Command{
		Action: review.ActionEdit,
		Patch:  taxonomy.TagPatch{Flavor: []string{"Sweet"}},
	}, time.Now().UTC())
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	if len(out.CorrectedFields) != 0 {
		t.Errorf("CorrectedFields = %v, want empty for no-op edit", out.CorrectedFields)
	}
	if out.Status != taxonomy.StatusCorrected {
		t.Errorf("Status = %v, want Corrected", out.Status)
	}
}

func TestDecideEditUnknownTagValue(t *testing.T) {
	out, err := review.Decide(reviewInput(), review.Command{
		Action: review.ActionEdit,
		Patch:  taxonomy.TagPatch{Flavor: []string{"Bogus Flavor"}},
	}, time.Now().UTC())

	if !errors.Is(err, taxonomy.ErrInvalidTagValue) {
		t.Fatalf("err = %v, want ErrInvalidTagValue", err)
	}
	if slices.Contains(out.Final.Flavor, "Bogus Flavor") {
		t.Errorf("Final.Flavor = %v, unknown value must not persist", out.Final.Flavor)
	}
}

func TestDecideReject(t *testing.T) {
	out, err := review.Decide(reviewInput(), review.Command{
		Action: review.ActionReject,
	}, time.Now().UTC())
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	if out.Status != taxonomy.StatusRejected {
		t.Errorf("Status = %v, want Rejected", out.Status)
	}
	if out.Method != taxonomy.MethodAISuggested {
		t.Errorf("Method = %v, want AI-Suggested preserved", out.Method)
	}
}

func TestDecideSkip(t *testing.T) {
	out, err := review.Decide(reviewInput(), review.Command{
		Action:     review.ActionSkip,
		ReviewedBy: "alex",
	}, time.Now().UTC())
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	if !out.Skipped {
		t.Error("skip should set Skipped")
	}
	if out.Status != "" {
		t.Errorf("Status = %v, want zero value", out.Status)
	}
}

func TestDecideDefaultReviewer(t *testing.T) {
	out, err := review.Decide(reviewInput(), review.Command{
		Action: review.ActionApprove,
	}, time.Now().UTC())
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}

	if out.ReviewedBy != review.DefaultReviewer {
		t.Errorf("ReviewedBy = %q, want %q", out.ReviewedBy, review.DefaultReviewer)
	}
}

func TestDecideInvalidAction(t *testing.T) {
	_, err := review.Decide(reviewInput(), review.Command{
		Action: review.Action("promote"),
	}, time.Now().UTC())

	if !errors.Is(err, review.ErrInvalidAction) {
		t.Errorf("err = %v, want ErrInvalidAction", err)
	}
}

func TestParseAction(t *testing.T) {
	for _, valid := range []string{"approve", "edit", "reject", "skip"} {
		if _, err := review.ParseAction(valid); err != nil {
			t.Errorf("ParseAction(%q) failed: %v", valid, err)
		}
	}
	if _, err := review.ParseAction("defer"); !errors.Is(err, review.ErrInvalidAction) {
		t.Errorf("ParseAction(defer) = %v, want ErrInvalidAction", err)
	}
}
