package review

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/freassets/curator/internal/taxonomy"
)

// Action is a human review decision.
type Action string

// Valid review actions.
const (
	ActionApprove Action = "approve"
	ActionEdit    Action = "edit"
	ActionReject  Action = "reject"
	ActionSkip    Action = "skip"
)

var actions = []Action{
	ActionApprove,
	ActionEdit,
	ActionReject,
	ActionSkip,
}

// ParseAction validates a string as a known review action.
func ParseAction(s string) (Action, error) {
	v := Action(s)
	if !slices.Contains(actions, v) {
		return "", ErrInvalidAction
	}
	return v, nil
}

// UnmarshalJSON validates that the decoded string is a known review action.
func (a *Action) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseAction(raw)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// DefaultReviewer is stamped on decisions when the caller supplies no identity.
const DefaultReviewer = "reviewer"

// Input is the reviewable state of an asset.
type Input struct {
	Tags   taxonomy.TagSet
	Method taxonomy.TaggingMethod
}

// Command is one review decision against an asset.
type Command struct {
	Action     Action            `json:"action"`
	Patch      taxonomy.TagPatch `json:"edited_tags"`
	Note       string            `json:"correction_note"`
	ReviewedBy string            `json:"reviewed_by"`
}

// Outcome is the result of applying a Command. When Skipped is true no other
// field is meaningful and the caller must not mutate the asset or record
// anything.
type Outcome struct {
	Skipped         bool
	Action          Action
	Status          taxonomy.ReviewStatus
	Method          taxonomy.TaggingMethod
	Final           taxonomy.TagSet
	CorrectedFields []string
	Note            string
	ReviewedBy      string
	ReviewedAt      time.Time
}

// Decide applies a review command to an asset's current tag state. It accepts
// any current status: re-reviewing an already-decided asset overwrites the
// prior decision. Skip produces no mutation and no record. Unknown actions
// fail with ErrInvalidAction.
func Decide(in Input, cmd Command, now time.Time) (Outcome, error) {
	if cmd.Action == ActionSkip {
		return Outcome{Skipped: true, Action: ActionSkip}, nil
	}

	reviewer := cmd.ReviewedBy
	if reviewer == "" {
		reviewer = DefaultReviewer
	}

	original := in.Tags.Normalize()

	out := Outcome{
		Action:          cmd.Action,
		Final:           original,
		CorrectedFields: []string{},
		Note:            cmd.Note,
		ReviewedBy:      reviewer,
		ReviewedAt:      now,
	}

	switch cmd.Action {
	case ActionApprove:
		out.Status = taxonomy.StatusApproved
		out.Method = taxonomy.MethodHumanReviewed

	case ActionEdit:
		if err := cmd.Patch.Validate(); err != nil {
			return Outcome{}, err
		}
		out.Status = taxonomy.StatusCorrected
		out.Method = taxonomy.MethodHumanCorrected
		out.Final = original.Apply(cmd.Patch)
		out.CorrectedFields = original.Diff(out.Final)
		if out.CorrectedFields == nil {
			out.CorrectedFields = []string{}
		}

	case ActionReject:
		out.Status = taxonomy.StatusRejected
		out.Method = in.Method
		if out.Method == "" {
			out.Method = taxonomy.MethodAISuggested
		}

	default:
		return Outcome{}, ErrInvalidAction
	}

	return out, nil
}
