package classify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"

	"github.com/freassets/curator/pkg/formatting"
)

// response mirrors the JSON schema the prompt instructs the model to emit.
// Fields are loosely typed: coercion against the taxonomy happens after parse.
type response struct {
	AssetType        string   `json:"asset_type"`
	ProductLine      []string `json:"product_line"`
	Flavor           []string `json:"flavor"`
	NicotineStrength []string `json:"nicotine_strength"`
	PackFormat       string   `json:"pack_format"`
	ContentTheme     []string `json:"content_theme"`
	Setting          []string `json:"setting"`
	Campaign         *string  `json:"campaign"`
	UsageRights      string   `json:"usage_rights"`
	Description      string   `json:"description"`
	Confidence       float64  `json:"confidence"`
}

// Agent is the model-backed Classifier.
type Agent struct {
	cfg    gaconfig.AgentConfig
	logger *slog.Logger
}

// NewAgent creates the model-backed classifier from an agent configuration.
func NewAgent(cfg gaconfig.AgentConfig, logger *slog.Logger) *Agent {
	return &Agent{
		cfg:    cfg,
		logger: logger.With("system", "classify"),
	}
}

// Classify sends the file metadata to the model and coerces its answer into
// a valid tag proposal. Service failures return ErrService; unparseable
// output returns ErrParse. Callers decide whether to absorb either via
// Fallback.
func (a *Agent) Classify(ctx context.Context, meta Metadata, patterns string) (Proposal, error) {
	ag, err := agent.New(&a.cfg)
	if err != nil {
		return Proposal{}, fmt.Errorf("%w: create agent: %w", ErrService, err)
	}

	prompt, err := BuildPrompt(meta, patterns)
	if err != nil {
		return Proposal{}, fmt.Errorf("%w: %w", ErrService, err)
	}

	resp, err := ag.Chat(ctx, prompt)
	if err != nil {
		return Proposal{}, fmt.Errorf("%w: chat call: %w", ErrService, err)
	}

	parsed, err := formatting.Parse[response](resp.Text())
	if err != nil {
		return Proposal{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	proposal := coerce(parsed)

	a.logger.Debug(
		"classified file",
		"file", meta.FileName,
		"asset_type", proposal.Tags.AssetType,
		"confidence", proposal.Confidence,
	)

	return proposal, nil
}
