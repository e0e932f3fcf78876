package settings

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/freassets/curator/internal/taxonomy"
	"github.com/freassets/curator/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a settings repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "settings"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) Get(ctx context.Context) (Settings, error) {
	return load(ctx, r.db)
}

func (r *repo) Update(ctx context.Context, patch Patch) (Settings, error) {
	if patch.Empty() {
		return Settings{}, ErrEmptyPatch
	}
	if err := patch.Validate(); err != nil {
		return Settings{}, err
	}

	return repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Settings, error) {
		pairs := map[string]string{}

		if patch.OperatingMode != nil {
			pairs[KeyOperatingMode] = string(*patch.OperatingMode)
		}
		if patch.AutoThreshold != nil {
			pairs[KeyAutoThreshold] = formatFloat(*patch.AutoThreshold)
		}
		if patch.AutonomousThreshold != nil {
			pairs[KeyAutonomousThreshold] = formatFloat(*patch.AutonomousThreshold)
		}
		if patch.ReviewThreshold != nil {
			pairs[KeyReviewThreshold] = formatFloat(*patch.ReviewThreshold)
		}
		if patch.CorrectionPatterns != nil {
			pairs[KeyCorrectionPatterns] = *patch.CorrectionPatterns
		}

		upsert := `
			INSERT INTO settings (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = NOW()`

		for key, value := range pairs {
			if _, err := tx.ExecContext(ctx, upsert, key, value); err != nil {
				return Settings{}, fmt.Errorf("upsert setting %s: %w", key, err)
			}
		}

		return load(ctx, tx)
	})
}

// load reads all stored keys over defaults. Unknown keys and unparseable
// values fall back to their defaults rather than failing the read.
func load(ctx context.Context, q repository.Querier) (Settings, error) {
	s := Defaults()

	rows, err := q.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return Settings{}, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return Settings{}, fmt.Errorf("scan setting: %w", err)
		}

		switch key {
		case KeyOperatingMode:
			if mode, err := taxonomy.ParseOperatingMode(value); err == nil {
				s.OperatingMode = mode
			}
		case KeyAutoThreshold:
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				s.AutoThreshold = v
			}
		case KeyAutonomousThreshold:
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				s.AutonomousThreshold = v
			}
		case KeyReviewThreshold:
			if v, err := strconv.ParseFloat(value, 64); err == nil {
				s.ReviewThreshold = v
			}
		case KeyCorrectionPatterns:
			s.CorrectionPatterns = value
		}
	}

	if err := rows.Err(); err != nil {
		return Settings{}, fmt.Errorf("iterate settings: %w", err)
	}

	return s, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
