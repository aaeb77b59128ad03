package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Run is one recorded generation run.
type Run struct {
	ID         string     `json:"id"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Status     string     `json:"status"`
}

// Outcome is one revision's recorded result within a run.
type Outcome struct {
	RunID        string `json:"run_id"`
	Ordinal      int    `json:"ordinal"`
	Commit       string `json:"commit"`
	Status       string `json:"status"`
	Detail       string `json:"detail,omitempty"`
	BindingsPath string `json:"bindings_path,omitempty"`
	ExportsPath  string `json:"exports_path,omitempty"`
}

// ReadRuns returns all recorded runs, most recent first. Ordering is
// deterministic: started_at descending, then id.
func (s *Store) ReadRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, finished_at, status
		FROM runs
		ORDER BY started_at DESC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var (
			run      Run
			started  string
			finished sql.NullString
		)
		if err := rows.Scan(&run.ID, &started, &finished, &run.Status); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at for run %s: %w", run.ID, err)
		}
		if finished.Valid {
			ts, err := time.Parse(time.RFC3339Nano, finished.String)
			if err != nil {
				return nil, fmt.Errorf("parse finished_at for run %s: %w", run.ID, err)
			}
			run.FinishedAt = &ts
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// ReadOutcomes returns a run's per-revision outcomes in ordinal order.
func (s *Store) ReadOutcomes(ctx context.Context, runID string) ([]Outcome, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, ordinal, commit_hash, status, detail, bindings_path, exports_path
		FROM outcomes
		WHERE run_id = ?
		ORDER BY ordinal ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	outcomes := []Outcome{}
	for rows.Next() {
		var o Outcome
		if err := rows.Scan(&o.RunID, &o.Ordinal, &o.Commit, &o.Status, &o.Detail, &o.BindingsPath, &o.ExportsPath); err != nil {
			return nil, fmt.Errorf("scan outcome: %w", err)
		}
		outcomes = append(outcomes, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}

	return outcomes, nil
}
