package report

import (
	"context"
	"fmt"
	"time"
)

// Run statuses.
const (
	StatusRunning   = "running"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

// BeginRun records the start of a generation run.
func (s *Store) BeginRun(ctx context.Context, runID string, startedAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, status)
		VALUES (?, ?, ?)
	`, runID, startedAt.UTC().Format(time.RFC3339Nano), StatusRunning)
	if err != nil {
		return fmt.Errorf("begin run: %w", err)
	}
	return nil
}

// RecordOutcome records one revision's tagged outcome within a run.
// detail is empty for successes and carries the error text for failures.
func (s *Store) RecordOutcome(ctx context.Context, runID string, ordinal int, commit, status, detail, bindingsPath, exportsPath string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO outcomes (run_id, ordinal, commit_hash, status, detail, bindings_path, exports_path)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, ordinal) DO NOTHING
	`, runID, ordinal, commit, status, detail, bindingsPath, exportsPath)
	if err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}
	return nil
}

// FinishRun marks a run finished with the given status.
func (s *Store) FinishRun(ctx context.Context, runID, status string, finishedAt time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE runs SET finished_at = ?, status = ? WHERE id = ?
	`, finishedAt.UTC().Format(time.RFC3339Nano), status, runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}
