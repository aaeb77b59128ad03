package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Outcome statuses as recorded in the ledger.
const (
	outcomeSucceeded = "succeeded"
	outcomeFailed    = "failed"
	runSucceeded     = "succeeded"
	runFailed        = "failed"
)

func newRunID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Ledger writes are best-effort: a failure to record must not fail the
// generation itself, only get logged.

func (d *Driver) ledgerBegin(ctx context.Context, runID string) {
	if d.Ledger == nil {
		return
	}
	if err := d.Ledger.BeginRun(ctx, runID, time.Now()); err != nil {
		Logger().Warn("recording run start failed", zap.String("run_id", runID), zap.Error(err))
	}
}

func (d *Driver) ledgerRecord(ctx context.Context, runID string, o Outcome) {
	if d.Ledger == nil {
		return
	}
	status := outcomeSucceeded
	if o.Failed() {
		status = outcomeFailed
	}
	if err := d.Ledger.RecordOutcome(ctx, runID, o.Ordinal, o.Commit, status, o.Detail, o.BindingsPath, o.ExportsPath); err != nil {
		Logger().Warn("recording outcome failed",
			zap.String("run_id", runID),
			zap.Int("ordinal", o.Ordinal),
			zap.Error(err))
	}
}

func (d *Driver) ledgerFinish(ctx context.Context, runID string, succeeded bool) {
	if d.Ledger == nil {
		return
	}
	status := runSucceeded
	if !succeeded {
		status = runFailed
	}
	if err := d.Ledger.FinishRun(ctx, runID, status, time.Now()); err != nil {
		Logger().Warn("recording run finish failed", zap.String("run_id", runID), zap.Error(err))
	}
}
