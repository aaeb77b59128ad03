// Package pipeline orchestrates per-revision generation: source cache,
// header patch, binding generation, and export synthesis, run once per
// registry entry.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/cpick/qemu-plugin-bindgen/internal/bindgen"
	"github.com/cpick/qemu-plugin-bindgen/internal/export"
	"github.com/cpick/qemu-plugin-bindgen/internal/fetch"
	"github.com/cpick/qemu-plugin-bindgen/internal/patch"
	"github.com/cpick/qemu-plugin-bindgen/internal/registry"
)

// Fixed sub-paths of an extracted QEMU tree.
const (
	headerRelPath  = "include/qemu/qemu-plugin.h"
	symbolsRelPath = "plugins/qemu-plugins.symbols"
	headerName     = "qemu-plugin.h"
)

// Artifact filename templates, keyed by revision ordinal.
const (
	bindingsNameFormat = "bindings_v%d.go"
	exportsNameFormat  = "qemu_plugin_api_v%d.def"
)

// Ledger records run and per-revision outcomes durably. Optional; a nil
// ledger disables recording.
type Ledger interface {
	BeginRun(ctx context.Context, runID string, startedAt time.Time) error
	RecordOutcome(ctx context.Context, runID string, ordinal int, commit, status, detail, bindingsPath, exportsPath string) error
	FinishRun(ctx context.Context, runID, status string, finishedAt time.Time) error
}

// Outcome is one revision's tagged result.
type Outcome struct {
	Ordinal      int    `json:"ordinal"`
	Commit       string `json:"commit"`
	BindingsPath string `json:"bindings_path,omitempty"`
	ExportsPath  string `json:"exports_path,omitempty"`
	Err          error  `json:"-"`
	Detail       string `json:"detail,omitempty"` // Err.Error() for JSON output
}

// Failed reports whether this revision's generation failed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Report is the result of one full pipeline run.
type Report struct {
	RunID    string    `json:"run_id"`
	OutDir   string    `json:"out_dir"`
	Outcomes []Outcome `json:"outcomes"`
}

// Failed reports whether any revision failed.
func (r *Report) Failed() bool {
	for _, o := range r.Outcomes {
		if o.Failed() {
			return true
		}
	}
	return false
}

// Driver runs the generation chain for every registry entry.
type Driver struct {
	Registry   *registry.Registry
	Metadata   Metadata
	Translator bindgen.Translator

	// Downloader fetches source archives; nil means real HTTP.
	Downloader fetch.Downloader

	// BaseURL overrides the upstream archive location; empty means the
	// QEMU GitHub project.
	BaseURL string

	// Policy is the generation policy handed to the adapter.
	Policy bindgen.Policy

	// Ledger, when non-nil, records the run durably.
	Ledger Ledger

	// Refresh drops cached sources before ensuring them, forcing a
	// refetch of every revision.
	Refresh bool

	// ContinueOnError keeps processing later revisions after a failure.
	// The default is all-or-nothing: first failure aborts the run.
	ContinueOnError bool
}

// RunAll processes every registered revision in ordinal order, writing a
// bindings file and an export descriptor per revision into the resolved
// output directory.
//
// Directory resolution failure aborts before any revision. With the
// default policy the first revision failure aborts the rest; either way
// the returned report carries a tagged outcome per attempted revision.
// The returned error is the first revision failure, if any.
func (d *Driver) RunAll(ctx context.Context) (*Report, error) {
	log := Logger()

	outDir, err := d.Metadata.SourceDir()
	if err != nil {
		return nil, err
	}
	scratch, err := d.Metadata.ScratchDir()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return nil, &ResolveError{Message: fmt.Sprintf("creating scratch directory %s", scratch), Err: err}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, &ResolveError{Message: fmt.Sprintf("creating output directory %s", outDir), Err: err}
	}

	cache := fetch.NewCache(scratch, d.BaseURL, d.Downloader)
	cache.SetLogger(log)
	adapter := &bindgen.Adapter{Translator: d.Translator, Policy: d.Policy}

	report := &Report{RunID: newRunID(), OutDir: outDir}
	log.Info("starting generation run",
		zap.String("run_id", report.RunID),
		zap.String("out_dir", outDir),
		zap.String("scratch_dir", scratch),
		zap.Int("revisions", d.Registry.Size()))

	d.ledgerBegin(ctx, report.RunID)

	var firstErr error
	for ordinal := 1; ordinal <= d.Registry.Size(); ordinal++ {
		commit, err := d.Registry.Get(ordinal)
		if err != nil {
			// Unreachable with a well-formed registry; surface anyway.
			return report, err
		}

		outcome := d.generateRevision(ctx, cache, adapter, outDir, ordinal, commit)
		report.Outcomes = append(report.Outcomes, outcome)
		d.ledgerRecord(ctx, report.RunID, outcome)

		if outcome.Failed() {
			log.Error("revision failed",
				zap.Int("ordinal", ordinal),
				zap.String("commit", commit),
				zap.Error(outcome.Err))
			if firstErr == nil {
				firstErr = outcome.Err
			}
			if !d.ContinueOnError {
				break
			}
			continue
		}

		log.Info("revision generated",
			zap.Int("ordinal", ordinal),
			zap.String("commit", commit),
			zap.String("bindings", outcome.BindingsPath),
			zap.String("exports", outcome.ExportsPath))
	}

	d.ledgerFinish(ctx, report.RunID, firstErr == nil)

	return report, firstErr
}

// generateRevision runs the four-step chain for a single revision.
func (d *Driver) generateRevision(ctx context.Context, cache *fetch.Cache, adapter *bindgen.Adapter, outDir string, ordinal int, commit string) Outcome {
	outcome := Outcome{Ordinal: ordinal, Commit: commit}
	fail := func(err error) Outcome {
		outcome.Err = err
		outcome.Detail = err.Error()
		outcome.BindingsPath = ""
		outcome.ExportsPath = ""
		return outcome
	}

	if d.Refresh {
		if err := cache.Refresh(commit); err != nil {
			return fail(err)
		}
	}

	tree, err := cache.EnsureSource(ctx, commit)
	if err != nil {
		return fail(err)
	}

	headerPath := filepath.Join(tree, filepath.FromSlash(headerRelPath))
	header, err := os.ReadFile(headerPath)
	if err != nil {
		return fail(fmt.Errorf("reading plugin header %s: %w", headerPath, err))
	}

	patched, err := patch.PatchStrict(string(header))
	if err != nil {
		return fail(fmt.Errorf("patching %s: %w", headerPath, err))
	}

	bindingsPath := filepath.Join(outDir, fmt.Sprintf(bindingsNameFormat, ordinal))
	if err := adapter.Generate(ctx, patched, headerName, bindingsPath); err != nil {
		return fail(err)
	}
	outcome.BindingsPath = bindingsPath

	exportsPath := filepath.Join(outDir, fmt.Sprintf(exportsNameFormat, ordinal))
	if err := export.Synthesize(filepath.Join(tree, filepath.FromSlash(symbolsRelPath)), exportsPath); err != nil {
		outcome.BindingsPath = ""
		return fail(err)
	}
	outcome.ExportsPath = exportsPath

	return outcome
}
