package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cpick/qemu-plugin-bindgen/internal/bindgen"
	"github.com/cpick/qemu-plugin-bindgen/internal/pipeline"
	"github.com/cpick/qemu-plugin-bindgen/internal/registry"
	"github.com/cpick/qemu-plugin-bindgen/internal/report"
)

// ledgerFile is the run ledger database, kept in the scratch directory.
const ledgerFile = "runs.db"

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	*RootOptions
	Registry   string   // registry manifest override path
	Refresh    bool     // drop cached sources before generating
	KeepGoing  bool     // continue past a failed revision
	Translator []string // translation engine argv
	BaseURL    string   // archive source override
	Scratch    string   // scratch directory override
	Out        string   // output directory override
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate bindings and export tables for all tracked revisions",
		Long: `Generate runs the full pipeline for every registered QEMU revision:
fetch-or-reuse the cached source tree, patch the plugin header to be
self-contained, generate bindings through the translation engine, and
synthesize the Windows export table.

Each revision writes two artifacts named after its ordinal. By default
the first failing revision aborts the run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Errors get our own output handling
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Registry, "registry", "", "registry manifest file (YAML) overriding the built-in revisions")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "drop cached sources and refetch")
	cmd.Flags().BoolVar(&opts.KeepGoing, "keep-going", false, "continue past failed revisions, reporting all outcomes")
	cmd.Flags().StringSliceVar(&opts.Translator, "translator", nil, "translation engine command (argv prefix)")
	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "", "archive source base URL (default: the QEMU GitHub project)")
	cmd.Flags().StringVar(&opts.Scratch, "scratch", "", "scratch directory override")
	cmd.Flags().StringVar(&opts.Out, "out", "", "output directory override")

	return cmd
}

func runGenerate(opts *GenerateOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Verbose {
		if log, err := zap.NewDevelopment(); err == nil {
			pipeline.SetLogger(log)
			defer log.Sync()
		}
	}

	reg, err := resolveRegistry(opts.Registry)
	if err != nil {
		return outputGenerateError(formatter, ExitCommandError, err)
	}
	formatter.VerboseLog("Registry has %d revision(s)", reg.Size())

	metadata := resolveMetadata(opts)

	driver := &pipeline.Driver{
		Registry:        reg,
		Metadata:        metadata,
		Translator:      &bindgen.ExecTranslator{Command: opts.Translator},
		BaseURL:         opts.BaseURL,
		Policy:          bindgen.DefaultPolicy(),
		Refresh:         opts.Refresh,
		ContinueOnError: opts.KeepGoing,
	}

	if ledger := openLedger(formatter, metadata); ledger != nil {
		defer ledger.Close()
		driver.Ledger = ledger
	}

	result, runErr := driver.RunAll(cmd.Context())
	if result == nil {
		// Resolution failed before any revision was processed.
		return outputGenerateError(formatter, ExitCommandError, runErr)
	}
	if runErr != nil {
		_ = formatter.Error(MapErrorCode(runErr), runErr.Error(), result)
		return WrapExitError(ExitFailure, "generation failed", runErr)
	}

	return outputGenerateSuccess(formatter, result)
}

// resolveRegistry returns the built-in registry or one loaded from a
// manifest override.
func resolveRegistry(manifestPath string) (*registry.Registry, error) {
	if manifestPath == "" {
		return registry.Default(), nil
	}
	return registry.LoadManifest(manifestPath)
}

// overrideMetadata layers explicit directory overrides on top of Go
// toolchain resolution.
type overrideMetadata struct {
	base    pipeline.Metadata
	source  string
	scratch string
}

func (m *overrideMetadata) SourceDir() (string, error) {
	if m.source != "" {
		return m.source, nil
	}
	return m.base.SourceDir()
}

func (m *overrideMetadata) ScratchDir() (string, error) {
	if m.scratch != "" {
		return m.scratch, nil
	}
	return m.base.ScratchDir()
}

func resolveMetadata(opts *GenerateOptions) pipeline.Metadata {
	if opts.Out == "" && opts.Scratch == "" {
		return pipeline.NewGoToolMetadata()
	}
	return &overrideMetadata{
		base:    pipeline.NewGoToolMetadata(),
		source:  opts.Out,
		scratch: opts.Scratch,
	}
}

// openLedger opens the run ledger in the scratch directory. Ledger
// failures degrade to a diagnostic; generation proceeds unrecorded.
func openLedger(formatter *OutputFormatter, metadata pipeline.Metadata) *report.Store {
	scratch, err := metadata.ScratchDir()
	if err != nil {
		formatter.VerboseLog("Run ledger disabled: %v", err)
		return nil
	}
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		formatter.VerboseLog("Run ledger disabled: %v", err)
		return nil
	}
	store, err := report.Open(filepath.Join(scratch, ledgerFile))
	if err != nil {
		formatter.VerboseLog("Run ledger disabled: %v", err)
		return nil
	}
	return store
}

// outputGenerateSuccess outputs a fully successful run.
func outputGenerateSuccess(formatter *OutputFormatter, result *pipeline.Report) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ Generated %d revision(s) into %s\n\n", len(result.Outcomes), result.OutDir)
	for _, o := range result.Outcomes {
		fmt.Fprintf(formatter.Writer, "  v%d %.12s: %s, %s\n",
			o.Ordinal, o.Commit,
			filepath.Base(o.BindingsPath), filepath.Base(o.ExportsPath))
	}
	fmt.Fprintf(formatter.Writer, "\nRun %s recorded\n", result.RunID)

	return nil
}

// outputGenerateError outputs a failure that prevented the run from
// starting.
func outputGenerateError(formatter *OutputFormatter, code int, err error) error {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	_ = formatter.Error(MapErrorCode(err), err.Error(), nil)
	return WrapExitError(code, "generate", err)
}
