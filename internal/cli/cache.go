package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cpick/qemu-plugin-bindgen/internal/fetch"
	"github.com/cpick/qemu-plugin-bindgen/internal/pipeline"
	"github.com/cpick/qemu-plugin-bindgen/internal/registry"
)

// CacheOptions holds flags for the cache commands.
type CacheOptions struct {
	*RootOptions
	Registry string
	Revision int
	Scratch  string
}

// NewCacheCommand creates the cache command group.
func NewCacheCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached QEMU source archives",
	}

	cmd.AddCommand(newCacheCleanCommand(rootOpts))

	return cmd
}

func newCacheCleanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CacheOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Drop cached source archives and extracted trees",
		Long: `Clean removes cached source material so the next generation run
refetches it. Without --revision every registered revision's cache
entry is dropped.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCacheClean(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Registry, "registry", "", "registry manifest file (YAML) overriding the built-in revisions")
	cmd.Flags().IntVar(&opts.Revision, "revision", 0, "clean a single revision by ordinal (default: all)")
	cmd.Flags().StringVar(&opts.Scratch, "scratch", "", "scratch directory override")

	return cmd
}

func runCacheClean(opts *CacheOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	reg, err := resolveRegistry(opts.Registry)
	if err != nil {
		_ = formatter.Error(MapErrorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "cache clean", err)
	}

	scratch, err := resolveScratch(opts.Scratch)
	if err != nil {
		_ = formatter.Error(MapErrorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "cache clean", err)
	}

	commits, err := cleanTargets(reg, opts.Revision)
	if err != nil {
		_ = formatter.Error(MapErrorCode(err), err.Error(), nil)
		return WrapExitError(ExitCommandError, "cache clean", err)
	}

	cache := fetch.NewCache(scratch, "", nil)
	for _, commit := range commits {
		formatter.VerboseLog("Dropping cache entry for %s", commit)
		if err := cache.Refresh(commit); err != nil {
			_ = formatter.Error(MapErrorCode(err), err.Error(), nil)
			return WrapExitError(ExitFailure, "cache clean", err)
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(map[string]interface{}{
			"cleaned": commits,
			"scratch": scratch,
		})
	}
	fmt.Fprintf(formatter.Writer, "✓ Cleaned %d cache entr%s under %s\n",
		len(commits), pluralY(len(commits)), scratch)
	return nil
}

func resolveScratch(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return pipeline.NewGoToolMetadata().ScratchDir()
}

// cleanTargets resolves the commits to drop: one ordinal, or the whole
// registry.
func cleanTargets(reg *registry.Registry, ordinal int) ([]string, error) {
	if ordinal != 0 {
		commit, err := reg.Get(ordinal)
		if err != nil {
			return nil, err
		}
		return []string{commit}, nil
	}
	commits := make([]string, 0, reg.Size())
	for _, rev := range reg.Revisions() {
		commits = append(commits, rev.Commit)
	}
	return commits, nil
}

func pluralY(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
