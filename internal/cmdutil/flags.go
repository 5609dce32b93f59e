// Package cmdutil provides shared command utilities: flag groups and the
// wiring of workspace services for a single invocation.
package cmdutil

import (
	"github.com/spf13/cobra"
)

// AppsFlags holds the application filter shared by batch commands
// (add_migrations, make_trans).
type AppsFlags struct {
	Apps []string
}

// AddTo registers the application filter on the given cobra command.
func (f *AppsFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.Apps, "apps", nil,
		"Applications to process, comma-separated or repeated (default: all). Example: sitecats,siteflags")
}

// RelocateFlags holds the legacy migrations relocation flag (add_migrations).
type RelocateFlags struct {
	RelocateLegacy bool
}

// AddTo registers the relocation flag on the given cobra command.
func (f *RelocateFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.RelocateLegacy, "relocate_south", false,
		"Move old South migrations from `migrations` into `south_migrations` first")
}
