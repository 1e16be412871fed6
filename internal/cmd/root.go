package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for seqscan
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seqscan",
		Short: "Detect and list numbered file sequences",
		Long: `seqscan scans a directory (or an explicit list of filenames) and
groups numbered files such as render.0001.exr..render.0100.exr into a
single sequence entry, alongside any plain files and folders it finds.

Configuration is loaded from .seqscan.yaml in the current directory if
present, or from the file given with --config. CLI flags override
configuration file settings.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.AddCommand(NewLsCommand())
	cmd.AddCommand(NewStatCommand())
	cmd.AddCommand(NewParseCommand())
	cmd.AddCommand(NewLogsCommand())

	return cmd
}
