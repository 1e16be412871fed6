package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/seqscan/internal/browse"
	"github.com/harrison/seqscan/internal/logger"
)

// NewStatCommand creates the stat command: same traversal as ls, but
// always aggregates and prints stat info.
func NewStatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat <paths...>",
		Short: "Print aggregated stat info for files, folders, and sequences",
		Long: `Stat runs the same directory traversal as ls, but always
resolves and prints the rolled-up stat fields (size, modification time,
link count) for every item, aggregating per-frame stats across a
sequence's members.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runStat,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .seqscan.yaml)")
	cmd.Flags().Bool("negative", false, "Treat a leading +/- as part of the frame number")
	cmd.Flags().Bool("min-two", false, "Demote single-frame sequences to plain files")
	cmd.Flags().Bool("ignore-dot", false, "Skip dotfiles during enumeration")
	cmd.Flags().Bool("no-ignore-dot", false, "Do not skip dotfiles (overrides config)")
	cmd.Flags().Bool("abs", false, "Print absolute paths")
	cmd.Flags().Bool("color", false, "Force colorized output on")
	cmd.Flags().Bool("no-color", false, "Force colorized output off")
	cmd.Flags().StringSlice("filter", nil, "Glob filter pattern (repeatable); default: all entries")
	cmd.Flags().Bool("verbose", false, "Show diagnostic logging on stderr")
	cmd.Flags().String("log-dir", "", "Directory for --verbose run log files (default: .seqscan/logs or config)")

	return cmd
}

func runStat(cmd *cobra.Command, args []string) error {
	settings, err := resolveLsSettings(cmd)
	if err != nil {
		return err
	}
	log, closeLog := newLogger(cmd, settings.cfg)
	defer closeLog()
	verbose, _ := cmd.Flags().GetBool("verbose")
	statSrc := resolveStatSource(settings.cfg)

	for _, dir := range args {
		items, err := browse.Browse(browse.Request{
			Directory: dir,
			Filters:   settings.cfg.Filters,
			Detection: settings.opts,
		})
		if err != nil {
			log.LogWarn(fmt.Sprintf("enumeration failed for %s: %v", dir, err))
			fmt.Fprintf(cmd.ErrOrStderr(), "seqscan: %v\n", err)
			continue
		}
		if verbose {
			reportStatProgress(cmd, dir, len(items), settings.useColor)
		}
		printItems(cmd, items, settings, statSrc, verbose)
	}

	return nil
}

// reportStatProgress renders an ASCII progress bar to stderr summarizing
// how many items dir will resolve stat info for, ahead of the aggregation
// pass that follows.
func reportStatProgress(cmd *cobra.Command, dir string, total int, color bool) {
	pb := logger.NewProgressBar(total, 20, color)
	pb.Update(total)
	pb.SetPrefix(fmt.Sprintf("%s: ", dir))
	fmt.Fprintln(cmd.ErrOrStderr(), pb.Render())
}
