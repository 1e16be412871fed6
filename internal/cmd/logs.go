package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/seqscan/internal/fileutil"
)

// NewLogsCommand creates the logs command: a housekeeping utility over the
// run-*.log files FileLogger writes under the configured log directory.
// Unrelated to the Browse Orchestrator's one-level-only traversal — this
// walks the log directory itself, never a scanned target directory.
func NewLogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "List or prune seqscan's run log files",
		Long: `Logs lists the timestamped run-*.log files that --verbose
runs leave under the log directory (.seqscan/logs by default), and can
prune ones older than a given age with --prune-older-than.`,
		Args: cobra.NoArgs,
		RunE: runLogs,
	}

	cmd.Flags().String("log-dir", ".seqscan/logs", "Directory containing run-*.log files")
	cmd.Flags().Duration("prune-older-than", 0, "Delete run logs older than this duration (e.g. 168h); 0 disables pruning")

	return cmd
}

func runLogs(cmd *cobra.Command, args []string) error {
	logDir, _ := cmd.Flags().GetString("log-dir")
	pruneAge, _ := cmd.Flags().GetDuration("prune-older-than")

	result, err := fileutil.ScanDirectory(logDir, fileutil.ScanOptions{
		Pattern:    `^run-\d{8}-\d{6}$`,
		Extensions: []string{".log"},
	})
	if err != nil {
		return fmt.Errorf("scan log directory: %w", err)
	}

	out := cmd.OutOrStdout()
	cutoff := time.Now().Add(-pruneAge)

	for _, path := range result.Files {
		info, statErr := os.Stat(path)
		if statErr != nil {
			continue
		}

		if pruneAge > 0 && info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "seqscan: failed to remove %s: %v\n", path, err)
				continue
			}
			fmt.Fprintf(out, "removed %s\n", path)
			continue
		}

		fmt.Fprintf(out, "%s\t%s\n", path, info.ModTime().Format(time.RFC3339))
	}

	for _, scanErr := range result.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "seqscan: %v\n", scanErr)
	}

	return nil
}
