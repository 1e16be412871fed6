package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/seqscan/internal/browse"
	"github.com/harrison/seqscan/internal/config"
	"github.com/harrison/seqscan/internal/display"
	"github.com/harrison/seqscan/internal/logger"
	"github.com/harrison/seqscan/internal/sequence"
)

// NewLsCommand creates the ls command, the primary entry point to the
// Browse Orchestrator.
func NewLsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [paths...]",
		Short: "List files, folders, and detected sequences in a directory",
		Long: `List scans one or more directories (one level each, never
recursively) and groups numbered files into sequences.

Examples:
  seqscan ls .
  seqscan ls --negative --min-two shots/010/render
  seqscan ls --from-file manifest.txt --stat`,
		Args: cobra.ArbitraryArgs,
		RunE: runLs,
	}

	cmd.Flags().String("config", "", "Path to config file (default: .seqscan.yaml)")
	cmd.Flags().Bool("negative", false, "Treat a leading +/- as part of the frame number")
	cmd.Flags().Bool("min-two", false, "Demote single-frame sequences to plain files")
	cmd.Flags().Bool("ignore-dot", false, "Skip dotfiles during enumeration")
	cmd.Flags().Bool("no-ignore-dot", false, "Do not skip dotfiles (overrides config)")
	cmd.Flags().Bool("abs", false, "Print absolute paths")
	cmd.Flags().Bool("rel", false, "Print paths under the directory as given on the command line (default)")
	cmd.Flags().Bool("stat", false, "Print aggregated stat info alongside each item")
	cmd.Flags().Bool("color", false, "Force colorized output on")
	cmd.Flags().Bool("no-color", false, "Force colorized output off")
	cmd.Flags().StringSlice("filter", nil, "Glob filter pattern (repeatable); default: all entries")
	cmd.Flags().String("from-file", "", "Read filenames to classify from this file instead of scanning a directory")
	cmd.Flags().Bool("verbose", false, "Show diagnostic logging on stderr")
	cmd.Flags().String("log-dir", "", "Directory for --verbose run log files (default: .seqscan/logs or config)")

	return cmd
}

// lsSettings bundles the merged config/flag state runLs and runStat share.
type lsSettings struct {
	cfg      *config.Config
	opts     browse.DetectionOptions
	useColor bool
	abs      bool
}

// display builds the browse.DisplayOptions bitset for FormatItem from the
// merged settings plus whether this invocation is printing stat rollups.
func (s lsSettings) display(showStat bool) browse.DisplayOptions {
	var d browse.DisplayOptions
	if s.useColor {
		d |= browse.Color
	}
	if s.abs {
		d |= browse.AbsolutePath
	} else {
		d |= browse.RelativePath
	}
	if showStat {
		d |= browse.Properties
	}
	return d
}

func resolveLsSettings(cmd *cobra.Command) (lsSettings, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return lsSettings{}, fmt.Errorf("load config: %w", err)
	}

	ignoreDot := changedBool(cmd, "ignore-dot")
	if v, _ := cmd.Flags().GetBool("no-ignore-dot"); v {
		f := false
		ignoreDot = &f
	}
	color := changedBool(cmd, "color")
	if v, _ := cmd.Flags().GetBool("no-color"); v {
		f := false
		color = &f
	}
	cfg.MergeWithFlags(changedString(cmd, "log-dir"), changedBool(cmd, "negative"), ignoreDot, changedBool(cmd, "min-two"), color)

	if filters, _ := cmd.Flags().GetStringSlice("filter"); len(filters) > 0 {
		cfg.Filters = filters
	}

	if err := cfg.Validate(); err != nil {
		return lsSettings{}, fmt.Errorf("invalid configuration: %w", err)
	}

	useColor := cfg.Color
	if color == nil {
		useColor = isatty.IsTerminal(os.Stdout.Fd())
	}
	abs, _ := cmd.Flags().GetBool("abs")
	if rel, _ := cmd.Flags().GetBool("rel"); rel {
		abs = false
	}

	return lsSettings{cfg: cfg, opts: detectionOptions(cfg), useColor: useColor, abs: abs}, nil
}

func runLs(cmd *cobra.Command, args []string) error {
	settings, err := resolveLsSettings(cmd)
	if err != nil {
		return err
	}
	log, closeLog := newLogger(cmd, settings.cfg)
	defer closeLog()
	showStat, _ := cmd.Flags().GetBool("stat")

	var statSrc browse.StatSource
	if showStat {
		statSrc = resolveStatSource(settings.cfg)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")

	fromFile, _ := cmd.Flags().GetString("from-file")
	if fromFile != "" {
		names, err := readLines(fromFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", fromFile, err)
		}
		items := browse.BrowseFiles(".", names, settings.opts)
		metrics := printItems(cmd, items, settings, statSrc, verbose)
		reportScanMetrics(cmd, metrics, verbose)
		return nil
	}

	dirs := args
	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	var total logger.ScanMetrics
	for _, dir := range dirs {
		items, err := browse.Browse(browse.Request{
			Directory: dir,
			Filters:   settings.cfg.Filters,
			Detection: settings.opts,
		})
		if err != nil {
			log.LogWarn(fmt.Sprintf("enumeration failed for %s: %v", dir, err))
			fmt.Fprintf(cmd.ErrOrStderr(), "seqscan: %v\n", err)
			total.Errors++
			continue
		}
		metrics := printItems(cmd, items, settings, statSrc, verbose)
		total.Sequences += metrics.Sequences
		total.Files += metrics.Files
		total.Folders += metrics.Folders
		total.Missing += metrics.Missing
		total.Errors += metrics.Errors
	}
	reportScanMetrics(cmd, total, verbose)

	return nil
}

// reportScanMetrics writes a colorized one-line summary to stderr when
// verbose is set and there is anything to report.
func reportScanMetrics(cmd *cobra.Command, metrics logger.ScanMetrics, verbose bool) {
	if !verbose {
		return
	}
	if summary := logger.FormatScanMetrics(metrics); summary != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), summary)
	}
}

// printItems prints one formatted line per Item, optionally followed by a
// stat rollup when statSrc is non-nil, and returns a tally of what was
// printed. With verbose set, a progress indicator tracking each item's
// classification is written to stderr alongside the listing on stdout.
func printItems(cmd *cobra.Command, items []sequence.Item, settings lsSettings, statSrc browse.StatSource, verbose bool) logger.ScanMetrics {
	out := cmd.OutOrStdout()
	listOpts := display.ListOptions{Display: settings.display(statSrc != nil)}

	var progress *display.ProgressIndicator
	if verbose {
		progress = display.NewProgressIndicator(cmd.ErrOrStderr(), len(items))
		progress.Start()
	}

	var metrics logger.ScanMetrics
	for _, it := range items {
		if progress != nil {
			progress.Step(itemDisplayName(it))
		}

		switch it.Kind {
		case sequence.ItemSequence:
			metrics.Sequences++
			metrics.Missing += int(it.Seq.NbMissingFiles())
		case sequence.ItemFolder:
			metrics.Folders++
		default:
			metrics.Files++
		}

		line := display.FormatItem(it, listOpts)
		if statSrc == nil {
			fmt.Fprintln(out, line)
			continue
		}
		st, err := browse.ItemStat(statSrc, it)
		if err != nil {
			fmt.Fprintf(out, "%s\t(stat failed: %v)\n", line, err)
			continue
		}
		fmt.Fprintf(out, "%s\tsize=%d\tnlink=%.2f\tmtime=%s\n", line, st.Size, st.NLinkAvg, st.ModTime.Format("2006-01-02T15:04:05"))
	}

	if progress != nil {
		progress.Complete()
	}

	return metrics
}

// itemDisplayName returns the short name ProgressIndicator.Step should
// report for an Item, regardless of kind.
func itemDisplayName(it sequence.Item) string {
	if it.Kind == sequence.ItemSequence {
		return it.Seq.Prefix + "..." + it.Seq.Suffix
	}
	return it.Name
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
