package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/seqscan/internal/browse"
	"github.com/harrison/seqscan/internal/config"
	"github.com/harrison/seqscan/internal/logger"
	"github.com/harrison/seqscan/internal/statcache"
)

// changedBool returns a pointer to the flag's value only when the user set
// it explicitly, so config-file values aren't clobbered by cobra defaults.
func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

// changedString returns a pointer to the flag's value only when the user
// set it explicitly, so config-file values aren't clobbered by cobra
// defaults.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// loadConfig resolves the active Config: an explicit --config path wins,
// otherwise .seqscan.yaml is looked up in the current directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadConfig(path)
	}
	return config.LoadConfigFromDir(".")
}

// detectionOptions builds the Browse Orchestrator's bitset from the merged
// configuration.
func detectionOptions(cfg *config.Config) browse.DetectionOptions {
	var opts browse.DetectionOptions
	if cfg.Negative {
		opts |= browse.Negative
	}
	if cfg.IgnoreDotFile {
		opts |= browse.IgnoreDotFile
	}
	if cfg.SequenceNeedsAtLeastTwoFiles {
		opts |= browse.SequenceNeedsAtLeastTwoFiles
	}
	return opts
}

// resolveStatSource returns the stat backend for --stat/stat lookups: the
// plain OS source, or one fronted by the on-disk cache when
// cfg.Cache.Enabled and the cache database can be opened. A failure to
// open the cache degrades to the uncached source rather than aborting
// the command.
func resolveStatSource(cfg *config.Config) browse.StatSource {
	osSrc := browse.OSStatSource{}
	if !cfg.Cache.Enabled {
		return osSrc
	}

	store, err := statcache.Open(cfg.Cache.Path)
	if err != nil {
		return osSrc
	}
	return statcache.CachingStatSource{Source: osSrc, Store: store}
}

// newLogger returns a silent NoOpLogger when --verbose is unset.
// Otherwise it returns a ConsoleLogger on stderr, fanned out to a
// FileLogger under cfg.LogDir when one can be opened there (the
// run-*.log files "seqscan logs" lists and prunes). A FileLogger that
// fails to open (e.g. an unwritable log directory) degrades to
// console-only rather than aborting the command. The returned close
// function flushes and closes any FileLogger; callers should defer it.
func newLogger(cmd *cobra.Command, cfg *config.Config) (logger.Logger, func()) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return &logger.NoOpLogger{}, func() {}
	}

	console := logger.NewConsoleLogger(cmd.ErrOrStderr(), "debug")

	fileLog, err := logger.NewFileLoggerWithDirAndLevel(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return console, func() {}
	}

	return logger.NewMultiLogger(console, fileLog), func() { fileLog.Close() }
}
