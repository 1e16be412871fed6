// Package fileutil provides a general-purpose directory scanner used by
// seqscan's ambient housekeeping commands.
//
// The detection engine (internal/browse, internal/sequence) never uses
// this package: sequence detection is deliberately a single-directory,
// non-recursive operation. ScanDirectory exists for concerns that do
// need a recursive walk with filtering — currently the "seqscan logs"
// subcommand's log-directory listing and pruning.
//
// # Main Components
//
// ScanOptions - Configuration struct for directory scanning:
//   - Pattern: Regex pattern to match filenames (without extension)
//   - Extensions: List of file extensions to include (case-insensitive, e.g., ".log")
//   - Recursive: Enable/disable subdirectory traversal
//   - ExcludeDirs: Directory names to skip
//   - MaxDepth: Limit recursion depth (0 = unlimited, 1 = current dir only)
//
// ScanResult - Results of directory scan:
//   - Files: Absolute paths of all matched files (sorted alphabetically)
//   - Errors: Non-fatal errors encountered during scan
//
// ScanDirectory is the main scanning function; it walks dir with the
// provided options, tolerating per-entry errors (permission denied on
// a subdirectory) by collecting them in ScanResult.Errors rather than
// aborting the whole scan.
//
// # Usage
//
// Listing run logs older than a cutoff, as "seqscan logs" does:
//
//	result, err := fileutil.ScanDirectory(logDir, fileutil.ScanOptions{
//	    Pattern:    `^run-\d{8}-\d{6}$`,
//	    Extensions: []string{".log"},
//	    Recursive:  false,
//	})
package fileutil
