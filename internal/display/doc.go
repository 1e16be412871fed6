// Package display provides terminal UI utilities for listing sequences,
// reporting progress, and showing warnings.
//
// This package centralizes all terminal output formatting, ANSI color
// codes, and user-facing display logic for the seqscan CLI.
//
// # Sequence Listing
//
// Format a scanned Item (file, folder, or sequence) for display:
//
//	line := display.FormatItem(item, display.ListOptions{Display: browse.Color})
//	fmt.Println(line)
//
// # Progress Indicators
//
// Use ProgressIndicator for multi-step operations:
//
//	progress := display.NewProgressIndicator(os.Stdout, len(items))
//	progress.Start()
//	for _, item := range items {
//	    progress.Step(item.Name)
//	    // ... process item ...
//	}
//	progress.Complete()
//
// # Warning Messages
//
// Display warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "Unrecognized Entries",
//	    Message:    "Some filenames could not be classified",
//	    Files:      []string{"a99999999999999999999999.exr"},
//	    Suggestion: "Check for numeric overflow",
//	}
//	warning.Display(os.Stderr)
//
// # ANSI Colors
//
// The package uses ANSI escape codes for terminal colors:
//   - Green (\x1b[32m) for sequences
//   - Cyan/bold for folders
//   - Yellow (\x1b[33m) for warnings and missing-frame counts
//   - Reset (\x1b[0m) after each colored section
//
// All functions accept io.Writer interfaces for testability and flexibility.
package display
