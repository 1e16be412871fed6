package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// colorScheme defines consistent colors for different metric types.
// Green: success/positive metrics
// Red: failure/error metrics
// Yellow: warning/threshold metrics
// Cyan: labels and identifiers
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	warn    *color.Color
	label   *color.Color
	value   *color.Color
}

// newColorScheme creates the standard color scheme for metrics.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		warn:    color.New(color.FgYellow),
		label:   color.New(color.FgCyan),
		value:   color.New(color.FgWhite),
	}
}

// formatColorizedMetric formats a single metric with colorized label and value.
// Label is colored cyan, value is colored based on the metric type and value.
// Format: "label: value"
func formatColorizedMetric(label string, value interface{}, scheme *colorScheme) string {
	labelColored := scheme.label.Sprint(label)
	valueColored := scheme.value.Sprintf("%v", value)
	return fmt.Sprintf("%s: %s", labelColored, valueColored)
}

// ScanMetrics summarizes the outcome of a browse pass over one or more
// directories: how many items fell into each category, and how many
// missing frames or enumeration errors were seen along the way.
type ScanMetrics struct {
	Sequences int
	Files     int
	Folders   int
	Missing   int
	Errors    int
}

// FormatScanMetrics renders m as a single colorized summary line, e.g.
// "sequences: 3, files: 12, folders: 2, missing: 1". Zero-valued
// fields are omitted except when every field is zero, in which case it
// returns an empty string. Sequences and folders are colored green
// (successful classification), files cyan (neutral), missing frames
// yellow when non-zero, and errors red when non-zero.
func FormatScanMetrics(m ScanMetrics) string {
	scheme := newColorScheme()
	var parts []string

	if m.Sequences > 0 {
		labelColored := scheme.success.Sprint("sequences")
		valueColored := scheme.value.Sprintf("%d", m.Sequences)
		parts = append(parts, fmt.Sprintf("%s: %s", labelColored, valueColored))
	}
	if m.Files > 0 {
		parts = append(parts, formatColorizedMetric("files", m.Files, scheme))
	}
	if m.Folders > 0 {
		labelColored := scheme.success.Sprint("folders")
		valueColored := scheme.value.Sprintf("%d", m.Folders)
		parts = append(parts, fmt.Sprintf("%s: %s", labelColored, valueColored))
	}
	if m.Missing > 0 {
		labelColored := scheme.warn.Sprint("missing")
		valueColored := scheme.warn.Sprintf("%d", m.Missing)
		parts = append(parts, fmt.Sprintf("%s: %s", labelColored, valueColored))
	}
	if m.Errors > 0 {
		labelColored := scheme.fail.Sprint("errors")
		valueColored := scheme.fail.Sprintf("%d", m.Errors)
		parts = append(parts, fmt.Sprintf("%s: %s", labelColored, valueColored))
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, ", ")
}
