package display

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/seqscan/internal/browse"
	"github.com/harrison/seqscan/internal/sequence"
)

// ListOptions configures FormatItem's output from the Display bitset:
// browse.Color enables ANSI coloring, browse.AbsolutePath prints the
// item's directory absolute rather than as given to the scan, and
// browse.Properties gates whether callers should follow FormatItem
// with a stat rollup line.
type ListOptions struct {
	Display browse.DisplayOptions
}

var (
	folderColor   = color.New(color.FgCyan, color.Bold)
	sequenceColor = color.New(color.FgGreen)
	missingColor  = color.New(color.FgYellow)
)

// The colors are applied only when ListOptions sets browse.Color, so they
// are forced on here instead of following fatih/color's global NoColor
// terminal autodetection.
func init() {
	folderColor.EnableColor()
	sequenceColor.EnableColor()
	missingColor.EnableColor()
}

// FormatItem renders one Item the way `seqscan ls` prints it: plain text
// for files, cyan/bold for folders, green for sequences with the
// missing-frame count highlighted in yellow when non-zero.
func FormatItem(it sequence.Item, opts ListOptions) string {
	dir := it.Directory
	if opts.Display.Has(browse.AbsolutePath) {
		if abs, err := filepath.Abs(dir); err == nil {
			dir = abs
		}
	}

	switch it.Kind {
	case sequence.ItemFolder:
		name := filepath.Join(dir, it.Name)
		if opts.Display.Has(browse.Color) {
			return folderColor.Sprint(name)
		}
		return name

	case sequence.ItemSequence:
		return formatSequence(dir, it.Seq, opts)

	default:
		return filepath.Join(dir, it.Name)
	}
}

func formatSequence(dir string, s sequence.Sequence, opts ListOptions) string {
	pattern := filepath.Join(dir, standardPattern(s))
	line := fmt.Sprintf("%s [%d:%d", pattern, s.FirstTime, s.LastTime)
	if s.Step != 1 {
		line += fmt.Sprintf("x%d", s.Step)
	}
	line += fmt.Sprintf("] %d file", s.NbFiles)
	if s.NbFiles != 1 {
		line += "s"
	}

	missing := s.NbMissingFiles()
	if missing > 0 {
		missingText := fmt.Sprintf(", %d missing file", missing)
		if missing != 1 {
			missingText += "s"
		}
		if opts.Display.Has(browse.Color) {
			missingText = missingColor.Sprint(missingText)
		}
		line += missingText
	}

	if opts.Display.Has(browse.Color) {
		return sequenceColor.Sprint(line)
	}
	return line
}

// standardPattern renders the sequence's prefix/padding/suffix using the
// "#"/"@" placeholder form accepted by sequence.ParsePattern.
func standardPattern(s sequence.Sequence) string {
	if s.Padding == 0 {
		return s.Prefix + "@" + s.Suffix
	}
	ch := byte('@')
	if s.StrictPadding {
		ch = '#'
	}
	placeholder := strings.Repeat(string(ch), s.Padding)
	return s.Prefix + placeholder + s.Suffix
}
