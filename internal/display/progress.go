package display

import (
	"fmt"
	"io"
)

// ProgressIndicator manages multi-step progress display with ANSI colors
// while a directory scan or stat aggregation is in flight.
type ProgressIndicator struct {
	writer     io.Writer
	totalItems int
	current    int
}

// NewProgressIndicator creates a new progress indicator for a scan or stat
// pass over total items (files, folders, or sequences).
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{
		writer:     w,
		totalItems: total,
		current:    0,
	}
}

// Start displays the header message.
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Scanning:\n")
}

// Step displays progress for current item: [N/Total] name (cyan)
func (p *ProgressIndicator) Step(name string) {
	p.current++
	fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s\x1b[0m\n", p.current, p.totalItems, name)
}

// Complete displays success message with green checkmark.
func (p *ProgressIndicator) Complete() {
	fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Scanned %d items\n", p.totalItems)
}

// DisplaySingleFile shows a simple loading message for a single path.
func DisplaySingleFile(w io.Writer, path string) {
	fmt.Fprintf(w, "Statting %s...\n", path)
}
