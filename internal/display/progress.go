package display

import (
	"fmt"
	"io"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
)

// ProgressIndicator reports survey progress as "[N/Total] text"
type ProgressIndicator struct {
	writer  io.Writer
	total   int
	current int
	p       palette
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int, useColor bool) *ProgressIndicator {
	return &ProgressIndicator{
		writer: w,
		total:  total,
		p:      newPalette(useColor),
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Answer each question with A, B, C or D.\n")
}

// Step displays the next item: [N/Total] text (cyan)
func (p *ProgressIndicator) Step(text string) {
	p.current++
	fmt.Fprintf(p.writer, "\n%s %s\n", p.p.accent.Sprintf("[%d/%d]", p.current, p.total), text)
}

// Complete displays success message with green checkmark
func (p *ProgressIndicator) Complete() {
	fmt.Fprintf(p.writer, "\n%s Answered %d questions\n\n", p.p.band(models.BandGreen).Sprint("✓"), p.current)
}
