package display

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/history"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/scoring"
)

// BarWidth is the number of cells in a dimension bar.
const BarWidth = 20

const labelWidth = 22

// label pads a dimension label to the label column by display width.
func label(d models.Dimension) string {
	return runewidth.FillRight(d.Label(), labelWidth)
}

// Renderer writes human readable survey output.
type Renderer struct {
	w io.Writer
	p palette
}

// NewRenderer creates a renderer on w. useColor is usually the result of UseColor.
func NewRenderer(w io.Writer, useColor bool) *Renderer {
	return &Renderer{w: w, p: newPalette(useColor)}
}

// Bar draws score on a 0-100 scale as width cells.
func Bar(score float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(score / 100 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// Result renders a scored submission. When average is non-nil each dimension
// line also shows the history average and the difference from it.
func (r *Renderer) Result(result models.QuestionnaireResult, average *models.DimensionScores) {
	info := result.Level.Info()
	fmt.Fprintf(r.w, "%s %d/100  %s\n",
		r.p.heading.Sprint("Financial resilience:"),
		result.TotalScore,
		r.p.band(levelBand(result.Level)).Sprint(info.Label))
	writeIndented(r.w, info.Feedback)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.p.heading.Sprint("Dimensions"))
	for _, d := range models.Dimensions {
		score := result.DimensionScores.Get(d)
		band := scoring.BandFor(score)
		c := r.p.band(band)
		line := fmt.Sprintf("  %s %s %5.1f  %-6s", label(d), c.Sprint(Bar(score, BarWidth)), score, c.Sprint(band))
		if average != nil {
			avg := average.Get(d)
			line += r.p.muted.Sprintf("  (avg %.1f, %+.1f)", avg, score-avg)
		}
		fmt.Fprintln(r.w, strings.TrimRight(line, " "))
	}

	structure := result.StructureType.Narrative()
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s %s", r.p.heading.Sprint("Structure:"), structure.Name)
	if structure.Subtitle != "" {
		fmt.Fprintf(r.w, " %s", r.p.muted.Sprintf("(%s)", structure.Subtitle))
	}
	fmt.Fprintln(r.w)
	writeIndented(r.w, structure.Description)

	animal := result.AnimalType.Narrative()
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "%s %s\n", r.p.heading.Sprint("Animal:"), animal.Name)
	writeIndented(r.w, animal.Description)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.p.heading.Sprint("Priorities"))
	if len(result.Priorities) == 0 {
		fmt.Fprintln(r.w, "  No urgent priorities flagged")
		return
	}
	for i, p := range result.Priorities {
		fmt.Fprintf(r.w, "  %d. %s\n", i+1, r.p.accent.Sprint(string(p)))
	}
}

// Explanation renders the band of every dimension and the rules each cascade
// matched. The first listed rule is the one that decided the result.
func (r *Renderer) Explanation(e scoring.Explanation) {
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.p.heading.Sprint("Explanation"))
	for _, d := range models.Dimensions {
		b := e.Bands[d]
		fmt.Fprintf(r.w, "  %s %s\n", label(d), r.p.band(b).Sprint(b))
	}
	fmt.Fprintf(r.w, "  structure rules matched: %s\n", ruleList(e.StructureRules))
	fmt.Fprintf(r.w, "  animal rules matched:    %s\n", ruleList(e.AnimalRules))
}

// Stats renders the history record count and averages.
func (r *Renderer) Stats(stats history.Stats) {
	fmt.Fprintf(r.w, "%s %d\n", r.p.heading.Sprint("Stored results:"), stats.Count)
	if stats.Average == nil {
		fmt.Fprintln(r.w, "  No history yet")
		return
	}
	for _, d := range models.Dimensions {
		score := stats.Average.Get(d)
		c := r.p.band(scoring.BandFor(score))
		fmt.Fprintf(r.w, "  %s %s %5.1f\n", label(d), c.Sprint(Bar(score, BarWidth)), score)
	}
}

// Questions lists the catalog with option letters and scores.
func (r *Renderer) Questions(questions []models.Question) {
	for i, q := range questions {
		if i > 0 {
			fmt.Fprintln(r.w)
		}
		fmt.Fprintf(r.w, "%s %s\n", r.p.heading.Sprintf("Q%d.", q.ID), q.Text)
		for _, opt := range q.Options {
			fmt.Fprintf(r.w, "  %s %s %s\n", r.p.accent.Sprintf("%s)", opt.Value), opt.Label, r.p.muted.Sprintf("[%d]", opt.Score))
		}
	}
}

func levelBand(l models.Level) models.Band {
	switch l {
	case models.LevelResilient:
		return models.BandGreen
	case models.LevelApproaching:
		return models.BandYellow
	case models.LevelFragile:
		return models.BandOrange
	default:
		return models.BandRed
	}
}

func ruleList(names []string) string {
	if len(names) == 0 {
		return "none (fallback)"
	}
	return strings.Join(names, ", ")
}

func writeIndented(w io.Writer, text string) {
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		fmt.Fprintf(w, "  %s\n", line)
	}
}
