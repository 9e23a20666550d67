package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Items      []string // Related items, such as question ids (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer, useColor bool) {
	var b strings.Builder

	b.WriteString("⚠️  Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if len(w.Items) > 0 {
		b.WriteString("    ")
		if len(w.Items) == 1 {
			b.WriteString("Affected item:\n")
		} else {
			b.WriteString("Affected items:\n")
		}

		for i, item := range w.Items {
			b.WriteString(fmt.Sprintf("      %d. %s\n", i+1, item))
		}
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion:\n")
		b.WriteString("    ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	c := color.New(color.FgYellow)
	if useColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	fmt.Fprint(out, c.Sprint(b.String()))
}

// WarnUnanswered creates a warning listing unanswered question ids
func WarnUnanswered(missing []int) Warning {
	items := make([]string, len(missing))
	for i, id := range missing {
		items[i] = fmt.Sprintf("Q%d", id)
	}
	return Warning{
		Title:      "Incomplete answers",
		Message:    "Unanswered questions are scored as 0",
		Items:      items,
		Suggestion: "Supply the missing answers with --answer ID=SCORE",
	}
}
