// Package display renders survey results, statistics and prompts for the terminal.
//
// This package centralizes user-facing formatting for the resilience CLI. It
// provides three main categories of functionality:
//
// # Result Rendering
//
// Render a scored submission, optionally beside the history average:
//
//	r := display.NewRenderer(os.Stdout, display.UseColor(cfg.Display.Color, os.Stdout))
//	r.Result(result, stats.Average)
//
// Each dimension is drawn as a bar colored by its band (red, orange, yellow,
// green), followed by the level feedback, the structure and animal narratives
// and the flagged priorities.
//
// # Progress Indicators
//
// The interactive survey reports its position with ProgressIndicator:
//
//	progress := display.NewProgressIndicator(os.Stdout, len(models.Questions), useColor)
//	progress.Start()
//	for _, q := range models.Questions {
//	    progress.Step(q.Text)
//	    // ... read answer ...
//	}
//	progress.Complete()
//
// # Warning Messages
//
// Display warnings with optional components:
//
//	warning := display.Warning{
//	    Title:      "Incomplete answers",
//	    Message:    "Unanswered questions count as 0",
//	    Items:      []string{"Q4", "Q7"},
//	    Suggestion: "Pass --answer 4=7 to fill a gap",
//	}
//	warning.Display(os.Stderr)
//
// Color is resolved once per command with UseColor; every renderer in this
// package takes the resolved flag instead of consulting global state.
package display
