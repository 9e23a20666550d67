// Package report exports a scored submission as a shareable document in
// JSON, Markdown or HTML.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/filelock"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/scoring"
)

// Supported export formats.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Report is one result plus the context it is exported with.
type Report struct {
	Result      models.QuestionnaireResult `json:"result"`
	Average     *models.DimensionScores    `json:"average_scores,omitempty"`
	GeneratedAt time.Time                  `json:"generated_at"`
}

// Exporter defines the interface for exporting reports
type Exporter interface {
	Export(r *Report) (string, error)
}

// JSONExporter exports reports in JSON format
type JSONExporter struct {
	Pretty bool // Enable pretty printing with indentation
}

// Export converts a Report to a JSON string
func (je *JSONExporter) Export(r *Report) (string, error) {
	if r == nil {
		return "", fmt.Errorf("report cannot be nil")
	}

	var data []byte
	var err error
	if je.Pretty {
		data, err = json.MarshalIndent(r, "", "  ")
	} else {
		data, err = json.Marshal(r)
	}
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// MarkdownExporter exports reports in Markdown format
type MarkdownExporter struct {
	IncludeTimestamp bool // Include generation timestamp in header
}

// Export converts a Report to a Markdown string
func (me *MarkdownExporter) Export(r *Report) (string, error) {
	if r == nil {
		return "", fmt.Errorf("report cannot be nil")
	}
	res := r.Result
	info := res.Level.Info()

	var sb strings.Builder

	sb.WriteString("# Financial Resilience Report\n\n")
	if me.IncludeTimestamp && !r.GeneratedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("**Generated**: %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04:05")))
	}

	sb.WriteString("## Summary\n\n")
	sb.WriteString(fmt.Sprintf("- **Total Score**: %d/100\n", res.TotalScore))
	sb.WriteString(fmt.Sprintf("- **Level**: %s\n", info.Label))
	sb.WriteString(fmt.Sprintf("- **Structure**: %s\n", res.StructureType.Narrative().Name))
	sb.WriteString(fmt.Sprintf("- **Animal**: %s\n", res.AnimalType.Narrative().Name))
	sb.WriteString("\n")
	writeParagraphs(&sb, info.Feedback)

	sb.WriteString("## Dimensions\n\n")
	if r.Average != nil {
		sb.WriteString("| Dimension | Score | Band | Average | Difference |\n")
		sb.WriteString("|-----------|-------|------|---------|------------|\n")
	} else {
		sb.WriteString("| Dimension | Score | Band |\n")
		sb.WriteString("|-----------|-------|------|\n")
	}
	for _, d := range models.Dimensions {
		score := res.DimensionScores.Get(d)
		row := fmt.Sprintf("| %s | %.1f | %s |", d.Label(), score, scoring.BandFor(score))
		if r.Average != nil {
			avg := r.Average.Get(d)
			row += fmt.Sprintf(" %.1f | %+.1f |", avg, score-avg)
		}
		sb.WriteString(row + "\n")
	}
	sb.WriteString("\n")

	structure := res.StructureType.Narrative()
	sb.WriteString(fmt.Sprintf("## Structure: %s\n\n", structure.Name))
	if structure.Subtitle != "" {
		sb.WriteString(fmt.Sprintf("*%s*\n\n", structure.Subtitle))
	}
	writeParagraphs(&sb, structure.Description)

	animal := res.AnimalType.Narrative()
	sb.WriteString(fmt.Sprintf("## Animal: %s\n\n", animal.Name))
	writeParagraphs(&sb, animal.Description)

	sb.WriteString("## Priorities\n\n")
	if len(res.Priorities) == 0 {
		sb.WriteString("No urgent priorities flagged.\n")
	}
	for i, p := range res.Priorities {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, p))
	}

	return sb.String(), nil
}

// HTMLExporter renders the Markdown report to a standalone HTML page
type HTMLExporter struct {
	IncludeTimestamp bool
}

// Export converts a Report to an HTML document
func (he *HTMLExporter) Export(r *Report) (string, error) {
	md, err := (&MarkdownExporter{IncludeTimestamp: he.IncludeTimestamp}).Export(r)
	if err != nil {
		return "", err
	}

	converter := goldmark.New(goldmark.WithExtensions(extension.Table))
	var body bytes.Buffer
	if err := converter.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	sb.WriteString("<title>Financial Resilience Report</title>\n</head>\n<body>\n")
	sb.Write(body.Bytes())
	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

func newExporter(format string) (Exporter, error) {
	switch normalizeFormat(format) {
	case FormatJSON:
		return &JSONExporter{Pretty: true}, nil
	case FormatMarkdown:
		return &MarkdownExporter{IncludeTimestamp: true}, nil
	case FormatHTML:
		return &HTMLExporter{IncludeTimestamp: true}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, markdown, html)", format)
	}
}

// normalizeFormat lowercases format and maps "md" to markdown and "" to
// markdown.
func normalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	switch format {
	case "", "md":
		return FormatMarkdown
	case "htm":
		return FormatHTML
	}
	return format
}

// ExportToString exports a report to a string in the specified format
func ExportToString(r *Report, format string) (string, error) {
	if r == nil {
		return "", fmt.Errorf("report cannot be nil")
	}
	exporter, err := newExporter(format)
	if err != nil {
		return "", err
	}
	return exporter.Export(r)
}

// ExportToFile exports a report to path, replacing any existing file
// atomically.
func ExportToFile(r *Report, path string, format string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	content, err := ExportToString(r, format)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}
	if err := filelock.AtomicWrite(path, []byte(content)); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// FormatFromPath guesses an export format from a file extension, returning
// "" when the extension is not recognised.
func FormatFromPath(path string) string {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON
	case strings.HasSuffix(lower, ".md"), strings.HasSuffix(lower, ".markdown"):
		return FormatMarkdown
	case strings.HasSuffix(lower, ".html"), strings.HasSuffix(lower, ".htm"):
		return FormatHTML
	}
	return ""
}

func writeParagraphs(sb *strings.Builder, text string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		sb.WriteString(line)
		sb.WriteString("\n\n")
	}
}
