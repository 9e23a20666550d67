package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/scoring"
)

func sampleReport() *Report {
	answers := models.AnswerSet{1: 10, 2: 10, 3: 3, 4: 7, 5: 3, 6: 7, 7: 10, 8: 3, 9: 7, 10: 10}
	return &Report{
		Result:      scoring.Calculate(answers),
		GeneratedAt: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestMarkdownExporter(t *testing.T) {
	r := sampleReport()

	md, err := (&MarkdownExporter{IncludeTimestamp: true}).Export(r)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(md, "# Financial Resilience Report\n"))
	assert.Contains(t, md, "**Generated**: 2026-03-01 09:30:00")
	assert.Contains(t, md, "- **Total Score**: 70/100")
	assert.Contains(t, md, "| Dimension | Score | Band |\n")
	assert.Contains(t, md, "| Income stability | 100.0 | green |")
	assert.Contains(t, md, "## Structure: "+r.Result.StructureType.Narrative().Name)
	assert.Contains(t, md, "## Animal: "+r.Result.AnimalType.Narrative().Name)
	for i, p := range r.Result.Priorities {
		assert.Contains(t, md, strings.Join([]string{string(rune('1' + i)), ". ", string(p)}, ""))
	}
}

func TestMarkdownExporterWithAverage(t *testing.T) {
	r := sampleReport()
	avg := r.Result.DimensionScores.With(models.DimensionIncome, 80)
	r.Average = &avg

	md, err := (&MarkdownExporter{}).Export(r)
	require.NoError(t, err)

	assert.NotContains(t, md, "**Generated**")
	assert.Contains(t, md, "| Dimension | Score | Band | Average | Difference |")
	assert.Contains(t, md, "| Income stability | 100.0 | green | 80.0 | +20.0 |")
}

func TestMarkdownExporterNoPriorities(t *testing.T) {
	r := sampleReport()
	r.Result.Priorities = []models.Priority{}

	md, err := (&MarkdownExporter{}).Export(r)
	require.NoError(t, err)
	assert.Contains(t, md, "No urgent priorities flagged.")
}

func TestHTMLExporter(t *testing.T) {
	html, err := (&HTMLExporter{}).Export(sampleReport())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<h1>Financial Resilience Report</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>Income stability</td>")
	assert.Contains(t, html, "<strong>Total Score</strong>")
}

func TestJSONExporter(t *testing.T) {
	out, err := (&JSONExporter{Pretty: true}).Export(sampleReport())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	result, ok := decoded["result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(70), result["total_score"])
	assert.NotContains(t, decoded, "average_scores")
}

func TestNilReport(t *testing.T) {
	for _, e := range []Exporter{&JSONExporter{}, &MarkdownExporter{}, &HTMLExporter{}} {
		_, err := e.Export(nil)
		assert.Error(t, err)
	}
	_, err := ExportToString(nil, "markdown")
	assert.Error(t, err)
}

func TestExportToString(t *testing.T) {
	tests := []struct {
		format  string
		prefix  string
		wantErr bool
	}{
		{"", "# Financial", false},
		{"md", "# Financial", false},
		{"MARKDOWN", "# Financial", false},
		{"html", "<!DOCTYPE html>", false},
		{"json", "{", false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := ExportToString(sampleReport(), tt.format)
			if tt.wantErr {
				assert.ErrorContains(t, err, "unsupported format")
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(out, tt.prefix), "got %.40q", out)
		})
	}
}

func TestExportToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "report.html")

	require.NoError(t, ExportToFile(sampleReport(), path, "html"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>Financial Resilience Report</h1>")

	t.Run("overwrites", func(t *testing.T) {
		require.NoError(t, ExportToFile(sampleReport(), path, "markdown"))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "# Financial"))
	})

	t.Run("empty path", func(t *testing.T) {
		assert.Error(t, ExportToFile(sampleReport(), "", "html"))
	})

	t.Run("bad format", func(t *testing.T) {
		assert.ErrorContains(t, ExportToFile(sampleReport(), path, "pdf"), "export failed")
	})
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFromPath("out.JSON"))
	assert.Equal(t, FormatMarkdown, FormatFromPath("out.md"))
	assert.Equal(t, FormatHTML, FormatFromPath("out.htm"))
	assert.Equal(t, "", FormatFromPath("out.txt"))
}
