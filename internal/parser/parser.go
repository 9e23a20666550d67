// Package parser reads questionnaire answers from files and command line
// flags into a models.AnswerSet.
//
// Answers may be given as raw scores (0, 3, 7, 10) or as option letters
// (A-D), which are resolved against the question catalog.
package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
)

// Format represents the format of an answers file
type Format int

const (
	// FormatUnknown represents an unknown or unsupported file format
	FormatUnknown Format = iota
	// FormatYAML represents a YAML (.yaml, .yml) answers file
	FormatYAML
	// FormatJSON represents a JSON (.json) answers file
	FormatJSON
	// FormatMarkdown represents a Markdown (.md, .markdown) answers file
	FormatMarkdown
)

// String returns the string representation of the Format
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// Parser is the interface that all answers parsers implement
type Parser interface {
	// Parse reads from an io.Reader and returns the answers it contains
	Parse(r io.Reader) (models.AnswerSet, error)
}

// DetectFormat detects the answers format based on file extension
// Supported extensions:
//   - .yaml, .yml -> FormatYAML
//   - .json -> FormatJSON
//   - .md, .markdown -> FormatMarkdown
//   - all others -> FormatUnknown
func DetectFormat(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	case ".md", ".markdown":
		return FormatMarkdown
	default:
		return FormatUnknown
	}
}

// NewParser creates a new parser instance for the specified format
// Returns an error if the format is unknown or unsupported
func NewParser(format Format) (Parser, error) {
	switch format {
	case FormatYAML:
		return NewYAMLParser(), nil
	case FormatJSON:
		return NewJSONParser(), nil
	case FormatMarkdown:
		return NewMarkdownParser(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %v", format)
	}
}

// ParseFile detects the format of path from its extension, parses it and
// validates the resulting answers.
func ParseFile(path string) (models.AnswerSet, error) {
	format := DetectFormat(path)
	if format == FormatUnknown {
		return nil, fmt.Errorf("unknown file format: %s (supported: .yaml, .yml, .json, .md, .markdown)", path)
	}

	parser, err := NewParser(format)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	answers, err := parser.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse answers %s: %w", path, err)
	}
	if err := answers.Validate(); err != nil {
		return nil, fmt.Errorf("invalid answers in %s: %w", path, err)
	}
	return answers, nil
}

// ParseAnswerFlags parses repeated "ID=VALUE" flag values, where VALUE is a
// raw score or an option letter.
func ParseAnswerFlags(values []string) (models.AnswerSet, error) {
	entries := make(map[string]string, len(values))
	for _, v := range values {
		key, raw, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q: expected ID=VALUE", v)
		}
		if _, dup := entries[key]; dup {
			return nil, fmt.Errorf("question %s answered more than once", key)
		}
		entries[key] = raw
	}
	answers, err := fromEntries(entries)
	if err != nil {
		return nil, err
	}
	if err := answers.Validate(); err != nil {
		return nil, err
	}
	return answers, nil
}

// Merge returns base overlaid with override. Neither input is modified.
func Merge(base, override models.AnswerSet) models.AnswerSet {
	out := base.Clone()
	for id, score := range override {
		out[id] = score
	}
	return out
}

// ResolveAnswer turns a raw answer value for question id into a score.
// Numbers are taken as scores as-is; a single letter selects the option of
// that question.
func ResolveAnswer(id int, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("question %d: empty answer", id)
	}
	if score, err := strconv.Atoi(raw); err == nil {
		return score, nil
	}

	q, err := models.QuestionByID(id)
	if err != nil {
		return 0, err
	}
	opt, ok := q.Option(raw)
	if !ok {
		return 0, fmt.Errorf("question %d: unknown option %q (choose A-D)", id, raw)
	}
	return opt.Score, nil
}

// parseQuestionID accepts "4", "q4" and "Q4".
func parseQuestionID(key string) (int, error) {
	key = strings.TrimSpace(key)
	trimmed := strings.TrimPrefix(strings.TrimPrefix(key, "q"), "Q")
	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid question id %q", key)
	}
	return id, nil
}

// fromEntries resolves raw key/value pairs. Keys are processed in sorted
// order so the first reported error is stable. Two keys naming the same
// question are an error.
func fromEntries(entries map[string]string) (models.AnswerSet, error) {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	answers := make(models.AnswerSet, len(entries))
	keyByID := make(map[int]string, len(entries))
	for _, k := range keys {
		id, err := parseQuestionID(k)
		if err != nil {
			return nil, err
		}
		if prev, dup := keyByID[id]; dup {
			return nil, fmt.Errorf("question %d answered more than once (%q and %q)", id, prev, k)
		}
		keyByID[id] = k
		score, err := ResolveAnswer(id, entries[k])
		if err != nil {
			return nil, err
		}
		answers[id] = score
	}
	return answers, nil
}
