package parser

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
)

// MarkdownParser reads answers written as Markdown lists, optionally with a
// YAML frontmatter block carrying an answers mapping.
//
// Ordered lists number the questions:
//
//  1. A
//  2. B
//
// Bullet lists name them:
//
//   - Q1: A
//   - Q2: 7
//
// List answers override frontmatter answers for the same question.
type MarkdownParser struct {
	markdown goldmark.Markdown
}

var bulletAnswer = regexp.MustCompile(`^[Qq]?(\d+)\s*[:=]\s*(\S+)`)

// NewMarkdownParser creates a Markdown answers parser
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{
		markdown: goldmark.New(),
	}
}

// Parse reads a Markdown answers document
func (p *MarkdownParser) Parse(r io.Reader) (models.AnswerSet, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	entries := make(map[string]string)
	content, frontmatter := extractFrontmatter(content)
	if frontmatter != nil {
		fm, err := yamlEntries(frontmatter)
		if err != nil {
			return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
		}
		for k, v := range fm {
			entries[normalizeKey(k)] = v
		}
	}

	doc := p.markdown.Parser().Parse(text.NewReader(content))
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		list, ok := n.(*ast.List)
		if !ok {
			return ast.WalkContinue, nil
		}

		number := list.Start
		for item := list.FirstChild(); item != nil; item = item.NextSibling() {
			line := strings.TrimSpace(extractText(item, content))
			if list.IsOrdered() {
				entries[strconv.Itoa(number)] = firstField(line)
				number++
				continue
			}
			if m := bulletAnswer.FindStringSubmatch(line); m != nil {
				entries[m[1]] = m[2]
			}
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	return fromEntries(entries)
}

// extractText collects the plain text under n, recursing into inline nodes
func extractText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
			continue
		}
		if _, ok := c.(*ast.List); ok {
			continue
		}
		buf.WriteString(extractText(c, source))
	}
	return buf.String()
}

// extractFrontmatter extracts YAML frontmatter from markdown content
// Returns the content without frontmatter and the frontmatter bytes
func extractFrontmatter(content []byte) ([]byte, []byte) {
	lines := bytes.Split(content, []byte("\n"))

	if len(lines) < 3 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return content, nil
	}

	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			frontmatter := bytes.Join(lines[1:i], []byte("\n"))
			body := bytes.Join(lines[i+1:], []byte("\n"))
			return body, frontmatter
		}
	}

	return content, nil
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimRight(fields[0], ".):")
}

// normalizeKey maps "Q4" and "q4" to "4" so list answers replace
// frontmatter answers for the same question.
func normalizeKey(k string) string {
	if id, err := parseQuestionID(k); err == nil {
		return strconv.Itoa(id)
	}
	return k
}
