package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"answers.yaml", FormatYAML},
		{"answers.YML", FormatYAML},
		{"answers.json", FormatJSON},
		{"answers.md", FormatMarkdown},
		{"answers.markdown", FormatMarkdown},
		{"answers.txt", FormatUnknown},
		{"answers", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.filename))
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "markdown", FormatMarkdown.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestNewParserUnknown(t *testing.T) {
	_, err := NewParser(FormatUnknown)
	assert.Error(t, err)
}

func TestResolveAnswer(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		raw     string
		want    int
		wantErr bool
	}{
		{"score", 1, "7", 7, false},
		{"letter", 1, "A", 10, false},
		{"lowercase letter", 2, " c ", 3, false},
		{"letter D", 10, "D", 0, false},
		{"unknown letter", 1, "E", 0, true},
		{"empty", 1, "", 0, true},
		{"letter for unknown question", 11, "A", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveAnswer(tt.id, tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAnswerFlags(t *testing.T) {
	t.Run("scores and letters", func(t *testing.T) {
		answers, err := ParseAnswerFlags([]string{"1=10", "q2=B", "Q3=0"})
		require.NoError(t, err)
		assert.Equal(t, models.AnswerSet{1: 10, 2: 7, 3: 0}, answers)
	})

	t.Run("missing equals", func(t *testing.T) {
		_, err := ParseAnswerFlags([]string{"1:10"})
		assert.ErrorContains(t, err, "expected ID=VALUE")
	})

	t.Run("invalid score", func(t *testing.T) {
		_, err := ParseAnswerFlags([]string{"1=5"})
		assert.Error(t, err)
	})

	t.Run("out of range id", func(t *testing.T) {
		_, err := ParseAnswerFlags([]string{"11=10"})
		assert.Error(t, err)
	})

	t.Run("bad id", func(t *testing.T) {
		_, err := ParseAnswerFlags([]string{"x=10"})
		assert.ErrorContains(t, err, "invalid question id")
	})

	t.Run("same question under two keys", func(t *testing.T) {
		_, err := ParseAnswerFlags([]string{"1=A", "q1=D"})
		assert.ErrorContains(t, err, "question 1 answered more than once")
	})

	t.Run("repeated key", func(t *testing.T) {
		_, err := ParseAnswerFlags([]string{"2=A", "2=B"})
		assert.ErrorContains(t, err, "question 2 answered more than once")
	})

	t.Run("empty", func(t *testing.T) {
		answers, err := ParseAnswerFlags(nil)
		require.NoError(t, err)
		assert.Empty(t, answers)
	})
}

func TestMerge(t *testing.T) {
	base := models.AnswerSet{1: 10, 2: 3}
	override := models.AnswerSet{2: 7, 3: 0}

	merged := Merge(base, override)

	assert.Equal(t, models.AnswerSet{1: 10, 2: 7, 3: 0}, merged)
	assert.Equal(t, models.AnswerSet{1: 10, 2: 3}, base, "base must not change")
}

func TestYAMLParser(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    models.AnswerSet
		wantErr string
	}{
		{
			name:  "int keys with letters and scores",
			input: "answers:\n  1: A\n  2: 7\n  3: c\n",
			want:  models.AnswerSet{1: 10, 2: 7, 3: 3},
		},
		{
			name:  "quoted and prefixed keys",
			input: "answers:\n  \"4\": 10\n  Q5: D\n",
			want:  models.AnswerSet{4: 10, 5: 0},
		},
		{
			name:  "no answers key",
			input: "respondent: anonymous\n",
			want:  models.AnswerSet{},
		},
		{
			name:    "answers not a mapping",
			input:   "answers: [A, B]\n",
			wantErr: "must be a mapping",
		},
		{
			name:    "nested value",
			input:   "answers:\n  1: [A]\n",
			wantErr: "score or option letter",
		},
		{
			name:    "same question twice",
			input:   "answers:\n  1: A\n  q1: D\n",
			wantErr: "question 1 answered more than once",
		},
		{
			name:    "malformed",
			input:   "answers: {1: A\n",
			wantErr: "failed to parse YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewYAMLParser().Parse(strings.NewReader(tt.input))
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONParser(t *testing.T) {
	t.Run("numbers and letters", func(t *testing.T) {
		got, err := NewJSONParser().Parse(strings.NewReader(`{"answers": {"1": "A", "2": 7, "q3": "d"}}`))
		require.NoError(t, err)
		assert.Equal(t, models.AnswerSet{1: 10, 2: 7, 3: 0}, got)
	})

	t.Run("wrong value type", func(t *testing.T) {
		_, err := NewJSONParser().Parse(strings.NewReader(`{"answers": {"1": true}}`))
		assert.ErrorContains(t, err, "score or option letter")
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := NewJSONParser().Parse(strings.NewReader(`{"answers":`))
		assert.ErrorContains(t, err, "failed to parse JSON")
	})
}

func TestMarkdownParser(t *testing.T) {
	t.Run("ordered list", func(t *testing.T) {
		input := "# My answers\n\n1. A\n2. B - mostly stable\n3. C\n"
		got, err := NewMarkdownParser().Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, models.AnswerSet{1: 10, 2: 7, 3: 3}, got)
	})

	t.Run("ordered list with start", func(t *testing.T) {
		got, err := NewMarkdownParser().Parse(strings.NewReader("4. D\n5. 10\n"))
		require.NoError(t, err)
		assert.Equal(t, models.AnswerSet{4: 0, 5: 10}, got)
	})

	t.Run("bullet list", func(t *testing.T) {
		input := "- Q1: A\n- q2 = 3\n- a note without an answer\n"
		got, err := NewMarkdownParser().Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, models.AnswerSet{1: 10, 2: 3}, got)
	})

	t.Run("frontmatter overridden by list", func(t *testing.T) {
		input := "---\nanswers:\n  1: D\n  Q2: A\n---\n\n- Q1: A\n"
		got, err := NewMarkdownParser().Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, models.AnswerSet{1: 10, 2: 10}, got)
	})

	t.Run("bad option", func(t *testing.T) {
		_, err := NewMarkdownParser().Parse(strings.NewReader("1. Z\n"))
		assert.ErrorContains(t, err, "unknown option")
	})
}

func TestExtractFrontmatter(t *testing.T) {
	body, fm := extractFrontmatter([]byte("---\na: 1\n---\nbody"))
	assert.Equal(t, "a: 1", string(fm))
	assert.Equal(t, "body", string(body))

	body, fm = extractFrontmatter([]byte("---\nunterminated\n"))
	assert.Nil(t, fm)
	assert.Equal(t, "---\nunterminated\n", string(body))
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	t.Run("yaml", func(t *testing.T) {
		answers, err := ParseFile(write("a.yaml", "answers:\n  1: A\n  10: 3\n"))
		require.NoError(t, err)
		assert.Equal(t, models.AnswerSet{1: 10, 10: 3}, answers)
	})

	t.Run("invalid score rejected", func(t *testing.T) {
		_, err := ParseFile(write("bad.json", `{"answers": {"1": 5}}`))
		assert.ErrorContains(t, err, "invalid answers")
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := ParseFile(write("a.txt", "answers: {}"))
		assert.ErrorContains(t, err, "unknown file format")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ParseFile(filepath.Join(dir, "missing.yaml"))
		assert.ErrorContains(t, err, "failed to open file")
	})
}
