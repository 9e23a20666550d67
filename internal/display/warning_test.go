package display

import (
	"bytes"
	"strings"
	"testing"
)

func TestDisplayWarning_TitleOnly(t *testing.T) {
	var buf bytes.Buffer
	w := Warning{Title: "History unavailable"}

	w.Display(&buf, false)

	output := buf.String()
	if !strings.Contains(output, "⚠️  Warning: History unavailable") {
		t.Errorf("Expected title line in output, got %q", output)
	}
	if strings.Contains(output, "\x1b[") {
		t.Error("Expected no ANSI codes with color disabled")
	}
}

func TestDisplayWarning_Colored(t *testing.T) {
	var buf bytes.Buffer
	Warning{Title: "x"}.Display(&buf, true)

	if !strings.Contains(buf.String(), "\x1b[33m") {
		t.Error("Expected yellow ANSI color code in output")
	}
}

func TestDisplayWarning_Items(t *testing.T) {
	tests := []struct {
		name   string
		items  []string
		header string
	}{
		{"single item", []string{"Q4"}, "Affected item:"},
		{"multiple items", []string{"Q4", "Q7"}, "Affected items:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Warning{Title: "t", Items: tt.items}.Display(&buf, false)
			output := buf.String()

			if !strings.Contains(output, "    "+tt.header) {
				t.Errorf("Expected %q in output, got %q", tt.header, output)
			}
			for i, item := range tt.items {
				want := "      " + string(rune('1'+i)) + ". " + item
				if !strings.Contains(output, want) {
					t.Errorf("Expected %q in output, got %q", want, output)
				}
			}
		})
	}
}

func TestWarnUnanswered(t *testing.T) {
	w := WarnUnanswered([]int{3, 10})

	if w.Title != "Incomplete answers" {
		t.Errorf("Title = %q", w.Title)
	}
	if len(w.Items) != 2 || w.Items[0] != "Q3" || w.Items[1] != "Q10" {
		t.Errorf("Items = %v, want [Q3 Q10]", w.Items)
	}

	var buf bytes.Buffer
	w.Display(&buf, false)
	output := buf.String()
	for _, want := range []string{"Unanswered questions are scored as 0", "Suggestion:", "--answer ID=SCORE"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected %q in output", want)
		}
	}
}
