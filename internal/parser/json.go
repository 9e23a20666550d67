package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
)

// JSONParser reads answers documents of the form {"answers": {"1": "A", "2": 7}}
type JSONParser struct{}

// NewJSONParser creates a JSON answers parser
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse reads a JSON answers document
func (p *JSONParser) Parse(r io.Reader) (models.AnswerSet, error) {
	var doc struct {
		Answers map[string]json.RawMessage `json:"answers"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	entries := make(map[string]string, len(doc.Answers))
	for key, raw := range doc.Answers {
		var num json.Number
		if err := json.Unmarshal(raw, &num); err == nil {
			entries[key] = num.String()
			continue
		}
		var letter string
		if err := json.Unmarshal(raw, &letter); err == nil {
			entries[key] = letter
			continue
		}
		return nil, fmt.Errorf("answer for %s must be a score or option letter, got %s", strconv.Quote(key), raw)
	}
	return fromEntries(entries)
}
