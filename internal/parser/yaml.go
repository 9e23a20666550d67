package parser

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Kevin-Yeh-egroup/financial-resilience-survey/internal/models"
)

// YAMLParser reads answers documents of the form:
//
//	answers:
//	  1: A
//	  2: 7
type YAMLParser struct{}

// NewYAMLParser creates a YAML answers parser
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse reads a YAML answers document
func (p *YAMLParser) Parse(r io.Reader) (models.AnswerSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}
	entries, err := yamlEntries(data)
	if err != nil {
		return nil, err
	}
	return fromEntries(entries)
}

// yamlEntries extracts the answers mapping as raw strings. The mapping is
// walked node by node so that both `1: A` and `"1": 10` are accepted.
func yamlEntries(data []byte) (map[string]string, error) {
	var doc struct {
		Answers yaml.Node `yaml:"answers"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	entries := make(map[string]string)
	node := doc.Answers
	if node.Kind == 0 {
		return entries, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: answers must be a mapping of question id to answer", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: answer for %q must be a score or option letter", value.Line, key.Value)
		}
		entries[key.Value] = value.Value
	}
	return entries, nil
}
