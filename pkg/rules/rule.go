package rules

import (
	"github.com/arthur-debert/sawkit/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Rule is the metadata of a Sigma rule
type Rule struct {
	Title          string    `yaml:"title" json:"title"`
	ID             string    `yaml:"id" json:"id"`
	Status         string    `yaml:"status" json:"status"`
	Description    string    `yaml:"description" json:"description"`
	Author         string    `yaml:"author" json:"author"`
	Date           string    `yaml:"date" json:"date,omitempty"`
	Modified       string    `yaml:"modified" json:"modified,omitempty"`
	Level          string    `yaml:"level" json:"level"`
	References     []string  `yaml:"references" json:"references,omitempty"`
	Tags           []string  `yaml:"tags" json:"tags,omitempty"`
	Falsepositives []string  `yaml:"falsepositives" json:"falsepositives,omitempty"`
	Fields         []string  `yaml:"fields" json:"fields,omitempty"`
	Logsource      Logsource `yaml:"logsource" json:"logsource"`
	Detection      Detection `yaml:"detection" json:"detection,omitempty"`

	// Path is relative to the rules root
	Path string `yaml:"-" json:"path"`
}

// Logsource selects the event stream a rule applies to
type Logsource struct {
	Product    string `yaml:"product" json:"product,omitempty"`
	Category   string `yaml:"category" json:"category,omitempty"`
	Service    string `yaml:"service" json:"service,omitempty"`
	Definition string `yaml:"definition" json:"definition,omitempty"`
}

// Detection holds the selections and the condition, kept as raw YAML
type Detection map[string]interface{}

// Condition returns the detection condition as written
func (d Detection) Condition() string {
	switch c := d["condition"].(type) {
	case string:
		return c
	case []interface{}:
		if len(c) > 0 {
			if s, ok := c[0].(string); ok {
				return s
			}
		}
	}
	return ""
}

// ParseRule decodes one rule document
func ParseRule(data []byte) (*Rule, error) {
	var rule Rule
	if err := yaml.Unmarshal(data, &rule); err != nil {
		return nil, errors.Wrap(err, errors.ErrRuleParse, "invalid rule YAML")
	}
	if rule.Title == "" {
		return nil, errors.New(errors.ErrRuleParse, "rule has no title")
	}
	return &rule, nil
}
